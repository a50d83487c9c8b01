package assets

import "fmt"

// Logical sound cue names.
const (
	CueSoundtrack = "soundtrack" // Loops for the whole session
	CueDeath      = "death"
	CuePoints     = "points"
)

// Cue is a playable sound. Implementations must be safe to call from the game loop
// and must not block.
type Cue interface {
	Play()
	Pause()
}

// CueSource produces cues by logical name.
type CueSource interface {
	Cue(name string) Cue
}

// silentCue is used when audio is disabled or unavailable.
type silentCue struct{}

func (silentCue) Play()  {}
func (silentCue) Pause() {}

// Silent is a CueSource whose cues do nothing.
type Silent struct{}

// Cue implements CueSource.
func (Silent) Cue(string) Cue { return silentCue{} }

// Bundle is the read-only set of sprites and cues for one session.
type Bundle struct {
	sprites map[string]*Sprite
	cues    CueSource
}

// NewBundle wraps already-loaded sprites and a cue source.
// A nil source plays nothing.
func NewBundle(sprites map[string]*Sprite, cues CueSource) *Bundle {
	if cues == nil {
		cues = Silent{}
	}
	return &Bundle{sprites: sprites, cues: cues}
}

// Load builds a bundle from the embedded sprite sheet (plus optional override file)
// and checks that every required sprite is present.
func Load(spritePath string, cues CueSource) (*Bundle, error) {
	sprites, err := LoadSprites(spritePath)
	if err != nil {
		return nil, err
	}

	b := NewBundle(sprites, cues)
	for _, name := range RequiredSprites {
		if _, err := b.Sprite(name); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Sprite looks up a sprite by name.
func (b *Bundle) Sprite(name string) (*Sprite, error) {
	sp, ok := b.sprites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingSprite, name)
	}
	return sp, nil
}

// Cue looks up a sound cue by name. Unknown names play nothing.
func (b *Bundle) Cue(name string) Cue {
	if c := b.cues.Cue(name); c != nil {
		return c
	}
	return silentCue{}
}

// SpriteNames returns the names of all loaded sprites, sorted.
func (b *Bundle) SpriteNames() []string {
	return spriteNames(b.sprites)
}
