// Package assets holds the sprites and sound cues the game draws and plays,
// looked up by logical name.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/vovakirdan/tui-kittens/internal/core"
	"gopkg.in/yaml.v3"
)

// Logical sprite names.
const (
	SpriteEnemy      = "enemy"
	SpriteBackground = "rainbow"
	SpritePlayer     = "player"
	SpriteTomato     = "tomato"
)

// RequiredSprites lists every sprite the game looks up.
var RequiredSprites = []string{SpriteEnemy, SpriteBackground, SpritePlayer, SpriteTomato}

// ErrMissingSprite is returned when a sprite name has no entry in the sheet.
var ErrMissingSprite = errors.New("assets: missing sprite")

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// Sprite is a block of colored ASCII art.
type Sprite struct {
	Name   string
	Rows   [][]rune
	Colors []core.Color // One per row
	Opaque bool         // Spaces overwrite what is underneath
	Tile   bool         // Repeats to fill the whole surface
}

// Width returns the widest row in cells.
func (s *Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		w = core.Max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (s *Sprite) Height() int {
	return len(s.Rows)
}

// Cell returns the cell at (x, y) inside the sprite.
// ok is false outside the art and for transparent spaces.
func (s *Sprite) Cell(x, y int) (cell core.Cell, ok bool) {
	if y < 0 || y >= len(s.Rows) || x < 0 {
		return core.Cell{}, false
	}
	row := s.Rows[y]
	r := ' '
	if x < len(row) {
		r = row[x]
	} else if x >= s.Width() {
		return core.Cell{}, false
	}
	if r == ' ' && !s.Opaque {
		return core.Cell{}, false
	}
	return core.Cell{Rune: r, Color: s.Colors[y]}, true
}

// spriteDef is the YAML form of a sprite.
type spriteDef struct {
	Rows   []string `yaml:"rows"`
	Colors []string `yaml:"colors"`
	Opaque bool     `yaml:"opaque"`
	Tile   bool     `yaml:"tile"`
}

func (d spriteDef) build(name string) (*Sprite, error) {
	if len(d.Rows) == 0 {
		return nil, fmt.Errorf("assets: sprite %q has no rows", name)
	}

	sp := &Sprite{
		Name:   name,
		Rows:   make([][]rune, len(d.Rows)),
		Colors: make([]core.Color, len(d.Rows)),
		Opaque: d.Opaque,
		Tile:   d.Tile,
	}

	last := core.ColorDefault
	for i, row := range d.Rows {
		sp.Rows[i] = []rune(row)
		if i < len(d.Colors) {
			c, ok := core.ParseColor(d.Colors[i])
			if !ok {
				return nil, fmt.Errorf("assets: sprite %q row %d: unknown color %q", name, i, d.Colors[i])
			}
			last = c
		}
		sp.Colors[i] = last
	}
	return sp, nil
}

// ParseSprites decodes a sprite sheet.
func ParseSprites(data []byte) (map[string]*Sprite, error) {
	var defs map[string]spriteDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("assets: parse sprite sheet: %w", err)
	}

	sprites := make(map[string]*Sprite, len(defs))
	for name, def := range defs {
		sp, err := def.build(name)
		if err != nil {
			return nil, err
		}
		sprites[name] = sp
	}
	return sprites, nil
}

// LoadSprites returns the embedded sprite sheet, with entries from
// overridePath replacing sprites of the same name.
func LoadSprites(overridePath string) (map[string]*Sprite, error) {
	sprites, err := ParseSprites(defaultSpritesYAML)
	if err != nil {
		return nil, err
	}
	if overridePath == "" {
		return sprites, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("assets: read sprite sheet %s: %w", overridePath, err)
	}
	overrides, err := ParseSprites(data)
	if err != nil {
		return nil, err
	}
	for name, sp := range overrides {
		sprites[name] = sp
	}
	return sprites, nil
}

// spriteNames returns the sorted keys of a sprite map.
func spriteNames(sprites map[string]*Sprite) []string {
	names := make([]string, 0, len(sprites))
	for name := range sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
