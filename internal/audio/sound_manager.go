// Package audio synthesizes the game's soundtrack and effect cues on the
// system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
)

// SoundManager owns the speaker and hands out cues.
// When audio is disabled or the device cannot be opened every cue is silent.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sr          beep.SampleRate
	mixer       *beep.Mixer
	music       *loopCue
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager. Call Initialize before requesting cues.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	sr := beep.SampleRate(cfg.SampleRate)
	if sr <= 0 {
		sr = beep.SampleRate(44100)
	}
	return &SoundManager{
		cfg:    cfg,
		sr:     sr,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. A failure is logged and leaves the manager silent;
// the error is returned for callers that care.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sm.sr, sm.sr.N(time.Millisecond*100)); err != nil {
		sm.logger.Warn("audio unavailable, continuing without sound", "error", err)
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues will actually produce sound.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and releases the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// Cue implements assets.CueSource.
func (sm *SoundManager) Cue(name string) assets.Cue {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return assets.Silent{}.Cue(name)
	}

	vol := sm.cfg.Volume
	switch name {
	case assets.CueSoundtrack:
		// One soundtrack per speaker; sessions share it
		if sm.music == nil {
			sm.music = &loopCue{mixer: sm.mixer, ctrl: &beep.Ctrl{Streamer: newVolume(soundtrack(sm.sr), vol*0.6), Paused: true}}
		}
		return sm.music
	case assets.CueDeath:
		return &oneShotCue{mixer: sm.mixer, build: func() beep.Streamer { return newVolume(deathSound(sm.sr), vol) }}
	case assets.CuePoints:
		return &oneShotCue{mixer: sm.mixer, build: func() beep.Streamer { return newVolume(pointsSound(sm.sr), vol) }}
	default:
		return assets.Silent{}.Cue(name)
	}
}

// loopCue is a long-running stream toggled by Play and Pause.
type loopCue struct {
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
	added bool
}

func (c *loopCue) Play() {
	speaker.Lock()
	defer speaker.Unlock()

	if !c.added {
		c.mixer.Add(c.ctrl)
		c.added = true
	}
	c.ctrl.Paused = false
}

func (c *loopCue) Pause() {
	speaker.Lock()
	c.ctrl.Paused = true
	speaker.Unlock()
}

// oneShotCue plays a fresh instance of a finite sound on every Play.
type oneShotCue struct {
	mixer *beep.Mixer
	build func() beep.Streamer
	last  *beep.Ctrl
}

func (c *oneShotCue) Play() {
	ctrl := &beep.Ctrl{Streamer: c.build()}

	speaker.Lock()
	c.mixer.Add(ctrl)
	c.last = ctrl
	speaker.Unlock()
}

// Pause cuts off the most recent instance.
func (c *oneShotCue) Pause() {
	speaker.Lock()
	if c.last != nil {
		c.last.Paused = true
	}
	speaker.Unlock()
}
