// Package config provides YAML-based game configuration loading and
// difficulty presets for the kittens game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// KittensConfig contains all configuration for the game.
type KittensConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Tomatoes  TomatoConfig    `yaml:"tomatoes"`
	Player    PlayerConfig    `yaml:"player"`
	Display   DisplayConfig   `yaml:"display"`
	Audio     AudioConfig     `yaml:"audio"`
	Sprites   string          `yaml:"sprites,omitempty"` // Optional sprite sheet override path
}

// PlayfieldConfig defines the logical drawing space, in pixels.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EnemyConfig defines falling enemy parameters.
type EnemyConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Max      int     `yaml:"max"`       // Live enemies kept on the field
	MinSpeed float64 `yaml:"min_speed"` // Pixels per millisecond, inclusive
	MaxSpeed float64 `yaml:"max_speed"` // Pixels per millisecond, exclusive
}

// TomatoConfig defines bonus item parameters.
type TomatoConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Max    int `yaml:"max"`
	Margin int `yaml:"margin"` // Gap between tomato bottom and playfield bottom
	Bonus  int `yaml:"bonus"`  // Points added per collected tomato
}

// PlayerConfig defines the player sprite parameters.
type PlayerConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	StartLane int `yaml:"start_lane"`
	Margin    int `yaml:"margin"`
}

// DisplayConfig defines how many terminal cells the playfield occupies.
type DisplayConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// EnemyLanes returns the number of horizontal enemy slots.
func (c KittensConfig) EnemyLanes() int {
	if c.Enemies.Width <= 0 {
		return 0
	}
	return c.Playfield.Width / c.Enemies.Width
}

// TomatoLanes returns the number of horizontal tomato slots.
func (c KittensConfig) TomatoLanes() int {
	if c.Tomatoes.Width <= 0 {
		return 0
	}
	return c.Playfield.Width / c.Tomatoes.Width
}

// PlayerLanes returns the number of positions the player can occupy.
func (c KittensConfig) PlayerLanes() int {
	if c.Player.Width <= 0 {
		return 0
	}
	return c.Playfield.Width / c.Player.Width
}

// Validate checks that the configuration describes a playable field.
// Refill terminates only while a free lane exists, so each max must fit its lanes.
func (c KittensConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: playfield must be positive, got %dx%d", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	}

	for _, e := range []struct {
		name string
		w, h int
	}{
		{"enemies", c.Enemies.Width, c.Enemies.Height},
		{"tomatoes", c.Tomatoes.Width, c.Tomatoes.Height},
		{"player", c.Player.Width, c.Player.Height},
	} {
		if e.w <= 0 || e.h <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %dx%d", ErrInvalid, e.name, e.w, e.h)
		}
		if e.w > c.Playfield.Width {
			return fmt.Errorf("%w: %s wider than playfield (%d > %d)", ErrInvalid, e.name, e.w, c.Playfield.Width)
		}
	}

	if c.Enemies.Max < 1 || c.Enemies.Max > c.EnemyLanes() {
		return fmt.Errorf("%w: enemies.max must be in [1, %d], got %d", ErrInvalid, c.EnemyLanes(), c.Enemies.Max)
	}
	if c.Tomatoes.Max < 0 || c.Tomatoes.Max > c.TomatoLanes() {
		return fmt.Errorf("%w: tomatoes.max must be in [0, %d], got %d", ErrInvalid, c.TomatoLanes(), c.Tomatoes.Max)
	}
	if c.Enemies.MinSpeed <= 0 || c.Enemies.MaxSpeed < c.Enemies.MinSpeed {
		return fmt.Errorf("%w: enemy speed range [%g, %g) is not positive", ErrInvalid, c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	}
	if c.Player.StartLane < 0 || c.Player.StartLane >= c.PlayerLanes() {
		return fmt.Errorf("%w: player.start_lane must be in [0, %d), got %d", ErrInvalid, c.PlayerLanes(), c.Player.StartLane)
	}
	if c.Display.Columns <= 0 || c.Display.Rows <= 0 {
		return fmt.Errorf("%w: display must be positive, got %dx%d", ErrInvalid, c.Display.Columns, c.Display.Rows)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Difficulty never changes during a session; presets only pick the starting constants.
func ApplyPreset(cfg *KittensConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Max = 2
		cfg.Enemies.MinSpeed = 0.2
		cfg.Enemies.MaxSpeed = 0.5
	case DifficultyHard:
		cfg.Enemies.Max = 4
		cfg.Enemies.MinSpeed = 0.35
		cfg.Enemies.MaxSpeed = 0.9
	}

	if lanes := cfg.EnemyLanes(); cfg.Enemies.Max > lanes {
		cfg.Enemies.Max = lanes
	}
}
