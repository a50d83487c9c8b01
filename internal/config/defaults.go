package config

import (
	_ "embed"
)

//go:embed defaults/kittens.yaml
var defaultKittensYAML []byte

// DefaultKittensConfig returns the built-in configuration.
// It mirrors defaults/kittens.yaml and is used when the embedded file cannot be parsed.
func DefaultKittensConfig() KittensConfig {
	return KittensConfig{
		Playfield: PlayfieldConfig{
			Width:  375,
			Height: 500,
		},
		Enemies: EnemyConfig{
			Width:    75,
			Height:   156,
			Max:      3,
			MinSpeed: 0.25,
			MaxSpeed: 0.75,
		},
		Tomatoes: TomatoConfig{
			Width:  75,
			Height: 78,
			Max:    1,
			Margin: 10,
			Bonus:  1000,
		},
		Player: PlayerConfig{
			Width:     75,
			Height:    67,
			StartLane: 2,
			Margin:    10,
		},
		Display: DisplayConfig{
			Columns: 45, // 9 columns per lane
			Rows:    20,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultKittensYAML
}
