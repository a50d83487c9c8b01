package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-kittens/internal/core"
)

// Environment overrides for audio, applied after the YAML file.
const (
	EnvAudioEnabled = "KITTENS_AUDIO_ENABLED"
	EnvMasterVolume = "KITTENS_MASTER_VOLUME" // 0-100
)

// LoadKittens loads the game configuration.
// Search order: customPath -> ~/.kittens/configs/kittens.yaml -> ./configs/kittens.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadKittens(customPath string) (KittensConfig, error) {
	cfg, err := loadKittensFile(customPath)
	if err != nil {
		return cfg, err
	}

	ApplyAudioEnv(&cfg.Audio)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadKittensFile(customPath string) (KittensConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KittensConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseKittens(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kittens.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseKittens(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "kittens.yaml")); err == nil {
		if cfg, err := ParseKittens(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseKittens(defaultKittensYAML)
	if err != nil {
		return DefaultKittensConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseKittens decodes YAML on top of the built-in defaults.
func ParseKittens(data []byte) (KittensConfig, error) {
	cfg := DefaultKittensConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg KittensConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ApplyAudioEnv overrides audio settings from the environment.
// Unparseable values are ignored.
func ApplyAudioEnv(cfg *AudioConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = core.ClampF(float64(val)/100.0, 0, 1)
		}
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kittens", "configs", filename)
}
