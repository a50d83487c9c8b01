package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/audio"
	"github.com/vovakirdan/tui-kittens/internal/config"
	"github.com/vovakirdan/tui-kittens/internal/core"
	"github.com/vovakirdan/tui-kittens/internal/platform/tui"
	"github.com/vovakirdan/tui-kittens/internal/storage"
)

// newLogger returns the CLI logger and a function that closes its output.
// With --log-file, everything down to debug goes to the file; otherwise only
// warnings reach stderr.
func newLogger() (*log.Logger, func()) {
	var out io.Writer = os.Stderr
	closer := func() {}
	level := log.WarnLevel

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			out = f
			closer = func() { f.Close() }
			level = log.DebugLevel
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "kittens",
		Level:           level,
	})
	return logger, closer
}

// loadConfig loads the config file and applies the difficulty preset.
func loadConfig() (config.KittensConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.KittensConfig{}, err
	}

	cfg, err := config.LoadKittens(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, preset)
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Player = playerName()
	return cfg
}

// playerName is the name local scores are recorded under.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return storage.AnonymousPlayer
}

// session holds everything a local game needs, plus the resources to release.
type session struct {
	opts   tui.GameOptions
	sound  *audio.SoundManager
	logger *log.Logger
	close  func()
}

// setupSession builds config, sound, assets and storage for local play.
// Storage and sound failures are not fatal.
func setupSession() (*session, error) {
	logger, closeLog := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		closeLog()
		return nil, err
	}

	sound := audio.NewSoundManager(cfg.Audio, logger)
	//nolint:errcheck // Initialize logs its own failure and leaves the manager silent
	sound.Initialize()

	bundle, err := assets.Load(cfg.Sprites, sound)
	if err != nil {
		sound.Cleanup()
		closeLog()
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	s := &session{
		opts: tui.GameOptions{
			Kittens: cfg,
			Assets:  bundle,
			Store:   store,
			Board:   storage.BoardID(flagDifficulty),
			Runtime: runtimeConfig(),
			Logger:  logger,
		},
		sound:  sound,
		logger: logger,
	}
	s.close = func() {
		if store != nil {
			store.Close()
		}
		sound.Cleanup()
		closeLog()
	}
	return s, nil
}
