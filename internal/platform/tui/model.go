package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
	"github.com/vovakirdan/tui-kittens/internal/core"
	"github.com/vovakirdan/tui-kittens/internal/kittens"
	"github.com/vovakirdan/tui-kittens/internal/storage"
)

// GameOptions holds everything needed to build game sessions.
type GameOptions struct {
	Kittens config.KittensConfig
	Assets  *assets.Bundle
	Store   *storage.Store // nil disables score saving
	Board   string         // Score board, see storage.BoardID
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// ScreenshotDir defaults to ~/.kittens/screenshots.
	ScreenshotDir string
}

// GameModel is the Bubble Tea model hosting one game at a time.
// Restarting replaces the engine with a brand-new session.
type GameModel struct {
	opts       GameOptions
	engine     *kittens.Engine
	surface    *kittens.ScreenSurface
	sched      *frameScheduler
	screen     *core.Screen
	keyMapper  *KeyMapper
	gen        int // Current tick chain
	highScore  int64
	notice     string // One-line status message, e.g. screenshot path
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model and its first engine.
func NewGameModel(opts GameOptions) (GameModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Board == "" {
		opts.Board = storage.DefaultGameID
	}

	m := GameModel{
		opts:      opts,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keyMapper: NewKeyMapper(),
	}
	if err := m.newSession(); err != nil {
		return GameModel{}, err
	}

	if opts.Store != nil {
		if high, err := opts.Store.HighScore(opts.Board); err == nil {
			m.highScore = high
		}
	}
	return m, nil
}

// newSession builds a fresh surface, scheduler and engine.
func (m *GameModel) newSession() error {
	surface := kittens.NewScreenSurface(m.opts.Kittens)
	sched := &frameScheduler{}

	seed := m.opts.Runtime.Seed
	if m.engine != nil {
		// Only the first session replays a fixed seed
		seed = 0
	}

	engine, err := kittens.NewEngine(kittens.Options{
		Config:    m.opts.Kittens,
		Assets:    m.opts.Assets,
		Surface:   surface,
		Scheduler: sched,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	m.engine = engine
	m.surface = surface
	m.sched = sched
	m.scoreSaved = false
	m.notice = ""
	m.gen = nextGen()
	return nil
}

// Init starts the session and its tick chain.
func (m GameModel) Init() tea.Cmd {
	m.engine.Start(time.Now())
	return m.nextTick()
}

// nextTick turns a pending frame request into a tick command.
func (m GameModel) nextTick() tea.Cmd {
	if !m.sched.take() {
		return nil
	}
	return tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield has a fixed logical size, so resizing never resets the game
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	state := m.engine.State()
	switch action {
	case core.ActionLeft:
		m.engine.Move(kittens.MoveLeft)
	case core.ActionRight:
		m.engine.Move(kittens.MoveRight)

	case core.ActionPause:
		switch state {
		case kittens.StateRunning:
			m.engine.Pause()
			m.gen = nextGen() // Drop the tick already in flight
		case kittens.StatePaused:
			m.engine.Resume(time.Now())
			return m, m.nextTick()
		}

	case core.ActionRestart:
		if state == kittens.StateGameOver {
			if err := m.newSession(); err != nil {
				m.opts.Logger.Error("cannot restart game", "error", err)
				return m, nil
			}
			m.engine.Start(time.Now())
			return m, m.nextTick()
		}

	case core.ActionBack:
		if state == kittens.StateGameOver || state == kittens.StatePaused {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick runs one engine frame.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	m.engine.Frame(msg.Time)

	if m.engine.State() == kittens.StateGameOver && !m.scoreSaved {
		m.saveScore()
	}

	return m, m.nextTick()
}

// saveScore records the final score once per session. Failures are logged only.
func (m *GameModel) saveScore() {
	m.scoreSaved = true
	score := m.engine.Score()
	if score > m.highScore {
		m.highScore = score
	}
	if m.opts.Store == nil || score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.opts.Board, m.opts.Runtime.Player, score); err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the playfield to a text file.
func (m *GameModel) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".kittens", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("kittens_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.surface.Canvas().String()+"\n"), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.notice = "saved " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.compose()
	return RenderScreen(m.screen)
}

// Engine returns the current session engine.
func (m GameModel) Engine() *kittens.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameResult describes how a standalone game run ended.
type GameResult struct {
	Score      int64
	BackToMenu bool
}

// RunGame starts a Bubble Tea program hosting one game.
func RunGame(opts GameOptions) (GameResult, error) {
	model, err := NewGameModel(opts)
	if err != nil {
		return GameResult{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{}, nil
	}
	return GameResult{Score: m.engine.Score(), BackToMenu: m.BackToMenu()}, nil
}
