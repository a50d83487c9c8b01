package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
	"github.com/vovakirdan/tui-kittens/internal/core"
	"github.com/vovakirdan/tui-kittens/internal/storage"
)

// keyMsg builds a key message whose String() is s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testOptions(t *testing.T, store *storage.Store) GameOptions {
	t.Helper()
	sprites, err := assets.LoadSprites("")
	if err != nil {
		t.Fatalf("LoadSprites() failed: %v", err)
	}
	return GameOptions{
		Kittens: config.DefaultKittensConfig(),
		Assets:  assets.NewBundle(sprites, nil),
		Store:   store,
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  30,
			TickRate: 60,
			Seed:     1,
			Player:   "tester",
		},
		Logger:        log.New(io.Discard),
		ScreenshotDir: t.TempDir(),
	}
}

func newTestGame(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	m, err := NewGameModel(testOptions(t, store))
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

// update runs one message through a GameModel.
func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm, cmd
}
