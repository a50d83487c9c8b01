package tui

import (
	"testing"

	"github.com/vovakirdan/tui-kittens/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"left", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"l", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{"up", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"enter", core.ActionConfirm, false},
		{" ", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(keyMsg(tt.key))
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.key, action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action MenuAction
	}{
		{"q", MenuActionQuit},
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"z", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.key, got, tt.action)
		}
	}
}

func TestFrameScheduler(t *testing.T) {
	var s frameScheduler
	if s.take() {
		t.Error("take() on a fresh scheduler should be false")
	}

	s.RequestFrame()
	s.RequestFrame()
	if !s.take() {
		t.Error("take() after RequestFrame should be true")
	}
	if s.take() {
		t.Error("take() should clear the pending request")
	}
}

func TestNextGenUnique(t *testing.T) {
	a, b := nextGen(), nextGen()
	if b <= a {
		t.Errorf("nextGen() = %d after %d, expected increasing IDs", b, a)
	}
}

func TestTickCmd(t *testing.T) {
	if tickCmd(60, 1) == nil {
		t.Error("tickCmd should return a command")
	}
	if tickCmd(0, 1) == nil {
		t.Error("tickCmd with zero rate should fall back to the default")
	}
}
