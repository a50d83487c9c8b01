// Package tui provides the Bubble Tea integration for the kittens game.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when a frame the engine asked for is due.
// Gen identifies the tick chain; ticks from an abandoned chain are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// genCounter hands out tick chain IDs. It is shared by every model in the
// process so a stale tick never matches a chain started later, even one
// belonging to a fresh GameModel.
var genCounter atomic.Int64

// nextGen returns a tick chain ID that has never been used.
func nextGen() int {
	return int(genCounter.Add(1))
}

// tickCmd returns a Bubble Tea command that delivers one tick after a frame interval.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// frameScheduler records frame requests made by the engine during a frame.
// The host turns a pending request into exactly one tickCmd.
type frameScheduler struct {
	pending bool
}

// RequestFrame implements kittens.Scheduler.
func (s *frameScheduler) RequestFrame() {
	s.pending = true
}

// take reports and clears a pending request.
func (s *frameScheduler) take() bool {
	p := s.pending
	s.pending = false
	return p
}
