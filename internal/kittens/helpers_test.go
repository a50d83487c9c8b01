package kittens

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
	"github.com/vovakirdan/tui-kittens/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int64) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

type spriteCall struct {
	name string
	x, y float64
}

type textCall struct {
	x, y  float64
	text  string
	color core.Color
}

// fakeSurface records every draw call.
type fakeSurface struct {
	sprites []spriteCall
	texts   []textCall
}

func (s *fakeSurface) DrawSprite(sp *assets.Sprite, x, y float64) {
	s.sprites = append(s.sprites, spriteCall{name: sp.Name, x: x, y: y})
}

func (s *fakeSurface) DrawText(x, y float64, text string, c core.Color) {
	s.texts = append(s.texts, textCall{x: x, y: y, text: text, color: c})
}

func (s *fakeSurface) reset() {
	s.sprites = nil
	s.texts = nil
}

func (s *fakeSurface) lastText() textCall {
	if len(s.texts) == 0 {
		return textCall{}
	}
	return s.texts[len(s.texts)-1]
}

// countingScheduler counts frame requests.
type countingScheduler struct {
	requests int
}

func (c *countingScheduler) RequestFrame() {
	c.requests++
}

type recordingCue struct {
	plays, pauses int
}

func (c *recordingCue) Play()  { c.plays++ }
func (c *recordingCue) Pause() { c.pauses++ }

type cueSet map[string]*recordingCue

func (m cueSet) Cue(name string) assets.Cue {
	if c, ok := m[name]; ok {
		return c
	}
	return nil
}

func newCueSet() cueSet {
	return cueSet{
		assets.CueSoundtrack: &recordingCue{},
		assets.CueDeath:      &recordingCue{},
		assets.CuePoints:     &recordingCue{},
	}
}

type harness struct {
	engine  *Engine
	surface *fakeSurface
	sched   *countingScheduler
	cues    cueSet
}

// testReporter is satisfied by both *testing.T and *rapid.T.
type testReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newHarness(t testReporter, cfg config.KittensConfig, seed int64) *harness {
	t.Helper()

	sprites, err := assets.LoadSprites("")
	if err != nil {
		t.Fatalf("LoadSprites() failed: %v", err)
	}

	h := &harness{
		surface: &fakeSurface{},
		sched:   &countingScheduler{},
		cues:    newCueSet(),
	}
	h.engine, err = NewEngine(Options{
		Config:    cfg,
		Assets:    assets.NewBundle(sprites, h.cues),
		Surface:   h.surface,
		Scheduler: h.sched,
		Seed:      seed,
	})
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return h
}

// seedWhere returns a harness for the first seed whose initial layout satisfies ok.
func seedWhere(t *testing.T, cfg config.KittensConfig, ok func(Snapshot) bool) *harness {
	t.Helper()
	for seed := int64(1); seed < 1000; seed++ {
		h := newHarness(t, cfg, seed)
		if ok(h.engine.Snapshot()) {
			return h
		}
	}
	t.Fatal("no seed produced the wanted layout")
	return nil
}

func tomatoInLane(s Snapshot, x int) bool {
	for _, tm := range s.Tomatoes {
		if tm.X == x {
			return true
		}
	}
	return false
}
