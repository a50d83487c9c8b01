package kittens

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
	"github.com/vovakirdan/tui-kittens/internal/core"
	"pgregory.net/rapid"
)

func TestNewEngineFillsLanes(t *testing.T) {
	h := newHarness(t, config.DefaultKittensConfig(), 42)
	s := h.engine.Snapshot()

	if s.State != StateReady {
		t.Errorf("State = %v, expected ready", s.State)
	}
	if len(s.Enemies) != 3 {
		t.Errorf("enemies = %d, expected 3", len(s.Enemies))
	}
	if len(s.Tomatoes) != 1 {
		t.Errorf("tomatoes = %d, expected 1", len(s.Tomatoes))
	}
	for _, en := range s.Enemies {
		if en.X != en.Lane*75 {
			t.Errorf("enemy x = %d in lane %d", en.X, en.Lane)
		}
		if en.Y != -156 {
			t.Errorf("enemy y = %f, expected -156", en.Y)
		}
		if en.Speed < 0.25 || en.Speed >= 0.75 {
			t.Errorf("enemy speed = %f outside [0.25, 0.75)", en.Speed)
		}
	}
	if s.Tomatoes[0].Y != 412 {
		t.Errorf("tomato y = %f, expected 412", s.Tomatoes[0].Y)
	}
}

func TestNewEngineErrors(t *testing.T) {
	sprites, err := assets.LoadSprites("")
	if err != nil {
		t.Fatal(err)
	}
	bundle := assets.NewBundle(sprites, nil)

	bad := config.DefaultKittensConfig()
	bad.Enemies.Max = 6
	if _, err := NewEngine(Options{Config: bad, Assets: bundle, Surface: &fakeSurface{}}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewEngine(invalid config) = %v, expected ErrInvalid", err)
	}

	delete(sprites, assets.SpriteTomato)
	_, err = NewEngine(Options{Config: config.DefaultKittensConfig(), Assets: bundle, Surface: &fakeSurface{}})
	if !errors.Is(err, assets.ErrMissingSprite) {
		t.Errorf("NewEngine(missing sprite) = %v, expected ErrMissingSprite", err)
	}

	if _, err := NewEngine(Options{Config: config.DefaultKittensConfig(), Surface: &fakeSurface{}}); err == nil {
		t.Error("NewEngine(no assets) should fail")
	}
	if _, err := NewEngine(Options{Config: config.DefaultKittensConfig(), Assets: bundle}); err == nil {
		t.Error("NewEngine(no surface) should fail")
	}
}

func TestStartRunsFirstFrame(t *testing.T) {
	cfg := config.DefaultKittensConfig()
	h := seedWhere(t, cfg, func(s Snapshot) bool { return !tomatoInLane(s, s.PlayerX) })

	h.engine.Start(t0)

	if h.engine.State() != StateRunning {
		t.Fatalf("State = %v, expected running", h.engine.State())
	}
	if h.engine.Score() != 0 {
		t.Errorf("Score = %d, expected 0", h.engine.Score())
	}
	if h.sched.requests != 1 {
		t.Errorf("frame requests = %d, expected 1", h.sched.requests)
	}
	if h.cues[assets.CueSoundtrack].plays != 1 {
		t.Errorf("soundtrack plays = %d, expected 1", h.cues[assets.CueSoundtrack].plays)
	}

	// Starting twice is ignored
	h.engine.Start(at(500))
	if h.sched.requests != 1 || h.cues[assets.CueSoundtrack].plays != 1 {
		t.Error("second Start should be ignored")
	}
}

func TestFramePaintOrder(t *testing.T) {
	h := newHarness(t, config.DefaultKittensConfig(), 7)
	h.engine.Start(t0)

	calls := h.surface.sprites
	if len(calls) != 1+3+1+1 {
		t.Fatalf("sprite draws = %d, expected 6", len(calls))
	}
	if calls[0].name != assets.SpriteBackground || calls[0].x != 0 || calls[0].y != 0 {
		t.Errorf("first draw = %+v, expected background at origin", calls[0])
	}
	for _, c := range calls[1:4] {
		if c.name != assets.SpriteEnemy {
			t.Errorf("draw %+v, expected enemy", c)
		}
	}
	if calls[4].name != assets.SpriteTomato {
		t.Errorf("draw %+v, expected tomato", calls[4])
	}
	if calls[5].name != assets.SpritePlayer || calls[5].x != 150 || calls[5].y != 423 {
		t.Errorf("last draw = %+v, expected player at (150, 423)", calls[5])
	}

	score := h.surface.lastText()
	if score.x != ScoreX || score.y != ScoreY || score.color != core.ColorWhite {
		t.Errorf("score text = %+v, expected white at (%d, %d)", score, ScoreX, ScoreY)
	}
}

func TestScoreAccumulatesElapsed(t *testing.T) {
	cfg := config.DefaultKittensConfig()
	h := seedWhere(t, cfg, func(s Snapshot) bool { return !tomatoInLane(s, s.PlayerX) })

	h.engine.Start(t0)
	h.engine.Frame(at(10))
	h.engine.Frame(at(25))

	if h.engine.Score() != 25 {
		t.Errorf("Score = %d, expected 25", h.engine.Score())
	}
	if h.surface.lastText().text != "25" {
		t.Errorf("score text = %q, expected \"25\"", h.surface.lastText().text)
	}
	// One request per frame
	if h.sched.requests != 3 {
		t.Errorf("frame requests = %d, expected 3", h.sched.requests)
	}

	for _, en := range h.engine.Snapshot().Enemies {
		if want := -156 + 25*en.Speed; !closeTo(en.Y, want) {
			t.Errorf("enemy y = %f, expected %f", en.Y, want)
		}
	}
}

func TestScoreTracksWallClockAtFrameRate(t *testing.T) {
	cfg := config.DefaultKittensConfig()
	cfg.Tomatoes.Max = 0
	h := newHarness(t, cfg, 1)

	// 60 fps frames fall between millisecond boundaries
	interval := time.Second / 60
	h.engine.Start(t0)
	last := t0
	for i := 1; i <= 30; i++ {
		last = t0.Add(time.Duration(i) * interval)
		h.engine.Frame(last)
	}

	if h.engine.State() != StateRunning {
		t.Fatalf("State = %v, expected running", h.engine.State())
	}
	want := last.UnixMilli() - t0.UnixMilli()
	if h.engine.Score() != want {
		t.Errorf("Score = %d, expected %d (wall clock ms)", h.engine.Score(), want)
	}
	for _, en := range h.engine.Snapshot().Enemies {
		if y := -156 + float64(want)*en.Speed; !closeTo(en.Y, y) {
			t.Errorf("enemy y = %f, expected %f", en.Y, y)
		}
	}
}

func TestBackwardsClockScoresNothing(t *testing.T) {
	cfg := config.DefaultKittensConfig()
	h := seedWhere(t, cfg, func(s Snapshot) bool { return !tomatoInLane(s, s.PlayerX) })

	h.engine.Start(at(1000))
	h.engine.Frame(at(900))

	if h.engine.Score() != 0 {
		t.Errorf("Score = %d, expected 0", h.engine.Score())
	}
}

func TestOffscreenEnemiesAreReplaced(t *testing.T) {
	cfg := config.DefaultKittensConfig()
	h := seedWhere(t, cfg, func(s Snapshot) bool { return !tomatoInLane(s, s.PlayerX) })

	h.engine.Start(t0)
	// Slowest enemy covers 750px in 3s: every enemy leaves the field at once
	h.engine.Frame(at(3000))

	s := h.engine.Snapshot()
	if s.State != StateRunning {
		t.Fatalf("State = %v, expected running", s.State)
	}
	if len(s.Enemies) != 3 {
		t.Fatalf("enemies = %d, expected 3", len(s.Enemies))
	}
	for _, en := range s.Enemies {
		if en.Y != -156 {
			t.Errorf("enemy y = %f, expected fresh spawn at -156", en.Y)
		}
	}
}

func TestTomatoPickup(t *testing.T) {
	cfg := config.DefaultKittensConfig()
	h := seedWhere(t, cfg, func(s Snapshot) bool { return !tomatoInLane(s, s.PlayerX) })

	h.engine.Start(t0)
	tomatoX := h.engine.Snapshot().Tomatoes[0].X
	for h.engine.Player().x < tomatoX {
		h.engine.Move(MoveRight)
	}
	for h.engine.Player().x > tomatoX {
		h.engine.Move(MoveLeft)
	}

	h.engine.Frame(at(16))

	if h.engine.Score() != 16+1000 {
		t.Errorf("Score = %d, expected 1016", h.engine.Score())
	}
	if plays := h.cues[assets.CuePoints].plays; plays != 1 {
		t.Errorf("points plays = %d, expected 1", plays)
	}
	if n := len(h.engine.Snapshot().Tomatoes); n != 1 {
		t.Errorf("tomatoes after pickup = %d, expected 1", n)
	}
	// Pickup does not schedule an extra frame
	if h.sched.requests != 2 {
		t.Errorf("frame requests = %d, expected 2", h.sched.requests)
	}
}

func TestDeathStopsScheduling(t *testing.T) {
	h := newHarness(t, config.DefaultKittensConfig(), 99)
	h.engine.Start(t0)

	// Walk into the lane of the first enemy
	enemyX := h.engine.Snapshot().Enemies[0].X
	for h.engine.Player().x < enemyX {
		h.engine.Move(MoveRight)
	}
	for h.engine.Player().x > enemyX {
		h.engine.Move(MoveLeft)
	}

	var ms int64
	for h.engine.State() == StateRunning && ms < 10000 {
		ms += 16
		h.engine.Frame(at(ms))
	}

	if h.engine.State() != StateGameOver {
		t.Fatalf("State = %v after %dms, expected game over", h.engine.State(), ms)
	}
	if !h.engine.IsPlayerDead() {
		t.Error("IsPlayerDead() = false after game over")
	}

	requests := h.sched.requests
	frames := int(ms/16) + 1
	if requests != frames-1 {
		t.Errorf("frame requests = %d, expected %d (none on the fatal frame)", requests, frames-1)
	}

	msg := h.surface.lastText()
	if want := strconv.FormatInt(h.engine.Score(), 10) + " SHE CAN HAZ VEGBURGER"; msg.text != want {
		t.Errorf("game over text = %q, expected %q", msg.text, want)
	}
	if msg.x != GameOverX || msg.y != GameOverY || msg.color != core.ColorPurple {
		t.Errorf("game over text at (%v, %v) color %v, expected purple at (%d, %d)",
			msg.x, msg.y, msg.color, GameOverX, GameOverY)
	}
	if h.cues[assets.CueSoundtrack].pauses != 1 || h.cues[assets.CueDeath].plays != 1 {
		t.Error("death should pause the soundtrack and play the death cue once")
	}

	// Game over is terminal
	score := h.engine.Score()
	draws := len(h.surface.sprites)
	h.engine.Frame(at(ms + 1000))
	h.engine.Move(MoveLeft)
	if h.engine.Score() != score || len(h.surface.sprites) != draws || h.sched.requests != requests {
		t.Error("Frame after game over should do nothing")
	}
}

func TestDeathCondition(t *testing.T) {
	cfg := config.DefaultKittensConfig()
	h := newHarness(t, cfg, 3)
	e := h.engine

	// Rebuild the enemy lanes by hand
	e.enemies = newLaneSlots[Enemy](cfg.EnemyLanes())
	en := NewEnemy(150, cfg.Enemies.Height, 0.5, nil)
	e.enemies.Put(2, en)

	// Boundary: y + 78 > 423 means y > 345
	en.y = 345
	if e.IsPlayerDead() {
		t.Error("enemy at y=345 should not kill")
	}
	en.y = 345.5
	if !e.IsPlayerDead() {
		t.Error("enemy at y=345.5 should kill")
	}

	e.player.Move(MoveLeft)
	if e.IsPlayerDead() {
		t.Error("enemy in another lane should not kill")
	}
}

func TestPauseResume(t *testing.T) {
	cfg := config.DefaultKittensConfig()
	h := seedWhere(t, cfg, func(s Snapshot) bool { return !tomatoInLane(s, s.PlayerX) })

	h.engine.Start(t0)
	h.engine.Frame(at(100))
	h.engine.Pause()
	if h.engine.State() != StatePaused {
		t.Fatalf("State = %v, expected paused", h.engine.State())
	}
	if h.cues[assets.CueSoundtrack].pauses != 1 {
		t.Error("Pause should pause the soundtrack")
	}

	x, _ := h.engine.Player().Position()
	h.engine.Move(MoveLeft)
	if nx, _ := h.engine.Player().Position(); nx != x {
		t.Error("Move while paused should be ignored")
	}

	requests := h.sched.requests
	h.engine.Frame(at(2000))
	if h.engine.Score() != 100 || h.sched.requests != requests {
		t.Error("Frame while paused should do nothing")
	}

	h.engine.Resume(at(5000))
	if h.engine.Score() != 100 {
		t.Errorf("Score after resume = %d, expected 100", h.engine.Score())
	}
	h.engine.Frame(at(5016))
	if h.engine.Score() != 116 {
		t.Errorf("Score = %d, expected 116", h.engine.Score())
	}
	if h.sched.requests != requests+2 {
		t.Errorf("frame requests = %d, expected %d", h.sched.requests, requests+2)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		h := newHarness(t, config.DefaultKittensConfig(), 12345)
		h.engine.Start(t0)
		for i := int64(1); i <= 300; i++ {
			if i%40 == 0 {
				h.engine.Move(MoveLeft)
			}
			if i%55 == 0 {
				h.engine.Move(MoveRight)
			}
			h.engine.Frame(at(i * 16))
		}
		return h.engine.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed produced different sessions:\n%+v\n%+v", s1, s2)
	}
}

func TestLaneSelectionIsUniform(t *testing.T) {
	counts := make([]int, 5)
	const engines = 1000
	for seed := int64(1); seed <= engines; seed++ {
		h := newHarness(t, config.DefaultKittensConfig(), seed)
		for _, en := range h.engine.Snapshot().Enemies {
			counts[en.Lane]++
		}
	}

	// 3000 placements over 5 lanes: 600 expected per lane
	for lane, n := range counts {
		if n < 450 || n > 750 {
			t.Errorf("lane %d chosen %d times, expected about 600", lane, n)
		}
	}
}

func TestSessionInvariants(t *testing.T) {
	cfg := config.DefaultKittensConfig()

	rapid.Check(t, func(t *rapid.T) {
		h := newHarness(t, cfg, rapid.Int64Range(1, 1<<40).Draw(t, "seed"))
		h.engine.Start(t0)

		now := int64(0)
		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps && h.engine.State() == StateRunning; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "key") {
			case 1:
				h.engine.Move(MoveLeft)
			case 2:
				h.engine.Move(MoveRight)
			}

			before := h.engine.Score()
			elapsed := rapid.Int64Range(0, 120).Draw(t, "elapsed")
			now += elapsed
			h.engine.Frame(at(now))

			s := h.engine.Snapshot()
			if s.Score < before+elapsed {
				t.Fatalf("score went from %d to %d over %dms", before, s.Score, elapsed)
			}
			if len(s.Enemies) != cfg.Enemies.Max {
				t.Fatalf("enemies = %d, expected %d", len(s.Enemies), cfg.Enemies.Max)
			}
			if len(s.Tomatoes) != cfg.Tomatoes.Max {
				t.Fatalf("tomatoes = %d, expected %d", len(s.Tomatoes), cfg.Tomatoes.Max)
			}
			for _, en := range s.Enemies {
				if en.X != en.Lane*cfg.Enemies.Width || en.Y > float64(cfg.Playfield.Height) {
					t.Fatalf("enemy %+v out of place", en)
				}
			}
			for _, tm := range s.Tomatoes {
				if tm.X != tm.Lane*cfg.Tomatoes.Width {
					t.Fatalf("tomato %+v out of place", tm)
				}
			}
			if s.PlayerX < 0 || s.PlayerX > cfg.Playfield.Width-cfg.Player.Width {
				t.Fatalf("player x = %d off field", s.PlayerX)
			}
		}
	})
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		StateReady:    "ready",
		StateRunning:  "running",
		StatePaused:   "paused",
		StateGameOver: "game_over",
		State(42):     "unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, expected %q", state, got, want)
		}
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
