package kittens

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
	"github.com/vovakirdan/tui-kittens/internal/core"
)

// Text drawn by the engine, in logical pixels.
const (
	ScoreX    = 5
	ScoreY    = 30
	GameOverX = 5
	GameOverY = 200

	GameOverSuffix = " SHE CAN HAZ VEGBURGER"
)

// State is the session state.
type State int

const (
	StateReady    State = iota // Constructed, Start not called yet
	StateRunning               // Frames are being scheduled
	StatePaused                // Clock frozen until Resume
	StateGameOver              // Terminal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Scheduler asks the host to call Frame again soon.
type Scheduler interface {
	RequestFrame()
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func()

// RequestFrame implements Scheduler.
func (f SchedulerFunc) RequestFrame() { f() }

// Options configures a new Engine.
type Options struct {
	Config    config.KittensConfig
	Assets    *assets.Bundle
	Surface   Surface
	Scheduler Scheduler // nil never reschedules
	Seed      int64     // 0 picks a time-based seed
}

// Engine owns one game session. It is not safe for concurrent use;
// the host must serialize Frame and Move calls.
type Engine struct {
	cfg     config.KittensConfig
	surface Surface
	sched   Scheduler
	rng     *rand.Rand
	seed    int64

	background   *assets.Sprite
	enemySprite  *assets.Sprite
	tomatoSprite *assets.Sprite

	soundtrack assets.Cue
	deathCue   assets.Cue
	pointsCue  assets.Cue

	player   *Player
	enemies  laneSlots[Enemy]
	tomatoes laneSlots[Tomato]

	score     int64
	lastFrame time.Time
	state     State
}

// NewEngine validates the configuration, resolves assets and places the
// player and the initial enemies and tomatoes.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("kittens: %w", err)
	}
	if opts.Assets == nil {
		return nil, errors.New("kittens: no asset bundle")
	}
	if opts.Surface == nil {
		return nil, errors.New("kittens: no surface")
	}

	sprites := make(map[string]*assets.Sprite, len(assets.RequiredSprites))
	for _, name := range assets.RequiredSprites {
		sp, err := opts.Assets.Sprite(name)
		if err != nil {
			return nil, fmt.Errorf("kittens: %w", err)
		}
		sprites[name] = sp
	}

	sched := opts.Scheduler
	if sched == nil {
		sched = SchedulerFunc(func() {})
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:          opts.Config,
		surface:      opts.Surface,
		sched:        sched,
		rng:          rand.New(rand.NewSource(seed)),
		seed:         seed,
		background:   sprites[assets.SpriteBackground],
		enemySprite:  sprites[assets.SpriteEnemy],
		tomatoSprite: sprites[assets.SpriteTomato],
		soundtrack:   opts.Assets.Cue(assets.CueSoundtrack),
		deathCue:     opts.Assets.Cue(assets.CueDeath),
		pointsCue:    opts.Assets.Cue(assets.CuePoints),
		enemies:      newLaneSlots[Enemy](opts.Config.EnemyLanes()),
		tomatoes:     newLaneSlots[Tomato](opts.Config.TomatoLanes()),
	}
	e.player = NewPlayer(e.cfg, sprites[assets.SpritePlayer])

	e.setupEnemies()
	e.setupTomatoes()
	return e, nil
}

// Seed returns the RNG seed in use.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Score returns the current score.
func (e *Engine) Score() int64 {
	return e.score
}

// State returns the session state.
func (e *Engine) State() State {
	return e.state
}

// Player returns the player entity.
func (e *Engine) Player() *Player {
	return e.player
}

// Start resets the score, starts the soundtrack and runs the first frame.
func (e *Engine) Start(now time.Time) {
	if e.state != StateReady {
		return
	}
	e.score = 0
	e.lastFrame = now
	e.state = StateRunning
	e.soundtrack.Play()
	e.Frame(now)
}

// Move forwards a lane change to the player. Ignored while paused and once
// the game is over.
func (e *Engine) Move(dir Direction) {
	if e.state == StateGameOver || e.state == StatePaused {
		return
	}
	e.player.Move(dir)
}

// Pause freezes the session. Frames are ignored until Resume.
func (e *Engine) Pause() {
	if e.state != StateRunning {
		return
	}
	e.state = StatePaused
	e.soundtrack.Pause()
}

// Resume restarts the clock at now so the paused interval is not scored,
// then runs a frame.
func (e *Engine) Resume(now time.Time) {
	if e.state != StatePaused {
		return
	}
	e.state = StateRunning
	e.lastFrame = now
	e.soundtrack.Play()
	e.Frame(now)
}

// Frame advances the simulation to now, repaints and either requests the
// next frame or ends the game. It does nothing unless the game is running.
func (e *Engine) Frame(now time.Time) {
	if e.state != StateRunning {
		return
	}

	// Whole milliseconds on both timestamps, so sub-millisecond remainders
	// carry over to the next frame instead of being lost
	elapsed := now.UnixMilli() - e.lastFrame.UnixMilli()
	if elapsed < 0 {
		elapsed = 0
	}

	e.score += elapsed

	e.enemies.Each(func(_ int, en *Enemy) {
		en.Update(float64(elapsed))
	})

	e.paint()

	// Enemies that fell past the bottom free their lane
	e.enemies.Each(func(lane int, en *Enemy) {
		if en.y > float64(e.cfg.Playfield.Height) {
			e.enemies.Remove(lane)
		}
	})
	e.setupEnemies()

	e.tomatoes.Each(func(lane int, t *Tomato) {
		if t.x == e.player.x {
			e.tomatoes.Remove(lane)
			e.lastFrame = now
			e.score += int64(e.cfg.Tomatoes.Bonus)
			e.pointsCue.Play()
		}
	})
	e.setupTomatoes()

	if e.IsPlayerDead() {
		e.surface.DrawText(GameOverX, GameOverY, strconv.FormatInt(e.score, 10)+GameOverSuffix, core.ColorPurple)
		e.soundtrack.Pause()
		e.deathCue.Play()
		e.state = StateGameOver
		return
	}

	e.surface.DrawText(ScoreX, ScoreY, strconv.FormatInt(e.score, 10), core.ColorWhite)
	e.lastFrame = now
	e.sched.RequestFrame()
}

// paint draws background, enemies, tomatoes and player in that order.
func (e *Engine) paint() {
	e.surface.DrawSprite(e.background, 0, 0)
	e.enemies.Each(func(_ int, en *Enemy) { en.Render(e.surface) })
	e.tomatoes.Each(func(_ int, t *Tomato) { t.Render(e.surface) })
	e.player.Render(e.surface)
}

// IsPlayerDead reports whether an enemy in the player's lane has come more
// than halfway down onto the player.
func (e *Engine) IsPlayerDead() bool {
	dead := false
	half := float64(e.cfg.Enemies.Height) / 2
	e.enemies.Each(func(_ int, en *Enemy) {
		if en.x == e.player.x && en.y+half > e.player.y {
			dead = true
		}
	})
	return dead
}

// setupEnemies tops the enemy lanes back up to the configured maximum.
func (e *Engine) setupEnemies() {
	for e.enemies.Len() < e.cfg.Enemies.Max {
		e.addEnemy()
	}
}

// addEnemy puts a new enemy in a random free lane.
func (e *Engine) addEnemy() {
	lane := e.freeLane(e.enemies.Occupied, e.enemies.Lanes())
	en := e.cfg.Enemies
	speed := en.MinSpeed + e.rng.Float64()*(en.MaxSpeed-en.MinSpeed)
	e.enemies.Put(lane, NewEnemy(lane*en.Width, en.Height, speed, e.enemySprite))
}

// setupTomatoes tops the tomato lanes back up to the configured maximum.
func (e *Engine) setupTomatoes() {
	for e.tomatoes.Len() < e.cfg.Tomatoes.Max {
		e.addTomato()
	}
}

// addTomato puts a new tomato in a random free lane.
func (e *Engine) addTomato() {
	lane := e.freeLane(e.tomatoes.Occupied, e.tomatoes.Lanes())
	t := e.cfg.Tomatoes
	y := float64(e.cfg.Playfield.Height - t.Height - t.Margin)
	e.tomatoes.Put(lane, NewTomato(lane*t.Width, y, e.tomatoSprite))
}

// freeLane samples lanes uniformly until an unoccupied one comes up.
// Callers only ask while a lane is free, which Validate guarantees.
func (e *Engine) freeLane(occupied func(int) bool, lanes int) int {
	for {
		lane := e.rng.Intn(lanes)
		if !occupied(lane) {
			return lane
		}
	}
}
