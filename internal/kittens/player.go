package kittens

import (
	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
)

// Direction is a lateral move request.
type Direction int

const (
	MoveLeft Direction = iota
	MoveRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the kitten. It only ever changes lanes.
type Player struct {
	entity
	step int // lane width
	maxX int // rightmost allowed x
}

// NewPlayer places the player in its starting lane, resting above the bottom margin.
func NewPlayer(cfg config.KittensConfig, sprite *assets.Sprite) *Player {
	p := cfg.Player
	return &Player{
		entity: entity{
			x:      p.StartLane * p.Width,
			y:      float64(cfg.Playfield.Height - p.Height - p.Margin),
			sprite: sprite,
		},
		step: p.Width,
		maxX: cfg.Playfield.Width - p.Width,
	}
}

// Move shifts the player one lane. Moves past either edge are ignored.
func (p *Player) Move(dir Direction) {
	switch dir {
	case MoveLeft:
		if p.x-p.step >= 0 {
			p.x -= p.step
		}
	case MoveRight:
		if p.x+p.step <= p.maxX {
			p.x += p.step
		}
	}
}
