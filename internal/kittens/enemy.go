package kittens

import (
	"github.com/vovakirdan/tui-kittens/internal/assets"
)

// Enemy falls straight down its lane at a fixed speed.
type Enemy struct {
	entity
	speed float64 // pixels per millisecond
}

// NewEnemy places an enemy just above the top edge of its lane.
func NewEnemy(laneX, height int, speed float64, sprite *assets.Sprite) *Enemy {
	return &Enemy{
		entity: entity{x: laneX, y: -float64(height), sprite: sprite},
		speed:  speed,
	}
}

// Speed returns the fall speed in pixels per millisecond.
func (e *Enemy) Speed() float64 {
	return e.speed
}

// Update advances the enemy by elapsedMs milliseconds. No bounds checks.
func (e *Enemy) Update(elapsedMs float64) {
	e.y += elapsedMs * e.speed
}

// Tomato is a static bonus item resting near the bottom of its lane.
type Tomato struct {
	entity
}

// NewTomato places a tomato in a lane at the given height.
func NewTomato(laneX int, y float64, sprite *assets.Sprite) *Tomato {
	return &Tomato{entity: entity{x: laneX, y: y, sprite: sprite}}
}
