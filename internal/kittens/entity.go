// Package kittens implements the lane-dodging game: a kitten at the bottom of
// the field moves between lanes to avoid falling burgers and eat tomatoes.
// The package is pure simulation; drawing goes through a Surface and the
// next frame is requested through a Scheduler supplied by the host.
package kittens

import (
	"github.com/vovakirdan/tui-kittens/internal/assets"
)

// Renderable is anything the engine paints each frame.
type Renderable interface {
	Position() (x int, y float64)
	Sprite() *assets.Sprite
	Render(s Surface)
}

// entity holds the state shared by every variant.
// x is always lane-aligned; y is in logical pixels, top-left origin.
type entity struct {
	x      int
	y      float64
	sprite *assets.Sprite
}

// Position returns the top-left corner in logical pixels.
func (e *entity) Position() (int, float64) {
	return e.x, e.y
}

// Sprite returns the image drawn for this entity.
func (e *entity) Sprite() *assets.Sprite {
	return e.sprite
}

// Render draws the sprite at the entity position and nothing else.
func (e *entity) Render(s Surface) {
	s.DrawSprite(e.sprite, float64(e.x), e.y)
}
