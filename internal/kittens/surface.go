package kittens

import (
	"math"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
	"github.com/vovakirdan/tui-kittens/internal/core"
)

// Surface is the drawing target, addressed in logical pixels with the origin
// at the top-left of the playfield.
type Surface interface {
	DrawSprite(sp *assets.Sprite, x, y float64)
	DrawText(x, y float64, text string, c core.Color)
}

// ScreenSurface projects the logical playfield onto a character canvas.
// One lane maps to Columns/lanes cells; the vertical scale is Rows/Height.
type ScreenSurface struct {
	canvas  *core.Screen
	logical core.Rect
}

// NewScreenSurface creates a canvas sized by the display config.
func NewScreenSurface(cfg config.KittensConfig) *ScreenSurface {
	return &ScreenSurface{
		canvas:  core.NewScreen(cfg.Display.Columns, cfg.Display.Rows),
		logical: core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height),
	}
}

// Canvas returns the character buffer the surface draws into.
func (s *ScreenSurface) Canvas() *core.Screen {
	return s.canvas
}

// Project converts a logical point to a canvas cell.
func (s *ScreenSurface) Project(x, y float64) (col, row int) {
	col = int(math.Floor(x * float64(s.canvas.Width()) / float64(s.logical.W)))
	row = int(math.Floor(y * float64(s.canvas.Height()) / float64(s.logical.H)))
	return col, row
}

// DrawSprite implements Surface. Tiled sprites fill the whole canvas,
// anchored at (x, y).
func (s *ScreenSurface) DrawSprite(sp *assets.Sprite, x, y float64) {
	if sp == nil || sp.Height() == 0 {
		return
	}
	col0, row0 := s.Project(x, y)

	if sp.Tile {
		w, h := sp.Width(), sp.Height()
		for cy := 0; cy < s.canvas.Height(); cy++ {
			for cx := 0; cx < s.canvas.Width(); cx++ {
				if cell, ok := sp.Cell(mod(cx-col0, w), mod(cy-row0, h)); ok {
					s.canvas.SetCell(cx, cy, cell)
				}
			}
		}
		return
	}

	for ry := 0; ry < sp.Height(); ry++ {
		for rx := 0; rx < sp.Width(); rx++ {
			if cell, ok := sp.Cell(rx, ry); ok {
				s.canvas.SetCell(col0+rx, row0+ry, cell)
			}
		}
	}
}

// DrawText implements Surface.
func (s *ScreenSurface) DrawText(x, y float64, text string, c core.Color) {
	col, row := s.Project(x, y)
	s.canvas.DrawTextColor(col, row, text, c)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
