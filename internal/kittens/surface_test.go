package kittens

import (
	"testing"

	"github.com/vovakirdan/tui-kittens/internal/assets"
	"github.com/vovakirdan/tui-kittens/internal/config"
	"github.com/vovakirdan/tui-kittens/internal/core"
)

func TestProjectLanes(t *testing.T) {
	s := NewScreenSurface(config.DefaultKittensConfig())

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{75, 0, 9, 0},
		{300, 0, 36, 0},
		{150, 423, 18, 16},
		{0, 412, 0, 16},
		{5, 200, 0, 8},
		{0, -156, 0, -7},
	}

	for _, tc := range tests {
		col, row := s.Project(tc.x, tc.y)
		if col != tc.col || row != tc.row {
			t.Errorf("Project(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
		}
	}
}

func TestDrawSpriteTransparency(t *testing.T) {
	sprites, err := assets.ParseSprites([]byte(`
bg:
  opaque: true
  tile: true
  colors: [blue]
  rows: ['.']
cat:
  colors: [white]
  rows: ['a b']
`))
	if err != nil {
		t.Fatal(err)
	}

	s := NewScreenSurface(config.DefaultKittensConfig())
	s.DrawSprite(sprites["bg"], 0, 0)

	canvas := s.Canvas()
	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			if canvas.GetCell(x, y).Rune != '.' {
				t.Fatalf("tile missed cell (%d, %d)", x, y)
			}
		}
	}

	s.DrawSprite(sprites["cat"], 75, 0)
	if got := canvas.Row(0)[9:12]; got != "a.b" {
		t.Errorf("row 0 = %q, expected transparent gap \"a.b\"", got)
	}
	if c := canvas.GetCell(9, 0); c.Color != core.ColorWhite {
		t.Errorf("sprite color = %v, expected white", c.Color)
	}
	if c := canvas.GetCell(10, 0); c.Color != core.ColorBlue {
		t.Errorf("background under gap = %v, expected blue", c.Color)
	}
}

func TestDrawSpriteClipsAboveField(t *testing.T) {
	b, err := assets.Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	enemy, _ := b.Sprite(assets.SpriteEnemy)

	s := NewScreenSurface(config.DefaultKittensConfig())
	s.DrawSprite(enemy, 0, -156)

	if s.Canvas().String() != core.NewScreen(45, 20).String() {
		t.Error("enemy above the field should not be visible")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreenSurface(config.DefaultKittensConfig())
	s.DrawText(ScoreX, ScoreY, "1234", core.ColorWhite)

	if got := s.Canvas().Row(1)[:4]; got != "1234" {
		t.Errorf("row 1 = %q, expected score at column 0", got)
	}
}

func TestEngineOnScreenSurface(t *testing.T) {
	b, err := assets.Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	s := NewScreenSurface(config.DefaultKittensConfig())
	e, err := NewEngine(Options{Config: config.DefaultKittensConfig(), Assets: b, Surface: s, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	e.Start(t0)

	// Player art starts at row 16; lane 2 spans columns 18-26
	if got := s.Canvas().Row(17)[19:26]; got != "( o.o )" {
		t.Errorf("player row = %q, expected \"( o.o )\"", got)
	}
}
