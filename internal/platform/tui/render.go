package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-kittens/internal/core"
	"github.com/vovakirdan/tui-kittens/internal/kittens"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPurple:        lipgloss.NewStyle().Foreground(lipgloss.Color("#9602f2")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// fieldRect returns where the bordered playfield goes on a screen of the given
// size, and whether it fits. The border takes one cell on each side and the
// status line one row below.
func fieldRect(screenW, screenH, cols, rows int) (core.Rect, bool) {
	w, h := cols+2, rows+2
	if screenW < w || screenH < h+1 {
		return core.Rect{}, false
	}
	return core.NewRect((screenW-w)/2, (screenH-h-1)/2, w, h), true
}

// blit copies src onto dst with its top-left corner at (x, y).
func blit(dst, src *core.Screen, x, y int) {
	for sy := 0; sy < src.Height(); sy++ {
		for sx := 0; sx < src.Width(); sx++ {
			dst.SetCell(x+sx, y+sy, src.GetCell(sx, sy))
		}
	}
}

// compose draws the bordered playfield and status line onto the terminal screen.
func (m GameModel) compose() {
	m.screen.Clear()
	canvas := m.surface.Canvas()

	box, ok := fieldRect(m.screen.Width(), m.screen.Height(), canvas.Width(), canvas.Height())
	if !ok {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", canvas.Width()+2, canvas.Height()+3)
		m.screen.DrawTextCentered(m.screen.Height()/2, msg)
		return
	}

	m.screen.DrawBox(box, core.ColorGray)
	blit(m.screen, canvas, box.X+1, box.Y+1)

	if m.engine.State() == kittens.StatePaused {
		drawBanner(m.screen, box, "PAUSED")
	}

	status := m.statusLine()
	x := box.X + (box.W-len([]rune(status)))/2
	m.screen.DrawTextColor(core.Max(x, 0), box.Bottom(), status, core.ColorGray)
}

// drawBanner paints a boxed message over the middle of the field.
func drawBanner(s *core.Screen, field core.Rect, text string) {
	w := len([]rune(text)) + 4
	r := core.NewRect(field.X+(field.W-w)/2, field.Y+field.H/2-1, w, 3)
	s.DrawRect(r, ' ')
	s.DrawBox(r, core.ColorWhite)
	s.DrawTextColor(r.X+2, r.Y+1, text, core.ColorWhite)
}

// statusLine returns the hint shown under the playfield.
func (m GameModel) statusLine() string {
	if m.notice != "" {
		return m.notice
	}
	switch m.engine.State() {
	case kittens.StatePaused:
		return "PAUSED  p resume  b menu  q quit"
	case kittens.StateGameOver:
		return fmt.Sprintf("HI %d  r again  b menu  q quit", m.highScore)
	default:
		return fmt.Sprintf("HI %d  <- -> move  p pause", m.highScore)
	}
}
