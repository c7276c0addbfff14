package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/platkit/internal/sim"
)

// Vertical extent of the world shown by the sandbox, in world units. Scenes
// place their floors around y=480, so this frames them with headroom.
const worldViewH = 560

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:      lipgloss.NewStyle(),
	ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

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
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawScene projects the world rectangles and the actor into the screen
// buffer. The world's horizontal span is scaled onto the full screen width
// and worldViewH units onto the given number of rows.
func drawScene(s *Screen, world []sim.Rect, st sim.State, worldW float32, rows int) {
	if s.Width() <= 0 || rows <= 0 {
		return
	}
	sx := worldW / float32(s.Width())
	sy := float32(worldViewH) / float32(rows)

	for _, p := range world {
		drawWorldRect(s, p, sx, sy, rows, '▒', ColorGray)
	}
	actorColor := ColorBrightYellow
	if st.Grounded {
		actorColor = ColorBrightGreen
	}
	drawWorldRect(s, st.Bounds(), sx, sy, rows, '█', actorColor)
}

// drawWorldRect rasterizes one world-space rectangle, always covering at
// least one cell so thin platforms stay visible.
func drawWorldRect(s *Screen, r sim.Rect, sx, sy float32, rows int, fill rune, c Color) {
	x0 := int(r.X / sx)
	x1 := int((r.X + r.W) / sx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y0 := int(r.Y / sy)
	y1 := int((r.Y + r.H) / sy)
	if y1 <= y0 {
		y1 = y0 + 1
	}
	if y1 > rows {
		y1 = rows
	}
	s.FillRect(x0, y0, x1-x0, y1-y0, fill, c)
}
