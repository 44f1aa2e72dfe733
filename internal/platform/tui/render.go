package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ansiColors is the palette used for colors the theme does not set.
var ansiColors = map[core.Color]string{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
}

// Renderer turns a Screen into styled terminal output.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer builds a renderer for the theme's palette.
func NewRenderer(theme config.ThemeConfig) *Renderer {
	r := &Renderer{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}}
	for c, ansi := range ansiColors {
		r.styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(ansi))
	}
	for name, value := range theme.Palette {
		if c, ok := core.ColorByName(name); ok && value != "" {
			r.styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(value))
		}
	}
	return r
}

// Style returns the style used for c.
func (r *Renderer) Style(c core.Color) lipgloss.Style {
	if style, ok := r.styles[c]; ok {
		return style
	}
	return r.styles[core.ColorDefault]
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
