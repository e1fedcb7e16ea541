package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
)

// Styles maps core.Color roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the palette from the configured snake and food colours.
func NewStyles(cfg snake.Config) Styles {
	snakeColor := lipgloss.Color(cfg.SnakeColor)
	return Styles{
		core.ColorDefault:   lipgloss.NewStyle(),
		core.ColorSnakeHead: lipgloss.NewStyle().Foreground(snakeColor).Bold(true),
		core.ColorSnakeBody: lipgloss.NewStyle().Foreground(snakeColor),
		core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.FoodColor)),
		core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
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

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
