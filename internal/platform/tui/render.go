package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// tileStyle returns a bold style in the given ANSI 256 color.
func tileStyle(code string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(code))
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
	core.ColorHighlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")),

	core.ColorTile2:     lipgloss.NewStyle().Foreground(lipgloss.Color("254")),
	core.ColorTile4:     lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorTile8:     tileStyle("215"),
	core.ColorTile16:    tileStyle("209"),
	core.ColorTile32:    tileStyle("203"),
	core.ColorTile64:    tileStyle("196"),
	core.ColorTile128:   tileStyle("228"),
	core.ColorTile256:   tileStyle("227"),
	core.ColorTile512:   tileStyle("226"),
	core.ColorTile1024:  tileStyle("220"),
	core.ColorTile2048:  tileStyle("214"),
	core.ColorTileSuper: tileStyle("201"),
}

// helpStyle renders the help bar below the game.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
