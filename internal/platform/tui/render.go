package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grid-rover/internal/core"
	"github.com/vovakirdan/grid-rover/internal/rover"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Grid glyphs
const (
	glyphEmpty = '·'
	glyphPath  = '•'
	glyphRover = '@'
)

// DrawGrid draws the grid into a new screen with north at the top.
// Each cell is two characters wide so the grid looks square in a terminal.
// Cells listed in path are marked, and the rover is drawn last.
func DrawGrid(grid rover.Grid, pos rover.Position, path []rover.Position) *core.Screen {
	size := grid.Size()
	s := core.NewScreen(size*2+3, size+2)
	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()), core.ColorGray)

	cellX := func(x int) int { return 2 + x*2 }
	cellY := func(y int) int { return 1 + grid.Bound() - y }

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			s.SetColored(cellX(x), cellY(y), glyphEmpty, core.ColorGray)
		}
	}
	for _, p := range path {
		s.SetColored(cellX(p.X), cellY(p.Y), glyphPath, core.ColorCyan)
	}
	s.SetColored(cellX(pos.X), cellY(pos.Y), glyphRover, core.ColorYellow)
	return s
}

// PathCells expands a command batch into the cells it visits after from,
// clamped to the grid the same way the engine clamps.
func PathCells(grid rover.Grid, from rover.Position, dirs rover.Directions) []rover.Position {
	cells := make([]rover.Position, 0, len(dirs))
	pos := from
	for _, d := range dirs {
		dx, dy := d.Delta()
		pos = grid.Clamp(rover.Position{X: pos.X + dx, Y: pos.Y + dy})
		cells = append(cells, pos)
	}
	return cells
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
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
