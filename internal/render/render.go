// Package render draws the room board in a terminal using lipgloss.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkordes/hostel-desk/internal/board"
)

// TileWidth is the inner width of one tile in terminal cells.
const TileWidth = 18

var (
	tileStyle = lipgloss.NewStyle().
			Width(TileWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	bandStyles = map[board.Band]lipgloss.Style{
		board.BandNormal:  tileStyle.Background(lipgloss.Color("21")).Foreground(lipgloss.Color("15")),
		board.BandWarning: tileStyle.Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
		board.BandOverdue: tileStyle.Background(lipgloss.Color("196")).Foreground(lipgloss.Color("15")),
	}

	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Lines returns the text of a tile: the room title, a blank line, then either
// "Vazio" or one line per occupant followed by the departure when known.
func Lines(t board.Tile) []string {
	lines := []string{fmt.Sprintf("Quarto %d", t.Number), ""}
	if !t.Occupied() {
		return append(lines, "Vazio")
	}
	lines = append(lines, t.Occupants...)
	if label := t.DepartureLabel(); label != "" {
		lines = append(lines, "", "Desocupa em "+label)
	}
	return lines
}

// Tile renders one tile in its band colors. Empty rooms are uncolored.
func Tile(t board.Tile) string {
	style, ok := bandStyles[t.Band]
	if !ok {
		style = tileStyle
	}

	lines := Lines(t)
	lines[0] = titleStyle.Render(lines[0])
	return style.Render(strings.Join(lines, "\n"))
}

// Board renders a view as a grid of tiles followed by a status line.
func Board(v board.View) string {
	rows := make([]string, 0, len(v.Rows)+1)
	for _, row := range v.Rows {
		cells := make([]string, 0, len(row))
		for _, t := range row {
			cells = append(cells, Tile(t))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	status := fmt.Sprintf("%d de %d quartos", len(v.Tiles), v.Matched)
	if v.Term != "" {
		status += fmt.Sprintf(" (busca: %q)", v.Term)
	}
	rows = append(rows, statusStyle.Render(status))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
