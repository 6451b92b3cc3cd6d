// Package export renders the room board as flat tables: CSV for scripts and
// XLSX for the front desk's weekly occupancy sheet.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkordes/hostel-desk/internal/board"
)

// Header is the first row of every export.
var Header = []string{"room", "status", "occupants", "nearest_departure"}

// Record flattens one tile into a row matching Header.
// Occupants are pipe-separated ("|") so each room stays on a single line.
func Record(t board.Tile) []string {
	return []string{
		strconv.Itoa(t.Number),
		string(t.Band),
		strings.Join(t.Occupants, "|"),
		t.DepartureLabel(),
	}
}

// WriteCSV writes the header and one record per tile to w.
func WriteCSV(w io.Writer, tiles []board.Tile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	for _, t := range tiles {
		if err := cw.Write(Record(t)); err != nil {
			return fmt.Errorf("export.WriteCSV: room %d: %w", t.Number, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}
