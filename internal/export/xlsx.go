package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pkordes/hostel-desk/internal/board"
)

// SheetName is the worksheet the board is written to.
const SheetName = "Quartos"

// BandColors are the fill colors of each band, matching the board colors.
// Empty rooms are left unfilled.
var BandColors = map[board.Band]string{
	board.BandNormal:  "#87CEFA",
	board.BandWarning: "#FFD700",
	board.BandOverdue: "#FF6347",
}

var columnWidths = []float64{
	10, // room
	12, // status
	50, // occupants
	20, // nearest_departure
}

// XLSX returns a workbook with one row per tile, each row filled with its
// band color, and a frozen header row.
func XLSX(tiles []board.Tile) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export.XLSX: delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: header style: %w", err)
	}

	bandStyles := make(map[board.Band]int, len(BandColors))
	for band, color := range BandColors {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, fmt.Errorf("export.XLSX: %s style: %w", band, err)
		}
		bandStyles[band] = id
	}

	if err := writeRow(f, 1, Header); err != nil {
		return nil, fmt.Errorf("export.XLSX: header: %w", err)
	}
	if err := styleRow(f, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("export.XLSX: header: %w", err)
	}

	for i, t := range tiles {
		row := i + 2
		if err := writeRow(f, row, Record(t)); err != nil {
			return nil, fmt.Errorf("export.XLSX: room %d: %w", t.Number, err)
		}
		if style, ok := bandStyles[t.Band]; ok {
			if err := styleRow(f, row, style); err != nil {
				return nil, fmt.Errorf("export.XLSX: room %d: %w", t.Number, err)
			}
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("export.XLSX: column width: %w", err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("export.XLSX: freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("export.XLSX: write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &cells)
}

func styleRow(f *excelize.File, row, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(Header), row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, first, last, style)
}
