package board

// Room buttons are a fixed size; the grid only changes its column count.
const (
	ButtonWidth  = 144
	ButtonHeight = 125
	ButtonGap    = 10
)

// ColumnsFor returns how many room buttons fit side by side in width pixels.
// It is never less than one.
func ColumnsFor(width int) int {
	return max(1, width/(ButtonWidth+ButtonGap))
}

// Grid splits items into rows of at most columns entries, left to right.
// Rows are capacity-limited views of items, so appending to one never
// overwrites the next.
func Grid[T any](items []T, columns int) [][]T {
	columns = max(1, columns)

	rows := make([][]T, 0, (len(items)+columns-1)/columns)
	for lo := 0; lo < len(items); lo += columns {
		hi := min(lo+columns, len(items))
		rows = append(rows, items[lo:hi:hi])
	}
	return rows
}
