package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/hostel-desk/internal/board"
)

func TestColumnsFor(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{-50, 1},
		{153, 1},
		{154, 1},
		{308, 2},
		{1540, 10},
		{1693, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, board.ColumnsFor(tt.width), "width %d", tt.width)
	}
}

func TestGrid(t *testing.T) {
	rows := board.Grid([]int{1, 2, 3, 4, 5}, 2)

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, rows)
}

func TestGrid_ZeroColumnsActsAsOne(t *testing.T) {
	assert.Equal(t, [][]int{{1}, {2}}, board.Grid([]int{1, 2}, 0))
}

func TestGrid_Empty(t *testing.T) {
	assert.Empty(t, board.Grid([]int{}, 3))
}

func TestGrid_RowsDoNotOverlap(t *testing.T) {
	items := []int{1, 2, 3, 4}
	rows := board.Grid(items, 2)

	_ = append(rows[0], 99)

	assert.Equal(t, []int{3, 4}, rows[1])
}
