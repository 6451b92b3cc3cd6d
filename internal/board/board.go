package board

import (
	"time"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// Board is an immutable snapshot of every room as loaded from the data source.
// Views over it (search, resize, paging) are derived without fetching again.
type Board struct {
	Rooms       []domain.RoomState
	Today       time.Time
	WarningDays int
}

// New returns a Board for the loaded rooms using the default warning window.
func New(rooms []domain.RoomState, today time.Time) Board {
	return Board{Rooms: rooms, Today: Day(today), WarningDays: DefaultWarningDays}
}

// Tile is one room as rendered on the board.
type Tile struct {
	domain.RoomState
	Band Band
}

// DepartureLabel is the nearest departure in display format, or "".
func (t Tile) DepartureLabel() string {
	return FormatDate(t.NearestDeparture)
}

// View is the filtered, paged and laid-out projection of a Board.
type View struct {
	Term    string
	Columns int
	// Matched is the number of rooms that passed the filter before paging.
	Matched int
	Tiles   []Tile
	Rows    [][]Tile
}

// Classifier returns the band classifier for this board's day and window.
func (b Board) Classifier() Classifier {
	days := b.WarningDays
	if days <= 0 {
		days = DefaultWarningDays
	}
	return Classifier{Today: b.Today, WarningDays: days}
}

// Tiles classifies every room of the board, in board order.
func (b Board) Tiles() []Tile {
	return b.tiles(b.Rooms)
}

// View filters the board by term, lays it out for a surface width pixels wide
// and cuts the page described by page.
func (b Board) View(term string, width int, page domain.PaginationParams) View {
	matched := Filter(b.Rooms, term)
	lo, hi := page.Bounds(len(matched))
	tiles := b.tiles(matched[lo:hi])
	columns := ColumnsFor(width)

	return View{
		Term:    term,
		Columns: columns,
		Matched: len(matched),
		Tiles:   tiles,
		Rows:    Grid(tiles, columns),
	}
}

func (b Board) tiles(rooms []domain.RoomState) []Tile {
	c := b.Classifier()
	out := make([]Tile, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, Tile{RoomState: r, Band: c.Classify(r)})
	}
	return out
}
