package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hostel-desk/internal/board"
	"github.com/pkordes/hostel-desk/internal/domain"
)

// defaultWidth is the surface width assumed when ?width= is absent: the
// desktop board's usual window, seven tiles wide.
const defaultWidth = 7 * (board.ButtonWidth + board.ButtonGap)

// ListRooms handles GET /rooms.
// Supports ?q= (room number or guest name), ?width= (pixels, drives the column
// count) and ?page= / ?limit= (default: every room on one page).
func (s *Server) ListRooms(w http.ResponseWriter, r *http.Request) {
	var (
		q     *string
		width *int
		page  *int
		limit *int
	)
	query := r.URL.Query()
	for _, p := range []struct {
		name string
		dest any
	}{
		{"q", &q},
		{"width", &width},
		{"page", &page},
		{"limit", &limit},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, query, p.dest); err != nil {
			invalidRequest(w, "invalid query parameter "+p.name)
			return
		}
	}

	b, err := s.board.LoadAll(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	term := ""
	if q != nil {
		term = *q
	}
	px := defaultWidth
	if width != nil {
		px = *width
	}
	params := domain.NewPaginationParams(page, limit)
	view := b.View(term, px, params)

	rows := make([][]int, len(view.Rows))
	for i, row := range view.Rows {
		rows[i] = make([]int, len(row))
		for j, t := range row {
			rows[i][j] = t.Number
		}
	}

	writeJSON(w, http.StatusOK, RoomList{
		Today:   openapi_types.Date{Time: b.Today},
		Columns: view.Columns,
		Data:    tilesToResponse(view.Tiles),
		Rows:    rows,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: view.Matched,
		},
	})
}

// GetRoom handles GET /rooms/{number}.
func (s *Server) GetRoom(w http.ResponseWriter, r *http.Request) {
	var number int
	err := runtime.BindStyledParameterWithOptions("simple", "number", chi.URLParam(r, "number"), &number,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		invalidRequest(w, "room number must be an integer")
		return
	}

	detail, err := s.board.Room(r.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "room not found")
			return
		}
		s.serviceError(w, r, err)
		return
	}

	tile := board.Tile{
		RoomState: detail.State,
		Band:      s.board.Classifier().Classify(detail.State),
	}
	stays := make([]Stay, len(detail.Stays))
	for i, st := range detail.Stays {
		stays[i] = stayToResponse(st)
	}

	writeJSON(w, http.StatusOK, RoomDetail{Room: tileToResponse(tile), Stays: stays})
}
