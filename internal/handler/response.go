package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hostel-desk/internal/board"
	"github.com/pkordes/hostel-desk/internal/domain"
)

// Room is one board tile in API responses.
type Room struct {
	Number           int                 `json:"number"`
	Occupants        []string            `json:"occupants"`
	NearestDeparture *openapi_types.Date `json:"nearest_departure,omitempty"`
	DepartureLabel   string              `json:"departure_label,omitempty"`
	Band             board.Band          `json:"band"`
}

// Pagination describes the page of rooms returned.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// RoomList is the body of GET /rooms.
type RoomList struct {
	Today      openapi_types.Date `json:"today"`
	Columns    int                `json:"columns"`
	Data       []Room             `json:"data"`
	Rows       [][]int            `json:"rows"`
	Pagination Pagination         `json:"pagination"`
}

// Stay is one active stay in a room detail.
type Stay struct {
	ID       int64               `json:"id"`
	Guest    string              `json:"guest"`
	Document string              `json:"document,omitempty"`
	Bed      string              `json:"bed"`
	CheckIn  *openapi_types.Date `json:"check_in,omitempty"`
	CheckOut *openapi_types.Date `json:"check_out,omitempty"`
}

// RoomDetail is the body of GET /rooms/{number}.
type RoomDetail struct {
	Room
	Stays []Stay `json:"stays"`
}

// ContractRequest is the optional body of POST /stays/{id}/contract.
type ContractRequest struct {
	Placeholders []domain.Placeholder `json:"placeholders"`
}

// tileToResponse converts a board tile into the API type.
func tileToResponse(t board.Tile) Room {
	occupants := t.Occupants
	if occupants == nil {
		occupants = []string{}
	}
	return Room{
		Number:           t.Number,
		Occupants:        occupants,
		NearestDeparture: toDate(t.NearestDeparture),
		DepartureLabel:   t.DepartureLabel(),
		Band:             t.Band,
	}
}

// tilesToResponse converts tiles in order.
func tilesToResponse(tiles []board.Tile) []Room {
	out := make([]Room, len(tiles))
	for i, t := range tiles {
		out[i] = tileToResponse(t)
	}
	return out
}

// stayToResponse converts a domain.StayDetail into the API type.
func stayToResponse(s domain.StayDetail) Stay {
	return Stay{
		ID:       s.ID,
		Guest:    s.GuestName,
		Document: s.GuestDocument,
		Bed:      s.BedLabel,
		CheckIn:  toDate(s.CheckIn),
		CheckOut: toDate(s.Departure),
	}
}

// toDate converts an optional time into an optional openapi Date.
func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}
