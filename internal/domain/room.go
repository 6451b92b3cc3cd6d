// Package domain contains the core data types for the hostel desk.
// This package has no external dependencies and is imported by every other
// internal package (board, contract, repo, service, handler).
package domain

import "time"

// DateLayout is the textual format departure and check-in dates are stored in.
const DateLayout = "2006-01-02"

// DisplayDateLayout is the format dates are shown to staff in.
const DisplayDateLayout = "02/01/2006"

// Stay is one active lodging relation as returned by the room query:
// who is sleeping in the room and when they are due to leave.
// Departure is the raw "2006-01-02" string, empty when no date was recorded.
type Stay struct {
	GuestName string
	Departure string
}

// RoomState is the derived, read-only projection of a room used by the board.
// It is rebuilt from the data source on every load and never mutated.
type RoomState struct {
	Number int

	// Occupants are the guest names of all active stays, in query order.
	Occupants []string

	// NearestDeparture is the earliest departure among the active stays that
	// specify one. Nil when the room is empty or no stay has a date.
	NearestDeparture *time.Time
}

// Occupied reports whether at least one active stay exists for the room.
func (r RoomState) Occupied() bool {
	return len(r.Occupants) > 0
}

// StayDetail is a single stay with everything a rental contract needs.
type StayDetail struct {
	ID            int64
	GuestName     string
	GuestDocument string
	RoomNumber    int
	BedLabel      string
	CheckIn       *time.Time
	Departure     *time.Time
	Active        bool
}

// RoomDetail is the room-detail view: the board state plus the stays behind it.
type RoomDetail struct {
	State RoomState
	Stays []StayDetail
}
