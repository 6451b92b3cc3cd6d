package board

import (
	"fmt"
	"time"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// Project builds the display state of one room from its active stays.
// Stays keep their order. Empty departure strings contribute no date; a
// malformed one is an error, because a silently dropped date would paint an
// overdue room as normal.
func Project(number int, stays []domain.Stay) (domain.RoomState, error) {
	state := domain.RoomState{
		Number:    number,
		Occupants: make([]string, 0, len(stays)),
	}

	for _, s := range stays {
		state.Occupants = append(state.Occupants, s.GuestName)

		if s.Departure == "" {
			continue
		}
		dep, err := time.Parse(domain.DateLayout, s.Departure)
		if err != nil {
			return domain.RoomState{}, fmt.Errorf("board.Project: room %d: departure %q: %w", number, s.Departure, err)
		}
		if state.NearestDeparture == nil || dep.Before(*state.NearestDeparture) {
			state.NearestDeparture = &dep
		}
	}

	return state, nil
}

// FormatDate renders t in the display format (dd/MM/yyyy).
// A nil date renders as the empty string.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DisplayDateLayout)
}
