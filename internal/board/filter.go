package board

import (
	"strconv"
	"strings"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// Filter returns the rooms whose number or any occupant name contains term,
// ignoring case. A blank term matches every room. The result keeps the order
// of rooms and shares no backing array with it.
func Filter(rooms []domain.RoomState, term string) []domain.RoomState {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.RoomState, 0, len(rooms))
	for _, r := range rooms {
		if needle == "" || matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.RoomState, needle string) bool {
	if strings.Contains(strconv.Itoa(r.Number), needle) {
		return true
	}
	for _, name := range r.Occupants {
		if strings.Contains(strings.ToLower(name), needle) {
			return true
		}
	}
	return false
}
