// Package board derives the room status board from raw room and stay data.
// Everything here is pure: functions take the loaded rooms and an explicit
// "today" and return new values, never touching the input slices.
package board

import (
	"time"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// Band is the urgency class a room is colored with.
type Band string

const (
	// BandEmpty means no active stays; the room keeps the neutral look.
	BandEmpty Band = "empty"
	// BandNormal is an occupied room leaving later than the warning window,
	// or with no known departure date.
	BandNormal Band = "normal"
	// BandWarning is an occupied room leaving within the warning window.
	BandWarning Band = "warning"
	// BandOverdue is a room whose nearest departure is already in the past.
	BandOverdue Band = "overdue"
)

// DefaultWarningDays is the inclusive near-term window, in days.
const DefaultWarningDays = 28

// Classifier assigns bands relative to a fixed day.
type Classifier struct {
	Today       time.Time
	WarningDays int
}

// NewClassifier returns a Classifier for today with the default window.
func NewClassifier(today time.Time) Classifier {
	return Classifier{Today: Day(today), WarningDays: DefaultWarningDays}
}

// Classify returns the band of a room state.
func (c Classifier) Classify(r domain.RoomState) Band {
	if !r.Occupied() {
		return BandEmpty
	}
	if r.NearestDeparture == nil {
		return BandNormal
	}
	dep := Day(*r.NearestDeparture)
	today := Day(c.Today)
	switch {
	case dep.Before(today):
		return BandOverdue
	case !dep.After(today.AddDate(0, 0, c.WarningDays)):
		return BandWarning
	default:
		return BandNormal
	}
}

// Day truncates t to midnight UTC of its calendar date.
// Bands compare calendar days, so time-of-day must not leak into them.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
