// Package service contains the business logic for the hostel desk.
// Services load and project room data, build contracts and orchestrate repo
// calls. No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/hostel-desk/internal/board"
	"github.com/pkordes/hostel-desk/internal/domain"
	"github.com/pkordes/hostel-desk/internal/repo"
)

// BoardService loads the room status board.
type BoardService struct {
	rooms       repo.RoomRepo
	stays       repo.StayRepo
	clock       func() time.Time
	warningDays int
}

// NewBoardService constructs a BoardService. clock supplies "today" for band
// classification; warningDays <= 0 selects the default window.
func NewBoardService(rooms repo.RoomRepo, stays repo.StayRepo, clock func() time.Time, warningDays int) *BoardService {
	if clock == nil {
		clock = time.Now
	}
	if warningDays <= 0 {
		warningDays = board.DefaultWarningDays
	}
	return &BoardService{rooms: rooms, stays: stays, clock: clock, warningDays: warningDays}
}

// LoadAll reads every room with its active stays and returns the board.
// Any failure aborts the load: no partial board is ever returned, and the
// error wraps domain.ErrLoadFailure.
func (s *BoardService) LoadAll(ctx context.Context) (board.Board, error) {
	var rooms []domain.RoomState

	err := s.rooms.Session(ctx, func(r repo.RoomReader) error {
		numbers, err := r.ListRoomNumbers(ctx)
		if err != nil {
			return err
		}

		rooms = make([]domain.RoomState, 0, len(numbers))
		for _, n := range numbers {
			stays, err := r.ListActiveStays(ctx, n)
			if err != nil {
				return err
			}
			state, err := board.Project(n, stays)
			if err != nil {
				return err
			}
			rooms = append(rooms, state)
		}
		return nil
	})
	if err != nil {
		return board.Board{}, fmt.Errorf("service.BoardService.LoadAll: %w: %w", domain.ErrLoadFailure, err)
	}

	b := board.New(rooms, s.clock())
	b.WarningDays = s.warningDays
	return b, nil
}

// Room returns one room's board state together with its active stays.
// Returns domain.ErrNotFound if the room does not exist.
func (s *BoardService) Room(ctx context.Context, number int) (domain.RoomDetail, error) {
	exists, err := s.rooms.Exists(ctx, number)
	if err != nil {
		return domain.RoomDetail{}, fmt.Errorf("service.BoardService.Room: %w: %w", domain.ErrLoadFailure, err)
	}
	if !exists {
		return domain.RoomDetail{}, fmt.Errorf("service.BoardService.Room: room %d: %w", number, domain.ErrNotFound)
	}

	stays, err := s.stays.ListActiveByRoom(ctx, number)
	if err != nil {
		return domain.RoomDetail{}, fmt.Errorf("service.BoardService.Room: %w: %w", domain.ErrLoadFailure, err)
	}

	raw := make([]domain.Stay, 0, len(stays))
	for _, st := range stays {
		r := domain.Stay{GuestName: st.GuestName}
		if st.Departure != nil {
			r.Departure = st.Departure.Format(domain.DateLayout)
		}
		raw = append(raw, r)
	}
	state, err := board.Project(number, raw)
	if err != nil {
		return domain.RoomDetail{}, fmt.Errorf("service.BoardService.Room: %w: %w", domain.ErrLoadFailure, err)
	}

	return domain.RoomDetail{State: state, Stays: stays}, nil
}

// Today is the service clock truncated to the day, as used for classification.
func (s *BoardService) Today() time.Time {
	return board.Day(s.clock())
}

// Classifier returns the band classifier the service's boards use.
func (s *BoardService) Classifier() board.Classifier {
	return board.Classifier{Today: s.Today(), WarningDays: s.warningDays}
}
