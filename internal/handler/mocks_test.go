package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/pkordes/hostel-desk/internal/board"
	"github.com/pkordes/hostel-desk/internal/domain"
	"github.com/pkordes/hostel-desk/internal/handler"
	"github.com/pkordes/hostel-desk/internal/service"
)

// mockBoardServicer is a test double for handler.BoardServicer.
// Set only the method fields your test needs.
type mockBoardServicer struct {
	loadAll func(ctx context.Context) (board.Board, error)
	room    func(ctx context.Context, number int) (domain.RoomDetail, error)
}

func (m *mockBoardServicer) LoadAll(ctx context.Context) (board.Board, error) {
	return m.loadAll(ctx)
}
func (m *mockBoardServicer) Room(ctx context.Context, number int) (domain.RoomDetail, error) {
	return m.room(ctx, number)
}
func (m *mockBoardServicer) Classifier() board.Classifier {
	return board.NewClassifier(today)
}

// mockContractServicer is a test double for handler.ContractServicer.
type mockContractServicer struct {
	forStay func(ctx context.Context, stayID int64, extra domain.Placeholders) (service.Contract, error)
}

func (m *mockContractServicer) ForStay(ctx context.Context, stayID int64, extra domain.Placeholders) (service.Contract, error) {
	return m.forStay(ctx, stayID, extra)
}

// compile-time checks
var (
	_ handler.BoardServicer    = (*mockBoardServicer)(nil)
	_ handler.ContractServicer = (*mockContractServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

var today = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// boardFixture is a small hotel: one warning room, one empty, one overdue,
// one normal without a date.
func boardFixture() board.Board {
	return board.New([]domain.RoomState{
		{Number: 101, Occupants: []string{"Ana", "Bruno"}, NearestDeparture: datePtr(2024, 3, 10)},
		{Number: 102},
		{Number: 103, Occupants: []string{"Caio"}, NearestDeparture: datePtr(2024, 2, 20)},
		{Number: 201, Occupants: []string{"Anabela"}},
	}, today)
}

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(b handler.BoardServicer, c handler.ContractServicer) http.Handler {
	return handler.NewServer(b, c, nil).Routes()
}
