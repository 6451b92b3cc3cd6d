package service_test

import (
	"context"

	"github.com/pkordes/hostel-desk/internal/domain"
	"github.com/pkordes/hostel-desk/internal/events"
	"github.com/pkordes/hostel-desk/internal/repo"
	"github.com/pkordes/hostel-desk/internal/service"
)

// ---- mock RoomRepo ---------------------------------------------------------

type mockRoomRepo struct {
	listRoomNumbers func(ctx context.Context) ([]int, error)
	listActiveStays func(ctx context.Context, room int) ([]domain.Stay, error)
	exists          func(ctx context.Context, number int) (bool, error)

	sessions int
}

func (m *mockRoomRepo) Session(_ context.Context, fn func(repo.RoomReader) error) error {
	m.sessions++
	return fn(m)
}
func (m *mockRoomRepo) ListRoomNumbers(ctx context.Context) ([]int, error) {
	return m.listRoomNumbers(ctx)
}
func (m *mockRoomRepo) ListActiveStays(ctx context.Context, room int) ([]domain.Stay, error) {
	return m.listActiveStays(ctx, room)
}
func (m *mockRoomRepo) Exists(ctx context.Context, number int) (bool, error) {
	return m.exists(ctx, number)
}

// compile-time checks
var (
	_ repo.RoomRepo   = (*mockRoomRepo)(nil)
	_ repo.RoomReader = (*mockRoomRepo)(nil)
)

// ---- mock StayRepo ---------------------------------------------------------

type mockStayRepo struct {
	getByID          func(ctx context.Context, id int64) (domain.StayDetail, error)
	listActiveByRoom func(ctx context.Context, room int) ([]domain.StayDetail, error)
}

func (m *mockStayRepo) GetByID(ctx context.Context, id int64) (domain.StayDetail, error) {
	return m.getByID(ctx, id)
}
func (m *mockStayRepo) ListActiveByRoom(ctx context.Context, room int) ([]domain.StayDetail, error) {
	return m.listActiveByRoom(ctx, room)
}

var _ repo.StayRepo = (*mockStayRepo)(nil)

// ---- mock Filler -----------------------------------------------------------

type mockFiller struct {
	fill func(templatePath string, placeholders domain.Placeholders) ([]byte, error)
}

func (m *mockFiller) Fill(templatePath string, placeholders domain.Placeholders) ([]byte, error) {
	return m.fill(templatePath, placeholders)
}

var _ service.Filler = (*mockFiller)(nil)

// ---- mock Publisher --------------------------------------------------------

type mockPublisher struct {
	publish func(ctx context.Context, e events.ContractGenerated) error
}

func (m *mockPublisher) PublishContractGenerated(ctx context.Context, e events.ContractGenerated) error {
	return m.publish(ctx, e)
}

var _ events.Publisher = (*mockPublisher)(nil)
