// Package repo contains all database access logic for the hostel desk.
// Each resource has its own file with an interface and a Postgres
// implementation; legacy.go reads the original desktop MySQL schema.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// acquirer is implemented by *pgxpool.Pool.
type acquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// RoomReader is the room board query contract.
type RoomReader interface {
	// ListRoomNumbers returns every room number in ascending order.
	ListRoomNumbers(ctx context.Context) ([]int, error)

	// ListActiveStays returns the occupant and planned departure of every
	// active stay in the room, in a stable order. Departure is formatted
	// "2006-01-02", or empty when unknown.
	ListActiveStays(ctx context.Context, room int) ([]domain.Stay, error)
}

// RoomRepo defines the persistence operations for rooms.
// The service layer depends on this interface, not the concrete implementation,
// which allows the service to be unit-tested with a mock.
type RoomRepo interface {
	// Session runs fn with a RoomReader bound to one connection. The
	// connection is released when fn returns, whatever the outcome.
	Session(ctx context.Context, fn func(RoomReader) error) error

	// Exists reports whether a room with the given number exists.
	Exists(ctx context.Context, number int) (bool, error)
}

// pgRoomRepo is the Postgres implementation of RoomRepo and RoomReader.
type pgRoomRepo struct {
	db db
}

// NewRoomRepo constructs a RoomRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRoomRepo(db db) RoomRepo {
	return &pgRoomRepo{db: db}
}

// Session acquires a pooled connection for the duration of fn. When the repo
// is backed by a single connection or transaction it is used as is.
func (r *pgRoomRepo) Session(ctx context.Context, fn func(RoomReader) error) error {
	pool, ok := r.db.(acquirer)
	if !ok {
		return fn(r)
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("repo.RoomRepo.Session: acquire: %w", err)
	}
	defer conn.Release()

	return fn(&pgRoomRepo{db: conn})
}

// ListRoomNumbers returns all room numbers ascending.
func (r *pgRoomRepo) ListRoomNumbers(ctx context.Context) ([]int, error) {
	const q = `SELECT number FROM rooms ORDER BY number`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.ListRoomNumbers: %w", err)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.ListRoomNumbers: %w", err)
	}

	out := make([]int, len(numbers))
	for i, n := range numbers {
		out[i] = int(n)
	}
	return out, nil
}

// ListActiveStays returns the active stays of a room ordered by stay id.
func (r *pgRoomRepo) ListActiveStays(ctx context.Context, room int) ([]domain.Stay, error) {
	const q = `
		SELECT g.name, COALESCE(to_char(s.check_out, 'YYYY-MM-DD'), '')
		FROM stays s
		JOIN beds   b ON s.bed_id   = b.id
		JOIN guests g ON s.guest_id = g.id
		WHERE b.room_number = @room AND s.active
		ORDER BY s.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"room": room})
	if err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.ListActiveStays: %w", err)
	}
	defer rows.Close()

	stays := []domain.Stay{}
	for rows.Next() {
		var s domain.Stay
		if err := rows.Scan(&s.GuestName, &s.Departure); err != nil {
			return nil, fmt.Errorf("repo.RoomRepo.ListActiveStays: scan: %w", err)
		}
		stays = append(stays, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.ListActiveStays: rows: %w", err)
	}
	return stays, nil
}

// Exists reports whether the room is registered.
func (r *pgRoomRepo) Exists(ctx context.Context, number int) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM rooms WHERE number = @number)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"number": number}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.RoomRepo.Exists: %w", err)
	}
	return exists, nil
}
