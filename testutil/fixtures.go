package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

// SeedRoom inserts a room and returns its number.
func SeedRoom(t *testing.T, tx pgx.Tx, number int) int {
	t.Helper()

	_, err := tx.Exec(context.Background(),
		`INSERT INTO rooms (number) VALUES (@number)`,
		pgx.NamedArgs{"number": number})
	if err != nil {
		t.Fatalf("testutil.SeedRoom: %v", err)
	}
	return number
}

// SeedBed inserts a bed in the given room and returns its id.
func SeedBed(t *testing.T, tx pgx.Tx, room int, label string) int64 {
	t.Helper()

	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO beds (room_number, label) VALUES (@room, @label) RETURNING id`,
		pgx.NamedArgs{"room": room, "label": label}).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.SeedBed: %v", err)
	}
	return id
}

// StayFixture describes one guest staying in one bed.
type StayFixture struct {
	Bed      int64
	Guest    string
	Document string
	CheckIn  *time.Time
	CheckOut *time.Time
	Active   bool
}

// SeedStay inserts the guest and the stay and returns the stay id.
func SeedStay(t *testing.T, tx pgx.Tx, f StayFixture) int64 {
	t.Helper()
	ctx := context.Background()

	var guestID int64
	err := tx.QueryRow(ctx,
		`INSERT INTO guests (name, document) VALUES (@name, @document) RETURNING id`,
		pgx.NamedArgs{"name": f.Guest, "document": f.Document}).Scan(&guestID)
	if err != nil {
		t.Fatalf("testutil.SeedStay: guest: %v", err)
	}

	var stayID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO stays (bed_id, guest_id, check_in, check_out, active)
		VALUES (@bed, @guest, @check_in, @check_out, @active)
		RETURNING id`,
		pgx.NamedArgs{
			"bed":       f.Bed,
			"guest":     guestID,
			"check_in":  f.CheckIn,
			"check_out": f.CheckOut,
			"active":    f.Active,
		}).Scan(&stayID)
	if err != nil {
		t.Fatalf("testutil.SeedStay: stay: %v", err)
	}
	return stayID
}
