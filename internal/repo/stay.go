package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// StayRepo defines read access to stays for room details and contracts.
type StayRepo interface {
	// GetByID retrieves one stay, active or not.
	// Returns domain.ErrNotFound if no stay with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.StayDetail, error)

	// ListActiveByRoom returns the active stays of a room ordered by id.
	ListActiveByRoom(ctx context.Context, room int) ([]domain.StayDetail, error)
}

// pgStayRepo is the Postgres implementation of StayRepo.
type pgStayRepo struct {
	db db
}

// NewStayRepo constructs a StayRepo backed by the provided db connection.
func NewStayRepo(db db) StayRepo {
	return &pgStayRepo{db: db}
}

const stayColumns = `
		SELECT s.id, g.name, g.document, b.room_number, b.label, s.check_in, s.check_out, s.active
		FROM stays s
		JOIN beds   b ON s.bed_id   = b.id
		JOIN guests g ON s.guest_id = g.id`

// GetByID retrieves a stay by primary key.
func (r *pgStayRepo) GetByID(ctx context.Context, id int64) (domain.StayDetail, error) {
	const q = stayColumns + `
		WHERE s.id = @id`

	s, err := scanStay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.StayDetail{}, fmt.Errorf("repo.StayRepo.GetByID: %w", err)
	}
	return s, nil
}

// ListActiveByRoom returns the active stays of one room.
func (r *pgStayRepo) ListActiveByRoom(ctx context.Context, room int) ([]domain.StayDetail, error) {
	const q = stayColumns + `
		WHERE b.room_number = @room AND s.active
		ORDER BY s.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"room": room})
	if err != nil {
		return nil, fmt.Errorf("repo.StayRepo.ListActiveByRoom: %w", err)
	}
	defer rows.Close()

	stays := []domain.StayDetail{}
	for rows.Next() {
		s, err := scanStay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StayRepo.ListActiveByRoom: scan: %w", err)
		}
		stays = append(stays, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StayRepo.ListActiveByRoom: rows: %w", err)
	}
	return stays, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanStay to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanStay maps a single database row into a domain.StayDetail.
// It handles the nullable check_in and check_out dates.
func scanStay(s scanner) (domain.StayDetail, error) {
	var (
		st       domain.StayDetail
		room     int32
		checkIn  pgtype.Date
		checkOut pgtype.Date
	)

	err := s.Scan(&st.ID, &st.GuestName, &st.GuestDocument, &room, &st.BedLabel, &checkIn, &checkOut, &st.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StayDetail{}, domain.ErrNotFound
		}
		return domain.StayDetail{}, err
	}

	st.RoomNumber = int(room)
	st.CheckIn = optionalDate(checkIn)
	st.Departure = optionalDate(checkOut)
	return st, nil
}

func optionalDate(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
