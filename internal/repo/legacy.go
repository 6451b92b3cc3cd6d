package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// sqlQuerier is satisfied by *sql.DB and *sql.Conn.
type sqlQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LegacyStore reads the desktop application's MySQL schema:
// quarto (rooms), cama (beds), hospede (guests) and hospedagem (stays,
// status 1 meaning active). It implements both RoomRepo and StayRepo.
type LegacyStore struct {
	db *sql.DB
}

// NewLegacyStore wraps an open MySQL handle.
func NewLegacyStore(db *sql.DB) *LegacyStore {
	return &LegacyStore{db: db}
}

// legacyReader runs the board queries on a single connection.
type legacyReader struct {
	q sqlQuerier
}

// Session pins one *sql.Conn for every query fn issues and closes it on return.
func (s *LegacyStore) Session(ctx context.Context, fn func(RoomReader) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("repo.LegacyStore.Session: conn: %w", err)
	}
	defer conn.Close()

	return fn(&legacyReader{q: conn})
}

// Exists reports whether the quarto row exists.
func (s *LegacyStore) Exists(ctx context.Context, number int) (bool, error) {
	const q = `SELECT COUNT(*) FROM quarto WHERE numero = ?`

	var n int
	if err := s.db.QueryRowContext(ctx, q, number).Scan(&n); err != nil {
		return false, fmt.Errorf("repo.LegacyStore.Exists: %w", err)
	}
	return n > 0, nil
}

func (r *legacyReader) ListRoomNumbers(ctx context.Context) ([]int, error) {
	const q = `SELECT numero FROM quarto ORDER BY numero`

	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.LegacyStore.ListRoomNumbers: %w", err)
	}
	defer rows.Close()

	numbers := []int{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("repo.LegacyStore.ListRoomNumbers: scan: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LegacyStore.ListRoomNumbers: rows: %w", err)
	}
	return numbers, nil
}

func (r *legacyReader) ListActiveStays(ctx context.Context, room int) ([]domain.Stay, error) {
	const q = `
		SELECT h.nome, DATE_FORMAT(res.data_saida, '%Y-%m-%d')
		FROM hospedagem res
		JOIN cama c    ON res.cama_id    = c.id
		JOIN hospede h ON res.hospede_id = h.id
		WHERE c.quarto_numero = ? AND res.status = 1
		ORDER BY res.id`

	rows, err := r.q.QueryContext(ctx, q, room)
	if err != nil {
		return nil, fmt.Errorf("repo.LegacyStore.ListActiveStays: %w", err)
	}
	defer rows.Close()

	stays := []domain.Stay{}
	for rows.Next() {
		var (
			name      string
			departure sql.NullString
		)
		if err := rows.Scan(&name, &departure); err != nil {
			return nil, fmt.Errorf("repo.LegacyStore.ListActiveStays: scan: %w", err)
		}
		stays = append(stays, domain.Stay{GuestName: name, Departure: departure.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LegacyStore.ListActiveStays: rows: %w", err)
	}
	return stays, nil
}

const legacyStayColumns = `
		SELECT res.id, h.nome, COALESCE(h.documento, ''), c.quarto_numero, CAST(c.numero AS CHAR),
		       DATE_FORMAT(res.data_entrada, '%Y-%m-%d'), DATE_FORMAT(res.data_saida, '%Y-%m-%d'), res.status
		FROM hospedagem res
		JOIN cama c    ON res.cama_id    = c.id
		JOIN hospede h ON res.hospede_id = h.id`

// GetByID retrieves one hospedagem row.
func (s *LegacyStore) GetByID(ctx context.Context, id int64) (domain.StayDetail, error) {
	const q = legacyStayColumns + `
		WHERE res.id = ?`

	st, err := scanLegacyStay(s.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.StayDetail{}, fmt.Errorf("repo.LegacyStore.GetByID: %w", err)
	}
	return st, nil
}

// ListActiveByRoom returns the active hospedagem rows of one room.
func (s *LegacyStore) ListActiveByRoom(ctx context.Context, room int) ([]domain.StayDetail, error) {
	const q = legacyStayColumns + `
		WHERE c.quarto_numero = ? AND res.status = 1
		ORDER BY res.id`

	rows, err := s.db.QueryContext(ctx, q, room)
	if err != nil {
		return nil, fmt.Errorf("repo.LegacyStore.ListActiveByRoom: %w", err)
	}
	defer rows.Close()

	stays := []domain.StayDetail{}
	for rows.Next() {
		st, err := scanLegacyStay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LegacyStore.ListActiveByRoom: scan: %w", err)
		}
		stays = append(stays, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LegacyStore.ListActiveByRoom: rows: %w", err)
	}
	return stays, nil
}

func scanLegacyStay(s scanner) (domain.StayDetail, error) {
	var (
		st       domain.StayDetail
		checkIn  sql.NullString
		checkOut sql.NullString
		status   int
	)

	err := s.Scan(&st.ID, &st.GuestName, &st.GuestDocument, &st.RoomNumber, &st.BedLabel, &checkIn, &checkOut, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.StayDetail{}, domain.ErrNotFound
		}
		return domain.StayDetail{}, err
	}

	if st.CheckIn, err = legacyDate(checkIn); err != nil {
		return domain.StayDetail{}, fmt.Errorf("data_entrada: %w", err)
	}
	if st.Departure, err = legacyDate(checkOut); err != nil {
		return domain.StayDetail{}, fmt.Errorf("data_saida: %w", err)
	}
	st.Active = status == 1
	return st, nil
}

// legacyDate parses the leading yyyy-mm-dd of a DATE or DATETIME rendered as text.
func legacyDate(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	s := v.String
	if len(s) > len(domain.DateLayout) {
		s = s[:len(domain.DateLayout)]
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
