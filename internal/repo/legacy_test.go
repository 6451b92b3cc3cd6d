package repo

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hostel-desk/internal/domain"
)

func setupLegacy(t *testing.T) (sqlmock.Sqlmock, *LegacyStore) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, NewLegacyStore(db)
}

var stayDetailColumns = []string{
	"id", "nome", "documento", "quarto_numero", "numero", "data_entrada", "data_saida", "status",
}

func TestLegacyStore_Session_ListsRoomsAndStays(t *testing.T) {
	mock, store := setupLegacy(t)

	mock.ExpectQuery(`SELECT numero FROM quarto ORDER BY numero`).
		WillReturnRows(sqlmock.NewRows([]string{"numero"}).AddRow(101).AddRow(102))
	mock.ExpectQuery(`FROM hospedagem res`).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"nome", "data_saida"}).
			AddRow("Ana", "2024-03-10").
			AddRow("Bruno", nil))
	mock.ExpectQuery(`FROM hospedagem res`).
		WithArgs(102).
		WillReturnRows(sqlmock.NewRows([]string{"nome", "data_saida"}))

	var (
		numbers []int
		stays   = map[int][]domain.Stay{}
	)
	err := store.Session(context.Background(), func(r RoomReader) error {
		var err error
		if numbers, err = r.ListRoomNumbers(context.Background()); err != nil {
			return err
		}
		for _, n := range numbers {
			s, err := r.ListActiveStays(context.Background(), n)
			if err != nil {
				return err
			}
			stays[n] = s
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{101, 102}, numbers)
	assert.Equal(t, []domain.Stay{
		{GuestName: "Ana", Departure: "2024-03-10"},
		{GuestName: "Bruno", Departure: ""},
	}, stays[101])
	assert.Empty(t, stays[102])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyStore_Session_PropagatesQueryError(t *testing.T) {
	mock, store := setupLegacy(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT numero FROM quarto`).WillReturnError(boom)

	err := store.Session(context.Background(), func(r RoomReader) error {
		_, err := r.ListRoomNumbers(context.Background())
		return err
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyStore_Exists(t *testing.T) {
	mock, store := setupLegacy(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM quarto WHERE numero = \?`).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM quarto WHERE numero = \?`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := store.Exists(context.Background(), 101)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyStore_GetByID(t *testing.T) {
	mock, store := setupLegacy(t)

	mock.ExpectQuery(`WHERE res.id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(stayDetailColumns).
			AddRow(7, "Ana Souza", "123.456.789-00", 101, "2", "2024-03-01 14:00:00", "2024-03-10", 1))

	got, err := store.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Ana Souza", got.GuestName)
	assert.Equal(t, "123.456.789-00", got.GuestDocument)
	assert.Equal(t, 101, got.RoomNumber)
	assert.Equal(t, "2", got.BedLabel)
	require.NotNil(t, got.CheckIn)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *got.CheckIn)
	require.NotNil(t, got.Departure)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *got.Departure)
	assert.True(t, got.Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyStore_GetByID_NotFound(t *testing.T) {
	mock, store := setupLegacy(t)

	mock.ExpectQuery(`WHERE res.id = \?`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyStore_GetByID_MalformedDate(t *testing.T) {
	mock, store := setupLegacy(t)

	mock.ExpectQuery(`WHERE res.id = \?`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(stayDetailColumns).
			AddRow(8, "Caio", "", 101, "1", nil, "10/03/2024", 1))

	_, err := store.GetByID(context.Background(), 8)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_saida")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyStore_ListActiveByRoom(t *testing.T) {
	mock, store := setupLegacy(t)

	mock.ExpectQuery(`WHERE c.quarto_numero = \? AND res.status = 1`).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows(stayDetailColumns).
			AddRow(1, "Ana", "", 101, "1", nil, nil, 1).
			AddRow(2, "Bruno", "", 101, "2", "2024-03-01", "2024-03-05", 1))

	got, err := store.ListActiveByRoom(context.Background(), 101)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].CheckIn)
	assert.Nil(t, got[0].Departure)
	assert.Equal(t, "Bruno", got[1].GuestName)
	require.NotNil(t, got[1].Departure)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The board and the room detail must read departures in the same shape, or a
// DATETIME column would load on one path and fail the other.
func TestLegacyStore_DeparturesFormattedAsDates(t *testing.T) {
	mock, store := setupLegacy(t)
	const departure = `DATE_FORMAT\(res\.data_saida, '%Y-%m-%d'\)`

	mock.ExpectQuery(`SELECT numero FROM quarto`).
		WillReturnRows(sqlmock.NewRows([]string{"numero"}).AddRow(101))
	mock.ExpectQuery(`SELECT h\.nome, ` + departure).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"nome", "data_saida"}).AddRow("Ana", "2024-03-10"))
	mock.ExpectQuery(`DATE_FORMAT\(res\.data_entrada, '%Y-%m-%d'\), ` + departure).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows(stayDetailColumns).
			AddRow(1, "Ana", "", 101, "1", "2024-03-01", "2024-03-10", 1))

	var board []domain.Stay
	err := store.Session(context.Background(), func(r RoomReader) error {
		if _, err := r.ListRoomNumbers(context.Background()); err != nil {
			return err
		}
		var err error
		board, err = r.ListActiveStays(context.Background(), 101)
		return err
	})
	require.NoError(t, err)

	detail, err := store.ListActiveByRoom(context.Background(), 101)
	require.NoError(t, err)

	require.Len(t, board, 1)
	require.Len(t, detail, 1)
	require.NotNil(t, detail[0].Departure)
	assert.Equal(t, board[0].Departure, detail[0].Departure.Format(domain.DateLayout))
	require.NoError(t, mock.ExpectationsWereMet())
}
