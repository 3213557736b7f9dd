package repository_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cowork/infras/otel/mocks"
	"cowork/infras/postgres"
	"cowork/internal/domains/reservation/model"
	"cowork/internal/domains/reservation/repository"
	"cowork/shared/failure"
)

func TestSlotFilter(t *testing.T) {
	date := time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC)

	filter := repository.SlotFilter(4, date, model.ShiftMorning)
	where, args := filter.GetWhereClause()

	assert.Equal(t,
		"(room_reservations.room_id = :room_id AND room_reservations.reservation_date = :reservation_date AND room_reservations.shift = :shift)",
		where)
	assert.Equal(t, map[string]any{
		"room_id":          int64(4),
		"reservation_date": "2024-06-13",
		"shift":            "morning",
	}, args)
}

func TestDateRangeFilter(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	filter := repository.DateRangeFilter(start, end)
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(room_reservations.reservation_date BETWEEN :reservation_date_from AND :reservation_date_to)", where)
	assert.Equal(t, map[string]any{
		"reservation_date_from": "2024-06-01",
		"reservation_date_to":   "2024-06-30",
	}, args)
}

func TestFolioFilter(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "folio only",
			wantWhere: "(room_reservations.folio = :folio)",
			wantArgs:  map[string]any{"folio": int64(9)},
		},
		{
			name:      "half open range is ignored",
			start:     start,
			wantWhere: "(room_reservations.folio = :folio)",
			wantArgs:  map[string]any{"folio": int64(9)},
		},
		{
			name:      "folio within range",
			start:     start,
			end:       end,
			wantWhere: "(room_reservations.folio = :folio AND room_reservations.reservation_date BETWEEN :reservation_date_from AND :reservation_date_to)",
			wantArgs: map[string]any{
				"folio":                 int64(9),
				"reservation_date_from": "2024-06-01",
				"reservation_date_to":   "2024-06-30",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.FolioFilter(9, tt.start, tt.end)
			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

var (
	lockQuery   = regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")
	existQuery  = regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM room_reservations")
	insertQuery = regexp.QuoteMeta("INSERT INTO room_reservations")
)

func newSQLRepository(t *testing.T) (repository.Reservation, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func TestReservationRepository_InsertExclusive(t *testing.T) {
	reservation := model.Reservation{
		ClientID:  1,
		RoomID:    4,
		Date:      time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC),
		Shift:     model.ShiftMorning,
		EventName: "Kickoff",
	}
	reservation.CreatedAt = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

	slotTaken := func(mock sqlmock.Sqlmock, taken bool) {
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).
			WithArgs(reservation.SlotKey()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectPrepare(existQuery).
			ExpectQuery().
			WithArgs(int64(4), "2024-06-13", "morning").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(taken))
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantFolio int64
		wantErr   error
		wantCode  int
	}{
		{
			name: "free slot is inserted and committed",
			setupMock: func(mock sqlmock.Sqlmock) {
				slotTaken(mock, false)
				mock.ExpectQuery(insertQuery).
					WillReturnRows(sqlmock.NewRows([]string{"folio"}).AddRow(int64(7)))
				mock.ExpectCommit()
			},
			wantFolio: 7,
		},
		{
			name: "taken slot rolls back without inserting",
			setupMock: func(mock sqlmock.Sqlmock) {
				slotTaken(mock, true)
				mock.ExpectRollback()
			},
			wantErr:  model.ErrShiftOccupied,
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation on insert is an occupied shift",
			setupMock: func(mock sqlmock.Sqlmock) {
				slotTaken(mock, false)
				mock.ExpectQuery(insertQuery).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "room_reservations_room_id_reservation_date_shift_key"})
				mock.ExpectRollback()
			},
			wantErr:  model.ErrShiftOccupied,
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation on commit is an occupied shift",
			setupMock: func(mock sqlmock.Sqlmock) {
				slotTaken(mock, false)
				mock.ExpectQuery(insertQuery).
					WillReturnRows(sqlmock.NewRows([]string{"folio"}).AddRow(int64(8)))
				mock.ExpectCommit().WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr:  model.ErrShiftOccupied,
			wantCode: http.StatusConflict,
		},
		{
			name: "lock failure is a storage error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WillReturnError(errors.New("connection reset by peer"))
				mock.ExpectRollback()
			},
			wantErr:  failure.ErrStorage,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "other insert errors are storage errors",
			setupMock: func(mock sqlmock.Sqlmock) {
				slotTaken(mock, false)
				mock.ExpectQuery(insertQuery).WillReturnError(&pq.Error{Code: "23503"})
				mock.ExpectRollback()
			},
			wantErr:  failure.ErrStorage,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newSQLRepository(t)
			tt.setupMock(mock)

			folio, err := repo.InsertExclusive(context.Background(), reservation)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Zero(t, folio)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantFolio, folio)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
