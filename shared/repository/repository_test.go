package repository_test

import (
	"context"
	"cowork/infras/otel/mocks"
	"cowork/infras/postgres"
	"cowork/shared/failure"
	"cowork/shared/repository"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type room struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func newRepository(t *testing.T) (repository.Repository[room], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.NewRepository[room]("room", "rooms", "id", &postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert reservation: %w", &pq.Error{Code: "23505"}), want: true},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("23505"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsUniqueViolation(tt.err))
		})
	}
}

func TestRepository_WithTx(t *testing.T) {
	errAbort := errors.New("slot taken")

	tests := []struct {
		name       string
		fn         func(*sqlx.Tx) error
		setupMock  func(mock sqlmock.Sqlmock)
		wantErr    error
		wantUnique bool
	}{
		{
			name:      "commits when fn succeeds",
			fn:        func(*sqlx.Tx) error { return nil },
			setupMock: func(mock sqlmock.Sqlmock) { mock.ExpectBegin(); mock.ExpectCommit() },
		},
		{
			name:      "rolls back and returns the fn error untouched",
			fn:        func(*sqlx.Tx) error { return errAbort },
			setupMock: func(mock sqlmock.Sqlmock) { mock.ExpectBegin(); mock.ExpectRollback() },
			wantErr:   errAbort,
		},
		{
			name: "begin failure is a storage error",
			fn: func(*sqlx.Tx) error {
				t.Error("fn must not run without a transaction")

				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) { mock.ExpectBegin().WillReturnError(errors.New("too many connections")) },
			wantErr:   failure.ErrStorage,
		},
		{
			name: "commit failure is a storage error",
			fn:   func(*sqlx.Tx) error { return nil },
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("connection lost"))
			},
			wantErr: failure.ErrStorage,
		},
		{
			name: "unique violation on commit is passed through",
			fn:   func(*sqlx.Tx) error { return nil },
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(&pq.Error{Code: "23505"})
			},
			wantUnique: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			err := repo.WithTx(context.Background(), tt.fn)

			switch {
			case tt.wantUnique:
				assert.True(t, repository.IsUniqueViolation(err))
				assert.False(t, errors.Is(err, failure.ErrStorage))
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockTx(t *testing.T) {
	lockQuery := regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")
	key := "room:3:2024-06-13:morning"

	t.Run("locks the key inside the transaction", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(key).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.WithTx(context.Background(), func(sqltx *sqlx.Tx) error {
			return repo.LockTx(context.Background(), sqltx, key)
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock failure rolls back", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(key).WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		err := repo.WithTx(context.Background(), func(sqltx *sqlx.Tx) error {
			return repo.LockTx(context.Background(), sqltx, key)
		})

		assert.ErrorIs(t, err, failure.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_InsertTx(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms (name) VALUES ($1) RETURNING id")).
		WithArgs("Sala A").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	var id int64

	err := repo.WithTx(context.Background(), func(sqltx *sqlx.Tx) (err error) {
		id, err = repo.InsertTx(context.Background(), sqltx, room{Name: "Sala A"})

		return err
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
