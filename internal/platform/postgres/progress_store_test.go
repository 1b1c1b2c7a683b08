package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slovocards/slovocards-api/internal/store"
)

func TestProgressStoreUpsert(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewProgressStore(db, nil)

	mock.ExpectExec(`INSERT INTO user_progress`).
		WithArgs(int64(7), int64(3), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Upsert(context.Background(), 7, 3, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressStoreUpsert_ForeignKeyViolation(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewProgressStore(db, nil)

	// Progress for a card that no longer exists
	mock.ExpectExec(`INSERT INTO user_progress`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "user_progress_card_id_fkey"})

	err = s.Upsert(context.Background(), 7, 999, true)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}
