package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewWithPool(mock), mock
}

func TestWithTx_Commits(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := store.WithTx(context.Background(), func(tx pgx.Tx) error { return nil })
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("boom")
	err := store.WithTx(context.Background(), func(tx pgx.Tx) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOpenDuplicateWithin(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT id, latitude, longitude FROM complaints`).
		WithArgs("Water Supply", "Broken Pipeline", 77.2090, 28.6139, 50.0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "latitude", "longitude"}).
			AddRow(int64(42), 28.6141, 77.2092))

	cand, found, err := store.FindOpenDuplicateWithin(context.Background(),
		"Water Supply", "Broken Pipeline", 28.6139, 77.2090, 50.0)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(42), cand.ID)
	assert.InDelta(t, 28.6141, cand.Latitude, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOpenDuplicateWithin_NoMatch(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT id, latitude, longitude FROM complaints`).
		WithArgs("Water Supply", "Broken Pipeline", 77.2090, 28.6139, 50.0).
		WillReturnError(pgx.ErrNoRows)

	cand, found, err := store.FindOpenDuplicateWithin(context.Background(),
		"Water Supply", "Broken Pipeline", 28.6139, 77.2090, 50.0)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, cand.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOpenDuplicateWithin_QueryError(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT id, latitude, longitude FROM complaints`).
		WithArgs("Water Supply", "Broken Pipeline", 77.2090, 28.6139, 50.0).
		WillReturnError(errors.New("connection refused"))

	_, found, err := store.FindOpenDuplicateWithin(context.Background(),
		"Water Supply", "Broken Pipeline", 28.6139, 77.2090, 50.0)
	require.Error(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUrgencyFor(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT urgency_index FROM department_urgency_matrix`).
		WithArgs("Water Supply", "Broken Pipeline").
		WillReturnRows(pgxmock.NewRows([]string{"urgency_index"}).AddRow(1.0))

	urgency, err := store.UrgencyFor(context.Background(), "Water Supply", "Broken Pipeline")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, urgency, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUrgencyFor_Miss(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT urgency_index FROM department_urgency_matrix`).
		WithArgs("Unknown", "Unknown").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.UrgencyFor(context.Background(), "Unknown", "Unknown")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHighestWeightCriticalPlaceWithin(t *testing.T) {
	store, mock := newTestStore(t)

	// Longitude goes first into ST_MakePoint.
	mock.ExpectQuery(`SELECT weight FROM critical_places`).
		WithArgs(77.2090, 28.6139, 300.0).
		WillReturnRows(pgxmock.NewRows([]string{"weight"}).AddRow(1.0))

	weight, err := store.HighestWeightCriticalPlaceWithin(context.Background(), 28.6139, 77.2090, 300.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, weight, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}
