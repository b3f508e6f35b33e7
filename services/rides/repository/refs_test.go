package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

func setupRefRepoTest(t *testing.T) (*UserRefRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &UserRefRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func TestAddRef(t *testing.T) {
	repo, mock, cleanup := setupRefRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rideID := uuid.New()

	mock.ExpectExec("^INSERT INTO user_ride_refs").
		WithArgs(userID, rideID, models.RelationCreated, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddRef(context.Background(), userID, rideID, models.RelationCreated)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveRef_AbsentIsNoop(t *testing.T) {
	repo, mock, cleanup := setupRefRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rideID := uuid.New()

	mock.ExpectExec("^DELETE FROM user_ride_refs").
		WithArgs(userID, rideID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveRef(context.Background(), userID, rideID)
	assert.NoError(t, err, "removing an absent reference must not fail")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkInactive(t *testing.T) {
	repo, mock, cleanup := setupRefRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rideID := uuid.New()

	mock.ExpectExec("^UPDATE user_ride_refs").
		WithArgs(userID, rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkInactive(context.Background(), userID, rideID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRideIDs(t *testing.T) {
	repo, mock, cleanup := setupRefRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	rows := sqlmock.NewRows([]string{"ride_id"}).
		AddRow(first).
		AddRow(second)

	mock.ExpectQuery("^SELECT ride_id FROM user_ride_refs").
		WithArgs(userID, models.RelationCreated, models.RelationJoined).
		WillReturnRows(rows)

	ids, err := repo.ListRideIDs(context.Background(), userID, models.RelationCreated, models.RelationJoined)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRideIDs_NoRelations(t *testing.T) {
	repo, mock, cleanup := setupRefRepoTest(t)
	defer cleanup()

	ids, err := repo.ListRideIDs(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
