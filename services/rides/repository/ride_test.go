package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/booking"
)

func setupRideRepoTest(t *testing.T) (*RideRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &RideRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateRide(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	ride := &models.Ride{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Source:      "Chennai",
		Destination: "Bangalore",
		TotalSeats:  3,
		Seats:       3,
	}

	mock.ExpectExec("^INSERT INTO rides").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateRide(context.Background(), ride)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ride.Version, "a new ride starts at version 1")
	assert.False(t, ride.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide_NotFound(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	mock.ExpectQuery("^SELECT \\* FROM rides WHERE id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRide(context.Background(), rideID)
	assert.ErrorIs(t, err, booking.ErrRideNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide_LoadsRosterInOrder(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	ownerID := uuid.New()
	firstUser := uuid.New()
	secondUser := uuid.New()
	now := time.Now().UTC()

	rideRows := sqlmock.NewRows([]string{
		"id", "owner_id", "source", "destination", "total_seats", "seats", "version",
	}).AddRow(rideID, ownerID, "Chennai", "Bangalore", 2, 1, 3)

	mock.ExpectQuery("^SELECT \\* FROM rides WHERE id").
		WithArgs(rideID).
		WillReturnRows(rideRows)

	rosterRows := sqlmock.NewRows([]string{"ride_id", "user_id", "status", "requested_at"}).
		AddRow(rideID, firstUser, int16(models.PassengerStatusAccepted), now.Add(-time.Hour)).
		AddRow(rideID, secondUser, int16(models.PassengerStatusRequested), now)

	mock.ExpectQuery("FROM ride_passengers").
		WithArgs(rideID).
		WillReturnRows(rosterRows)

	ride, err := repo.GetRide(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ride.Version)
	require.Len(t, ride.Passengers, 2)
	assert.Equal(t, firstUser, ride.Passengers[0].UserID)
	assert.Equal(t, secondUser, ride.Passengers[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBooking_Success(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	passengerID := uuid.New()
	ride := &models.Ride{
		ID:      rideID,
		Seats:   1,
		Version: 2,
		Passengers: []models.Passenger{
			{RideID: rideID, UserID: passengerID, Status: models.PassengerStatusAccepted, RequestedAt: time.Now().UTC()},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE rides").
		WithArgs(1, sqlmock.AnyArg(), rideID, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^DELETE FROM ride_passengers").
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO ride_passengers").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SaveBooking(context.Background(), ride)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ride.Version, "version advances with the write")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBooking_VersionConflict(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	ride := &models.Ride{ID: uuid.New(), Seats: 0, Version: 2}

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE rides").
		WithArgs(0, sqlmock.AnyArg(), ride.ID, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.SaveBooking(context.Background(), ride)
	assert.ErrorIs(t, err, booking.ErrVersionConflict)
	assert.Equal(t, int64(2), ride.Version, "a lost write leaves the version untouched")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRide(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	mock.ExpectExec("^DELETE FROM rides").
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteRide(context.Background(), rideID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListExpired(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	cutoff := time.Now().UTC()
	rideID := uuid.New()

	rideRows := sqlmock.NewRows([]string{"id", "owner_id", "departure_at", "total_seats", "seats"}).
		AddRow(rideID, uuid.New(), cutoff.Add(-2*time.Hour), 3, 2)

	mock.ExpectQuery("^SELECT \\* FROM rides WHERE departure_at").
		WithArgs(cutoff, 10).
		WillReturnRows(rideRows)
	mock.ExpectQuery("FROM ride_passengers").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "user_id", "status", "requested_at"}))

	expired, err := repo.ListExpired(context.Background(), cutoff, 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, rideID, expired[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyToInactive(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	ride := &models.Ride{
		ID:      rideID,
		OwnerID: uuid.New(),
		Passengers: []models.Passenger{
			{RideID: rideID, UserID: uuid.New(), Status: models.PassengerStatusAccepted, RequestedAt: time.Now().UTC()},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("^INSERT INTO inactive_rides").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO inactive_ride_passengers").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CopyToInactive(context.Background(), ride, time.Now().UTC())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An already migrated ride hits the ON CONFLICT clauses and reports zero
// affected rows; the copy still succeeds.
func TestCopyToInactive_AlreadyCopied(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	ride := &models.Ride{ID: uuid.New(), OwnerID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec("^INSERT INTO inactive_rides").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.CopyToInactive(context.Background(), ride, time.Now().UTC())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
