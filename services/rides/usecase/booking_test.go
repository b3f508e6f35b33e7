package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/booking"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/mocks"
)

type ucMocks struct {
	repo *mocks.MockRideRepo
	refs *mocks.MockUserRefRepo
	geo  *mocks.MockGeoIndex
	gw   *mocks.MockRideGW
}

func newTestUC(t *testing.T) (rides.RideUC, ucMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := ucMocks{
		repo: mocks.NewMockRideRepo(ctrl),
		refs: mocks.NewMockUserRefRepo(ctrl),
		geo:  mocks.NewMockGeoIndex(ctrl),
		gw:   mocks.NewMockRideGW(ctrl),
	}

	cfg := &models.Config{
		Migrator: models.MigratorConfig{BatchSize: 100},
		Rides:    models.RidesConfig{DefaultPageLimit: 5, NearbyRadiusKm: 10},
	}

	uc, err := NewRideUC(cfg, m.repo, m.refs, m.geo, m.gw)
	require.NoError(t, err)
	return uc, m
}

func activeRide(ownerID uuid.UUID, totalSeats, seats int, passengers ...models.Passenger) *models.Ride {
	return &models.Ride{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Source:      "Chennai",
		Destination: "Bangalore",
		DepartureAt: time.Now().Add(6 * time.Hour),
		TotalSeats:  totalSeats,
		Seats:       seats,
		Version:     1,
		Passengers:  passengers,
	}
}

func TestCreateRide(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	req := &models.CreateRideRequest{
		Source:      "Chennai",
		Destination: "Bangalore",
		SourceLat:   13.0827,
		SourceLng:   80.2707,
		DepartureAt: time.Now().Add(6 * time.Hour),
		Seats:       3,
		Price:       450,
	}

	m.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	m.refs.EXPECT().AddRef(gomock.Any(), ownerID, gomock.Any(), models.RelationCreated).Return(nil)
	m.geo.EXPECT().AddRide(gomock.Any(), gomock.Any(), req.SourceLat, req.SourceLng).Return(nil)
	m.gw.EXPECT().PublishRideCreated(gomock.Any(), gomock.Any()).Return(nil)

	ride, err := uc.CreateRide(context.Background(), ownerID, req)
	require.NoError(t, err)
	assert.Equal(t, ownerID, ride.OwnerID)
	assert.Equal(t, 3, ride.TotalSeats)
	assert.Equal(t, 3, ride.Seats, "a new ride starts with every seat free")
	assert.Empty(t, ride.Passengers)
}

func TestCreateRide_GeoFailureIsNotFatal(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()

	m.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	m.refs.EXPECT().AddRef(gomock.Any(), ownerID, gomock.Any(), models.RelationCreated).Return(nil)
	m.geo.EXPECT().AddRide(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
	m.gw.EXPECT().PublishRideCreated(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.CreateRide(context.Background(), ownerID, &models.CreateRideRequest{Seats: 2})
	assert.NoError(t, err)
}

func TestRequestJoin(t *testing.T) {
	uc, m := newTestUC(t)
	ride := activeRide(uuid.New(), 2, 2)
	userID := uuid.New()

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	m.repo.EXPECT().SaveBooking(gomock.Any(), ride).Return(nil)

	got, err := uc.RequestJoin(context.Background(), ride.ID, userID)
	require.NoError(t, err)
	require.Len(t, got.Passengers, 1)
	assert.Equal(t, models.PassengerStatusRequested, got.Passengers[0].Status)
	assert.Equal(t, 2, got.Seats)
}

func TestRequestJoin_RideNotFound(t *testing.T) {
	uc, m := newTestUC(t)
	rideID := uuid.New()

	m.repo.EXPECT().GetRide(gomock.Any(), rideID).Return(nil, booking.ErrRideNotFound)

	_, err := uc.RequestJoin(context.Background(), rideID, uuid.New())
	assert.ErrorIs(t, err, booking.ErrRideNotFound)
}

func TestRequestJoin_SelfJoin(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	ride := activeRide(ownerID, 2, 2)

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.RequestJoin(context.Background(), ride.ID, ownerID)
	assert.ErrorIs(t, err, booking.ErrSelfJoin)
}

func TestAcceptPassenger(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	passengerID := uuid.New()
	ride := activeRide(ownerID, 2, 2, models.Passenger{
		UserID: passengerID, Status: models.PassengerStatusRequested,
	})

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	m.repo.EXPECT().SaveBooking(gomock.Any(), ride).Return(nil)
	m.refs.EXPECT().AddRef(gomock.Any(), passengerID, ride.ID, models.RelationJoined).Return(nil)
	m.gw.EXPECT().PublishRideAccepted(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.AcceptPassenger(context.Background(), ride.ID, ownerID, passengerID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Seats)
	assert.Equal(t, models.PassengerStatusAccepted, got.Passengers[0].Status)
}

func TestAcceptPassenger_NotOwner(t *testing.T) {
	uc, m := newTestUC(t)
	ride := activeRide(uuid.New(), 2, 2)

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.AcceptPassenger(context.Background(), ride.ID, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, booking.ErrNotRideOwner)
}

func TestAcceptPassenger_RetriesOnVersionConflict(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	passengerID := uuid.New()

	pending := models.Passenger{UserID: passengerID, Status: models.PassengerStatusRequested}
	first := activeRide(ownerID, 2, 2, pending)
	second := activeRide(ownerID, 2, 1, pending)
	second.ID = first.ID
	second.Version = 2

	gomock.InOrder(
		m.repo.EXPECT().GetRide(gomock.Any(), first.ID).Return(first, nil),
		m.repo.EXPECT().SaveBooking(gomock.Any(), first).Return(booking.ErrVersionConflict),
		m.repo.EXPECT().GetRide(gomock.Any(), first.ID).Return(second, nil),
		m.repo.EXPECT().SaveBooking(gomock.Any(), second).Return(nil),
	)
	m.refs.EXPECT().AddRef(gomock.Any(), passengerID, first.ID, models.RelationJoined).Return(nil)
	m.gw.EXPECT().PublishRideAccepted(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.AcceptPassenger(context.Background(), first.ID, ownerID, passengerID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Seats)
}

// The loser of a race for the last seat re-reads the ride, finds the
// ledger empty and fails without touching the roster.
func TestAcceptPassenger_LastSeatRaceLoser(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	passengerID := uuid.New()
	winnerID := uuid.New()

	first := activeRide(ownerID, 1, 1,
		models.Passenger{UserID: winnerID, Status: models.PassengerStatusRequested},
		models.Passenger{UserID: passengerID, Status: models.PassengerStatusRequested},
	)
	reread := activeRide(ownerID, 1, 0,
		models.Passenger{UserID: winnerID, Status: models.PassengerStatusAccepted},
		models.Passenger{UserID: passengerID, Status: models.PassengerStatusRequested},
	)
	reread.ID = first.ID
	reread.Version = 2

	gomock.InOrder(
		m.repo.EXPECT().GetRide(gomock.Any(), first.ID).Return(first, nil),
		m.repo.EXPECT().SaveBooking(gomock.Any(), first).Return(booking.ErrVersionConflict),
		m.repo.EXPECT().GetRide(gomock.Any(), first.ID).Return(reread, nil),
	)

	_, err := uc.AcceptPassenger(context.Background(), first.ID, ownerID, passengerID)
	assert.ErrorIs(t, err, booking.ErrNoSeatsAvailable)
}

func TestRejectPassenger_Pending(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	passengerID := uuid.New()
	ride := activeRide(ownerID, 2, 2, models.Passenger{
		UserID: passengerID, Status: models.PassengerStatusRequested,
	})

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	m.repo.EXPECT().SaveBooking(gomock.Any(), ride).Return(nil)
	// No RemoveRef: a pending requester never had a joined reference

	got, err := uc.RejectPassenger(context.Background(), ride.ID, ownerID, passengerID)
	require.NoError(t, err)
	assert.Empty(t, got.Passengers)
	assert.Equal(t, 2, got.Seats)
}

func TestRejectPassenger_Accepted(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	passengerID := uuid.New()
	ride := activeRide(ownerID, 2, 1, models.Passenger{
		UserID: passengerID, Status: models.PassengerStatusAccepted,
	})

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	m.repo.EXPECT().SaveBooking(gomock.Any(), ride).Return(nil)
	m.refs.EXPECT().RemoveRef(gomock.Any(), passengerID, ride.ID).Return(nil)

	got, err := uc.RejectPassenger(context.Background(), ride.ID, ownerID, passengerID)
	require.NoError(t, err)
	assert.Empty(t, got.Passengers)
	assert.Equal(t, 2, got.Seats, "rejecting an accepted passenger returns the seat")
}

func TestDeleteRide_RemovesRideRowLast(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	passengerID := uuid.New()
	ride := activeRide(ownerID, 2, 1, models.Passenger{
		UserID: passengerID, Status: models.PassengerStatusAccepted,
	})

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	gomock.InOrder(
		m.refs.EXPECT().RemoveRef(gomock.Any(), passengerID, ride.ID).Return(nil),
		m.refs.EXPECT().RemoveRef(gomock.Any(), ownerID, ride.ID).Return(nil),
		m.repo.EXPECT().DeleteRide(gomock.Any(), ride.ID).Return(nil),
	)
	m.geo.EXPECT().RemoveRide(gomock.Any(), ride.ID).Return(nil)
	m.gw.EXPECT().PublishRideDeleted(gomock.Any(), ride.ID.String()).Return(nil)

	err := uc.DeleteRide(context.Background(), ride.ID, ownerID)
	assert.NoError(t, err)
}

func TestDeleteRide_FanOutContinuesPastFailure(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()
	ride := activeRide(ownerID, 3, 1,
		models.Passenger{UserID: firstID, Status: models.PassengerStatusAccepted},
		models.Passenger{UserID: secondID, Status: models.PassengerStatusAccepted},
	)

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	// The first passenger's removal fails; the second must still be attempted
	m.refs.EXPECT().RemoveRef(gomock.Any(), firstID, ride.ID).Return(assert.AnError)
	m.refs.EXPECT().RemoveRef(gomock.Any(), secondID, ride.ID).Return(nil)
	m.refs.EXPECT().RemoveRef(gomock.Any(), ownerID, ride.ID).Return(nil)
	m.geo.EXPECT().RemoveRide(gomock.Any(), ride.ID).Return(nil)
	m.repo.EXPECT().DeleteRide(gomock.Any(), ride.ID).Return(nil)
	m.gw.EXPECT().PublishRideDeleted(gomock.Any(), ride.ID.String()).Return(nil)

	err := uc.DeleteRide(context.Background(), ride.ID, ownerID)
	assert.NoError(t, err)
}

func TestDeleteRide_OwnerRefFailureAborts(t *testing.T) {
	uc, m := newTestUC(t)
	ownerID := uuid.New()
	ride := activeRide(ownerID, 2, 2)

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	m.refs.EXPECT().RemoveRef(gomock.Any(), ownerID, ride.ID).Return(assert.AnError)

	err := uc.DeleteRide(context.Background(), ride.ID, ownerID)
	assert.Error(t, err)
}

func TestDeleteRide_NotOwner(t *testing.T) {
	uc, m := newTestUC(t)
	ride := activeRide(uuid.New(), 2, 2)

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	err := uc.DeleteRide(context.Background(), ride.ID, uuid.New())
	assert.ErrorIs(t, err, booking.ErrNotRideOwner)
}

func TestListMyRides(t *testing.T) {
	uc, m := newTestUC(t)
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	page := &models.RidePage{Rides: []*models.RideWithOwner{}, TotalPages: 1}

	m.refs.EXPECT().
		ListRideIDs(gomock.Any(), userID, models.RelationCreated, models.RelationJoined).
		Return(ids, nil)
	m.repo.EXPECT().ListByIDs(gomock.Any(), ids, 0, 10).Return(page, nil)

	got, err := uc.ListMyRides(context.Background(), userID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestListMyInactiveRides(t *testing.T) {
	uc, m := newTestUC(t)
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New()}
	page := &models.RidePage{Rides: []*models.RideWithOwner{}, TotalPages: 1}

	m.refs.EXPECT().
		ListRideIDs(gomock.Any(), userID, models.RelationCreatedInactive, models.RelationJoinedInactive).
		Return(ids, nil)
	m.repo.EXPECT().ListInactiveByIDs(gomock.Any(), ids, 0, 10).Return(page, nil)

	got, err := uc.ListMyInactiveRides(context.Background(), userID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestNearbyRides_DefaultRadius(t *testing.T) {
	uc, m := newTestUC(t)

	m.geo.EXPECT().Nearby(gomock.Any(), 13.0, 80.0, 10.0).Return([]models.NearbyRide{}, nil)

	_, err := uc.NearbyRides(context.Background(), 13.0, 80.0, 0)
	assert.NoError(t, err)
}

func TestGetRide_SplitsRoster(t *testing.T) {
	uc, m := newTestUC(t)
	acceptedID := uuid.New()
	pendingID := uuid.New()

	ride := &models.RideWithOwner{OwnerName: "Priyan"}
	ride.ID = uuid.New()
	ride.Passengers = []models.Passenger{
		{UserID: acceptedID, Status: models.PassengerStatusAccepted},
		{UserID: pendingID, Status: models.PassengerStatusRequested},
	}

	m.repo.EXPECT().GetRideWithOwner(gomock.Any(), ride.ID).Return(ride, nil)
	m.repo.EXPECT().UserSummaries(gomock.Any(), []uuid.UUID{acceptedID}).
		Return([]models.UserSummary{{ID: acceptedID, Name: "Asha"}}, nil)
	m.repo.EXPECT().UserSummaries(gomock.Any(), []uuid.UUID{pendingID}).
		Return([]models.UserSummary{{ID: pendingID, Name: "Ravi"}}, nil)

	detail, err := uc.GetRide(context.Background(), ride.ID)
	require.NoError(t, err)
	require.Len(t, detail.Passengers, 1)
	require.Len(t, detail.Requests, 1)
	assert.Equal(t, "Asha", detail.Passengers[0].Name)
	assert.Equal(t, "Ravi", detail.Requests[0].Name)
}
