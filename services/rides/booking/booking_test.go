package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

func newTestRide(totalSeats int) *models.Ride {
	return &models.Ride{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		TotalSeats: totalSeats,
		Seats:      totalSeats,
	}
}

func TestReserveSeat(t *testing.T) {
	ride := newTestRide(2)

	require.NoError(t, ReserveSeat(ride))
	assert.Equal(t, 1, ride.Seats)

	require.NoError(t, ReserveSeat(ride))
	assert.Equal(t, 0, ride.Seats)

	err := ReserveSeat(ride)
	assert.ErrorIs(t, err, ErrNoSeatsAvailable)
	assert.Equal(t, 0, ride.Seats)
}

func TestReleaseSeat_ClampsAtCapacity(t *testing.T) {
	ride := newTestRide(3)
	ride.Seats = 2

	ReleaseSeat(ride)
	assert.Equal(t, 3, ride.Seats)

	// Releasing at full capacity must not inflate the ledger
	ReleaseSeat(ride)
	assert.Equal(t, 3, ride.Seats)
}

func TestRequestJoin(t *testing.T) {
	ride := newTestRide(2)
	userID := uuid.New()

	require.NoError(t, RequestJoin(ride, userID))
	require.Len(t, ride.Passengers, 1)
	assert.Equal(t, userID, ride.Passengers[0].UserID)
	assert.Equal(t, models.PassengerStatusRequested, ride.Passengers[0].Status)
	assert.Equal(t, 2, ride.Seats, "requesting must not touch the seat ledger")
}

func TestRequestJoin_SelfJoin(t *testing.T) {
	ride := newTestRide(2)

	err := RequestJoin(ride, ride.OwnerID)
	assert.ErrorIs(t, err, ErrSelfJoin)
	assert.Empty(t, ride.Passengers)
}

func TestRequestJoin_Duplicate(t *testing.T) {
	ride := newTestRide(2)
	userID := uuid.New()

	require.NoError(t, RequestJoin(ride, userID))

	err := RequestJoin(ride, userID)
	assert.ErrorIs(t, err, ErrDuplicateRequest)
	assert.Len(t, ride.Passengers, 1)
}

func TestRequestJoin_DuplicateAfterAccept(t *testing.T) {
	ride := newTestRide(2)
	userID := uuid.New()

	require.NoError(t, RequestJoin(ride, userID))
	require.NoError(t, Accept(ride, userID))

	err := RequestJoin(ride, userID)
	assert.ErrorIs(t, err, ErrDuplicateRequest)
}

func TestRequestJoin_FIFOOrder(t *testing.T) {
	ride := newTestRide(2)
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	require.NoError(t, RequestJoin(ride, first))
	require.NoError(t, RequestJoin(ride, second))
	require.NoError(t, RequestJoin(ride, third))

	require.Len(t, ride.Passengers, 3)
	assert.Equal(t, first, ride.Passengers[0].UserID)
	assert.Equal(t, second, ride.Passengers[1].UserID)
	assert.Equal(t, third, ride.Passengers[2].UserID)
}

func TestAccept(t *testing.T) {
	ride := newTestRide(2)
	userID := uuid.New()
	require.NoError(t, RequestJoin(ride, userID))

	require.NoError(t, Accept(ride, userID))

	assert.Equal(t, 1, ride.Seats)
	assert.Equal(t, models.PassengerStatusAccepted, ride.Passengers[0].Status)
}

func TestAccept_RequestNotFound(t *testing.T) {
	ride := newTestRide(2)

	err := Accept(ride, uuid.New())
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.Equal(t, 2, ride.Seats)
}

func TestAccept_AlreadyAccepted(t *testing.T) {
	ride := newTestRide(2)
	userID := uuid.New()
	require.NoError(t, RequestJoin(ride, userID))
	require.NoError(t, Accept(ride, userID))

	err := Accept(ride, userID)
	assert.ErrorIs(t, err, ErrAlreadyAccepted)
	assert.Equal(t, 1, ride.Seats, "double accept must not burn a second seat")
}

func TestAccept_NoSeats_LeavesRequestPending(t *testing.T) {
	ride := newTestRide(1)
	accepted := uuid.New()
	waiting := uuid.New()
	require.NoError(t, RequestJoin(ride, accepted))
	require.NoError(t, RequestJoin(ride, waiting))
	require.NoError(t, Accept(ride, accepted))

	err := Accept(ride, waiting)
	assert.ErrorIs(t, err, ErrNoSeatsAvailable)

	// The failed accept leaves the request on the roster untouched
	require.Len(t, ride.Passengers, 2)
	assert.Equal(t, models.PassengerStatusRequested, ride.Passengers[1].Status)
}

func TestReject_PendingRequest(t *testing.T) {
	ride := newTestRide(2)
	userID := uuid.New()
	require.NoError(t, RequestJoin(ride, userID))

	wasAccepted, err := Reject(ride, userID)
	require.NoError(t, err)
	assert.False(t, wasAccepted)
	assert.Empty(t, ride.Passengers)
	assert.Equal(t, 2, ride.Seats, "rejecting a pending request must not release a seat")
}

func TestReject_AcceptedPassenger(t *testing.T) {
	ride := newTestRide(2)
	userID := uuid.New()
	require.NoError(t, RequestJoin(ride, userID))
	require.NoError(t, Accept(ride, userID))
	require.Equal(t, 1, ride.Seats)

	wasAccepted, err := Reject(ride, userID)
	require.NoError(t, err)
	assert.True(t, wasAccepted)
	assert.Empty(t, ride.Passengers)
	assert.Equal(t, 2, ride.Seats, "rejecting an accepted passenger returns the seat")
}

func TestReject_RequestNotFound(t *testing.T) {
	ride := newTestRide(2)

	_, err := Reject(ride, uuid.New())
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

// TestBookingScenario_TwoSeats walks a two seat ride through the full
// workflow: three riders request, two get accepted, the third is turned
// away until a seat frees up.
func TestBookingScenario_TwoSeats(t *testing.T) {
	ride := newTestRide(2)
	userA := uuid.New()
	userB := uuid.New()
	userC := uuid.New()

	require.NoError(t, RequestJoin(ride, userA))
	require.NoError(t, RequestJoin(ride, userB))
	require.NoError(t, RequestJoin(ride, userC))

	require.NoError(t, Accept(ride, userA))
	require.NoError(t, Accept(ride, userB))
	assert.Equal(t, 0, ride.Seats)

	// Ride is full; C stays pending
	assert.ErrorIs(t, Accept(ride, userC), ErrNoSeatsAvailable)

	// B drops out, freeing a seat for C
	wasAccepted, err := Reject(ride, userB)
	require.NoError(t, err)
	assert.True(t, wasAccepted)
	assert.Equal(t, 1, ride.Seats)

	require.NoError(t, Accept(ride, userC))
	assert.Equal(t, 0, ride.Seats)
	assert.Equal(t, 2, ride.AcceptedCount())
}

// TestSeatLedgerInvariant checks that seats always equals capacity minus
// accepted passengers across an arbitrary interleaving of operations.
func TestSeatLedgerInvariant(t *testing.T) {
	ride := newTestRide(3)
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	check := func() {
		t.Helper()
		assert.Equal(t, ride.TotalSeats-ride.AcceptedCount(), ride.Seats)
		assert.GreaterOrEqual(t, ride.Seats, 0)
	}

	for _, u := range users {
		require.NoError(t, RequestJoin(ride, u))
		check()
	}

	require.NoError(t, Accept(ride, users[0]))
	check()
	require.NoError(t, Accept(ride, users[1]))
	check()

	_, err := Reject(ride, users[0])
	require.NoError(t, err)
	check()

	require.NoError(t, Accept(ride, users[2]))
	check()
	require.NoError(t, Accept(ride, users[3]))
	check()

	assert.ErrorIs(t, RequestJoin(ride, users[1]), ErrDuplicateRequest)
	check()
}
