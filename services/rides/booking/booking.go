// Package booking holds the pure seat ledger and roster rules for a ride.
// All functions mutate the ride in memory only; persisting the result is
// the caller's job.
package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

// ReserveSeat takes one free seat from the ride's ledger.
// Fails with ErrNoSeatsAvailable when the ledger is empty.
func ReserveSeat(ride *models.Ride) error {
	if ride.Seats <= 0 {
		return ErrNoSeatsAvailable
	}
	ride.Seats--
	return nil
}

// ReleaseSeat returns one seat to the ledger, clamped at the ride's
// total capacity so a stray release can never inflate the ledger.
func ReleaseSeat(ride *models.Ride) {
	if ride.Seats < ride.TotalSeats {
		ride.Seats++
	}
}

// RequestJoin appends a pending join request to the ride's roster.
// The owner cannot request their own ride and a user can hold at most
// one roster entry, accepted or not.
func RequestJoin(ride *models.Ride, userID uuid.UUID) error {
	if userID == ride.OwnerID {
		return ErrSelfJoin
	}
	if findPassenger(ride, userID) != nil {
		return ErrDuplicateRequest
	}
	ride.Passengers = append(ride.Passengers, models.Passenger{
		RideID:      ride.ID,
		UserID:      userID,
		Status:      models.PassengerStatusRequested,
		RequestedAt: time.Now().UTC(),
	})
	return nil
}

// Accept promotes a pending request to an accepted passenger, reserving
// a seat first. When no seat is free the request stays pending on the
// roster so the owner can reject it or free a seat and retry.
func Accept(ride *models.Ride, userID uuid.UUID) error {
	p := findPassenger(ride, userID)
	if p == nil {
		return ErrRequestNotFound
	}
	if p.Status == models.PassengerStatusAccepted {
		return ErrAlreadyAccepted
	}
	if err := ReserveSeat(ride); err != nil {
		return err
	}
	p.Status = models.PassengerStatusAccepted
	return nil
}

// Reject removes a user's roster entry. When the entry had been accepted
// its seat goes back to the ledger and wasAccepted reports true so the
// caller can also drop the passenger's joined reference.
func Reject(ride *models.Ride, userID uuid.UUID) (wasAccepted bool, err error) {
	for i := range ride.Passengers {
		if ride.Passengers[i].UserID != userID {
			continue
		}
		wasAccepted = ride.Passengers[i].Status == models.PassengerStatusAccepted
		if wasAccepted {
			ReleaseSeat(ride)
		}
		ride.Passengers = append(ride.Passengers[:i], ride.Passengers[i+1:]...)
		return wasAccepted, nil
	}
	return false, ErrRequestNotFound
}

func findPassenger(ride *models.Ride, userID uuid.UUID) *models.Passenger {
	for i := range ride.Passengers {
		if ride.Passengers[i].UserID == userID {
			return &ride.Passengers[i]
		}
	}
	return nil
}
