package booking

import "errors"

// Domain errors for the booking workflow. Handlers map these onto HTTP
// status codes; everything else is treated as an internal error.
var (
	// ErrRideNotFound indicates the ride does not exist in the active store
	ErrRideNotFound = errors.New("ride not found")

	// ErrNoSeatsAvailable indicates the ride has no free seats left
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrSelfJoin indicates an owner tried to join their own ride
	ErrSelfJoin = errors.New("cannot join own ride")

	// ErrDuplicateRequest indicates the user already has a roster entry
	ErrDuplicateRequest = errors.New("join request already exists")

	// ErrRequestNotFound indicates no roster entry exists for the user
	ErrRequestNotFound = errors.New("join request not found")

	// ErrAlreadyAccepted indicates the roster entry was already accepted
	ErrAlreadyAccepted = errors.New("passenger already accepted")

	// ErrNotRideOwner indicates the caller does not own the ride
	ErrNotRideOwner = errors.New("not the ride owner")

	// ErrVersionConflict indicates a concurrent writer updated the ride
	// between read and write; the operation should be retried
	ErrVersionConflict = errors.New("ride was modified concurrently")
)
