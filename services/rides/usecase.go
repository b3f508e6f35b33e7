package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/PriyanKishoreMS/RideAlong-Server/services/rides RideUC

// RideUC defines the ride booking business logic
type RideUC interface {
	// CreateRide persists a new ride for the owner and appends it to the
	// owner's created list
	CreateRide(ctx context.Context, ownerID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error)

	// RequestJoin appends a pending join request to the ride's roster
	RequestJoin(ctx context.Context, rideID, userID uuid.UUID) (*models.Ride, error)

	// AcceptPassenger accepts a pending request, reserving a seat and
	// recording the ride in the passenger's joined list
	AcceptPassenger(ctx context.Context, rideID, ownerID, passengerID uuid.UUID) (*models.Ride, error)

	// RejectPassenger removes a request from the roster, releasing the
	// seat and the joined reference when it had been accepted
	RejectPassenger(ctx context.Context, rideID, ownerID, passengerID uuid.UUID) (*models.Ride, error)

	// DeleteRide removes an active ride, its geo entry and every
	// back-reference held by the owner and the roster members
	DeleteRide(ctx context.Context, rideID, requesterID uuid.UUID) error

	// GetRide returns a ride with its roster resolved to public profiles
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.RideDetail, error)

	// ListRides returns a page of active rides matching the search params
	ListRides(ctx context.Context, params models.RideSearchParams) (*models.RidePage, error)

	// ListMyRides returns a page of the caller's created and joined rides
	ListMyRides(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RidePage, error)

	// ListMyInactiveRides returns a page of the caller's archived rides
	ListMyInactiveRides(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RidePage, error)

	// ListFollowingRides returns a page of rides posted by followed users
	ListFollowingRides(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RidePage, error)

	// NearbyRides returns active rides whose source lies within radiusKm
	// of the given point
	NearbyRides(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyRide, error)
}
