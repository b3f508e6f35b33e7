package rides

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/PriyanKishoreMS/RideAlong-Server/services/rides RideRepo,UserRefRepo,GeoIndex

// RideRepo defines data access for active and inactive ride records
type RideRepo interface {
	// CreateRide persists a new ride with an empty roster
	CreateRide(ctx context.Context, ride *models.Ride) error

	// GetRide loads a ride and its roster in FIFO arrival order.
	// Returns booking.ErrRideNotFound when absent.
	GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)

	// SaveBooking persists the ride's seat count and roster atomically,
	// guarded by the ride's version. Returns booking.ErrVersionConflict
	// when another writer got there first.
	SaveBooking(ctx context.Context, ride *models.Ride) error

	// DeleteRide removes an active ride and its roster
	DeleteRide(ctx context.Context, id uuid.UUID) error

	// ListExpired returns active rides whose departure is before cutoff
	ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]*models.Ride, error)

	// CopyToInactive snapshots a ride and its roster into the inactive
	// store. Re-copying an already migrated ride is a no-op.
	CopyToInactive(ctx context.Context, ride *models.Ride, migratedAt time.Time) error

	// SearchRides returns a page of active rides matching source or
	// destination, ordered by departure time
	SearchRides(ctx context.Context, params models.RideSearchParams) (*models.RidePage, error)

	// GetRideWithOwner loads a single active ride joined with its owner profile
	GetRideWithOwner(ctx context.Context, id uuid.UUID) (*models.RideWithOwner, error)

	// ListByIDs returns a page of active rides among the given ids
	ListByIDs(ctx context.Context, ids []uuid.UUID, page, limit int) (*models.RidePage, error)

	// ListInactiveByIDs returns a page of archived rides among the given ids
	ListInactiveByIDs(ctx context.Context, ids []uuid.UUID, page, limit int) (*models.RidePage, error)

	// ListByOwners returns a page of active rides posted by the given owners
	ListByOwners(ctx context.Context, ownerIDs []uuid.UUID, page, limit int) (*models.RidePage, error)

	// ListFollowing returns the ids of users the given user follows
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// UserSummaries resolves public profiles for the given user ids
	UserSummaries(ctx context.Context, ids []uuid.UUID) ([]models.UserSummary, error)
}

// UserRefRepo maintains the denormalized user-to-ride reference lists.
// All mutations are idempotent so a crashed operation can be retried.
type UserRefRepo interface {
	// AddRef records that rideID belongs to userID's list for relation
	AddRef(ctx context.Context, userID, rideID uuid.UUID, relation models.RideRelation) error

	// RemoveRef drops the reference between userID and rideID; removing
	// an absent reference is a no-op
	RemoveRef(ctx context.Context, userID, rideID uuid.UUID) error

	// MarkInactive moves an active relation to its inactive counterpart
	// (created to created_inactive, joined to joined_inactive)
	MarkInactive(ctx context.Context, userID, rideID uuid.UUID) error

	// ListRideIDs returns ride ids referenced by userID under any of the
	// given relations, oldest first
	ListRideIDs(ctx context.Context, userID uuid.UUID, relations ...models.RideRelation) ([]uuid.UUID, error)
}

// GeoIndex maintains the geo set of active ride source points
type GeoIndex interface {
	AddRide(ctx context.Context, rideID uuid.UUID, lat, lng float64) error
	RemoveRide(ctx context.Context, rideID uuid.UUID) error
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyRide, error)
}
