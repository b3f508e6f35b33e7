package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

// GetRide returns a ride with its roster resolved to public profiles,
// split into accepted passengers and pending requests
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.RideDetail, error) {
	ride, err := uc.repo.GetRideWithOwner(ctx, rideID)
	if err != nil {
		return nil, err
	}

	var acceptedIDs, pendingIDs []uuid.UUID
	for _, p := range ride.Passengers {
		if p.Status == models.PassengerStatusAccepted {
			acceptedIDs = append(acceptedIDs, p.UserID)
		} else {
			pendingIDs = append(pendingIDs, p.UserID)
		}
	}

	accepted, err := uc.repo.UserSummaries(ctx, acceptedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve passengers: %w", err)
	}
	pending, err := uc.repo.UserSummaries(ctx, pendingIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requests: %w", err)
	}

	return &models.RideDetail{
		Ride:       ride,
		Passengers: accepted,
		Requests:   pending,
	}, nil
}

// ListRides returns a page of active rides matching the search params
func (uc *rideUC) ListRides(ctx context.Context, params models.RideSearchParams) (*models.RidePage, error) {
	return uc.repo.SearchRides(ctx, params)
}

// ListMyRides returns a page of the caller's created and joined rides
func (uc *rideUC) ListMyRides(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RidePage, error) {
	ids, err := uc.refs.ListRideIDs(ctx, userID, models.RelationCreated, models.RelationJoined)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListByIDs(ctx, ids, page, limit)
}

// ListMyInactiveRides returns a page of the caller's archived rides
func (uc *rideUC) ListMyInactiveRides(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RidePage, error) {
	ids, err := uc.refs.ListRideIDs(ctx, userID, models.RelationCreatedInactive, models.RelationJoinedInactive)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListInactiveByIDs(ctx, ids, page, limit)
}

// ListFollowingRides returns a page of rides posted by users the caller
// follows
func (uc *rideUC) ListFollowingRides(ctx context.Context, userID uuid.UUID, page, limit int) (*models.RidePage, error) {
	following, err := uc.repo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListByOwners(ctx, following, page, limit)
}

// NearbyRides returns active rides whose source lies within radiusKm of
// the given point, falling back to the configured default radius
func (uc *rideUC) NearbyRides(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyRide, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Rides.NearbyRadiusKm
	}
	return uc.geo.Nearby(ctx, lat, lng, radiusKm)
}
