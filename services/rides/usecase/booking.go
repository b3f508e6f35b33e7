package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/metrics"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/retry"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/utils"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/booking"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg     *models.Config
	repo    rides.RideRepo
	refs    rides.UserRefRepo
	geo     rides.GeoIndex
	gw      rides.RideGW
	retrier *retry.Retrier
}

// NewRideUC creates a new ride booking use case
func NewRideUC(
	cfg *models.Config,
	repo rides.RideRepo,
	refs rides.UserRefRepo,
	geo rides.GeoIndex,
	gw rides.RideGW,
) (rides.RideUC, error) {
	// Only version conflicts are worth retrying; domain errors are final.
	retryCfg := retry.Config{
		MaxRetries: 3,
		BaseDelay:  20 * time.Millisecond,
		MaxDelay:   500 * time.Millisecond,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return errors.Is(err, booking.ErrVersionConflict)
		},
	}

	return &rideUC{
		cfg:     cfg,
		repo:    repo,
		refs:    refs,
		geo:     geo,
		gw:      gw,
		retrier: retry.New(retryCfg, logger.GetGlobalLogger()),
	}, nil
}

// CreateRide persists a new ride for the owner and appends it to the
// owner's created list
func (uc *rideUC) CreateRide(ctx context.Context, ownerID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error) {
	distance := req.Distance
	if distance == 0 {
		distance = utils.CalculateDistance(
			utils.GeoPoint{Latitude: req.SourceLat, Longitude: req.SourceLng},
			utils.GeoPoint{Latitude: req.DestinationLat, Longitude: req.DestinationLng},
		)
	}

	ride := &models.Ride{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Source:         req.Source,
		Destination:    req.Destination,
		SourceLat:      req.SourceLat,
		SourceLng:      req.SourceLng,
		DestinationLat: req.DestinationLat,
		DestinationLng: req.DestinationLng,
		Distance:       distance,
		TravelTime:     req.TravelTime,
		DepartureAt:    req.DepartureAt,
		TotalSeats:     req.Seats,
		Seats:          req.Seats,
		Price:          req.Price,
		VehicleType:    req.VehicleType,
		VehicleNumber:  req.VehicleNumber,
		VehicleModel:   req.VehicleModel,
		Passengers:     []models.Passenger{},
	}

	if err := uc.repo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	if err := uc.refs.AddRef(ctx, ownerID, ride.ID, models.RelationCreated); err != nil {
		return nil, fmt.Errorf("failed to record created reference: %w", err)
	}

	// Geo index and event publish are best effort; the ride exists either way.
	if err := uc.geo.AddRide(ctx, ride.ID, ride.SourceLat, ride.SourceLng); err != nil {
		logger.WarnCtx(ctx, "Failed to index ride location",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
	if err := uc.gw.PublishRideCreated(ctx, models.RideCreatedEvent{
		RideID:      ride.ID,
		OwnerID:     ownerID,
		Source:      ride.Source,
		Destination: ride.Destination,
		DepartureAt: ride.DepartureAt,
		Seats:       ride.TotalSeats,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ride created event",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}

	metrics.IncRideCreated()
	logger.InfoCtx(ctx, "Ride created",
		logger.String("ride_id", ride.ID.String()),
		logger.String("owner_id", ownerID.String()),
		logger.Int("seats", ride.TotalSeats))

	return ride, nil
}

// mutateBooking loads the ride, applies mutate to it and persists the
// result under the ride's version, retrying the whole cycle when a
// concurrent writer wins the race.
func (uc *rideUC) mutateBooking(ctx context.Context, rideID uuid.UUID, mutate func(*models.Ride) error) (*models.Ride, error) {
	var ride *models.Ride

	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var err error
		ride, err = uc.repo.GetRide(ctx, rideID)
		if err != nil {
			return err
		}
		if err := mutate(ride); err != nil {
			return err
		}
		if err := uc.repo.SaveBooking(ctx, ride); err != nil {
			if errors.Is(err, booking.ErrVersionConflict) {
				metrics.IncBookingConflict()
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ride, nil
}

// RequestJoin appends a pending join request to the ride's roster
func (uc *rideUC) RequestJoin(ctx context.Context, rideID, userID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.mutateBooking(ctx, rideID, func(r *models.Ride) error {
		return booking.RequestJoin(r, userID)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBooking("requested")
	logger.InfoCtx(ctx, "Join requested",
		logger.String("ride_id", rideID.String()),
		logger.String("user_id", userID.String()))

	return ride, nil
}

// AcceptPassenger accepts a pending request, reserving a seat and
// recording the ride in the passenger's joined list
func (uc *rideUC) AcceptPassenger(ctx context.Context, rideID, ownerID, passengerID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.mutateBooking(ctx, rideID, func(r *models.Ride) error {
		if r.OwnerID != ownerID {
			return booking.ErrNotRideOwner
		}
		return booking.Accept(r, passengerID)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.refs.AddRef(ctx, passengerID, rideID, models.RelationJoined); err != nil {
		return nil, fmt.Errorf("failed to record joined reference: %w", err)
	}

	if err := uc.gw.PublishRideAccepted(ctx, models.RideAcceptedEvent{
		RideID:      rideID,
		OwnerID:     ownerID,
		PassengerID: passengerID,
		Destination: ride.Destination,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ride accepted event",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}

	metrics.IncBooking("accepted")
	logger.InfoCtx(ctx, "Passenger accepted",
		logger.String("ride_id", rideID.String()),
		logger.String("passenger_id", passengerID.String()),
		logger.Int("seats_left", ride.Seats))

	return ride, nil
}

// RejectPassenger removes a request from the roster, releasing the seat
// and the joined reference when it had been accepted
func (uc *rideUC) RejectPassenger(ctx context.Context, rideID, ownerID, passengerID uuid.UUID) (*models.Ride, error) {
	var wasAccepted bool

	ride, err := uc.mutateBooking(ctx, rideID, func(r *models.Ride) error {
		if r.OwnerID != ownerID {
			return booking.ErrNotRideOwner
		}
		var err error
		wasAccepted, err = booking.Reject(r, passengerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if wasAccepted {
		if err := uc.refs.RemoveRef(ctx, passengerID, rideID); err != nil {
			return nil, fmt.Errorf("failed to remove joined reference: %w", err)
		}
	}

	metrics.IncBooking("rejected")
	logger.InfoCtx(ctx, "Passenger rejected",
		logger.String("ride_id", rideID.String()),
		logger.String("passenger_id", passengerID.String()),
		logger.Bool("was_accepted", wasAccepted))

	return ride, nil
}

// DeleteRide removes an active ride. Every back-reference, the geo entry
// and the event go first; the ride row itself is deleted last so a crash
// mid fan-out leaves no reference pointing at a missing ride.
func (uc *rideUC) DeleteRide(ctx context.Context, rideID, requesterID uuid.UUID) error {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.OwnerID != requesterID {
		return booking.ErrNotRideOwner
	}

	// Best effort: one passenger's failure must not block the rest. A
	// leftover reference points at a ride id that no longer resolves,
	// so list queries drop it on the join.
	for _, p := range ride.Passengers {
		if err := uc.refs.RemoveRef(ctx, p.UserID, rideID); err != nil {
			logger.WarnCtx(ctx, "Failed to remove passenger reference",
				logger.String("ride_id", rideID.String()),
				logger.String("passenger_id", p.UserID.String()),
				logger.Err(err))
		}
	}
	if err := uc.refs.RemoveRef(ctx, ride.OwnerID, rideID); err != nil {
		return fmt.Errorf("failed to remove owner reference: %w", err)
	}

	if err := uc.geo.RemoveRide(ctx, rideID); err != nil {
		logger.WarnCtx(ctx, "Failed to remove ride from geo index",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}

	if err := uc.repo.DeleteRide(ctx, rideID); err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}

	if err := uc.gw.PublishRideDeleted(ctx, rideID.String()); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ride deleted event",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Ride deleted",
		logger.String("ride_id", rideID.String()),
		logger.String("owner_id", requesterID.String()))

	return nil
}
