package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/booking"
)

// RideRepo implements rides.RideRepo on PostgreSQL
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRide persists a new ride with an empty roster
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	now := time.Now().UTC()
	ride.CreatedAt = now
	ride.UpdatedAt = now
	ride.Version = 1

	query := `
		INSERT INTO rides (
			id, owner_id, source, destination,
			source_lat, source_lng, destination_lat, destination_lng,
			distance, travel_time, departure_at,
			total_seats, seats, price,
			vehicle_type, vehicle_number, vehicle_model,
			version, created_at, updated_at
		) VALUES (
			:id, :owner_id, :source, :destination,
			:source_lat, :source_lng, :destination_lat, :destination_lng,
			:distance, :travel_time, :departure_at,
			:total_seats, :seats, :price,
			:vehicle_type, :vehicle_number, :vehicle_model,
			:version, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, ride); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRide loads a ride and its roster in FIFO arrival order
func (r *RideRepo) GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, `SELECT * FROM rides WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	passengers, err := r.loadRoster(ctx, id)
	if err != nil {
		return nil, err
	}
	ride.Passengers = passengers

	return &ride, nil
}

func (r *RideRepo) loadRoster(ctx context.Context, rideID uuid.UUID) ([]models.Passenger, error) {
	var passengers []models.Passenger
	query := `
		SELECT ride_id, user_id, status, requested_at
		FROM ride_passengers
		WHERE ride_id = $1
		ORDER BY requested_at ASC
	`
	if err := r.db.SelectContext(ctx, &passengers, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return passengers, nil
}

// SaveBooking persists the ride's seat count and roster in one transaction,
// guarded by the version column. Seats and roster always change together so
// the ledger can never drift from the accepted count.
func (r *RideRepo) SaveBooking(ctx context.Context, ride *models.Ride) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE rides
		SET seats = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND version = $4
	`, ride.Seats, time.Now().UTC(), ride.ID, ride.Version)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		// Either a concurrent writer bumped the version or the ride is
		// gone; the caller re-reads and retries in both cases.
		return booking.ErrVersionConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM ride_passengers WHERE ride_id = $1`, ride.ID); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}
	for _, p := range ride.Passengers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ride_passengers (ride_id, user_id, status, requested_at)
			VALUES ($1, $2, $3, $4)
		`, ride.ID, p.UserID, p.Status, p.RequestedAt)
		if err != nil {
			return fmt.Errorf("failed to insert roster entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}

	ride.Version++
	return nil
}

// DeleteRide removes an active ride; the roster rows go with it via
// ON DELETE CASCADE
func (r *RideRepo) DeleteRide(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}
	return nil
}

// ListExpired returns active rides whose departure is before cutoff
func (r *RideRepo) ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]*models.Ride, error) {
	query := `SELECT * FROM rides WHERE departure_at < $1 ORDER BY departure_at ASC`
	args := []interface{}{cutoff}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	var rideRows []models.Ride
	if err := r.db.SelectContext(ctx, &rideRows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list expired rides: %w", err)
	}

	result := make([]*models.Ride, 0, len(rideRows))
	for i := range rideRows {
		ride := rideRows[i]
		passengers, err := r.loadRoster(ctx, ride.ID)
		if err != nil {
			return nil, err
		}
		ride.Passengers = passengers
		result = append(result, &ride)
	}
	return result, nil
}

// CopyToInactive snapshots a ride and its roster into the inactive store.
// Both inserts tolerate an existing snapshot so a retried migration run
// never duplicates or fails on a ride it already copied.
func (r *RideRepo) CopyToInactive(ctx context.Context, ride *models.Ride, migratedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO inactive_rides (
			id, owner_id, source, destination,
			source_lat, source_lng, destination_lat, destination_lng,
			distance, travel_time, departure_at,
			total_seats, seats, price,
			vehicle_type, vehicle_number, vehicle_model,
			created_at, migrated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id) DO NOTHING
	`,
		ride.ID, ride.OwnerID, ride.Source, ride.Destination,
		ride.SourceLat, ride.SourceLng, ride.DestinationLat, ride.DestinationLng,
		ride.Distance, ride.TravelTime, ride.DepartureAt,
		ride.TotalSeats, ride.Seats, ride.Price,
		ride.VehicleType, ride.VehicleNumber, ride.VehicleModel,
		ride.CreatedAt, migratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to copy ride: %w", err)
	}

	for _, p := range ride.Passengers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO inactive_ride_passengers (ride_id, user_id, status, requested_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (ride_id, user_id) DO NOTHING
		`, ride.ID, p.UserID, p.Status, p.RequestedAt)
		if err != nil {
			return fmt.Errorf("failed to copy roster entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
