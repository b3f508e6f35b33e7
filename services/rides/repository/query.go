package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides/booking"
)

const rideOwnerColumns = `
	r.id, r.owner_id, r.source, r.destination,
	r.source_lat, r.source_lng, r.destination_lat, r.destination_lng,
	r.distance, r.travel_time, r.departure_at,
	r.total_seats, r.seats, r.price,
	r.vehicle_type, r.vehicle_number, r.vehicle_model,
	r.version, r.created_at, r.updated_at,
	u.name AS owner_name, COALESCE(u.photo_url, '') AS owner_photo_url
`

// SearchRides returns a page of active rides whose source or destination
// matches the search text, ordered by departure time
func (r *RideRepo) SearchRides(ctx context.Context, params models.RideSearchParams) (*models.RidePage, error) {
	page, limit := normalizePage(params.Page, params.Limit, r.defaultLimit())
	pattern := "%" + params.Search + "%"

	query := `
		SELECT ` + rideOwnerColumns + `
		FROM rides r
		JOIN users u ON u.id = r.owner_id
		WHERE r.source ILIKE $1 OR r.destination ILIKE $1
		ORDER BY r.departure_at ASC
		LIMIT $2 OFFSET $3
	`
	var rideRows []*models.RideWithOwner
	if err := r.db.SelectContext(ctx, &rideRows, query, pattern, limit, page*limit); err != nil {
		return nil, fmt.Errorf("failed to search rides: %w", err)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM rides WHERE source ILIKE $1 OR destination ILIKE $1`
	if err := r.db.GetContext(ctx, &total, countQuery, pattern); err != nil {
		return nil, fmt.Errorf("failed to count rides: %w", err)
	}

	return &models.RidePage{
		Rides:      rideRows,
		TotalPages: totalPages(total, limit),
	}, nil
}

// GetRideWithOwner loads a single active ride joined with its owner profile
func (r *RideRepo) GetRideWithOwner(ctx context.Context, id uuid.UUID) (*models.RideWithOwner, error) {
	query := `
		SELECT ` + rideOwnerColumns + `
		FROM rides r
		JOIN users u ON u.id = r.owner_id
		WHERE r.id = $1
	`
	var ride models.RideWithOwner
	if err := r.db.GetContext(ctx, &ride, query, id); err != nil {
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

// ListByIDs returns a page of active rides among the given ids
func (r *RideRepo) ListByIDs(ctx context.Context, ids []uuid.UUID, page, limit int) (*models.RidePage, error) {
	return r.listByIDs(ctx, "rides", "r.departure_at ASC", ids, page, limit)
}

// ListInactiveByIDs returns a page of archived rides among the given ids,
// newest departure first
func (r *RideRepo) ListInactiveByIDs(ctx context.Context, ids []uuid.UUID, page, limit int) (*models.RidePage, error) {
	return r.listByIDs(ctx, "inactive_rides", "r.departure_at DESC", ids, page, limit)
}

func (r *RideRepo) listByIDs(ctx context.Context, table, order string, ids []uuid.UUID, page, limit int) (*models.RidePage, error) {
	page, limit = normalizePage(page, limit, r.defaultLimit())
	if len(ids) == 0 {
		return &models.RidePage{Rides: []*models.RideWithOwner{}, TotalPages: 0}, nil
	}

	versionCol := "r.version"
	updatedCol := "r.updated_at"
	if table == "inactive_rides" {
		// Snapshots carry no version; migrated_at stands in for updated_at.
		versionCol = "0 AS version"
		updatedCol = "r.migrated_at AS updated_at"
	}

	query := fmt.Sprintf(`
		SELECT
			r.id, r.owner_id, r.source, r.destination,
			r.source_lat, r.source_lng, r.destination_lat, r.destination_lng,
			r.distance, r.travel_time, r.departure_at,
			r.total_seats, r.seats, r.price,
			r.vehicle_type, r.vehicle_number, r.vehicle_model,
			%s, r.created_at, %s,
			u.name AS owner_name, COALESCE(u.photo_url, '') AS owner_photo_url
		FROM %s r
		JOIN users u ON u.id = r.owner_id
		WHERE r.id IN (?)
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, versionCol, updatedCol, table, order)

	query, args, err := sqlx.In(query, ids, limit, page*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to expand id list: %w", err)
	}
	query = r.db.Rebind(query)

	var rideRows []*models.RideWithOwner
	if err := r.db.SelectContext(ctx, &rideRows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	countQuery, countArgs, err := sqlx.In(
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id IN (?)`, table), ids)
	if err != nil {
		return nil, fmt.Errorf("failed to expand id list: %w", err)
	}
	countQuery = r.db.Rebind(countQuery)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, fmt.Errorf("failed to count rides: %w", err)
	}

	return &models.RidePage{
		Rides:      rideRows,
		TotalPages: totalPages(total, limit),
	}, nil
}

// ListByOwners returns a page of active rides posted by the given owners
func (r *RideRepo) ListByOwners(ctx context.Context, ownerIDs []uuid.UUID, page, limit int) (*models.RidePage, error) {
	page, limit = normalizePage(page, limit, r.defaultLimit())
	if len(ownerIDs) == 0 {
		return &models.RidePage{Rides: []*models.RideWithOwner{}, TotalPages: 0}, nil
	}

	query := `
		SELECT ` + rideOwnerColumns + `
		FROM rides r
		JOIN users u ON u.id = r.owner_id
		WHERE r.owner_id IN (?)
		ORDER BY r.departure_at ASC
		LIMIT ? OFFSET ?
	`
	query, args, err := sqlx.In(query, ownerIDs, limit, page*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to expand owner list: %w", err)
	}
	query = r.db.Rebind(query)

	var rideRows []*models.RideWithOwner
	if err := r.db.SelectContext(ctx, &rideRows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rides by owners: %w", err)
	}

	countQuery, countArgs, err := sqlx.In(`SELECT COUNT(*) FROM rides WHERE owner_id IN (?)`, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to expand owner list: %w", err)
	}
	countQuery = r.db.Rebind(countQuery)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, fmt.Errorf("failed to count rides by owners: %w", err)
	}

	return &models.RidePage{
		Rides:      rideRows,
		TotalPages: totalPages(total, limit),
	}, nil
}

// ListFollowing returns the ids of users the given user follows
func (r *RideRepo) ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT followee_id FROM follows WHERE follower_id = $1`
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return ids, nil
}

// UserSummaries resolves public profiles for the given user ids
func (r *RideRepo) UserSummaries(ctx context.Context, ids []uuid.UUID) ([]models.UserSummary, error) {
	if len(ids) == 0 {
		return []models.UserSummary{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, COALESCE(photo_url, '') AS photo_url
		FROM users WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to expand id list: %w", err)
	}
	query = r.db.Rebind(query)

	var summaries []models.UserSummary
	if err := r.db.SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load user summaries: %w", err)
	}

	// Preserve the caller's ordering; IN() gives no guarantee.
	byID := make(map[uuid.UUID]models.UserSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}
	ordered := make([]models.UserSummary, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}

func (r *RideRepo) defaultLimit() int {
	if r.cfg != nil && r.cfg.Rides.DefaultPageLimit > 0 {
		return r.cfg.Rides.DefaultPageLimit
	}
	return 5
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
