package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

// UserRefRepo implements rides.UserRefRepo on PostgreSQL. The table keys
// on (user_id, ride_id) with a relation column, so a ride id can only ever
// sit in one of a user's four lists and every mutation is idempotent.
type UserRefRepo struct {
	db *sqlx.DB
}

// NewUserRefRepository creates a new user ride reference repository
func NewUserRefRepository(db *sqlx.DB) *UserRefRepo {
	return &UserRefRepo{db: db}
}

// AddRef records that rideID belongs to userID's list for relation.
// Re-adding an existing reference rewrites the relation in place.
func (r *UserRefRepo) AddRef(ctx context.Context, userID, rideID uuid.UUID, relation models.RideRelation) error {
	query := `
		INSERT INTO user_ride_refs (user_id, ride_id, relation, added_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, ride_id) DO UPDATE SET relation = EXCLUDED.relation
	`
	if _, err := r.db.ExecContext(ctx, query, userID, rideID, relation, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to add ride reference: %w", err)
	}
	return nil
}

// RemoveRef drops the reference between userID and rideID. Removing an
// absent reference is a no-op so delete fan-out can be retried safely.
func (r *UserRefRepo) RemoveRef(ctx context.Context, userID, rideID uuid.UUID) error {
	query := `DELETE FROM user_ride_refs WHERE user_id = $1 AND ride_id = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, rideID); err != nil {
		return fmt.Errorf("failed to remove ride reference: %w", err)
	}
	return nil
}

// MarkInactive moves an active relation to its inactive counterpart. A
// reference already marked inactive, or missing entirely, is left as is,
// which keeps migration re-runs no-ops.
func (r *UserRefRepo) MarkInactive(ctx context.Context, userID, rideID uuid.UUID) error {
	query := `
		UPDATE user_ride_refs
		SET relation = CASE relation
			WHEN 'created' THEN 'created_inactive'
			WHEN 'joined' THEN 'joined_inactive'
			ELSE relation
		END
		WHERE user_id = $1 AND ride_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, userID, rideID); err != nil {
		return fmt.Errorf("failed to mark reference inactive: %w", err)
	}
	return nil
}

// ListRideIDs returns ride ids referenced by userID under any of the given
// relations, oldest first
func (r *UserRefRepo) ListRideIDs(ctx context.Context, userID uuid.UUID, relations ...models.RideRelation) ([]uuid.UUID, error) {
	if len(relations) == 0 {
		return []uuid.UUID{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT ride_id FROM user_ride_refs
		WHERE user_id = ? AND relation IN (?)
		ORDER BY added_at ASC
	`, userID, relations)
	if err != nil {
		return nil, fmt.Errorf("failed to expand relation list: %w", err)
	}
	query = r.db.Rebind(query)

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list ride references: %w", err)
	}
	return ids, nil
}
