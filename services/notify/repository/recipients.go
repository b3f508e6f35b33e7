package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/constants"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/database"
)

// RecipientRepo implements notify.RecipientRepo over PostgreSQL for the
// social graph and Redis for device tokens
type RecipientRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRecipientRepository creates a new recipient repository
func NewRecipientRepository(db *sqlx.DB, redisClient *database.RedisClient) *RecipientRepo {
	return &RecipientRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// FollowerIDs returns the ids of users following userID
func (r *RecipientRepo) FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT follower_id FROM follows WHERE followee_id = $1`
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return ids, nil
}

// Tokens returns the push tokens registered for the user's devices
func (r *RecipientRepo) Tokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	key := fmt.Sprintf(constants.KeyUserDevices, userID)
	tokens, err := r.redisClient.SMembers(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get device tokens: %w", err)
	}
	return tokens, nil
}
