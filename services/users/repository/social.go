package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

// SocialRepo implements users.SocialRepo on the follows table
type SocialRepo struct {
	db *sqlx.DB
}

// NewSocialRepository creates a new social graph repository
func NewSocialRepository(db *sqlx.DB) *SocialRepo {
	return &SocialRepo{db: db}
}

// IsFollowing reports whether follower follows followee
func (r *SocialRepo) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, followerID, followeeID); err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}
	return exists, nil
}

// Follow records that follower follows followee; re-following is a no-op
func (r *SocialRepo) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, followerID, followeeID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}
	return nil
}

// Unfollow removes the edge; unfollowing an absent edge is a no-op
func (r *SocialRepo) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	if _, err := r.db.ExecContext(ctx, query, followerID, followeeID); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	return nil
}

// Followers returns a page of users following userID
func (r *SocialRepo) Followers(ctx context.Context, userID uuid.UUID, page, limit int) (*models.UserPage, error) {
	return r.edgePage(ctx, userID, "f.follower_id", "f.followee_id", page, limit)
}

// Following returns a page of users userID follows
func (r *SocialRepo) Following(ctx context.Context, userID uuid.UUID, page, limit int) (*models.UserPage, error) {
	return r.edgePage(ctx, userID, "f.followee_id", "f.follower_id", page, limit)
}

func (r *SocialRepo) edgePage(ctx context.Context, userID uuid.UUID, joinCol, whereCol string, page, limit int) (*models.UserPage, error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.name, COALESCE(u.photo_url, '') AS photo_url
		FROM follows f
		JOIN users u ON u.id = %s
		WHERE %s = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`, joinCol, whereCol)

	var summaries []*models.UserSummary
	if err := r.db.SelectContext(ctx, &summaries, query, userID, limit, page*limit); err != nil {
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM follows f WHERE %s = $1`, whereCol)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to count follow edges: %w", err)
	}

	return &models.UserPage{
		Users:      summaries,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
