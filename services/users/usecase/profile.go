package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users"
)

// GetProfile returns a user's full profile
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.repo.GetUserByID(ctx, userID)
}

// SetHomeAddress saves the user's home address
func (uc *userUC) SetHomeAddress(ctx context.Context, userID uuid.UUID, address string) error {
	return uc.repo.SetHomeAddress(ctx, userID, address)
}

// SetWorkAddress saves the user's work address
func (uc *userUC) SetWorkAddress(ctx context.Context, userID uuid.UUID, address string) error {
	return uc.repo.SetWorkAddress(ctx, userID, address)
}

// SearchUsers returns a page of public profiles matching the search
func (uc *userUC) SearchUsers(ctx context.Context, search string, page, limit int) (*models.UserPage, error) {
	return uc.repo.SearchUsers(ctx, search, page, limit)
}

// ToggleFollow follows the target when not yet followed and unfollows
// otherwise
func (uc *userUC) ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (*models.FollowResult, error) {
	if followerID == followeeID {
		return nil, users.ErrSelfFollow
	}

	// The target must exist before recording an edge to it
	if _, err := uc.repo.GetUserByID(ctx, followeeID); err != nil {
		return nil, err
	}

	following, err := uc.social.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	if following {
		if err := uc.social.Unfollow(ctx, followerID, followeeID); err != nil {
			return nil, err
		}
	} else {
		if err := uc.social.Follow(ctx, followerID, followeeID); err != nil {
			return nil, err
		}
	}

	logger.InfoCtx(ctx, "Follow toggled",
		logger.String("follower_id", followerID.String()),
		logger.String("followee_id", followeeID.String()),
		logger.Bool("following", !following))

	return &models.FollowResult{Following: !following}, nil
}

// ListFollowers returns a page of the user's followers
func (uc *userUC) ListFollowers(ctx context.Context, userID uuid.UUID, page, limit int) (*models.UserPage, error) {
	return uc.social.Followers(ctx, userID, page, limit)
}

// ListFollowing returns a page of users the user follows
func (uc *userUC) ListFollowing(ctx context.Context, userID uuid.UUID, page, limit int) (*models.UserPage, error) {
	return uc.social.Following(ctx, userID, page, limit)
}

// RegisterDeviceToken stores a push token for the user's devices
func (uc *userUC) RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	return uc.devices.AddToken(ctx, userID, token)
}

// RemoveDeviceToken drops a push token
func (uc *userUC) RemoveDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	return uc.devices.RemoveToken(ctx, userID, token)
}
