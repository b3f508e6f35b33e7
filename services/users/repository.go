package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/PriyanKishoreMS/RideAlong-Server/services/users UserRepo,SocialRepo,DeviceRepo

// UserRepo defines data access for user accounts
type UserRepo interface {
	// CreateUser persists a new account. Returns ErrEmailTaken when the
	// email is already registered.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail loads an account by email.
	// Returns ErrUserNotFound when absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID loads an account by id.
	// Returns ErrUserNotFound when absent.
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// SetHomeAddress updates the user's saved home address
	SetHomeAddress(ctx context.Context, userID uuid.UUID, address string) error

	// SetWorkAddress updates the user's saved work address
	SetWorkAddress(ctx context.Context, userID uuid.UUID, address string) error

	// SearchUsers returns a page of public profiles matching the name
	// search text
	SearchUsers(ctx context.Context, search string, page, limit int) (*models.UserPage, error)
}

// SocialRepo maintains the follower graph
type SocialRepo interface {
	// IsFollowing reports whether follower follows followee
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// Follow records that follower follows followee; re-following is a no-op
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Unfollow removes the edge; unfollowing an absent edge is a no-op
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Followers returns a page of users following userID
	Followers(ctx context.Context, userID uuid.UUID, page, limit int) (*models.UserPage, error)

	// Following returns a page of users userID follows
	Following(ctx context.Context, userID uuid.UUID, page, limit int) (*models.UserPage, error)
}

// DeviceRepo stores push notification tokens per user
type DeviceRepo interface {
	// AddToken registers a device token for the user
	AddToken(ctx context.Context, userID uuid.UUID, token string) error

	// RemoveToken drops a device token from the user's set
	RemoveToken(ctx context.Context, userID uuid.UUID, token string) error

	// Tokens returns every registered device token for the user
	Tokens(ctx context.Context, userID uuid.UUID) ([]string, error)
}
