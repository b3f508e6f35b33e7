package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/PriyanKishoreMS/RideAlong-Server/services/users UserUC

// UserUC defines the user account business logic
type UserUC interface {
	// Register creates a new account and returns an auth token for it
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)

	// Login verifies credentials and returns an auth token
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// GetProfile returns a user's full profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// SetHomeAddress saves the user's home address
	SetHomeAddress(ctx context.Context, userID uuid.UUID, address string) error

	// SetWorkAddress saves the user's work address
	SetWorkAddress(ctx context.Context, userID uuid.UUID, address string) error

	// SearchUsers returns a page of public profiles matching the search
	SearchUsers(ctx context.Context, search string, page, limit int) (*models.UserPage, error)

	// ToggleFollow follows the target when not yet followed and
	// unfollows otherwise, reporting the resulting state
	ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (*models.FollowResult, error)

	// ListFollowers returns a page of the user's followers
	ListFollowers(ctx context.Context, userID uuid.UUID, page, limit int) (*models.UserPage, error)

	// ListFollowing returns a page of users the user follows
	ListFollowing(ctx context.Context, userID uuid.UUID, page, limit int) (*models.UserPage, error)

	// RegisterDeviceToken stores a push token for the user's devices
	RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error

	// RemoveDeviceToken drops a push token
	RemoveDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}
