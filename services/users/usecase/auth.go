package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/jwt"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg     *models.Config
	repo    users.UserRepo
	social  users.SocialRepo
	devices users.DeviceRepo
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	repo users.UserRepo,
	social users.SocialRepo,
	devices users.DeviceRepo,
) (users.UserUC, error) {
	return &userUC{
		cfg:     cfg,
		repo:    repo,
		social:  social,
		devices: devices,
	}, nil
}

// Register creates a new account and returns an auth token for it
func (uc *userUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, users.ErrEmailTaken
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		PhotoURL:     req.PhotoURL,
		Mobile:       req.Mobile,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID.String()))

	return uc.issueToken(user)
}

// Login verifies credentials and returns an auth token
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			// Same response as a wrong password; do not leak which
			// accounts exist.
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

func (uc *userUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
