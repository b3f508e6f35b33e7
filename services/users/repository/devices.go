package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/constants"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/database"
)

// DeviceRepo implements users.DeviceRepo on a Redis set per user
type DeviceRepo struct {
	redisClient *database.RedisClient
}

// NewDeviceRepository creates a new device token repository
func NewDeviceRepository(redisClient *database.RedisClient) *DeviceRepo {
	return &DeviceRepo{redisClient: redisClient}
}

func deviceKey(userID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyUserDevices, userID.String())
}

// AddToken registers a device token for the user
func (r *DeviceRepo) AddToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := r.redisClient.SAdd(ctx, deviceKey(userID), token); err != nil {
		return fmt.Errorf("failed to add device token: %w", err)
	}
	return nil
}

// RemoveToken drops a device token from the user's set
func (r *DeviceRepo) RemoveToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := r.redisClient.SRem(ctx, deviceKey(userID), token); err != nil {
		return fmt.Errorf("failed to remove device token: %w", err)
	}
	return nil
}

// Tokens returns every registered device token for the user
func (r *DeviceRepo) Tokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	tokens, err := r.redisClient.SMembers(ctx, deviceKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	return tokens, nil
}
