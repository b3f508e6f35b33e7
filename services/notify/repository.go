package notify

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/PriyanKishoreMS/RideAlong-Server/services/notify RecipientRepo

// RecipientRepo resolves who should receive a push and on which devices
type RecipientRepo interface {
	// FollowerIDs returns the ids of users following userID
	FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Tokens returns the push tokens registered for the user's devices
	Tokens(ctx context.Context, userID uuid.UUID) ([]string, error)
}
