package rides

import (
	"context"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/PriyanKishoreMS/RideAlong-Server/services/rides RideGW

// RideGW defines the interface for ride event publishing
type RideGW interface {
	PublishRideCreated(ctx context.Context, event models.RideCreatedEvent) error
	PublishRideAccepted(ctx context.Context, event models.RideAcceptedEvent) error
	PublishRideDeleted(ctx context.Context, rideID string) error
}
