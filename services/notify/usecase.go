package notify

import (
	"context"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/PriyanKishoreMS/RideAlong-Server/services/notify NotifyUC

// NotifyUC defines the push notification business logic
type NotifyUC interface {
	// HandleRideCreated fans a new ride out to the owner's followers
	HandleRideCreated(ctx context.Context, event *models.RideCreatedEvent) error

	// HandleRideAccepted notifies the accepted passenger
	HandleRideAccepted(ctx context.Context, event *models.RideAcceptedEvent) error

	// Dispatch delivers a queued push message
	Dispatch(ctx context.Context, msg *models.PushMessage) error
}
