package notify

import (
	"context"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/PriyanKishoreMS/RideAlong-Server/services/notify PushQueue,PushSender

// PushQueue buffers push messages between event fan-out and delivery
type PushQueue interface {
	// Enqueue queues a push message for dispatch
	Enqueue(msg *models.PushMessage) error
}

// PushSender delivers a push message to the device push service
type PushSender interface {
	// Send delivers the message to every token it carries
	Send(ctx context.Context, msg *models.PushMessage) error
}
