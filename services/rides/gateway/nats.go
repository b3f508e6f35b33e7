package gateway

import (
	"context"
	"encoding/json"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/constants"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	natspkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/nats"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides"
)

// RideGW handles NATS publishing for ride events
type RideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{
		natsClient: client,
	}
}

// PublishRideCreated publishes a ride created event to NATS
func (g *RideGW) PublishRideCreated(ctx context.Context, event models.RideCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectRideCreated, data)
}

// PublishRideAccepted publishes a ride accepted event to NATS
func (g *RideGW) PublishRideAccepted(ctx context.Context, event models.RideAcceptedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectRideAccepted, data)
}

// PublishRideDeleted publishes a ride deleted event to NATS
func (g *RideGW) PublishRideDeleted(ctx context.Context, rideID string) error {
	data, err := json.Marshal(map[string]string{"ride_id": rideID})
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectRideDeleted, data)
}
