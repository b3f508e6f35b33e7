package models

import (
	"time"

	"github.com/google/uuid"
)

// RideCreatedEvent is published when an owner posts a new ride
type RideCreatedEvent struct {
	RideID      uuid.UUID `json:"ride_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	DepartureAt time.Time `json:"departure_at"`
	Seats       int       `json:"seats"`
}

// RideAcceptedEvent is published when an owner accepts a join request
type RideAcceptedEvent struct {
	RideID      uuid.UUID `json:"ride_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	PassengerID uuid.UUID `json:"passenger_id"`
	Destination string    `json:"destination"`
}

// PushMessage is a single push notification queued for dispatch
type PushMessage struct {
	Tokens []string          `json:"tokens"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}
