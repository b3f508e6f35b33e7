package models

import (
	"time"

	"github.com/google/uuid"
)

// PassengerStatus represents the state of a join request on a ride
type PassengerStatus int16

const (
	PassengerStatusRequested PassengerStatus = 1
	PassengerStatusAccepted  PassengerStatus = 2
)

// Passenger represents a single roster entry on a ride
type Passenger struct {
	RideID      uuid.UUID       `json:"ride_id" db:"ride_id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Status      PassengerStatus `json:"status" db:"status"`
	RequestedAt time.Time       `json:"requested_at" db:"requested_at"`
}

// Ride represents an active ride offer with a fixed seat capacity
type Ride struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OwnerID        uuid.UUID `json:"owner_id" db:"owner_id"`
	Source         string    `json:"source" db:"source"`
	Destination    string    `json:"destination" db:"destination"`
	SourceLat      float64   `json:"source_lat" db:"source_lat"`
	SourceLng      float64   `json:"source_lng" db:"source_lng"`
	DestinationLat float64   `json:"destination_lat" db:"destination_lat"`
	DestinationLng float64   `json:"destination_lng" db:"destination_lng"`
	Distance       float64   `json:"distance" db:"distance"`
	TravelTime     int       `json:"travel_time" db:"travel_time"`
	DepartureAt    time.Time `json:"departure_at" db:"departure_at"`
	TotalSeats     int       `json:"total_seats" db:"total_seats"`
	Seats          int       `json:"seats" db:"seats"`
	Price          float64   `json:"price" db:"price"`
	VehicleType    string    `json:"vehicle_type" db:"vehicle_type"`
	VehicleNumber  string    `json:"vehicle_number" db:"vehicle_number"`
	VehicleModel   string    `json:"vehicle_model" db:"vehicle_model"`
	Version        int64     `json:"-" db:"version"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Passengers is the roster in FIFO arrival order; loaded alongside the
	// ride row, never scanned from it.
	Passengers []Passenger `json:"passengers" db:"-"`
}

// AcceptedCount returns the number of roster entries with accepted status
func (r *Ride) AcceptedCount() int {
	count := 0
	for _, p := range r.Passengers {
		if p.Status == PassengerStatusAccepted {
			count++
		}
	}
	return count
}

// InactiveRide is a structural snapshot of a ride after lifecycle migration
type InactiveRide struct {
	Ride
	MigratedAt time.Time `json:"migrated_at" db:"migrated_at"`
}

// RideRelation identifies which denormalized user list a ride id belongs to
type RideRelation string

const (
	RelationCreated         RideRelation = "created"
	RelationCreatedInactive RideRelation = "created_inactive"
	RelationJoined          RideRelation = "joined"
	RelationJoinedInactive  RideRelation = "joined_inactive"
)

// UserRideRef is a back-reference from a user to a ride. A user holds at
// most one relation per ride; migration moves the relation to its
// inactive counterpart.
type UserRideRef struct {
	UserID   uuid.UUID    `json:"user_id" db:"user_id"`
	RideID   uuid.UUID    `json:"ride_id" db:"ride_id"`
	Relation RideRelation `json:"relation" db:"relation"`
	AddedAt  time.Time    `json:"added_at" db:"added_at"`
}

// CreateRideRequest is the payload for posting a new ride
type CreateRideRequest struct {
	Source         string    `json:"source"`
	Destination    string    `json:"destination"`
	SourceLat      float64   `json:"source_lat"`
	SourceLng      float64   `json:"source_lng"`
	DestinationLat float64   `json:"destination_lat"`
	DestinationLng float64   `json:"destination_lng"`
	Distance       float64   `json:"distance"`
	TravelTime     int       `json:"travel_time"`
	DepartureAt    time.Time `json:"departure_at"`
	Seats          int       `json:"seats"`
	Price          float64   `json:"price"`
	VehicleType    string    `json:"vehicle_type"`
	VehicleNumber  string    `json:"vehicle_number"`
	VehicleModel   string    `json:"vehicle_model"`
}

// RideWithOwner is a ride summary joined with the owner's public profile
type RideWithOwner struct {
	Ride
	OwnerName     string `json:"owner_name" db:"owner_name"`
	OwnerPhotoURL string `json:"owner_photo_url" db:"owner_photo_url"`
}

// RidePage is a single page of ride results
type RidePage struct {
	Rides      []*RideWithOwner `json:"rides"`
	TotalPages int              `json:"total_pages"`
}

// RideDetail is a ride with its roster resolved to public profiles,
// split into accepted passengers and pending requests
type RideDetail struct {
	Ride       *RideWithOwner `json:"ride"`
	Passengers []UserSummary  `json:"passengers"`
	Requests   []UserSummary  `json:"requests"`
}

// RideSearchParams holds pagination and filter parameters for ride listings
type RideSearchParams struct {
	Search string
	Page   int
	Limit  int
}

// NearbyRide is a ride id with its distance from the queried point
type NearbyRide struct {
	RideID   uuid.UUID `json:"ride_id"`
	Distance float64   `json:"distance_km"`
}
