package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	PhotoURL     string    `json:"photo_url" db:"photo_url"`
	Mobile       string    `json:"mobile,omitempty" db:"mobile"`
	HomeAddress  string    `json:"home_address,omitempty" db:"home_address"`
	WorkAddress  string    `json:"work_address,omitempty" db:"work_address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserSummary is the public subset of a profile embedded in ride listings
type UserSummary struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	PhotoURL string    `json:"photo_url" db:"photo_url"`
}

// UserPage is a single page of user search results
type UserPage struct {
	Users      []*UserSummary `json:"users"`
	TotalPages int            `json:"total_pages"`
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Mobile   string `json:"mobile"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the authenticated user
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// AddressRequest is the payload for saving a home or work address
type AddressRequest struct {
	Address string `json:"address"`
}

// AddressResponse carries a user's saved addresses
type AddressResponse struct {
	HomeAddress string `json:"home_address"`
	WorkAddress string `json:"work_address"`
}

// DeviceTokenRequest is the payload for push token registration
type DeviceTokenRequest struct {
	Token string `json:"token"`
}

// FollowResult reports the outcome of the follow/unfollow toggle
type FollowResult struct {
	Following bool `json:"following"`
}
