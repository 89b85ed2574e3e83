package models

import "time"

// Roles an authenticated principal may hold.
const (
	RoleClient  = "Client"
	RoleArtisan = "Artisan"
)

// User is an account record. Identity is immutable after registration;
// bookings and artisan records reference it by ID and never own it.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	PhoneNumber  string    `bson:"phoneNumber" json:"phone_number"`
	Role         string    `bson:"role" json:"role"`
	Location     string    `bson:"location" json:"location"`
	Latitude     float64   `bson:"latitude" json:"latitude,omitempty"`
	Longitude    float64   `bson:"longitude" json:"longitude,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}

// Principal is the acting identity resolved by the session gate and
// carried in the request context.
type Principal struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

func (p Principal) IsClient() bool  { return p.Role == RoleClient }
func (p Principal) IsArtisan() bool { return p.Role == RoleArtisan }
