package models

import "time"

// Artisan is a provider's searchable profile. It is owned by the user
// referenced by UserID and is never deleted, only deactivated; inactive
// records are excluded from discovery results.
type Artisan struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"userId" json:"user_id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	PhoneNumber    string    `bson:"phoneNumber" json:"phone_number"`
	Location       string    `bson:"location" json:"location"`
	Latitude       float64   `bson:"latitude" json:"latitude"`
	Longitude      float64   `bson:"longitude" json:"longitude"`
	Specialization string    `bson:"specialization" json:"specialization"`
	Skills         string    `bson:"skills" json:"skills"`
	HourlyRate     float64   `bson:"hourlyRate" json:"hourly_rate"`
	Rating         float64   `bson:"rating" json:"rating"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updated_at"`
}

// NearbyArtisan is a discovery result annotated with the computed
// great-circle distance from the query origin.
type NearbyArtisan struct {
	Artisan    `bson:",inline"`
	DistanceKm float64 `json:"distance_km"`
}
