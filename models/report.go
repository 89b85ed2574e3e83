package models

import "time"

// Report is a client-filed complaint attached to a booking. Reports are
// append-only; filing one never mutates the booking itself.
type Report struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"bookingId" json:"booking_id"`
	ClientID  string    `bson:"clientId" json:"client_id"`
	ArtisanID string    `bson:"artisanId" json:"artisan_id"`
	Issue     string    `bson:"issue" json:"issue"`
	FiledAt   time.Time `bson:"filedAt" json:"filed_at"`
}
