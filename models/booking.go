package models

import "time"

// Booking status values. Transitions form a DAG:
// Pending -> Accepted | Rejected, Accepted -> Completed.
// Rejected and Completed are terminal.
const (
	BookingPending   = "Pending"
	BookingAccepted  = "Accepted"
	BookingRejected  = "Rejected"
	BookingCompleted = "Completed"
)

// Booking is the unit of work between a client and an artisan.
// RequestDate is set at creation and immutable; once Rejected or
// Completed the record only ever gains attached reports.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	ClientID       string    `bson:"clientId" json:"client_id"`
	ArtisanID      string    `bson:"artisanId" json:"artisan_id"`
	ClientName     string    `bson:"clientName" json:"client_name"`
	ArtisanName    string    `bson:"artisanName" json:"artisan_name"`
	Title          string    `bson:"title" json:"title"`
	Details        string    `bson:"details" json:"details"`
	Status         string    `bson:"status" json:"status"`
	RequestDate    time.Time `bson:"requestDate" json:"request_date"`
	CompletionDate time.Time `bson:"completionDate" json:"completion_date"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
}

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingAccepted, BookingRejected, BookingCompleted:
		return true
	}
	return false
}
