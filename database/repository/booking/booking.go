package bookingRepo

import (
	"context"
	"errors"

	"hirafic/models"
)

// ErrNotFound is returned when no booking matches the lookup.
var ErrNotFound = errors.New("booking not found")

// ErrStatusMismatch is returned by UpdateStatusCAS when the booking
// exists but its current status is not the expected predecessor; the
// record is left untouched.
var ErrStatusMismatch = errors.New("booking status mismatch")

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)

	// UpdateStatusCAS applies a single atomic conditional update keyed
	// on (id, expected status) and returns the updated record. Exactly
	// one of two racing callers can win; the loser gets
	// ErrStatusMismatch.
	UpdateStatusCAS(ctx context.Context, id, expected, target string) (*models.Booking, error)

	// ListFor returns one offset window of bookings where the given
	// field ("clientId" or "artisanId") equals ownerID, ordered by
	// requestDate descending, plus the total match count.
	ListFor(field, ownerID string, offset, limit int) ([]models.Booking, int, error)
}
