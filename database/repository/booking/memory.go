package bookingRepo

import (
	"context"
	"sort"
	"sync"

	"hirafic/models"
)

// MemoryBookingRepo is a mutex-guarded in-memory BookingRepository.
// The mutex gives UpdateStatusCAS the same atomicity the Mongo
// implementation gets from single-document updates.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepo) UpdateStatusCAS(ctx context.Context, id, expected, target string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	if b.Status != expected {
		return nil, ErrStatusMismatch
	}
	b.Status = target
	r.bookings[id] = b
	return &b, nil
}

func (r *MemoryBookingRepo) ListFor(field, ownerID string, offset, limit int) ([]models.Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Booking
	for _, b := range r.bookings {
		owner := b.ClientID
		if field == "artisanId" {
			owner = b.ArtisanID
		}
		if owner == ownerID {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].RequestDate.Equal(matched[j].RequestDate) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].RequestDate.After(matched[j].RequestDate)
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}
