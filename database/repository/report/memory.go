package reportRepo

import (
	"sync"

	"hirafic/models"
)

// MemoryReportRepo is a mutex-guarded in-memory ReportRepository.
type MemoryReportRepo struct {
	mu      sync.RWMutex
	reports []models.Report
}

func NewMemoryReportRepo() *MemoryReportRepo {
	return &MemoryReportRepo{}
}

func (r *MemoryReportRepo) Create(report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, *report)
	return nil
}

func (r *MemoryReportRepo) ListByBooking(bookingID string) ([]models.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []models.Report
	for _, rep := range r.reports {
		if rep.BookingID == bookingID {
			matched = append(matched, rep)
		}
	}
	return matched, nil
}
