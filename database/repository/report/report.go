package reportRepo

import "hirafic/models"

// ReportRepository defines the interface for report data access.
// Reports are append-only; there is no update or delete.
type ReportRepository interface {
	Create(report *models.Report) error
	ListByBooking(bookingID string) ([]models.Report, error)
}
