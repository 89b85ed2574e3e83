package artisanRepo

import "hirafic/models"

// SearchFilter is the attribute filter applied to discovery queries.
// Filters compose conjunctively with any geo constraint.
type SearchFilter struct {
	Specialization string
}

// GeoBox is a latitude/longitude bounding box used to pre-filter
// proximity queries before the exact distance pass.
type GeoBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// ArtisanRepository defines the interface for provider-record data access.
type ArtisanRepository interface {
	Create(artisan *models.Artisan) error
	GetByID(id string) (*models.Artisan, error)
	GetByEmail(email string) (*models.Artisan, error)
	GetByUserID(userID string) (*models.Artisan, error)
	Update(artisan *models.Artisan) error

	// FindActive returns one offset window of active records matching
	// the filter, ordered by id ascending, plus the total match count.
	FindActive(filter SearchFilter, offset, limit int) ([]models.Artisan, int, error)

	// FindActiveInBox returns all active records matching the filter
	// whose coordinates fall inside the bounding box. Callers apply the
	// exact distance predicate.
	FindActiveInBox(filter SearchFilter, box GeoBox) ([]models.Artisan, error)
}
