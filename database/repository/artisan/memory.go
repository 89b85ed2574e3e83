package artisanRepo

import (
	"sort"
	"strings"
	"sync"

	"hirafic/models"
)

// MemoryArtisanRepo is a mutex-guarded in-memory ArtisanRepository,
// used by unit tests and local development without a MongoDB instance.
type MemoryArtisanRepo struct {
	mu       sync.RWMutex
	artisans map[string]models.Artisan
}

func NewMemoryArtisanRepo() *MemoryArtisanRepo {
	return &MemoryArtisanRepo{artisans: make(map[string]models.Artisan)}
}

func (r *MemoryArtisanRepo) Create(artisan *models.Artisan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.artisans[artisan.ID] = *artisan
	return nil
}

func (r *MemoryArtisanRepo) find(match func(models.Artisan) bool) (*models.Artisan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.artisans {
		if match(a) {
			out := a
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryArtisanRepo) GetByID(id string) (*models.Artisan, error) {
	return r.find(func(a models.Artisan) bool { return a.ID == id })
}

func (r *MemoryArtisanRepo) GetByEmail(email string) (*models.Artisan, error) {
	return r.find(func(a models.Artisan) bool { return a.Email == email })
}

func (r *MemoryArtisanRepo) GetByUserID(userID string) (*models.Artisan, error) {
	return r.find(func(a models.Artisan) bool { return a.UserID == userID })
}

func (r *MemoryArtisanRepo) Update(artisan *models.Artisan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.artisans[artisan.ID]; !ok {
		return ErrNotFound
	}
	r.artisans[artisan.ID] = *artisan
	return nil
}

func matchesFilter(a models.Artisan, filter SearchFilter) bool {
	if !a.Active {
		return false
	}
	if filter.Specialization != "" &&
		!strings.Contains(strings.ToLower(a.Specialization), strings.ToLower(filter.Specialization)) {
		return false
	}
	return true
}

func (r *MemoryArtisanRepo) activeSorted(filter SearchFilter) []models.Artisan {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []models.Artisan
	for _, a := range r.artisans {
		if matchesFilter(a, filter) {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}

func (r *MemoryArtisanRepo) FindActive(filter SearchFilter, offset, limit int) ([]models.Artisan, int, error) {
	matched := r.activeSorted(filter)
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

func (r *MemoryArtisanRepo) FindActiveInBox(filter SearchFilter, box GeoBox) ([]models.Artisan, error) {
	var inBox []models.Artisan
	for _, a := range r.activeSorted(filter) {
		if a.Latitude >= box.MinLat && a.Latitude <= box.MaxLat &&
			a.Longitude >= box.MinLon && a.Longitude <= box.MaxLon {
			inBox = append(inBox, a)
		}
	}
	return inBox, nil
}
