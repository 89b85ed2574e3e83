package discovery

import (
	"context"
	"fmt"
	"sort"

	artisanRepo "hirafic/database/repository/artisan"
	"hirafic/models"
	"hirafic/utils"
)

// DiscoveryService answers "find providers" queries with optional
// attribute and proximity filters, paginated and deterministically
// ordered.
type DiscoveryService interface {
	ListArtisans(ctx context.Context, filter artisanRepo.SearchFilter, page models.PageRequest) (*models.Page[models.Artisan], error)
	ListNearbyArtisans(ctx context.Context, originLat, originLon, radiusKm float64, filter artisanRepo.SearchFilter, page models.PageRequest) (*models.Page[models.NearbyArtisan], error)
}

// DefaultDiscoveryService is the production implementation.
type DefaultDiscoveryService struct {
	Repo artisanRepo.ArtisanRepository
}

func normalizePage(page models.PageRequest) models.PageRequest {
	if page.Page == 0 {
		page.Page = 1
	}
	if page.PerPage == 0 {
		page.PerPage = utils.DefaultPerPage
	}
	return page
}

// ListArtisans returns one page of active artisans ordered by id
// ascending. The ordering is stable across calls, so paging over an
// unchanged dataset never skips or duplicates a record.
func (s *DefaultDiscoveryService) ListArtisans(ctx context.Context, filter artisanRepo.SearchFilter, page models.PageRequest) (*models.Page[models.Artisan], error) {
	page = normalizePage(page)

	// First resolve the count so the window can be clamped.
	_, total, err := s.Repo.FindActive(filter, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to count artisans: %w", err)
	}
	window, err := utils.Paginate(total, page.Page, page.PerPage)
	if err != nil {
		return nil, err
	}

	items := []models.Artisan{}
	if total > 0 {
		items, _, err = s.Repo.FindActive(filter, window.Offset, window.Limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list artisans: %w", err)
		}
	}

	return &models.Page[models.Artisan]{
		Items:       items,
		CurrentPage: window.CurrentPage,
		TotalPages:  window.TotalPages,
	}, nil
}

// ListNearbyArtisans retains active artisans within radiusKm of the
// origin, ordered by ascending great-circle distance (ties broken by id
// for determinism), then paginates the sorted result. A bounding-box
// pre-filter runs in the repository so the exact haversine pass only
// touches plausible candidates.
func (s *DefaultDiscoveryService) ListNearbyArtisans(ctx context.Context, originLat, originLon, radiusKm float64, filter artisanRepo.SearchFilter, page models.PageRequest) (*models.Page[models.NearbyArtisan], error) {
	if radiusKm <= 0 {
		return nil, utils.NewInvalidArgument("distance must be greater than zero")
	}
	page = normalizePage(page)

	candidates, err := s.Repo.FindActiveInBox(filter, boundingBox(originLat, originLon, radiusKm))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nearby candidates: %w", err)
	}

	nearby := make([]models.NearbyArtisan, 0, len(candidates))
	for _, a := range candidates {
		d := HaversineKm(originLat, originLon, a.Latitude, a.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, models.NearbyArtisan{Artisan: a, DistanceKm: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKm == nearby[j].DistanceKm {
			return nearby[i].ID < nearby[j].ID
		}
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	window, err := utils.Paginate(len(nearby), page.Page, page.PerPage)
	if err != nil {
		return nil, err
	}

	items := []models.NearbyArtisan{}
	if window.Offset < len(nearby) {
		end := window.Offset + window.Limit
		if end > len(nearby) {
			end = len(nearby)
		}
		items = nearby[window.Offset:end]
	}

	return &models.Page[models.NearbyArtisan]{
		Items:       items,
		CurrentPage: window.CurrentPage,
		TotalPages:  window.TotalPages,
	}, nil
}
