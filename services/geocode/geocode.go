package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheTTL = 24 * time.Hour

// Geocoder resolves a free-text location to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (lat, lon float64, err error)
}

// NominatimGeocoder forward-geocodes via the OpenStreetMap Nominatim
// API, caching results in Redis so repeated profile updates for the
// same address never re-query the upstream service.
type NominatimGeocoder struct {
	BaseURL string
	Cache   *redis.Client
	Client  *http.Client
	Logger  *zap.Logger
}

func NewNominatimGeocoder(baseURL string, cache *redis.Client, logger *zap.Logger) *NominatimGeocoder {
	return &NominatimGeocoder{
		BaseURL: baseURL,
		Cache:   cache,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Logger:  logger,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func cacheKey(location string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(location))
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, location string) (float64, float64, error) {
	if strings.TrimSpace(location) == "" {
		return 0, 0, fmt.Errorf("location is empty")
	}

	if g.Cache != nil {
		if cached, err := g.Cache.Get(ctx, cacheKey(location)).Result(); err == nil {
			var lat, lon float64
			if _, err := fmt.Sscanf(cached, "%f,%f", &lat, &lon); err == nil {
				return lat, lon, nil
			}
		} else if err != redis.Nil && g.Logger != nil {
			g.Logger.Warn("geocode cache lookup failed", zap.Error(err))
		}
	}

	lat, lon, err := g.query(ctx, location)
	if err != nil {
		return 0, 0, err
	}

	if g.Cache != nil {
		val := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
		if err := g.Cache.Set(ctx, cacheKey(location), val, cacheTTL).Err(); err != nil && g.Logger != nil {
			g.Logger.Warn("geocode cache store failed", zap.Error(err))
		}
	}
	return lat, lon, nil
}

func (g *NominatimGeocoder) query(ctx context.Context, location string) (float64, float64, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "Hirafic_Project/1.0")

	resp, err := g.Client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to reach geocoding service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("could not geocode location: %s", location)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in geocode response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in geocode response: %w", err)
	}
	return lat, lon, nil
}
