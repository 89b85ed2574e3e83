package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStubNominatim(t *testing.T, body string, hits *int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("q"))
		assert.Equal(t, "Hirafic_Project/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newCache(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestGeocode_QueriesUpstream(t *testing.T) {
	var hits int64
	srv := newStubNominatim(t, `[{"lat":"36.8065","lon":"10.1815"}]`, &hits)

	g := NewNominatimGeocoder(srv.URL, nil, zap.NewNop())
	lat, lon, err := g.Geocode(context.Background(), "Tunis")
	require.NoError(t, err)
	assert.InDelta(t, 36.8065, lat, 1e-6)
	assert.InDelta(t, 10.1815, lon, 1e-6)
	assert.EqualValues(t, 1, hits)
}

func TestGeocode_SecondLookupServedFromCache(t *testing.T) {
	var hits int64
	srv := newStubNominatim(t, `[{"lat":"36.8065","lon":"10.1815"}]`, &hits)

	g := NewNominatimGeocoder(srv.URL, newCache(t), zap.NewNop())
	ctx := context.Background()

	_, _, err := g.Geocode(ctx, "Tunis")
	require.NoError(t, err)

	// Case and surrounding whitespace share one cache entry.
	lat, lon, err := g.Geocode(ctx, "  TUNIS ")
	require.NoError(t, err)
	assert.InDelta(t, 36.8065, lat, 1e-6)
	assert.InDelta(t, 10.1815, lon, 1e-6)
	assert.EqualValues(t, 1, hits, "cached lookup must not hit upstream")
}

func TestGeocode_EmptyLocation(t *testing.T) {
	g := NewNominatimGeocoder("http://unused", nil, zap.NewNop())
	_, _, err := g.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}

func TestGeocode_NoResults(t *testing.T) {
	var hits int64
	srv := newStubNominatim(t, `[]`, &hits)

	g := NewNominatimGeocoder(srv.URL, nil, zap.NewNop())
	_, _, err := g.Geocode(context.Background(), "Nowhere, Atlantis")
	assert.Error(t, err)
}

func TestGeocode_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	g := NewNominatimGeocoder(srv.URL, nil, zap.NewNop())
	_, _, err := g.Geocode(context.Background(), "Tunis")
	assert.Error(t, err)
}
