package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_ReferenceDistances(t *testing.T) {
	// Same point.
	assert.InDelta(t, 0, HaversineKm(12.9716, 77.5946, 12.9716, 77.5946), 1e-9)

	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	assert.InDelta(t, 111.19, HaversineKm(0, 0, 1, 0), 0.05)

	// Paris -> London, ~343 km.
	assert.InDelta(t, 343, HaversineKm(48.8566, 2.3522, 51.5074, -0.1278), 2)

	// Antipodal points: half the circumference.
	assert.InDelta(t, 20015, HaversineKm(0, 0, 0, 180), 1)
}

func TestHaversineKm_Symmetry(t *testing.T) {
	d1 := HaversineKm(40.7128, -74.0060, 34.0522, -118.2437)
	d2 := HaversineKm(34.0522, -118.2437, 40.7128, -74.0060)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestBoundingBox_EnclosesRadius(t *testing.T) {
	lat, lon, radius := 12.9716, 77.5946, 25.0
	box := boundingBox(lat, lon, radius)

	// Points just inside the radius in the four cardinal directions
	// must fall inside the box.
	step := radius / 111.19
	for _, p := range [][2]float64{
		{lat + step*0.99, lon},
		{lat - step*0.99, lon},
		{lat, lon + step*0.99},
		{lat, lon - step*0.99},
	} {
		assert.GreaterOrEqual(t, p[0], box.MinLat)
		assert.LessOrEqual(t, p[0], box.MaxLat)
		assert.GreaterOrEqual(t, p[1], box.MinLon)
		assert.LessOrEqual(t, p[1], box.MaxLon)
	}
}

func TestBoundingBox_ClampsAtPoles(t *testing.T) {
	box := boundingBox(89.9, 0, 100)
	assert.LessOrEqual(t, box.MaxLat, 90.0)
	assert.GreaterOrEqual(t, box.MinLon, -180.0)
	assert.LessOrEqual(t, box.MaxLon, 180.0)
}
