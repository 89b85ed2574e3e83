package discovery

import (
	"math"

	artisanRepo "hirafic/database/repository/artisan"
)

const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance between two points in
// kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// boundingBox returns the lat/lon box enclosing the radius around the
// origin. It over-approximates (candidates inside the box still go
// through the exact haversine check) so correctness never depends on
// it; it only trims the candidate set before the exact-distance pass.
func boundingBox(lat, lon, radiusKm float64) artisanRepo.GeoBox {
	latDelta := radiusKm / 111.0 // ~111km per degree of latitude

	// Longitude degrees shrink with latitude; clamp near the poles
	// where the box degenerates to the full circle.
	cosLat := math.Cos(toRadians(lat))
	lonDelta := 180.0
	if cosLat > 1e-6 {
		lonDelta = radiusKm / (111.0 * cosLat)
		if lonDelta > 180 {
			lonDelta = 180
		}
	}

	return artisanRepo.GeoBox{
		MinLat: math.Max(lat-latDelta, -90),
		MaxLat: math.Min(lat+latDelta, 90),
		MinLon: math.Max(lon-lonDelta, -180),
		MaxLon: math.Min(lon+lonDelta, 180),
	}
}
