package geo

import (
	"math"

	"github.com/binayakjoshi/furever-sub000/schema"
)

// earthRadiusKm is the mean radius used by the haversine computation.
const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// WGS84 coordinates using the haversine formula.
func Distance(from, to schema.Location) float64 {
	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(degree float64) float64 {
	return degree * math.Pi / 180
}
