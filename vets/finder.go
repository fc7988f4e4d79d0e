package vets

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/binayakjoshi/furever-sub000/external/overpass"
	"github.com/binayakjoshi/furever-sub000/geo"
	"github.com/binayakjoshi/furever-sub000/schema"
)

type SortMode string

const (
	SortByDistance  SortMode = "distance"
	SortByEmergency SortMode = "emergency"
	SortByName      SortMode = "name"
)

const (
	MinRadiusMeters = 100
	MaxRadiusMeters = 50000
)

var (
	ErrInvalidLocation = fmt.Errorf("latitude must be within [-90, 90] and longitude within [-180, 180]")
	ErrInvalidRadius   = fmt.Errorf("radius must be within [%d, %d] meters", MinRadiusMeters, MaxRadiusMeters)
)

type Finder interface {
	FindNearbyVets(center schema.Location, radiusMeters int, sortBy SortMode) ([]schema.Facility, error)
}

// OverpassFinder discovers veterinary facilities around a coordinate by
// querying an Overpass endpoint and ranking the normalized results.
type OverpassFinder struct {
	client *overpass.OverpassClient
}

func NewOverpassFinder(endpoint string) *OverpassFinder {
	return &OverpassFinder{
		client: overpass.New(endpoint),
	}
}

func (f *OverpassFinder) FindNearbyVets(center schema.Location, radiusMeters int, sortBy SortMode) ([]schema.Facility, error) {
	if err := validateSearch(center, radiusMeters); err != nil {
		return nil, err
	}

	elements, err := f.client.Query(buildQuery(center, radiusMeters))
	if err != nil {
		return nil, err
	}

	facilities := make([]schema.Facility, 0, len(elements))
	for _, element := range elements {
		lat, lon, ok := element.Coordinate()
		if !ok {
			// an element without a resolvable point cannot be ranked
			continue
		}

		location := schema.Location{Latitude: lat, Longitude: lon}
		facilities = append(facilities, normalizeElement(element, location, geo.Distance(center, location)))
	}

	sortFacilities(facilities, sortBy)

	return facilities, nil
}

func validateSearch(center schema.Location, radiusMeters int) error {
	if center.Latitude < -90 || center.Latitude > 90 ||
		center.Longitude < -180 || center.Longitude > 180 {
		return ErrInvalidLocation
	}
	if radiusMeters < MinRadiusMeters || radiusMeters > MaxRadiusMeters {
		return ErrInvalidRadius
	}
	return nil
}

// buildQuery combines the three veterinary tag filters over nodes, ways and
// relations into one radius-scoped Overpass QL statement. `out center` makes
// non-point geometries report a representative coordinate.
func buildQuery(center schema.Location, radiusMeters int) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, center.Latitude, center.Longitude)

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];(")
	for _, kind := range []string{"node", "way", "relation"} {
		fmt.Fprintf(&b, `%s["amenity"="veterinary"]%s;`, kind, around)
		fmt.Fprintf(&b, `%s["healthcare"="veterinary"]%s;`, kind, around)
		fmt.Fprintf(&b, `%s["healthcare"="animal_hospital"]%s;`, kind, around)
	}
	b.WriteString(");out center;")

	return b.String()
}

func sortFacilities(facilities []schema.Facility, sortBy SortMode) {
	switch sortBy {
	case SortByName:
		sort.SliceStable(facilities, func(i, j int) bool {
			return strings.ToLower(facilities[i].Name) < strings.ToLower(facilities[j].Name)
		})
	case SortByEmergency:
		sort.SliceStable(facilities, func(i, j int) bool {
			if facilities[i].IsEmergency != facilities[j].IsEmergency {
				return facilities[i].IsEmergency
			}
			return facilities[i].DistanceKm < facilities[j].DistanceKm
		})
	default:
		sort.SliceStable(facilities, func(i, j int) bool {
			if facilities[i].DistanceKm != facilities[j].DistanceKm {
				return facilities[i].DistanceKm < facilities[j].DistanceKm
			}
			if facilities[i].IsEmergency != facilities[j].IsEmergency {
				return facilities[i].IsEmergency
			}
			return strings.ToLower(facilities[i].Name) < strings.ToLower(facilities[j].Name)
		})
	}
}

func roundDistance(distanceKm float64) float64 {
	return math.Round(distanceKm*100) / 100
}
