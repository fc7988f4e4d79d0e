package vets

import (
	"fmt"
	"strings"

	"github.com/binayakjoshi/furever-sub000/external/overpass"
	"github.com/binayakjoshi/furever-sub000/schema"
)

const unnamedFacility = "Unnamed Veterinary Clinic"

// addressTagOrder is the fixed assembly order for structured address
// fragments; missing fragments are skipped without dangling separators.
var addressTagOrder = []string{
	"addr:housenumber",
	"addr:street",
	"addr:neighbourhood",
	"addr:suburb",
	"addr:city",
	"addr:state",
	"addr:postcode",
	"addr:country",
}

// tagSet wraps the loose OSM tag dictionary with explicit fallback lookups.
type tagSet map[string]string

func (t tagSet) get(key string) string {
	if t == nil {
		return ""
	}
	return t[key]
}

// first returns the value of the first key that carries a non-empty value.
func (t tagSet) first(keys ...string) string {
	for _, key := range keys {
		if v := t.get(key); v != "" {
			return v
		}
	}
	return ""
}

func normalizeElement(element overpass.Element, location schema.Location, distanceKm float64) schema.Facility {
	tags := tagSet(element.Tags)
	name := resolveName(tags)

	return schema.Facility{
		ID:           fmt.Sprintf("%s/%d", element.Type, element.ID),
		Name:         name,
		Address:      assembleAddress(tags),
		Location:     location,
		DistanceKm:   roundDistance(distanceKm),
		DistanceText: distanceText(distanceKm),
		Phone:        tags.first("phone", "contact:phone"),
		Website:      tags.first("website", "contact:website"),
		Email:        tags.first("email", "contact:email"),
		OpeningHours: tags.get("opening_hours"),
		FacilityType: classifyFacility(tags, name),
		IsEmergency:  detectEmergency(tags, name),
		Specialties:  splitSpecialties(tags.get("healthcare:speciality")),
	}
}

func resolveName(tags tagSet) string {
	if name := tags.first("name", "name:en", "brand", "healthcare:speciality"); name != "" {
		return name
	}
	return unnamedFacility
}

func assembleAddress(tags tagSet) string {
	fragments := make([]string, 0, len(addressTagOrder))
	for _, key := range addressTagOrder {
		if v := tags.get(key); v != "" {
			fragments = append(fragments, v)
		}
	}
	return strings.Join(fragments, ", ")
}

func classifyFacility(tags tagSet, name string) schema.FacilityType {
	if tags.get("healthcare") == "animal_hospital" ||
		strings.Contains(strings.ToLower(name), "hospital") {
		return schema.FacilityTypeAnimalHospital
	}
	return schema.FacilityTypeVeterinaryClinic
}

// detectEmergency reports whether any emergency indicator is present. The
// bare "24" match also fires on unrelated numbers in names (e.g. street
// numbers); kept to mirror the established notion of an emergency facility.
func detectEmergency(tags tagSet, name string) bool {
	lowerName := strings.ToLower(name)

	return tags.get("emergency") == "yes" ||
		strings.Contains(strings.ToLower(tags.get("healthcare:speciality")), "emergency") ||
		strings.Contains(lowerName, "emergency") ||
		strings.Contains(name, "24") ||
		strings.Contains(tags.get("opening_hours"), "24/7")
}

func splitSpecialties(speciality string) []string {
	if speciality == "" {
		return []string{}
	}

	parts := strings.Split(speciality, ";")
	specialties := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			specialties = append(specialties, trimmed)
		}
	}
	return specialties
}

func distanceText(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%.0f m", distanceKm*1000)
	}
	return fmt.Sprintf("%.1f km", distanceKm)
}
