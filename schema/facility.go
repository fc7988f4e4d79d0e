package schema

type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

type FacilityType string

const (
	FacilityTypeAnimalHospital   FacilityType = "Animal Hospital"
	FacilityTypeVeterinaryClinic FacilityType = "Veterinary Clinic"
)

// Facility is a client response structure describing one veterinary
// facility discovered around the requested coordinate.
type Facility struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address,omitempty"`
	Location     Location     `json:"location"`
	DistanceKm   float64      `json:"distanceKm"`
	DistanceText string       `json:"distanceText"`
	Phone        string       `json:"phone,omitempty"`
	Website      string       `json:"website,omitempty"`
	Email        string       `json:"email,omitempty"`
	OpeningHours string       `json:"openingHours,omitempty"`
	FacilityType FacilityType `json:"facilityType"`
	IsEmergency  bool         `json:"isEmergency"`
	Specialties  []string     `json:"specialties"`
}
