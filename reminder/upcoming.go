package reminder

import (
	"math"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpcomingVaccination is a client response structure describing one due
// vaccination for the on-demand display path.
type UpcomingVaccination struct {
	PetID           string    `json:"petId"`
	PetName         string    `json:"petName"`
	VaccinationName string    `json:"vaccinationName"`
	DueDate         time.Time `json:"dueDate"`
	DaysUntilDue    int       `json:"daysUntilDue"`
}

// GetUpcomingVaccinations lists an owner's vaccinations due within the next
// `days` days, ascending by due date.
func (s *Scheduler) GetUpcomingVaccinations(ownerID primitive.ObjectID, days int) ([]UpcomingVaccination, error) {
	now := s.now()
	horizon := now.AddDate(0, 0, days)

	pets, err := s.store.FindPetsByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	upcoming := make([]UpcomingVaccination, 0)
	for _, pet := range pets {
		for _, vaccination := range pet.Vaccinations {
			if vaccination.NextVaccDate.Before(now) || vaccination.NextVaccDate.After(horizon) {
				continue
			}

			upcoming = append(upcoming, UpcomingVaccination{
				PetID:           pet.ID.Hex(),
				PetName:         pet.Name,
				VaccinationName: vaccination.Name,
				DueDate:         vaccination.NextVaccDate,
				DaysUntilDue:    daysUntil(now, vaccination.NextVaccDate),
			})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})

	return upcoming, nil
}

func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
