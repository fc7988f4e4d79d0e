package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const PetCollection = "pets"

type Vaccination struct {
	Name         string    `bson:"name" json:"name"`
	Date         time.Time `bson:"date" json:"date"`
	NextVaccDate time.Time `bson:"next_vacc_date" json:"next_vacc_date"`
}

type Pet struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Owner        primitive.ObjectID `bson:"owner" json:"owner"`
	Name         string             `bson:"name" json:"name"`
	PetType      string             `bson:"pet_type" json:"pet_type"`
	Breed        string             `bson:"breed" json:"breed"`
	DateOfBirth  time.Time          `bson:"date_of_birth" json:"date_of_birth"`
	Vaccinations []Vaccination      `bson:"vaccinations" json:"vaccinations"`
}

// PetWithOwner is a query result **ONLY** structure since the owner profile
// is joined from the account collection at lookup time.
type PetWithOwner struct {
	Pet       `bson:",inline"`
	OwnerInfo Account `bson:"owner_info" json:"owner_info"`
}
