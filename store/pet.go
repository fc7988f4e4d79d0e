package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/binayakjoshi/furever-sub000/schema"
)

type Pet interface {
	FindPetsByOwner(ownerID primitive.ObjectID) ([]schema.Pet, error)
	FindPetsWithVaccinationsDueBetween(start, end time.Time) ([]schema.PetWithOwner, error)
}

// FindPetsByOwner lists all pets registered under an account, sorted by name
func (m *mongoDB) FindPetsByOwner(ownerID primitive.ObjectID) ([]schema.Pet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PetCollection)

	query := bson.M{"owner": ownerID}
	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}

	pets := make([]schema.Pet, 0)
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, err
	}

	return pets, nil
}

// FindPetsWithVaccinationsDueBetween finds every pet carrying at least one
// vaccination whose next due date falls inside [start, end], joined with a
// minimal owner projection for notification purposes.
func (m *mongoDB) FindPetsWithVaccinationsDueBetween(start, end time.Time) ([]schema.PetWithOwner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PetCollection)

	pipeline := []bson.M{
		{"$match": bson.M{
			"vaccinations": bson.M{
				"$elemMatch": bson.M{
					"next_vacc_date": bson.M{
						"$gte": start,
						"$lte": end,
					},
				},
			},
		}},
		{"$lookup": bson.M{
			"from":         schema.AccountCollection,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner_info",
		}},
		{"$unwind": "$owner_info"},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	pets := make([]schema.PetWithOwner, 0)
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("due vaccination query gets %d pets between %s and %s",
		len(pets), start.Format(time.RFC3339), end.Format(time.RFC3339))

	return pets, nil
}
