package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// FureverStore combines the data access interfaces backed by mongodb.
type FureverStore interface {
	Healthier
	Account
	Pet
}

type Healthier interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a FureverStore backed by a shared mongo client.
func NewMongoStore(client *mongo.Client, database string) FureverStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, nil)
}
