package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer builds the indexes every collection relies on. It is
// invoked on startup and by test suites against a clean database.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

func (m *MongoDBIndexer) IndexAll() error {
	if err := m.IndexAccountCollection(); err != nil {
		return err
	}
	return m.IndexPetCollection()
}

func (m *MongoDBIndexer) IndexAccountCollection() error {
	return m.createIndexes(AccountCollection, []mongo.IndexModel{
		{
			Keys:    bson.M{"email": 1},
			Options: options.Index().SetUnique(true),
		},
	})
}

func (m *MongoDBIndexer) IndexPetCollection() error {
	return m.createIndexes(PetCollection, []mongo.IndexModel{
		{
			Keys: bson.M{"owner": 1},
		},
		{
			Keys: bson.M{"vaccinations.next_vacc_date": 1},
		},
	})
}

func (m *MongoDBIndexer) createIndexes(collection string, models []mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.NewClient(options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithField("prefix", "schema").WithError(err).Error("fail to disconnect the index client")
		}
	}()

	c := client.Database(m.database).Collection(collection)
	if _, err := c.Indexes().CreateMany(ctx, models); err != nil {
		return err
	}

	return nil
}
