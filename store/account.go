package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/binayakjoshi/furever-sub000/schema"
)

var (
	ErrAccountNotFound = fmt.Errorf("account not found")
)

type Account interface {
	GetAccount(accountID primitive.ObjectID) (*schema.Account, error)
}

// GetAccount finds an account by its ID
func (m *mongoDB) GetAccount(accountID primitive.ObjectID) (*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	var account schema.Account
	query := bson.M{"_id": accountID}
	if err := c.FindOne(ctx, query).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}
