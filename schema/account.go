package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AccountCollection = "accounts"

type Account struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"created_at" json:"-"`
}
