package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/binayakjoshi/furever-sub000/schema"
)

var existingAccountID = primitive.NewObjectID()

type AccountTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewAccountTestSuite(connURI, dbName string) *AccountTestSuite {
	return &AccountTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *AccountTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}

	if _, err := s.testDatabase.Collection(schema.AccountCollection).InsertOne(context.Background(), schema.Account{
		ID:    existingAccountID,
		Name:  "Chandra",
		Email: "chandra@example.com",
	}); err != nil {
		s.T().Fatal(err)
	}
}

func (s *AccountTestSuite) TestGetAccount() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	account, err := store.GetAccount(existingAccountID)
	s.NoError(err)
	s.Equal("Chandra", account.Name)
	s.Equal("chandra@example.com", account.Email)
}

func (s *AccountTestSuite) TestGetAccountNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	account, err := store.GetAccount(primitive.NewObjectID())
	s.Nil(account)
	s.Equal(ErrAccountNotFound, err)
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, NewAccountTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-account-db"))
}
