package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConfigured is returned by every repository method when the process
// was started without a MONGO_URL. The service keeps serving; listing
// endpoints degrade to empty results and everything else reports 500.
var ErrNotConfigured = errors.New("database not configured")

// One collection per entity, lowercased type name.
const (
	adminCollection    = "adminuser"
	serviceCollection  = "service"
	orderCollection    = "order"
	paymentCollection  = "payment"
	settingsCollection = "panelsettings"
)

// Store owns the Mongo client and hands out collection handles to the
// per-entity repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to Mongo and verifies the connection with a ping.
// An empty mongoURL yields an unconfigured store rather than an error, so
// the panel can boot and report its state on /test.
func NewStore(ctx context.Context, mongoURL, dbName string) (*Store, error) {
	if mongoURL == "" {
		return &Store{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *Store) Configured() bool {
	return s.db != nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *Store) collection(name string) *mongo.Collection {
	if s.db == nil {
		return nil
	}
	return s.db.Collection(name)
}

// toDocument flattens an entity into a bson map and stamps a fresh string
// _id, so stored documents hold exactly the declared fields plus the key.
func toDocument(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	doc["_id"] = uuid.New().String()
	return doc, nil
}
