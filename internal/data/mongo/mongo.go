// Package mongo wraps the document store connection. All collection
// access goes through Service so handlers never touch the driver
// directly.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

const connectTimeout = 10 * time.Second

type Config struct {
	URI      string
	Database string
}

// Service is the long-lived store handle, created once at startup and
// shared by every repo. When no DATABASE_URL is configured the service
// is disabled: the process still serves traffic, but every data
// operation returns ErrStoreUnavailable.
type Service struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

func NewService(cfg Config, log *logger.Logger) (*Service, error) {
	svcLog := log.With("service", "MongoService")
	if cfg.URI == "" {
		svcLog.Warn("DATABASE_URL not set, store operations will be unavailable")
		return &Service{log: svcLog}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	svcLog.Info("Connected to document store", "database", cfg.Database)
	return &Service{
		client: client,
		db:     client.Database(cfg.Database),
		log:    svcLog,
	}, nil
}

func (s *Service) Available() bool {
	return s != nil && s.db != nil
}

// Insert serializes doc (unset optional fields are omitted), stamps
// created_at and returns the new document id as a hex string.
func (s *Service) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if !s.Available() {
		return "", apperrors.ErrStoreUnavailable
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("unmarshal document: %w", err)
	}
	fields["created_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).InsertOne(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

// Find returns at most limit documents matching every filter predicate
// (equality only). Order is store-default; callers re-sort when they
// need a stable order.
func (s *Service) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.Available() {
		return nil, apperrors.ErrStoreUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", collection, err)
	}
	return docs, nil
}

// UpdateOne applies a $set of the given fields to the first document
// matching filter.
func (s *Service) UpdateOne(ctx context.Context, collection string, filter, set bson.M) error {
	if !s.Available() {
		return apperrors.ErrStoreUnavailable
	}
	if _, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("update %s: %w", collection, err)
	}
	return nil
}

// Collections lists up to 10 collection names, for the diagnostic
// endpoint.
func (s *Service) Collections(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, apperrors.ErrStoreUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if len(names) > 10 {
		names = names[:10]
	}
	return names, nil
}

func (s *Service) Ping(ctx context.Context) error {
	if !s.Available() {
		return apperrors.ErrStoreUnavailable
	}
	return s.client.Ping(ctx, nil)
}

func (s *Service) Close(ctx context.Context) {
	if s == nil || s.client == nil {
		return
	}
	if err := s.client.Disconnect(ctx); err != nil {
		s.log.Warn("Error disconnecting from document store", "error", err)
	}
}
