package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type ProfileRepo interface {
	Create(ctx context.Context, profile *domain.UserProfile) (string, error)
	// FindByEmail returns the raw document, or nil when no profile
	// with that email exists.
	FindByEmail(ctx context.Context, email string) (bson.M, error)
	UpdateByEmail(ctx context.Context, email string, set bson.M) error
}

type profileRepo struct {
	store *store.Service
	log   *logger.Logger
}

func NewProfileRepo(s *store.Service, log *logger.Logger) ProfileRepo {
	return &profileRepo{store: s, log: log.With("repo", "ProfileRepo")}
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.UserProfile) (string, error) {
	return r.store.Insert(ctx, domain.CollectionUserProfile, profile)
}

func (r *profileRepo) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	docs, err := r.store.Find(ctx, domain.CollectionUserProfile, bson.M{"email": email}, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (r *profileRepo) UpdateByEmail(ctx context.Context, email string, set bson.M) error {
	return r.store.UpdateOne(ctx, domain.CollectionUserProfile, bson.M{"email": email}, set)
}
