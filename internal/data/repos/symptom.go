package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type SymptomRepo interface {
	Create(ctx context.Context, check *domain.SymptomCheck) (string, error)
	List(ctx context.Context, ownerEmail string, limit int64) ([]bson.M, error)
}

type symptomRepo struct {
	store *store.Service
	log   *logger.Logger
}

func NewSymptomRepo(s *store.Service, log *logger.Logger) SymptomRepo {
	return &symptomRepo{store: s, log: log.With("repo", "SymptomRepo")}
}

func (r *symptomRepo) Create(ctx context.Context, check *domain.SymptomCheck) (string, error) {
	return r.store.Insert(ctx, domain.CollectionSymptomCheck, check)
}

func (r *symptomRepo) List(ctx context.Context, ownerEmail string, limit int64) ([]bson.M, error) {
	filter := bson.M{}
	if ownerEmail != "" {
		filter["owner_email"] = ownerEmail
	}
	return r.store.Find(ctx, domain.CollectionSymptomCheck, filter, limit)
}
