package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type ReportRepo interface {
	Create(ctx context.Context, report *domain.Report) (string, error)
	List(ctx context.Context, ownerEmail string, limit int64) ([]bson.M, error)
}

type reportRepo struct {
	store *store.Service
	log   *logger.Logger
}

func NewReportRepo(s *store.Service, log *logger.Logger) ReportRepo {
	return &reportRepo{store: s, log: log.With("repo", "ReportRepo")}
}

func (r *reportRepo) Create(ctx context.Context, report *domain.Report) (string, error) {
	return r.store.Insert(ctx, domain.CollectionReport, report)
}

func (r *reportRepo) List(ctx context.Context, ownerEmail string, limit int64) ([]bson.M, error) {
	filter := bson.M{}
	if ownerEmail != "" {
		filter["owner_email"] = ownerEmail
	}
	return r.store.Find(ctx, domain.CollectionReport, filter, limit)
}
