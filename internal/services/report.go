package services

import (
	"context"
	"fmt"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/data/repos"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type ReportService interface {
	Create(ctx context.Context, report *domain.Report) (string, error)
	List(ctx context.Context, ownerEmail string, limit int64) ([]map[string]interface{}, error)
}

type reportService struct {
	log        *logger.Logger
	reportRepo repos.ReportRepo
}

func NewReportService(log *logger.Logger, reportRepo repos.ReportRepo) ReportService {
	return &reportService{
		log:        log.With("service", "ReportService"),
		reportRepo: reportRepo,
	}
}

func (rs *reportService) Create(ctx context.Context, report *domain.Report) (string, error) {
	report.ApplyDefaults()
	if err := report.Validate(); err != nil {
		return "", err
	}
	id, err := rs.reportRepo.Create(ctx, report)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	return id, nil
}

func (rs *reportService) List(ctx context.Context, ownerEmail string, limit int64) ([]map[string]interface{}, error) {
	docs, err := rs.reportRepo.List(ctx, ownerEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, store.ToPublic(doc))
	}
	return out, nil
}
