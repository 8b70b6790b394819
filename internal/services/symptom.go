package services

import (
	"context"
	"fmt"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/data/repos"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

// SymptomAssessment is the fixed advisory string stored alongside
// every submission. It is not personalized.
const SymptomAssessment = "Symptoms recorded. If symptoms worsen or you experience severe issues (e.g., chest pain, " +
	"difficulty breathing), please seek immediate medical attention."

var severityWeights = map[string]float64{
	"mild":     0.30,
	"moderate": 0.60,
	"severe":   0.85,
}

// severityWeightUnspecified applies when the caller reports no
// severity at all.
const severityWeightUnspecified = 0.20

// RiskScore computes the heuristic risk in [0,1]:
// min(1.0, 0.15*symptomCount + severityWeight).
func RiskScore(symptomCount int, severity *string) float64 {
	weight := severityWeightUnspecified
	if severity != nil {
		weight = severityWeights[*severity]
	}
	return min(1.0, 0.15*float64(symptomCount)+weight)
}

type SymptomResult struct {
	ID         string  `json:"id"`
	RiskScore  float64 `json:"risk_score"`
	Assessment string  `json:"assessment"`
}

type SymptomService interface {
	Submit(ctx context.Context, input *domain.SymptomCheckInput) (*SymptomResult, error)
	List(ctx context.Context, ownerEmail string, limit int64) ([]map[string]interface{}, error)
}

type symptomService struct {
	log         *logger.Logger
	symptomRepo repos.SymptomRepo
}

func NewSymptomService(log *logger.Logger, symptomRepo repos.SymptomRepo) SymptomService {
	return &symptomService{
		log:         log.With("service", "SymptomService"),
		symptomRepo: symptomRepo,
	}
}

func (ss *symptomService) Submit(ctx context.Context, input *domain.SymptomCheckInput) (*SymptomResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	risk := RiskScore(len(input.Symptoms), input.Severity)
	check := &domain.SymptomCheck{
		Symptoms:   input.Symptoms,
		Duration:   input.Duration,
		Severity:   input.Severity,
		Notes:      input.Notes,
		Assessment: SymptomAssessment,
		RiskScore:  risk,
		OwnerEmail: input.OwnerEmail,
	}

	id, err := ss.symptomRepo.Create(ctx, check)
	if err != nil {
		return nil, fmt.Errorf("save symptom check: %w", err)
	}
	ss.log.Debug("Recorded symptom check", "id", id, "risk_score", risk)
	return &SymptomResult{ID: id, RiskScore: risk, Assessment: SymptomAssessment}, nil
}

func (ss *symptomService) List(ctx context.Context, ownerEmail string, limit int64) ([]map[string]interface{}, error) {
	docs, err := ss.symptomRepo.List(ctx, ownerEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("list symptom checks: %w", err)
	}
	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, store.ToPublic(doc))
	}
	return out, nil
}
