package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aarogyaai/aarogya-backend/internal/domain"
	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/pointers"
)

func TestRiskScore(t *testing.T) {
	cases := []struct {
		name     string
		symptoms int
		severity *string
		want     float64
	}{
		{"no severity single symptom", 1, nil, 0.35},
		{"mild", 1, pointers.String("mild"), 0.45},
		{"moderate two symptoms", 2, pointers.String("moderate"), 0.90},
		{"severe", 1, pointers.String("severe"), 1.00},
		{"capped at one", 10, pointers.String("severe"), 1.00},
		{"zero symptoms no severity", 0, nil, 0.20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RiskScore(tc.symptoms, tc.severity)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

type fakeSymptomRepo struct {
	created *domain.SymptomCheck
}

func (f *fakeSymptomRepo) Create(_ context.Context, check *domain.SymptomCheck) (string, error) {
	f.created = check
	return "sc1", nil
}

func (f *fakeSymptomRepo) List(_ context.Context, _ string, _ int64) ([]bson.M, error) {
	return nil, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	require.NoError(t, err)
	return log
}

func TestSubmitComputesServerSideFields(t *testing.T) {
	repo := &fakeSymptomRepo{}
	svc := NewSymptomService(testLogger(t), repo)

	res, err := svc.Submit(context.Background(), &domain.SymptomCheckInput{
		Symptoms: []string{"cough", "fever"},
		Severity: pointers.String("moderate"),
	})
	require.NoError(t, err)

	assert.Equal(t, "sc1", res.ID)
	assert.InDelta(t, 0.90, res.RiskScore, 1e-9)
	assert.Equal(t, SymptomAssessment, res.Assessment)

	require.NotNil(t, repo.created)
	assert.InDelta(t, 0.90, repo.created.RiskScore, 1e-9)
	assert.Equal(t, SymptomAssessment, repo.created.Assessment)
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	svc := NewSymptomService(testLogger(t), &fakeSymptomRepo{})

	_, err := svc.Submit(context.Background(), &domain.SymptomCheckInput{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = svc.Submit(context.Background(), &domain.SymptomCheckInput{
		Symptoms: []string{"cough"},
		Severity: pointers.String("critical"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}
