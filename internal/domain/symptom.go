package domain

import (
	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
)

// SymptomCheckInput is what callers may submit. It deliberately has no
// assessment or risk_score fields; those are computed server-side and
// never trusted from the caller.
type SymptomCheckInput struct {
	Symptoms   []string `json:"symptoms" bson:"symptoms" binding:"required"`
	Duration   *string  `json:"duration,omitempty" bson:"duration,omitempty"`
	Severity   *string  `json:"severity,omitempty" bson:"severity,omitempty"`
	Notes      *string  `json:"notes,omitempty" bson:"notes,omitempty"`
	OwnerEmail *string  `json:"owner_email,omitempty" bson:"owner_email,omitempty" binding:"omitempty,email"`
}

// SymptomCheck is the persisted record, input plus the computed
// assessment and risk score.
type SymptomCheck struct {
	Symptoms   []string `bson:"symptoms"`
	Duration   *string  `bson:"duration,omitempty"`
	Severity   *string  `bson:"severity,omitempty"`
	Notes      *string  `bson:"notes,omitempty"`
	Assessment string   `bson:"assessment"`
	RiskScore  float64  `bson:"risk_score"`
	OwnerEmail *string  `bson:"owner_email,omitempty"`
}

func (s *SymptomCheckInput) Validate() error {
	if len(s.Symptoms) == 0 {
		return apperrors.Invalid("symptoms", "at least one symptom is required")
	}
	if s.Severity != nil && !oneOf(*s.Severity, "mild", "moderate", "severe") {
		return apperrors.Invalid("severity", "must be one of mild, moderate, severe")
	}
	return nil
}
