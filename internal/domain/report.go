package domain

import (
	"time"

	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
)

// Report is health report metadata. Files themselves live elsewhere;
// we persist the link plus context.
type Report struct {
	Title      string     `json:"title" bson:"title" binding:"required"`
	ReportType string     `json:"report_type" bson:"report_type"`
	ReportDate *time.Time `json:"report_date,omitempty" bson:"report_date,omitempty"`
	FileURL    *string    `json:"file_url,omitempty" bson:"file_url,omitempty"`
	Notes      *string    `json:"notes,omitempty" bson:"notes,omitempty"`
	OwnerEmail string     `json:"owner_email" bson:"owner_email" binding:"required,email"`
}

func (r *Report) ApplyDefaults() {
	if r.ReportType == "" {
		r.ReportType = "other"
	}
}

func (r *Report) Validate() error {
	if !oneOf(r.ReportType, "blood_test", "scan", "prescription", "discharge_summary", "other") {
		return apperrors.Invalid("report_type", "must be one of blood_test, scan, prescription, discharge_summary, other")
	}
	return nil
}
