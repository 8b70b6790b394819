package domain

import (
	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/pointers"
)

// UserProfile is the settings/personalization record for a user. Email
// is the unique key; uniqueness is enforced by a read-before-write
// check at creation time.
type UserProfile struct {
	Name                 string   `json:"name" bson:"name" binding:"required"`
	Email                string   `json:"email" bson:"email" binding:"required,email"`
	Phone                *string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Age                  *int     `json:"age,omitempty" bson:"age,omitempty"`
	Gender               *string  `json:"gender,omitempty" bson:"gender,omitempty"`
	HeightCm             *float64 `json:"height_cm,omitempty" bson:"height_cm,omitempty"`
	WeightKg             *float64 `json:"weight_kg,omitempty" bson:"weight_kg,omitempty"`
	Theme                string   `json:"theme" bson:"theme"`
	NotificationsEnabled *bool    `json:"notifications_enabled" bson:"notifications_enabled"`
}

// ProfileUpdate carries the fields a PUT may change. Nil means "leave
// untouched"; only non-nil fields are written.
type ProfileUpdate struct {
	Name                 *string  `json:"name,omitempty"`
	Phone                *string  `json:"phone,omitempty"`
	Age                  *int     `json:"age,omitempty"`
	Gender               *string  `json:"gender,omitempty"`
	HeightCm             *float64 `json:"height_cm,omitempty"`
	WeightKg             *float64 `json:"weight_kg,omitempty"`
	Theme                *string  `json:"theme,omitempty"`
	NotificationsEnabled *bool    `json:"notifications_enabled,omitempty"`
}

func (p *UserProfile) ApplyDefaults() {
	if p.Theme == "" {
		p.Theme = "dark"
	}
	if p.NotificationsEnabled == nil {
		p.NotificationsEnabled = pointers.Ptr(true)
	}
}

func (p *UserProfile) Validate() error {
	if err := validateProfileFields(p.Age, p.Gender, p.HeightCm, p.WeightKg, &p.Theme); err != nil {
		return err
	}
	return nil
}

func (u *ProfileUpdate) Validate() error {
	return validateProfileFields(u.Age, u.Gender, u.HeightCm, u.WeightKg, u.Theme)
}

func validateProfileFields(age *int, gender *string, heightCm, weightKg *float64, theme *string) error {
	if age != nil && (*age < 0 || *age > 120) {
		return apperrors.Invalid("age", "must be between 0 and 120")
	}
	if gender != nil && !oneOf(*gender, "male", "female", "other", "prefer_not_to_say") {
		return apperrors.Invalid("gender", "must be one of male, female, other, prefer_not_to_say")
	}
	if heightCm != nil && *heightCm < 0 {
		return apperrors.Invalid("height_cm", "must be non-negative")
	}
	if weightKg != nil && *weightKg < 0 {
		return apperrors.Invalid("weight_kg", "must be non-negative")
	}
	if theme != nil && !oneOf(*theme, "dark", "light", "system") {
		return apperrors.Invalid("theme", "must be one of dark, light, system")
	}
	return nil
}
