package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/data/repos"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type ProfileService interface {
	Create(ctx context.Context, profile *domain.UserProfile) (string, error)
	GetByEmail(ctx context.Context, email string) (map[string]interface{}, error)
	Update(ctx context.Context, email string, changes *domain.ProfileUpdate) error
}

type profileService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
}

func NewProfileService(log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
	return &profileService{
		log:         log.With("service", "ProfileService"),
		profileRepo: profileRepo,
	}
}

func (ps *profileService) Create(ctx context.Context, profile *domain.UserProfile) (string, error) {
	profile.ApplyDefaults()
	if err := profile.Validate(); err != nil {
		return "", err
	}

	// Check-then-insert, not atomic: two concurrent submissions with
	// the same email can both pass the check. The store has no unique
	// index on email, so this stays a best-effort guard.
	existing, err := ps.profileRepo.FindByEmail(ctx, profile.Email)
	if err != nil {
		return "", fmt.Errorf("check existing profile: %w", err)
	}
	if existing != nil {
		return "", fmt.Errorf("profile with email %s already exists: %w", profile.Email, apperrors.ErrConflict)
	}

	id, err := ps.profileRepo.Create(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("create profile: %w", err)
	}
	ps.log.Info("Created profile", "email", profile.Email, "id", id)
	return id, nil
}

func (ps *profileService) GetByEmail(ctx context.Context, email string) (map[string]interface{}, error) {
	doc, err := ps.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("profile %s: %w", email, apperrors.ErrNotFound)
	}
	return store.ToPublic(doc), nil
}

func (ps *profileService) Update(ctx context.Context, email string, changes *domain.ProfileUpdate) error {
	if err := changes.Validate(); err != nil {
		return err
	}

	found, err := ps.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	if found == nil {
		return fmt.Errorf("profile %s: %w", email, apperrors.ErrNotFound)
	}

	set := updateFields(changes)
	set["updated_at"] = time.Now().UTC()
	if err := ps.profileRepo.UpdateByEmail(ctx, email, set); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	ps.log.Info("Updated profile", "email", email)
	return nil
}

// updateFields maps only the explicitly-provided fields into a $set
// document.
func updateFields(changes *domain.ProfileUpdate) bson.M {
	set := bson.M{}
	if changes.Name != nil {
		set["name"] = *changes.Name
	}
	if changes.Phone != nil {
		set["phone"] = *changes.Phone
	}
	if changes.Age != nil {
		set["age"] = *changes.Age
	}
	if changes.Gender != nil {
		set["gender"] = *changes.Gender
	}
	if changes.HeightCm != nil {
		set["height_cm"] = *changes.HeightCm
	}
	if changes.WeightKg != nil {
		set["weight_kg"] = *changes.WeightKg
	}
	if changes.Theme != nil {
		set["theme"] = *changes.Theme
	}
	if changes.NotificationsEnabled != nil {
		set["notifications_enabled"] = *changes.NotificationsEnabled
	}
	return set
}
