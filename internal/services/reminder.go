package services

import (
	"context"
	"fmt"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/data/repos"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type ReminderService interface {
	Create(ctx context.Context, reminder *domain.Reminder) (string, error)
	List(ctx context.Context, ownerEmail string, limit int64) ([]map[string]interface{}, error)
}

type reminderService struct {
	log          *logger.Logger
	reminderRepo repos.ReminderRepo
}

func NewReminderService(log *logger.Logger, reminderRepo repos.ReminderRepo) ReminderService {
	return &reminderService{
		log:          log.With("service", "ReminderService"),
		reminderRepo: reminderRepo,
	}
}

func (rs *reminderService) Create(ctx context.Context, reminder *domain.Reminder) (string, error) {
	reminder.ApplyDefaults()
	id, err := rs.reminderRepo.Create(ctx, reminder)
	if err != nil {
		return "", fmt.Errorf("create reminder: %w", err)
	}
	return id, nil
}

func (rs *reminderService) List(ctx context.Context, ownerEmail string, limit int64) ([]map[string]interface{}, error) {
	docs, err := rs.reminderRepo.List(ctx, ownerEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, store.ToPublic(doc))
	}
	return out, nil
}
