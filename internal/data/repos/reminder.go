package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type ReminderRepo interface {
	Create(ctx context.Context, reminder *domain.Reminder) (string, error)
	List(ctx context.Context, ownerEmail string, limit int64) ([]bson.M, error)
}

type reminderRepo struct {
	store *store.Service
	log   *logger.Logger
}

func NewReminderRepo(s *store.Service, log *logger.Logger) ReminderRepo {
	return &reminderRepo{store: s, log: log.With("repo", "ReminderRepo")}
}

func (r *reminderRepo) Create(ctx context.Context, reminder *domain.Reminder) (string, error) {
	return r.store.Insert(ctx, domain.CollectionReminder, reminder)
}

func (r *reminderRepo) List(ctx context.Context, ownerEmail string, limit int64) ([]bson.M, error) {
	filter := bson.M{}
	if ownerEmail != "" {
		filter["owner_email"] = ownerEmail
	}
	return r.store.Find(ctx, domain.CollectionReminder, filter, limit)
}
