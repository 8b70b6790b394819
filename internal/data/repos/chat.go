package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type ChatRepo interface {
	Create(ctx context.Context, message *domain.ChatMessage) (string, error)
	List(ctx context.Context, conversationID, ownerEmail string, limit int64) ([]bson.M, error)
}

type chatRepo struct {
	store *store.Service
	log   *logger.Logger
}

func NewChatRepo(s *store.Service, log *logger.Logger) ChatRepo {
	return &chatRepo{store: s, log: log.With("repo", "ChatRepo")}
}

func (r *chatRepo) Create(ctx context.Context, message *domain.ChatMessage) (string, error) {
	return r.store.Insert(ctx, domain.CollectionChatMessage, message)
}

func (r *chatRepo) List(ctx context.Context, conversationID, ownerEmail string, limit int64) ([]bson.M, error) {
	filter := bson.M{}
	if conversationID != "" {
		filter["conversation_id"] = conversationID
	}
	if ownerEmail != "" {
		filter["owner_email"] = ownerEmail
	}
	return r.store.Find(ctx, domain.CollectionChatMessage, filter, limit)
}
