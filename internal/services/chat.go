package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/data/repos"
	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

// AssistantReply is the fixed placeholder response. There is no model
// behind it; every user message gets this exact text.
const AssistantReply = "I'm your AarogyaAI assistant. While I can't provide medical diagnosis, " +
	"I can help you track symptoms and suggest next steps. Could you share more details?"

type ChatReply struct {
	UserMessageID      string `json:"user_message_id"`
	AssistantMessageID string `json:"assistant_message_id"`
	ConversationID     string `json:"conversation_id"`
	Reply              string `json:"reply"`
}

type ChatService interface {
	Send(ctx context.Context, message *domain.ChatMessage) (*ChatReply, error)
	History(ctx context.Context, conversationID, ownerEmail string, limit int64) ([]map[string]interface{}, error)
}

type chatService struct {
	log      *logger.Logger
	chatRepo repos.ChatRepo
}

func NewChatService(log *logger.Logger, chatRepo repos.ChatRepo) ChatService {
	return &chatService{
		log:      log.With("service", "ChatService"),
		chatRepo: chatRepo,
	}
}

// Send persists the incoming message verbatim, then writes exactly one
// assistant reply sharing its conversation_id and owner_email. A
// conversation id is minted when the client did not supply one.
func (cs *chatService) Send(ctx context.Context, message *domain.ChatMessage) (*ChatReply, error) {
	if err := message.Validate(); err != nil {
		return nil, err
	}

	if message.ConversationID == nil || *message.ConversationID == "" {
		conversationID := uuid.NewString()
		message.ConversationID = &conversationID
	}

	userMessageID, err := cs.chatRepo.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}

	assistant := &domain.ChatMessage{
		ConversationID: message.ConversationID,
		Role:           domain.ChatRoleAssistant,
		Content:        AssistantReply,
		OwnerEmail:     message.OwnerEmail,
	}
	assistantMessageID, err := cs.chatRepo.Create(ctx, assistant)
	if err != nil {
		return nil, fmt.Errorf("save assistant message: %w", err)
	}

	return &ChatReply{
		UserMessageID:      userMessageID,
		AssistantMessageID: assistantMessageID,
		ConversationID:     *message.ConversationID,
		Reply:              AssistantReply,
	}, nil
}

// History lists messages matching the optional filters, oldest first.
// The store returns insertion order by default but that is not a
// contract, so we re-sort on created_at.
func (cs *chatService) History(ctx context.Context, conversationID, ownerEmail string, limit int64) ([]map[string]interface{}, error) {
	docs, err := cs.chatRepo.List(ctx, conversationID, ownerEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat history: %w", err)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docCreatedAt(docs[i]).Before(docCreatedAt(docs[j]))
	})

	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, store.ToPublic(doc))
	}
	return out, nil
}

// docCreatedAt reads created_at from a raw document. Documents without
// one sort last.
func docCreatedAt(doc bson.M) time.Time {
	switch v := doc["created_at"].(type) {
	case primitive.DateTime:
		return v.Time()
	case time.Time:
		return v
	default:
		return time.Now().UTC()
	}
}
