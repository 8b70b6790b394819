package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aarogyaai/aarogya-backend/internal/domain"
)

type fakeChatRepo struct {
	created []*domain.ChatMessage
	docs    []bson.M
}

func (f *fakeChatRepo) Create(_ context.Context, message *domain.ChatMessage) (string, error) {
	f.created = append(f.created, message)
	return fmt.Sprintf("msg%d", len(f.created)), nil
}

func (f *fakeChatRepo) List(_ context.Context, _, _ string, limit int64) ([]bson.M, error) {
	if int64(len(f.docs)) > limit {
		return f.docs[:limit], nil
	}
	return f.docs, nil
}

func TestSendPairsAssistantReply(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(testLogger(t), repo)

	conversationID := "conv-7"
	owner := "a@b.com"
	reply, err := svc.Send(context.Background(), &domain.ChatMessage{
		ConversationID: &conversationID,
		Role:           domain.ChatRoleUser,
		Content:        "I have a headache",
		OwnerEmail:     &owner,
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 2)
	userMsg, assistantMsg := repo.created[0], repo.created[1]
	assert.Equal(t, domain.ChatRoleUser, userMsg.Role)
	assert.Equal(t, domain.ChatRoleAssistant, assistantMsg.Role)
	assert.Equal(t, conversationID, *assistantMsg.ConversationID)
	assert.Equal(t, owner, *assistantMsg.OwnerEmail)
	assert.Equal(t, AssistantReply, assistantMsg.Content)

	assert.Equal(t, "msg1", reply.UserMessageID)
	assert.Equal(t, "msg2", reply.AssistantMessageID)
	assert.Equal(t, conversationID, reply.ConversationID)
	assert.Equal(t, AssistantReply, reply.Reply)
}

func TestSendMintsConversationID(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(testLogger(t), repo)

	reply, err := svc.Send(context.Background(), &domain.ChatMessage{
		Role:    domain.ChatRoleUser,
		Content: "hello",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 2)
	assert.NotEmpty(t, reply.ConversationID)
	assert.Equal(t, reply.ConversationID, *repo.created[0].ConversationID)
	assert.Equal(t, reply.ConversationID, *repo.created[1].ConversationID)
}

func TestSendRejectsUnknownRole(t *testing.T) {
	svc := NewChatService(testLogger(t), &fakeChatRepo{})

	_, err := svc.Send(context.Background(), &domain.ChatMessage{
		Role:    "model",
		Content: "hi",
	})
	assert.Error(t, err)
}

func TestHistorySortsByCreationTime(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := &fakeChatRepo{docs: []bson.M{
		{"content": "second", "created_at": primitive.NewDateTimeFromTime(base.Add(time.Minute))},
		{"content": "first", "created_at": primitive.NewDateTimeFromTime(base)},
	}}
	svc := NewChatService(testLogger(t), repo)

	history, err := svc.History(context.Background(), "", "", 50)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first", history[0]["content"])
	assert.Equal(t, "second", history[1]["content"])
}
