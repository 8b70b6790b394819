package domain

import (
	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of an assistant conversation. ConversationID
// groups turns into a thread; the server mints one when the client
// does not supply it.
type ChatMessage struct {
	ConversationID *string `json:"conversation_id,omitempty" bson:"conversation_id,omitempty"`
	Role           string  `json:"role" bson:"role" binding:"required"`
	Content        string  `json:"content" bson:"content" binding:"required"`
	OwnerEmail     *string `json:"owner_email,omitempty" bson:"owner_email,omitempty" binding:"omitempty,email"`
}

func (m *ChatMessage) Validate() error {
	if !oneOf(m.Role, ChatRoleUser, ChatRoleAssistant) {
		return apperrors.Invalid("role", "must be one of user, assistant")
	}
	return nil
}
