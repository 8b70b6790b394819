package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/http/response"
	"github.com/aarogyaai/aarogya-backend/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /api/chat
// Persists the message and returns the paired assistant reply.
func (ch *ChatHandler) Send(c *gin.Context) {
	var message domain.ChatMessage
	if err := c.ShouldBindJSON(&message); err != nil {
		response.BindError(c, err)
		return
	}

	reply, err := ch.chatService.Send(c.Request.Context(), &message)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, reply)
}

// GET /api/chat/history?conversation_id=&owner_email=&limit=
func (ch *ChatHandler) History(c *gin.Context) {
	limit, err := parseLimit(c, 50, 200)
	if err != nil {
		response.FromError(c, err)
		return
	}

	docs, err := ch.chatService.History(c.Request.Context(), c.Query("conversation_id"), c.Query("owner_email"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, docs)
}
