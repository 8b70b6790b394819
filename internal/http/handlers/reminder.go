package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/http/response"
	"github.com/aarogyaai/aarogya-backend/internal/services"
)

type ReminderHandler struct {
	reminderService services.ReminderService
}

func NewReminderHandler(reminderService services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// POST /api/reminders
func (rh *ReminderHandler) Create(c *gin.Context) {
	var reminder domain.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		response.BindError(c, err)
		return
	}

	id, err := rh.reminderService.Create(c.Request.Context(), &reminder)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"id": id})
}

// GET /api/reminders?owner_email=&limit=
func (rh *ReminderHandler) List(c *gin.Context) {
	limit, err := parseLimit(c, 50, 100)
	if err != nil {
		response.FromError(c, err)
		return
	}

	docs, err := rh.reminderService.List(c.Request.Context(), c.Query("owner_email"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, docs)
}
