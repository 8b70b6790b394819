package app

import (
	"github.com/gin-gonic/gin"

	"github.com/aarogyaai/aarogya-backend/internal/http"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		HealthHandler:   handlers.Health,
		ProfileHandler:  handlers.Profile,
		ReportHandler:   handlers.Report,
		ChatHandler:     handlers.Chat,
		SymptomHandler:  handlers.Symptom,
		ReminderHandler: handlers.Reminder,
	})
}
