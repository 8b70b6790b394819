package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/aarogyaai/aarogya-backend/internal/http/handlers"
	httpMW "github.com/aarogyaai/aarogya-backend/internal/http/middleware"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler   *httpH.HealthHandler
	ProfileHandler  *httpH.ProfileHandler
	ReportHandler   *httpH.ReportHandler
	ChatHandler     *httpH.ChatHandler
	SymptomHandler  *httpH.SymptomHandler
	ReminderHandler *httpH.ReminderHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestID(cfg.Log))
	r.Use(httpMW.CORS())

	// Liveness + store diagnostic
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/test", cfg.HealthHandler.TestStore)
	}

	api := r.Group("/api")
	{
		if cfg.ProfileHandler != nil {
			api.POST("/profile", cfg.ProfileHandler.Create)
			api.GET("/profile", cfg.ProfileHandler.Get)
			api.PUT("/profile", cfg.ProfileHandler.Update)
		}

		if cfg.ReportHandler != nil {
			api.POST("/reports", cfg.ReportHandler.Create)
			api.GET("/reports", cfg.ReportHandler.List)
		}

		if cfg.ChatHandler != nil {
			api.POST("/chat", cfg.ChatHandler.Send)
			api.GET("/chat/history", cfg.ChatHandler.History)
		}

		if cfg.SymptomHandler != nil {
			api.POST("/symptoms", cfg.SymptomHandler.Submit)
			api.GET("/symptoms", cfg.SymptomHandler.List)
		}

		if cfg.ReminderHandler != nil {
			api.POST("/reminders", cfg.ReminderHandler.Create)
			api.GET("/reminders", cfg.ReminderHandler.List)
		}
	}

	return r
}
