package app

import (
	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	httpH "github.com/aarogyaai/aarogya-backend/internal/http/handlers"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Profile  *httpH.ProfileHandler
	Report   *httpH.ReportHandler
	Chat     *httpH.ChatHandler
	Symptom  *httpH.SymptomHandler
	Reminder *httpH.ReminderHandler
}

func wireHandlers(log *logger.Logger, s *store.Service, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(s),
		Profile:  httpH.NewProfileHandler(serviceset.Profile),
		Report:   httpH.NewReportHandler(serviceset.Report),
		Chat:     httpH.NewChatHandler(serviceset.Chat),
		Symptom:  httpH.NewSymptomHandler(serviceset.Symptom),
		Reminder: httpH.NewReminderHandler(serviceset.Reminder),
	}
}
