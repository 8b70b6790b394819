package app

import (
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
	"github.com/aarogyaai/aarogya-backend/internal/services"
)

type Services struct {
	Profile  services.ProfileService
	Report   services.ReportService
	Chat     services.ChatService
	Symptom  services.SymptomService
	Reminder services.ReminderService
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Profile:  services.NewProfileService(log, reposet.Profile),
		Report:   services.NewReportService(log, reposet.Report),
		Chat:     services.NewChatService(log, reposet.Chat),
		Symptom:  services.NewSymptomService(log, reposet.Symptom),
		Reminder: services.NewReminderService(log, reposet.Reminder),
	}
}
