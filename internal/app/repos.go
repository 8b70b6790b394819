package app

import (
	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/data/repos"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type Repos struct {
	Profile  repos.ProfileRepo
	Report   repos.ReportRepo
	Chat     repos.ChatRepo
	Symptom  repos.SymptomRepo
	Reminder repos.ReminderRepo
}

func wireRepos(s *store.Service, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Profile:  repos.NewProfileRepo(s, log),
		Report:   repos.NewReportRepo(s, log),
		Chat:     repos.NewChatRepo(s, log),
		Symptom:  repos.NewSymptomRepo(s, log),
		Reminder: repos.NewReminderRepo(s, log),
	}
}
