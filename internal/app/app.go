package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	Store    *store.Service
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	storeService, err := store.NewService(store.Config{
		URI:      cfg.DatabaseURL,
		Database: cfg.DatabaseName,
	}, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init document store: %w", err)
	}

	reposet := wireRepos(storeService, log)
	serviceset := wireServices(log, reposet)
	handlerset := wireHandlers(log, storeService, serviceset)
	router := wireRouter(log, handlerset)

	return &App{
		Log:      log,
		Store:    storeService,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		a.Store.Close(ctx)
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
