package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	store "github.com/aarogyaai/aarogya-backend/internal/data/mongo"
)

type HealthHandler struct {
	store *store.Service
}

func NewHealthHandler(s *store.Service) *HealthHandler {
	return &HealthHandler{store: s}
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"app": "AarogyaAI Backend", "status": "ok"})
}

// GET /test
// Store connectivity diagnostic. Store errors are summarized in the
// body, never propagated.
func (h *HealthHandler) TestStore(c *gin.Context) {
	envFlag := func(key string) string {
		if os.Getenv(key) != "" {
			return "set"
		}
		return "unset"
	}

	if !h.store.Available() {
		c.JSON(http.StatusOK, gin.H{
			"backend":       "running",
			"database":      "not_configured",
			"collections":   []string{},
			"database_url":  envFlag("DATABASE_URL"),
			"database_name": envFlag("DATABASE_NAME"),
		})
		return
	}

	collections, err := h.store.Collections(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"backend":  "running",
			"database": fmt.Sprintf("error: %.80s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"backend":       "running",
		"database":      "connected",
		"collections":   collections,
		"database_url":  envFlag("DATABASE_URL"),
		"database_name": envFlag("DATABASE_NAME"),
	})
}
