package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/http/response"
	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
	"github.com/aarogyaai/aarogya-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// POST /api/profile
func (ph *ProfileHandler) Create(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.BindError(c, err)
		return
	}

	id, err := ph.profileService.Create(c.Request.Context(), &profile)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"id": id})
}

// GET /api/profile?email=
func (ph *ProfileHandler) Get(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.FromError(c, apperrors.Invalid("email", "query parameter is required"))
		return
	}

	doc, err := ph.profileService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, doc)
}

// PUT /api/profile?email=
// Partial update: only fields present in the body are written.
func (ph *ProfileHandler) Update(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.FromError(c, apperrors.Invalid("email", "query parameter is required"))
		return
	}

	var changes domain.ProfileUpdate
	if err := c.ShouldBindJSON(&changes); err != nil {
		response.BindError(c, err)
		return
	}

	if err := ph.profileService.Update(c.Request.Context(), email, &changes); err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
