package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/http/response"
	"github.com/aarogyaai/aarogya-backend/internal/services"
)

type SymptomHandler struct {
	symptomService services.SymptomService
}

func NewSymptomHandler(symptomService services.SymptomService) *SymptomHandler {
	return &SymptomHandler{symptomService: symptomService}
}

// POST /api/symptoms
// The input type has no assessment/risk_score fields; both are
// computed server-side.
func (sh *SymptomHandler) Submit(c *gin.Context) {
	var input domain.SymptomCheckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := sh.symptomService.Submit(c.Request.Context(), &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GET /api/symptoms?owner_email=&limit=
func (sh *SymptomHandler) List(c *gin.Context) {
	limit, err := parseLimit(c, 25, 100)
	if err != nil {
		response.FromError(c, err)
		return
	}

	docs, err := sh.symptomService.List(c.Request.Context(), c.Query("owner_email"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, docs)
}
