package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/http/response"
	"github.com/aarogyaai/aarogya-backend/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// POST /api/reports
func (rh *ReportHandler) Create(c *gin.Context) {
	var report domain.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		response.BindError(c, err)
		return
	}

	id, err := rh.reportService.Create(c.Request.Context(), &report)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"id": id})
}

// GET /api/reports?owner_email=&limit=
func (rh *ReportHandler) List(c *gin.Context) {
	limit, err := parseLimit(c, 25, 100)
	if err != nil {
		response.FromError(c, err)
		return
	}

	docs, err := rh.reportService.List(c.Request.Context(), c.Query("owner_email"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, docs)
}
