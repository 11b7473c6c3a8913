package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/shopbooks/backend/internal/application/report"
)

// ReportHandler handles report-related API endpoints
type ReportHandler struct {
	BaseHandler
	financeReportService *reportapp.FinanceReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(financeReportService *reportapp.FinanceReportService) *ReportHandler {
	return &ReportHandler{
		financeReportService: financeReportService,
	}
}

// FinanceSummary returns credit and debit totals per account type for a period
func (h *ReportHandler) FinanceSummary(c *gin.Context) {
	var req reportapp.FinanceReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.financeReportService.Summarize(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}
