package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/automationsflow/afbooks/internal/apperrors"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/automationsflow/afbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the settlement and analytics
// reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report endpoints.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/settlement", h.getSettlementReport)
		reports.GET("/analytics", h.getAnalyticsReport)
	}
}

// getSettlementReport godoc
// @Summary Compute the partnership settlement for a year
// @Description Returns revenue shares, cost shares, withdrawals, current account movements and net available per partner
// @Tags reports
// @Produce json
// @Param year query int false "Fiscal year (defaults to current)"
// @Success 200 {object} domain.SettlementReport
// @Failure 409 {object} map[string]string "Partner roster is not exactly two"
// @Failure 500 {object} map[string]string "Failed to compute settlement"
// @Router /reports/settlement [get]
func (h *reportingHandler) getSettlementReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.GetSettlementReport(c.Request.Context(), params.Year)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartnerCardinality) {
			c.JSON(http.StatusConflict, gin.H{"error": "Settlement requires exactly two partners"})
		} else {
			logger.Error("Failed to compute settlement report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute settlement report"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// getAnalyticsReport godoc
// @Summary Compute dashboard analytics for a year
// @Description Returns monthly revenue and expense series, category and client breakdowns
// @Tags reports
// @Produce json
// @Param year query int false "Fiscal year (defaults to current)"
// @Success 200 {object} domain.AnalyticsReport
// @Failure 409 {object} map[string]string "Partner roster is not exactly two"
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Router /reports/analytics [get]
func (h *reportingHandler) getAnalyticsReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.GetAnalyticsReport(c.Request.Context(), params.Year)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartnerCardinality) {
			c.JSON(http.StatusConflict, gin.H{"error": "Settlement requires exactly two partners"})
		} else {
			logger.Error("Failed to compute analytics report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics report"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
