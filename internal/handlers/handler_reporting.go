package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests related to reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	now              func() time.Time
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := &reportingHandler{reportingService: reportingService, now: time.Now}

	reports := rg.Group("/reports")
	{
		reports.GET("/aggregated", h.getAggregatedReport)
	}
}

// getAggregatedReport godoc
// @Summary Aggregated cashbook report
// @Description Per-cashbook IN, OUT and balance for a period, plus grand totals. Staff only see their assigned cashbooks.
// @Tags reports
// @Produce json
// @Param range query string false "DAILY, WEEKLY, MONTHLY, YEARLY or CUSTOM" default(WEEKLY)
// @Param start query string false "Start date for CUSTOM (YYYY-MM-DD)"
// @Param end query string false "End date for CUSTOM (YYYY-MM-DD)"
// @Success 200 {object} domain.AggregatedReport
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/aggregated [get]
func (h *reportingHandler) getAggregatedReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.AggregatedReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	start, err := parseReportDate(params.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid start date: " + err.Error()})
		return
	}
	end, err := parseReportDate(params.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid end date: " + err.Error()})
		return
	}

	r, err := domain.ResolveReportRange(domain.ReportPreset(params.Range), h.now(), start, end)
	if err != nil {
		logger.Warn("Invalid report range", slog.String("range", params.Range), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.reportingService.GetAggregatedReport(c.Request.Context(), userID, r)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// parseReportDate reads a YYYY-MM-DD bound in the server's local zone, the
// zone the CLI and the daily presets use. An empty value yields nil.
func parseReportDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(reportDateLayout, value, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
