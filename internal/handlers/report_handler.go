package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"barbershop-finance-api/internal/export"
	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/services"
)

// ReportHandler handles financial report requests
type ReportHandler struct {
	reports services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// parseReportQuery resolves the period and reference date query parameters.
// The period defaults to monthly, the reference date to today (server local).
func parseReportQuery(c *gin.Context) (models.Period, time.Time, error) {
	period, err := models.ParsePeriod(c.Query("period"))
	if err != nil {
		return "", time.Time{}, err
	}

	referenceDate := time.Now()
	if raw := c.Query("reference_date"); raw != "" {
		referenceDate, err = time.ParseInLocation(models.ReferenceDateLayout, raw, time.Local)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("reference_date must be YYYY-MM-DD: %w", err)
		}
	}

	return period, referenceDate, nil
}

// @Summary Get a financial report
// @Description Aggregate transactions and expenses for a daily, weekly or monthly period
// @Tags reports
// @Produce json
// @Param period query string false "Report period" Enums(daily, weekly, monthly) default(monthly)
// @Param reference_date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.Report
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	period, referenceDate, err := parseReportQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid report parameters",
			Message: err.Error(),
		})
		return
	}

	report, err := h.reports.BuildReport(c.Request.Context(), period, referenceDate)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid report parameters",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to build report",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Export a financial report as CSV
// @Tags reports
// @Produce text/csv
// @Param period query string false "Report period" Enums(daily, weekly, monthly) default(monthly)
// @Param reference_date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {string} string "CSV report"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /report/export [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	period, referenceDate, err := parseReportQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid report parameters",
			Message: err.Error(),
		})
		return
	}

	report, err := h.reports.BuildReport(c.Request.Context(), period, referenceDate)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid report parameters",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to build report",
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(report)))
	c.Status(http.StatusOK)

	if err := export.WriteCSV(c.Writer, report); err != nil {
		// Headers are already sent, the best we can do is log via gin's error list.
		_ = c.Error(err)
	}
}
