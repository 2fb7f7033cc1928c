package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ExploitInject/Income-Management-TH/internal/apperrors"
	"github.com/ExploitInject/Income-Management-TH/internal/core/ports"
	"github.com/ExploitInject/Income-Management-TH/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles statistics and export endpoints.
type reportHandler struct {
	statisticsService ports.StatisticsSvc
	exportService     ports.ExportSvc
}

func newReportHandler(ss ports.StatisticsSvc, es ports.ExportSvc) *reportHandler {
	return &reportHandler{statisticsService: ss, exportService: es}
}

// RegisterReportRoutes registers routes related to reports.
func RegisterReportRoutes(rg *gin.RouterGroup, statisticsService ports.StatisticsSvc, exportService ports.ExportSvc) {
	h := newReportHandler(statisticsService, exportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/statistics", h.getStatistics)
		reports.GET("/export", h.exportEntries)
	}
}

// getStatistics godoc
// @Summary Get dashboard statistics
// @Description Computes income totals, counts and averages over all of the authenticated user's entries
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.Statistics
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /reports/statistics [get]
func (h *reportHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.statisticsService.Statistics(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to compute statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// exportEntries godoc
// @Summary Export work entries
// @Description Serializes the filtered entry set as a downloadable CSV or JSON file
// @Tags reports
// @Produce  json
// @Param   format query string true "Export format (csv or json)"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   category query string false "Category id"
// @Param   currency query string false "Currency code"
// @Param   paymentStatus query string false "paid or unpaid"
// @Success 200 {file} file "Exported file"
// @Failure 400 {object} map[string]string "Invalid format or filter"
// @Failure 500 {object} map[string]string "Failed to export entries"
// @Security BearerAuth
// @Router /reports/export [get]
func (h *reportHandler) exportEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := bindReportFilter(c)
	if err != nil {
		logger.Warn("Invalid filter query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	format := c.Query("format")
	file, err := h.exportService.Export(c.Request.Context(), ownerID, filter, format)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to export entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export entries"})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
