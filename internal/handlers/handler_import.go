package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/ExploitInject/Income-Management-TH/internal/core/ports"
	"github.com/ExploitInject/Income-Management-TH/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler handles file import requests.
type importHandler struct {
	importService ports.ImportSvc
}

func newImportHandler(is ports.ImportSvc) *importHandler {
	return &importHandler{importService: is}
}

// RegisterImportRoutes registers routes related to entry imports.
func RegisterImportRoutes(rg *gin.RouterGroup, importService ports.ImportSvc) {
	h := newImportHandler(importService)

	rg.POST("/imports", h.importEntries)
}

// importEntries godoc
// @Summary Import work entries from a file
// @Description Accepts a CSV or JSON file upload and imports rows one by one, reporting per-row errors
// @Tags imports
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "CSV or JSON file"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} map[string]string "Missing or unreadable file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /imports [post]
func (h *importHandler) importEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing file in import request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file upload named 'file' is required"})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	summary := h.importService.Import(c.Request.Context(), ownerID, fileHeader.Filename, content)

	logger.Info("Import finished",
		slog.String("filename", fileHeader.Filename),
		slog.Int("imported", summary.SuccessCount),
		slog.Int("errors", len(summary.Errors)))
	c.JSON(http.StatusOK, summary)
}
