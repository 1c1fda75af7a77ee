package api

import (
	"errors"
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler holds the export service dependency.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportSummary handles POST /export/summary.
func (h *ExportHandler) ExportSummary(c *gin.Context) {
	result, err := h.exportService.ExportSummary(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNothingToExport) {
			abortWithError(c, http.StatusConflict, "No workouts recorded yet.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to export summary report.")
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DeleteReport handles DELETE /export/summary/:name.
func (h *ExportHandler) DeleteReport(c *gin.Context) {
	err := h.exportService.DeleteReport(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidReportName) {
			abortWithError(c, http.StatusBadRequest, "Invalid report name.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete summary report.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
