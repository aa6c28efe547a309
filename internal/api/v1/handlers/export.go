package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"verbaflow/internal/api/middleware"
	"verbaflow/internal/api/v1/dto"
	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/export"
	"verbaflow/internal/app/lifecycle"
	"verbaflow/internal/app/model"
)

// ExportHandler handles export-related API endpoints
type ExportHandler struct {
	controller *lifecycle.Controller
	exporter   *export.Exporter
}

// NewExportHandler creates a new export handler
func NewExportHandler(controller *lifecycle.Controller, exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{
		controller: controller,
		exporter:   exporter,
	}
}

// Export handles GET /api/v1/export
//
// @Summary Download the current transcript
// @Description Renders the transcript shown in the session as TXT, PDF or DOCX
// @Tags export
// @Produce octet-stream
// @Param format query string true "Export format" Enums(txt,pdf,docx)
// @Success 200 {file} file "Exported document"
// @Failure 409 {object} errors.APIError "No transcript to export"
// @Failure 422 {object} errors.APIError "Invalid format"
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := middleware.ValidateQuery(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	st := h.controller.Snapshot()
	if st.Status != model.RunCompleted {
		middleware.HandleError(c, apperrors.ErrNothingToShow)
		return
	}

	doc := h.exporter.Document(st.Text, st.FileName())
	data, err := export.RenderBytes(format, doc)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	attach(c, export.FileName(doc.FileName, string(format), doc.Date), format.ContentType(), data)
	h.exporter.Served(format)
}

// attach sends data as a download named name.
func attach(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}
