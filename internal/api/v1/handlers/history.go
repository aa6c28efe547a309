package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"verbaflow/internal/api/middleware"
	"verbaflow/internal/api/v1/dto"
	"verbaflow/internal/app/export"
	"verbaflow/internal/app/lifecycle"
)

// HistoryHandler handles history-related API endpoints
type HistoryHandler struct {
	controller  *lifecycle.Controller
	exporter    *export.Exporter
	previewBase string
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(controller *lifecycle.Controller, exporter *export.Exporter, previewBase string) *HistoryHandler {
	return &HistoryHandler{
		controller:  controller,
		exporter:    exporter,
		previewBase: previewBase,
	}
}

// List handles GET /api/v1/history
//
// @Summary List history entries
// @Description Lists saved transcriptions, newest first
// @Tags history
// @Produce json
// @Success 200 {object} dto.HistoryListResponse "History entries"
// @Header 200 {string} X-Total-Count "Number of entries"
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	resp := dto.NewHistoryListResponse(h.controller.History())
	c.Header("X-Total-Count", strconv.Itoa(resp.Total))
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/history/:id
//
// @Summary Get a history entry
// @Tags history
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.HistoryEntryResponse "History entry"
// @Failure 404 {object} errors.APIError "Entry not found"
// @Router /history/{id} [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	entry, err := h.controller.Entry(c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHistoryEntryResponse(entry))
}

// Open handles POST /api/v1/history/:id/open
//
// @Summary Open a history entry
// @Description Shows the entry as the session transcript, binding edits to it
// @Tags history
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.SessionResponse "Session showing the entry"
// @Failure 404 {object} errors.APIError "Entry not found"
// @Router /history/{id}/open [post]
func (h *HistoryHandler) Open(c *gin.Context) {
	st, err := h.controller.SelectHistory(c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(st, h.previewBase))
}

// Delete handles DELETE /api/v1/history/:id
//
// @Summary Delete a history entry
// @Description Removes the entry. If it is shown in the session, the session is reset.
// @Tags history
// @Param id path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} errors.APIError "Entry not found"
// @Router /history/{id} [delete]
func (h *HistoryHandler) Delete(c *gin.Context) {
	if _, err := h.controller.DeleteHistory(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportXLSX handles GET /api/v1/history/export.xlsx
//
// @Summary Download the history as a spreadsheet
// @Tags history
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Spreadsheet with one row per entry"
// @Failure 500 {object} errors.APIError "Export failed"
// @Router /history/export.xlsx [get]
func (h *HistoryHandler) ExportXLSX(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.HistoryToExcel(&buf, h.controller.History()); err != nil {
		middleware.HandleError(c, err)
		return
	}

	name := export.FileName("history", string(export.FormatXLSX), h.exporter.Now())
	attach(c, name, export.FormatXLSX.ContentType(), buf.Bytes())
	h.exporter.Served(export.FormatXLSX)
}
