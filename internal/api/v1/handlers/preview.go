package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"verbaflow/internal/api/errors"
	"verbaflow/internal/api/middleware"
	"verbaflow/internal/app/intake"
	"verbaflow/internal/app/model"
)

// PreviewHandler serves live preview handles for playback
type PreviewHandler struct {
	previews *intake.Previews
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(previews *intake.Previews) *PreviewHandler {
	return &PreviewHandler{previews: previews}
}

// Serve handles GET /api/v1/previews/:handle
//
// @Summary Play back the selected media
// @Description Streams the pending selection. Range requests are supported. Released handles return 404.
// @Tags session
// @Produce octet-stream
// @Param handle path string true "Preview handle"
// @Success 200 {file} file "Media content"
// @Failure 404 {object} errors.APIError "Preview not found"
// @Router /previews/{handle} [get]
func (h *PreviewHandler) Serve(c *gin.Context) {
	sel, ok := h.previews.Get(model.PreviewHandle(c.Param("handle")))
	if !ok {
		middleware.HandleError(c, errors.NewNotFoundError("preview"))
		return
	}

	c.Header("Content-Type", sel.MimeType)
	c.Header("Cache-Control", "no-store")
	http.ServeContent(c.Writer, c.Request, sel.FileName, time.Time{}, bytes.NewReader(sel.Data))
}
