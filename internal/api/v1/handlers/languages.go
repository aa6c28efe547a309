package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"verbaflow/internal/api/v1/dto"
	"verbaflow/internal/app/lifecycle"
)

// LanguageHandler lists the selectable audio languages
type LanguageHandler struct {
	controller *lifecycle.Controller
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(controller *lifecycle.Controller) *LanguageHandler {
	return &LanguageHandler{controller: controller}
}

// List handles GET /api/v1/languages
//
// @Summary List languages
// @Description Lists languages in display order; the session's current choice is marked selected
// @Tags session
// @Produce json
// @Success 200 {array} dto.LanguageResponse "Languages"
// @Router /languages [get]
func (h *LanguageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewLanguagesResponse(h.controller.Snapshot().Language))
}
