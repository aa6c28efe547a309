package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"verbaflow/internal/api/errors"
	"verbaflow/internal/api/middleware"
	"verbaflow/internal/api/v1/dto"
	"verbaflow/internal/app/intake"
	"verbaflow/internal/app/lifecycle"
)

// sniffLen is how much of an upload is inspected when the client sends no
// usable Content-Type.
const sniffLen = 3072

// SessionHandler handles the transcription session endpoints
type SessionHandler struct {
	controller  *lifecycle.Controller
	previewBase string
}

// NewSessionHandler creates a new session handler. previewBase is the URL
// prefix preview handles are served under.
func NewSessionHandler(controller *lifecycle.Controller, previewBase string) *SessionHandler {
	return &SessionHandler{
		controller:  controller,
		previewBase: previewBase,
	}
}

func (h *SessionHandler) respond(c *gin.Context, status int, st lifecycle.State) {
	c.JSON(status, dto.NewSessionResponse(st, h.previewBase))
}

// Get handles GET /api/v1/session
//
// @Summary Get the session state
// @Description Returns the run status, pending media, language and current transcript
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse "Session state"
// @Router /session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	h.respond(c, http.StatusOK, h.controller.Snapshot())
}

// SelectMedia handles POST /api/v1/session/media
//
// @Summary Select a media file
// @Description Validates an audio or video file and makes it the pending selection
// @Tags session
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio or video file"
// @Success 200 {object} dto.SessionResponse "Media selected"
// @Failure 400 {object} errors.APIError "Bad request - no file"
// @Failure 409 {object} errors.APIError "A transcription is running"
// @Failure 422 {object} errors.APIError "Unsupported type or file too large"
// @Router /session/media [post]
func (h *SessionHandler) SelectMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	// Oversized files are read only up to the limit; CheckFile rejects them
	// by the declared size.
	limit := h.controller.Intake().MaxBytes()
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Failed to read uploaded file"))
		return
	}

	size := header.Size
	if size <= 0 {
		size = int64(len(data))
	}

	st, err := h.controller.SelectMedia(intake.FileInput{
		Name:     header.Filename,
		MimeType: uploadMimeType(header.Header.Get("Content-Type"), header.Filename, data),
		Size:     size,
		Data:     data,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	h.respond(c, http.StatusOK, st)
}

func uploadMimeType(declared, name string, data []byte) string {
	if _, ok := intake.CategoryOf(declared); ok {
		return declared
	}
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return intake.DetectMimeType(name, head)
}

// SetLanguage handles PUT /api/v1/session/language
//
// @Summary Set the audio language
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.SetLanguageRequest true "Language name or code"
// @Success 200 {object} dto.SessionResponse "Language updated"
// @Failure 409 {object} errors.APIError "A transcription is running"
// @Failure 422 {object} errors.APIError "Unknown language"
// @Router /session/language [put]
func (h *SessionHandler) SetLanguage(c *gin.Context) {
	var req dto.SetLanguageRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	st, err := h.controller.SetLanguage(req.Parsed())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	h.respond(c, http.StatusOK, st)
}

// Transcribe handles POST /api/v1/session/transcribe
//
// @Summary Start transcribing the pending media
// @Description Starts a run in the background. Poll GET /session for the result.
// @Description Without pending media, or while a run is active, nothing starts and 200 is returned.
// @Tags session
// @Produce json
// @Success 202 {object} dto.SessionResponse "Run started"
// @Success 200 {object} dto.SessionResponse "Nothing to start"
// @Router /session/transcribe [post]
func (h *SessionHandler) Transcribe(c *gin.Context) {
	before := h.controller.Snapshot().Seq

	st, err := h.controller.Submit(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	status := http.StatusOK
	if st.Seq != before {
		status = http.StatusAccepted
	}
	h.respond(c, status, st)
}

// Reset handles POST /api/v1/session/reset
//
// @Summary Reset the session
// @Description Drops the pending media and transcript. A running transcription is abandoned.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse "Session reset"
// @Router /session/reset [post]
func (h *SessionHandler) Reset(c *gin.Context) {
	h.respond(c, http.StatusOK, h.controller.Reset())
}

// SaveText handles PUT /api/v1/session/text
//
// @Summary Save an edited transcript
// @Description Replaces the text of the history entry bound to the session
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.SaveTextRequest true "Edited text"
// @Success 200 {object} dto.SessionResponse "Text saved"
// @Failure 409 {object} errors.APIError "No history entry is bound"
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /session/text [put]
func (h *SessionHandler) SaveText(c *gin.Context) {
	var req dto.SaveTextRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	st, err := h.controller.SaveEdit(c.Request.Context(), *req.Text)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	h.respond(c, http.StatusOK, st)
}
