package dto

import (
	"verbaflow/internal/api/errors"
	"verbaflow/internal/app/lifecycle"
	"verbaflow/internal/app/model"
)

// MediaResponse describes the pending media selection.
type MediaResponse struct {
	FileName   string  `json:"file_name"`
	MimeType   string  `json:"mime_type"`
	Size       int64   `json:"size"`
	SizeMB     float64 `json:"size_mb"`
	Category   string  `json:"category"`
	PreviewURL string  `json:"preview_url,omitempty"`
}

// SessionResponse is the session state as seen by clients.
type SessionResponse struct {
	Status         string         `json:"status"`
	Language       string         `json:"language"`
	LanguageCode   string         `json:"language_code"`
	Media          *MediaResponse `json:"media,omitempty"`
	Text           string         `json:"text,omitempty"`
	Error          string         `json:"error,omitempty"`
	ActiveID       string         `json:"active_id,omitempty"`
	ActiveFileName string         `json:"active_file_name,omitempty"`
	FileName       string         `json:"file_name,omitempty"`
	Seq            uint64         `json:"seq"`
	Warning        string         `json:"warning,omitempty"`
}

// NewSessionResponse converts a state snapshot. previewBase prefixes preview
// handles to form a playable URL.
func NewSessionResponse(s lifecycle.State, previewBase string) SessionResponse {
	resp := SessionResponse{
		Status:         string(s.Status),
		Language:       string(s.Language),
		LanguageCode:   s.Language.Code(),
		Text:           s.Text,
		Error:          s.Error,
		ActiveID:       s.ActiveID,
		ActiveFileName: s.ActiveName,
		FileName:       s.FileName(),
		Seq:            s.Seq,
		Warning:        s.Warning,
	}
	if m := s.Media; m != nil {
		resp.Media = &MediaResponse{
			FileName: m.FileName,
			MimeType: m.MimeType,
			Size:     m.Size,
			SizeMB:   m.SizeMB(),
			Category: string(m.Category),
		}
		if m.Preview != "" {
			resp.Media.PreviewURL = previewBase + "/" + string(m.Preview)
		}
	}
	return resp
}

// SetLanguageRequest selects the audio language hint.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// Validate performs domain-specific validation
func (r *SetLanguageRequest) Validate() error {
	if _, err := model.ParseLanguage(r.Language); err != nil {
		return errors.NewValidationError("Invalid language", map[string]string{
			"language": err.Error(),
		})
	}
	return nil
}

// Parsed returns the language named by the request. Call after Validate.
func (r *SetLanguageRequest) Parsed() model.Language {
	l, _ := model.ParseLanguage(r.Language)
	return l
}

// SaveTextRequest replaces the text of the bound history entry. Text is a
// pointer so an empty transcript is accepted while a missing field is not.
type SaveTextRequest struct {
	Text *string `json:"text" binding:"required"`
}
