package dto

import "verbaflow/internal/app/model"

// ExportRequest represents parameters for export requests
type ExportRequest struct {
	Format string `form:"format" json:"format" binding:"required,oneof=txt pdf docx"`
}

// LanguageResponse is one selectable language.
type LanguageResponse struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Selected bool   `json:"selected,omitempty"`
}

// NewLanguagesResponse lists languages in display order, marking selected.
func NewLanguagesResponse(selected model.Language) []LanguageResponse {
	langs := model.Languages()
	out := make([]LanguageResponse, 0, len(langs))
	for _, l := range langs {
		out = append(out, LanguageResponse{Name: string(l), Code: l.Code(), Selected: l == selected})
	}
	return out
}
