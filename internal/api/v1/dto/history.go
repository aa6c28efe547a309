package dto

import (
	"time"

	"verbaflow/internal/app/model"
)

// HistoryEntryResponse represents a history entry in API responses
type HistoryEntryResponse struct {
	ID       string    `json:"id"`
	FileName string    `json:"file_name"`
	Date     time.Time `json:"date"`
	Language string    `json:"language"`
	Text     string    `json:"text"`
}

// HistoryListResponse lists entries newest first.
type HistoryListResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

// NewHistoryEntryResponse converts a stored entry.
func NewHistoryEntryResponse(e model.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:       e.ID,
		FileName: e.FileName,
		Date:     e.CreatedAt,
		Language: e.Language,
		Text:     e.Text,
	}
}

// NewHistoryListResponse converts a history listing.
func NewHistoryListResponse(entries []model.HistoryEntry) HistoryListResponse {
	resp := HistoryListResponse{
		Entries: make([]HistoryEntryResponse, 0, len(entries)),
		Total:   len(entries),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, NewHistoryEntryResponse(e))
	}
	return resp
}
