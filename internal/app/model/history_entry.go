package model

import "time"

// HistoryEntry is one persisted, completed transcription.
//
// The JSON layout matches the history slot written by earlier browser builds,
// so an exported slot can be imported unchanged.
type HistoryEntry struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	CreatedAt time.Time `json:"date"`
	Text      string    `json:"text"`
	Language  string    `json:"language"`
}
