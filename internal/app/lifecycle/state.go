// Package lifecycle drives one transcription session: media selection, the
// run state machine and its binding to history entries.
package lifecycle

import "verbaflow/internal/app/model"

// State is a snapshot of the session. Values returned by the Controller are
// copies; Media points at an immutable selection.
type State struct {
	Status   model.RunStatus       `json:"status"`
	Media    *model.MediaSelection `json:"-"`
	Language model.Language        `json:"language"`
	Text     string                `json:"text,omitempty"`
	Error    string                `json:"error,omitempty"`

	// ActiveID is the history entry bound to Text; empty while a fresh
	// selection is pending.
	ActiveID   string `json:"activeId,omitempty"`
	ActiveName string `json:"activeFileName,omitempty"`

	// Seq identifies the latest run. Results carrying another Seq are stale.
	Seq uint64 `json:"seq"`

	// Warning reports a non-fatal problem of the last transition, such as a
	// history write that failed after a successful run.
	Warning string `json:"warning,omitempty"`
}

// NewState returns an idle session preselecting lang.
func NewState(lang model.Language) State {
	if lang == "" {
		lang = model.DefaultLanguage
	}
	return State{Status: model.RunIdle, Language: lang}
}

// FileName is the name shown next to the transcript: the pending media, or
// the bound history entry.
func (s State) FileName() string {
	if s.Media != nil {
		return s.Media.FileName
	}
	return s.ActiveName
}

// HasMedia reports whether a validated selection is pending.
func (s State) HasMedia() bool {
	return s.Media != nil
}
