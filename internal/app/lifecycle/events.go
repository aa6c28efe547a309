package lifecycle

import (
	"time"

	"verbaflow/internal/app/model"
)

// Event is an input to Reduce.
type Event interface {
	event()
}

type (
	// MediaSelected replaces the pending selection with a validated one.
	MediaSelected struct{ Media *model.MediaSelection }
	// Submitted asks to start a run with the pending media.
	Submitted struct{}
	// Succeeded carries the transcript of run Seq, with the id and time of
	// the history entry to create.
	Succeeded struct {
		Seq  uint64
		Text string
		ID   string
		At   time.Time
	}
	// Failed carries the failure message of run Seq.
	Failed struct {
		Seq     uint64
		Message string
	}
	// Reset returns to idle from any state.
	Reset struct{}
	// HistorySelected opens a stored entry.
	HistorySelected struct{ Entry model.HistoryEntry }
	// TextEdited saves a new text for the bound entry.
	TextEdited struct{ Text string }
	// EntryRemoved reports that a history entry was deleted.
	EntryRemoved struct{ ID string }
	// LanguageChanged selects the language of the next run.
	LanguageChanged struct{ Language model.Language }
)

func (MediaSelected) event()   {}
func (Submitted) event()       {}
func (Succeeded) event()       {}
func (Failed) event()          {}
func (Reset) event()           {}
func (HistorySelected) event() {}
func (TextEdited) event()      {}
func (EntryRemoved) event()    {}
func (LanguageChanged) event() {}

// Effect is work Reduce asks its driver to perform.
type Effect interface {
	effect()
}

type (
	// ReleasePreview frees a preview handle that is no longer reachable.
	ReleasePreview struct{ Handle model.PreviewHandle }
	// StartTranscription calls the transcriber for run Seq.
	StartTranscription struct {
		Seq      uint64
		Media    *model.MediaSelection
		Language model.Language
	}
	// AppendEntry stores a new history entry at the front of the list.
	AppendEntry struct{ Entry model.HistoryEntry }
	// UpdateEntry replaces the text of a stored entry.
	UpdateEntry struct {
		ID   string
		Text string
	}
)

func (ReleasePreview) effect()     {}
func (StartTranscription) effect() {}
func (AppendEntry) effect()        {}
func (UpdateEntry) effect()        {}
