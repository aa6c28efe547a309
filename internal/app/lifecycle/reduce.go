package lifecycle

import (
	"fmt"

	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

// Reduce applies ev to s. It never performs I/O: the returned effects are
// carried out by the caller. On error the returned state equals s.
//
// Ignored inputs (a submit without media, a second submit while processing)
// return s unchanged with no effects and no error. Results of an abandoned
// run return ErrStaleResult.
func Reduce(s State, ev Event) (State, []Effect, error) {
	next := s
	next.Warning = ""

	switch e := ev.(type) {
	case MediaSelected:
		if s.Status == model.RunProcessing {
			return s, nil, apperrors.ErrRunInProgress
		}
		if e.Media == nil {
			return s, nil, fmt.Errorf("media selection is nil")
		}
		effects := releaseMedia(s)
		next.Media = e.Media
		next.Status = model.RunIdle
		next.Text, next.Error = "", ""
		next.ActiveID, next.ActiveName = "", ""
		return next, effects, nil

	case LanguageChanged:
		if s.Status == model.RunProcessing {
			return s, nil, apperrors.ErrRunInProgress
		}
		next.Language = e.Language
		return next, nil, nil

	case Submitted:
		if s.Status == model.RunProcessing || s.Status == model.RunCompleted || s.Media == nil {
			return s, nil, nil
		}
		next.Status = model.RunProcessing
		next.Seq = s.Seq + 1
		next.Text, next.Error = "", ""
		next.ActiveID, next.ActiveName = "", ""
		return next, []Effect{StartTranscription{Seq: next.Seq, Media: s.Media, Language: s.Language}}, nil

	case Succeeded:
		if s.Status != model.RunProcessing || e.Seq != s.Seq {
			return s, nil, apperrors.ErrStaleResult
		}
		entry := model.HistoryEntry{
			ID:        e.ID,
			FileName:  s.Media.FileName,
			CreatedAt: e.At,
			Text:      e.Text,
			Language:  string(s.Language),
		}
		next.Status = model.RunCompleted
		next.Text = e.Text
		next.ActiveID, next.ActiveName = entry.ID, entry.FileName
		return next, []Effect{AppendEntry{Entry: entry}}, nil

	case Failed:
		if s.Status != model.RunProcessing || e.Seq != s.Seq {
			return s, nil, apperrors.ErrStaleResult
		}
		next.Status = model.RunError
		next.Error = e.Message
		return next, nil, nil

	case Reset:
		return reset(s), releaseMedia(s), nil

	case HistorySelected:
		effects := releaseMedia(s)
		next.Media = nil
		next.Status = model.RunCompleted
		next.Text, next.Error = e.Entry.Text, ""
		next.ActiveID, next.ActiveName = e.Entry.ID, e.Entry.FileName
		return next, effects, nil

	case TextEdited:
		if s.ActiveID == "" {
			return s, nil, apperrors.ErrNoActiveEntry
		}
		next.Text = e.Text
		return next, []Effect{UpdateEntry{ID: s.ActiveID, Text: e.Text}}, nil

	case EntryRemoved:
		if e.ID == "" || e.ID != s.ActiveID {
			return next, nil, nil
		}
		return reset(s), releaseMedia(s), nil

	default:
		return s, nil, fmt.Errorf("unknown event %T", ev)
	}
}

// reset keeps the language and the run counter; everything else is cleared.
func reset(s State) State {
	return State{Status: model.RunIdle, Language: s.Language, Seq: s.Seq}
}

func releaseMedia(s State) []Effect {
	if s.Media == nil || s.Media.Preview == "" {
		return nil
	}
	return []Effect{ReleasePreview{Handle: s.Media.Preview}}
}
