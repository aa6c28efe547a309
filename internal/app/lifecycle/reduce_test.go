package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

func media(name string, preview model.PreviewHandle) *model.MediaSelection {
	return &model.MediaSelection{
		FileName: name,
		MimeType: "video/mp4",
		Size:     4,
		Category: model.MediaVideo,
		Data:     []byte("data"),
		Preview:  preview,
	}
}

func mustReduce(t *testing.T, s State, ev Event) (State, []Effect) {
	t.Helper()
	next, effects, err := Reduce(s, ev)
	require.NoError(t, err)
	return next, effects
}

func TestReduce_SubmitWithoutMediaIsNoop(t *testing.T) {
	s := NewState(model.LanguageEnglish)

	next, effects := mustReduce(t, s, Submitted{})
	assert.Equal(t, s, next)
	assert.Empty(t, effects)
	assert.Equal(t, model.RunIdle, next.Status)
}

func TestReduce_SubmitStartsRun(t *testing.T) {
	s, _ := mustReduce(t, NewState(model.LanguageEnglish), MediaSelected{Media: media("interview.mp4", "p1")})

	next, effects := mustReduce(t, s, Submitted{})
	assert.Equal(t, model.RunProcessing, next.Status)
	assert.Equal(t, uint64(1), next.Seq)
	require.Len(t, effects, 1)
	assert.Equal(t, StartTranscription{Seq: 1, Media: s.Media, Language: model.LanguageEnglish}, effects[0])

	again, effects := mustReduce(t, next, Submitted{})
	assert.Equal(t, next, again, "second submit while processing is ignored")
	assert.Empty(t, effects)
}

func TestReduce_SuccessAppendsAndBinds(t *testing.T) {
	at := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	s, _ := mustReduce(t, NewState(model.LanguageEnglish), MediaSelected{Media: media("interview.mp4", "p1")})
	s, _ = mustReduce(t, s, Submitted{})

	next, effects := mustReduce(t, s, Succeeded{Seq: s.Seq, Text: "hello", ID: "e1", At: at})
	assert.Equal(t, model.RunCompleted, next.Status)
	assert.Equal(t, "hello", next.Text)
	assert.Equal(t, "e1", next.ActiveID)
	assert.Equal(t, "interview.mp4", next.FileName())
	require.Len(t, effects, 1)
	assert.Equal(t, AppendEntry{Entry: model.HistoryEntry{
		ID: "e1", FileName: "interview.mp4", CreatedAt: at, Text: "hello", Language: string(model.LanguageEnglish),
	}}, effects[0])

	_, effects = mustReduce(t, next, Submitted{})
	assert.Empty(t, effects, "a completed run cannot restart without a reset")
}

func TestReduce_FailureKeepsMessageVerbatim(t *testing.T) {
	s, _ := mustReduce(t, NewState(model.LanguageAuto), MediaSelected{Media: media("a.mp3", "p1")})
	s, _ = mustReduce(t, s, Submitted{})

	next, effects := mustReduce(t, s, Failed{Seq: s.Seq, Message: "quota exhausted: try later"})
	assert.Equal(t, model.RunError, next.Status)
	assert.Equal(t, "quota exhausted: try later", next.Error)
	assert.Empty(t, effects)

	retry, effects := mustReduce(t, next, Submitted{})
	assert.Equal(t, model.RunProcessing, retry.Status)
	assert.Empty(t, retry.Error)
	assert.Len(t, effects, 1)
}

func TestReduce_StaleResultsAreDiscarded(t *testing.T) {
	s, _ := mustReduce(t, NewState(model.LanguageAuto), MediaSelected{Media: media("a.mp3", "p1")})
	s, _ = mustReduce(t, s, Submitted{})
	staleSeq := s.Seq

	s, _ = mustReduce(t, s, Reset{})

	for _, ev := range []Event{
		Succeeded{Seq: staleSeq, Text: "late", ID: "x", At: time.Now()},
		Failed{Seq: staleSeq, Message: "late"},
	} {
		next, effects, err := Reduce(s, ev)
		assert.ErrorIs(t, err, apperrors.ErrStaleResult)
		assert.Equal(t, s, next)
		assert.Empty(t, effects)
	}

	// A newer run does not accept the older sequence either.
	s, _ = mustReduce(t, s, MediaSelected{Media: media("b.mp3", "p2")})
	s, _ = mustReduce(t, s, Submitted{})
	_, _, err := Reduce(s, Succeeded{Seq: staleSeq, Text: "late"})
	assert.ErrorIs(t, err, apperrors.ErrStaleResult)
}

func TestReduce_ResetReleasesPreview(t *testing.T) {
	s, _ := mustReduce(t, NewState(model.LanguageGerman), MediaSelected{Media: media("a.mp3", "p1")})

	next, effects := mustReduce(t, s, Reset{})
	assert.Equal(t, State{Status: model.RunIdle, Language: model.LanguageGerman}, next)
	assert.Equal(t, []Effect{ReleasePreview{Handle: "p1"}}, effects)

	_, effects = mustReduce(t, next, Reset{})
	assert.Empty(t, effects, "nothing left to release")
}

func TestReduce_MediaSelectedReplacesPreview(t *testing.T) {
	s, _ := mustReduce(t, NewState(model.LanguageAuto), MediaSelected{Media: media("a.mp3", "p1")})

	next, effects := mustReduce(t, s, MediaSelected{Media: media("b.mp3", "p2")})
	assert.Equal(t, "b.mp3", next.Media.FileName)
	assert.Equal(t, []Effect{ReleasePreview{Handle: "p1"}}, effects)

	processing, _ := mustReduce(t, next, Submitted{})
	_, _, err := Reduce(processing, MediaSelected{Media: media("c.mp3", "p3")})
	assert.ErrorIs(t, err, apperrors.ErrRunInProgress)
	_, _, err = Reduce(processing, LanguageChanged{Language: model.LanguageFrench})
	assert.ErrorIs(t, err, apperrors.ErrRunInProgress)
}

func TestReduce_HistorySelected(t *testing.T) {
	entry := model.HistoryEntry{ID: "h1", FileName: "old.wav", Text: "stored text"}
	s, _ := mustReduce(t, NewState(model.LanguageAuto), MediaSelected{Media: media("a.mp3", "p1")})

	next, effects := mustReduce(t, s, HistorySelected{Entry: entry})
	assert.Equal(t, model.RunCompleted, next.Status)
	assert.Equal(t, "stored text", next.Text)
	assert.Equal(t, "h1", next.ActiveID)
	assert.Nil(t, next.Media)
	assert.Equal(t, "old.wav", next.FileName())
	assert.Equal(t, []Effect{ReleasePreview{Handle: "p1"}}, effects)
}

func TestReduce_TextEdited(t *testing.T) {
	_, _, err := Reduce(NewState(model.LanguageAuto), TextEdited{Text: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNoActiveEntry)

	s, _ := mustReduce(t, NewState(model.LanguageAuto), HistorySelected{Entry: model.HistoryEntry{ID: "h1", Text: "a"}})
	next, effects := mustReduce(t, s, TextEdited{Text: "b"})
	assert.Equal(t, "b", next.Text)
	assert.Equal(t, []Effect{UpdateEntry{ID: "h1", Text: "b"}}, effects)
}

func TestReduce_EntryRemoved(t *testing.T) {
	s, _ := mustReduce(t, NewState(model.LanguageAuto), HistorySelected{Entry: model.HistoryEntry{ID: "h1", Text: "a"}})

	other, effects := mustReduce(t, s, EntryRemoved{ID: "h2"})
	assert.Equal(t, s, other)
	assert.Empty(t, effects)

	next, _ := mustReduce(t, s, EntryRemoved{ID: "h1"})
	assert.Equal(t, model.RunIdle, next.Status)
	assert.Empty(t, next.Text)
	assert.Empty(t, next.ActiveID)
}

func TestReduce_UnknownEvent(t *testing.T) {
	_, _, err := Reduce(NewState(""), nil)
	assert.Error(t, err)
}
