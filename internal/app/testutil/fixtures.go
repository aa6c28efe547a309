package testutil

import (
	"strconv"
	"time"

	"verbaflow/internal/app/intake"
	"verbaflow/internal/app/model"
)

// FixedTime is the clock used by fixtures.
var FixedTime = time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

// AudioInput returns a small valid audio upload.
func AudioInput(name string) intake.FileInput {
	data := []byte("ID3\x03\x00\x00\x00\x00\x00\x00fake mp3 frames")
	return intake.FileInput{Name: name, MimeType: "audio/mpeg", Size: int64(len(data)), Data: data}
}

// VideoInput returns a small valid video upload.
func VideoInput(name string) intake.FileInput {
	data := []byte("\x00\x00\x00\x18ftypmp42fake video")
	return intake.FileInput{Name: name, MimeType: "video/mp4", Size: int64(len(data)), Data: data}
}

// SampleEntries returns three entries, newest first.
func SampleEntries() []model.HistoryEntry {
	return []model.HistoryEntry{
		{
			ID:        "c3",
			FileName:  "interview.mp4",
			CreatedAt: FixedTime,
			Text:      "[00:00] Speaker 1: Thanks for joining us today.",
			Language:  string(model.LanguageEnglish),
		},
		{
			ID:        "b2",
			FileName:  "reuniao.m4a",
			CreatedAt: FixedTime.Add(-24 * time.Hour),
			Text:      "Bom dia a todos. Vamos começar a reunião.",
			Language:  string(model.LanguagePortuguese),
		},
		{
			ID:        "a1",
			FileName:  "memo.ogg",
			CreatedAt: FixedTime.Add(-48 * time.Hour),
			Text:      "Buy milk.\nCall the bank.",
			Language:  string(model.LanguageAuto),
		},
	}
}

// SequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
