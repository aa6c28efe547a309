package api

import (
	"context"

	"verbaflow/internal/app/model"
)

// Request is one media payload to transcribe.
type Request struct {
	FileName string
	MimeType string
	Data     []byte
	Language model.Language
}

// Transcriber defines a transcription interface for converting media bytes to text.
//
// Implementations return the transcript, or an error whose message is fit to
// show to the user as is.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}

// TranscriberFunc adapts a function to the Transcriber interface.
type TranscriberFunc func(ctx context.Context, req Request) (string, error)

// Transcribe calls f.
func (f TranscriberFunc) Transcribe(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
