package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "verbaflow/internal/app/errors"
)

func TestRegistry(t *testing.T) {
	RegisterProvider("registry-test", func(s Settings) (Transcriber, error) {
		return TranscriberFunc(func(ctx context.Context, req Request) (string, error) {
			return s.Model + ":" + req.FileName, nil
		}), nil
	})

	assert.Contains(t, ListRegisteredProviders(), "registry-test")

	tr, err := NewTranscriber("registry-test", Settings{Model: "m"})
	require.NoError(t, err)
	text, err := tr.Transcribe(context.Background(), Request{FileName: "a.mp3"})
	require.NoError(t, err)
	assert.Equal(t, "m:a.mp3", text)

	assert.Panics(t, func() { RegisterProvider("registry-test", func(Settings) (Transcriber, error) { return nil, nil }) })
}

func TestNewTranscriberUnknown(t *testing.T) {
	_, err := NewTranscriber("nope", Settings{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidConfig))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestFailures(t *testing.T) {
	err := Failure("  quota exceeded ")
	assert.Equal(t, "quota exceeded", err.Error())
	assert.True(t, apperrors.Is(err, apperrors.ErrTranscriptionFailed))

	assert.Equal(t, "an unknown error occurred during transcription", Failure("").Error())

	tooLarge := PayloadTooLarge()
	assert.True(t, apperrors.Is(tooLarge, apperrors.ErrPayloadTooLarge))
	assert.Contains(t, tooLarge.Error(), "too large for direct submission")

	assert.True(t, LooksTooLarge("Error 413, Message: Request Entity Too Large"))
	assert.False(t, LooksTooLarge("Error 500"))
}
