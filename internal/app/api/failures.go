package api

import (
	"strings"

	apperrors "verbaflow/internal/app/errors"
)

// PayloadTooLarge is returned when the backend refuses the upload size.
func PayloadTooLarge() error {
	return apperrors.Describe(apperrors.ErrPayloadTooLarge,
		"file is too large for direct submission (limit is about 20MB)")
}

// Failure turns a backend error message into a transcription error carrying
// that message verbatim. An empty message gets a generic one.
func Failure(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		message = "an unknown error occurred during transcription"
	}
	return apperrors.Describe(apperrors.ErrTranscriptionFailed, "%s", message)
}

// LooksTooLarge reports whether a raw error text mentions HTTP 413.
func LooksTooLarge(text string) bool {
	return strings.Contains(text, "413") || strings.Contains(strings.ToLower(text), "request entity too large")
}
