package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind groups errors by how the user-facing surfaces should treat them.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindTranscription Kind = "transcription"
	KindStorage       Kind = "storage"
	KindExport        Kind = "export"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindState         Kind = "state"
	KindConfig        Kind = "config"
)

// Common error types
var (
	// Intake errors
	ErrUnsupportedMediaType = newKind(KindValidation, "unsupported media type")
	ErrFileTooLarge         = newKind(KindValidation, "file is too large")
	ErrEmptyFile            = newKind(KindValidation, "file is empty")

	// Transcription errors
	ErrTranscriptionFailed = newKind(KindTranscription, "transcription failed")
	ErrPayloadTooLarge     = newKind(KindTranscription, "file is too large for direct submission")
	ErrEmptyTranscript     = newKind(KindTranscription, "the model returned no text")

	// History errors
	ErrStorageParse   = newKind(KindStorage, "history slot could not be parsed")
	ErrStorageWrite   = newKind(KindStorage, "history slot write failed")
	ErrEntryNotFound  = newKind(KindNotFound, "history entry not found")
	ErrDuplicateEntry = newKind(KindConflict, "history entry already exists")

	// Session errors
	ErrRunInProgress = newKind(KindState, "a transcription is already running")
	ErrNoActiveEntry = newKind(KindState, "no history entry is bound to the current transcript")
	ErrNothingToShow = newKind(KindState, "there is no transcript to export")
	ErrStaleResult   = newKind(KindState, "result belongs to an abandoned run")

	// Export errors
	ErrExportFailed  = newKind(KindExport, "export failed")
	ErrUnknownFormat = newKind(KindValidation, "unknown export format")

	// Configuration errors
	ErrMissingAPIKey = newKind(KindConfig, "API key is required")
	ErrInvalidConfig = newKind(KindConfig, "invalid configuration")
)

// Error represents a standardized error
type Error struct {
	kind    Kind
	message string
	cause   error
	// opaque errors print only their own message; the cause is kept for errors.Is.
	opaque bool
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

func newKind(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Describe returns an error that reads as the formatted message alone but
// still matches sentinel with errors.Is and carries its kind.
func Describe(sentinel *Error, format string, args ...interface{}) error {
	return &Error{
		kind:    sentinel.kind,
		message: fmt.Sprintf(format, args...),
		cause:   sentinel,
		opaque:  true,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil && !e.opaque {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Kind returns the error kind, or "" when the error was created without one.
func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf returns the first non-empty kind found in err's chain.
func KindOf(err error) Kind {
	for err != nil {
		var e *Error
		if !stderrors.As(err, &e) {
			return ""
		}
		if e.kind != "" {
			return e.kind
		}
		err = e.cause
	}
	return ""
}

// Is is errors.Is re-exported so callers need only this package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is errors.As re-exported so callers need only this package.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Helper functions for common patterns

// NotFound returns an error for items that were not found
func NotFound(itemType string, identifier string) error {
	return Describe(ErrEntryNotFound, "%s not found: %s", itemType, identifier)
}

// AlreadyExists returns an error for items that already exist
func AlreadyExists(itemType string, identifier string) error {
	return Describe(ErrDuplicateEntry, "%s already exists: %s", itemType, identifier)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return KindOf(err) == KindValidation
}
