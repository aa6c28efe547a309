// Package intake validates user-selected media files and manages the preview
// handles that let a client play the selection back before transcribing it.
package intake

import (
	"strconv"
	"strings"

	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

// DefaultMaxBytes is the largest file accepted for inline submission.
const DefaultMaxBytes int64 = 20 * 1024 * 1024

const bytesPerMB = 1024 * 1024

// FileInput is a file as picked by the user, before validation.
type FileInput struct {
	Name     string
	MimeType string
	Size     int64
	Data     []byte
}

// Intake validates files against the configured limit and opens previews.
type Intake struct {
	maxBytes int64
	previews *Previews
}

// New creates an Intake. A non-positive maxBytes selects DefaultMaxBytes.
func New(maxBytes int64, previews *Previews) *Intake {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if previews == nil {
		previews = NewPreviews()
	}
	return &Intake{maxBytes: maxBytes, previews: previews}
}

// MaxBytes returns the configured size limit.
func (in *Intake) MaxBytes() int64 {
	return in.maxBytes
}

// Previews returns the registry holding preview handles opened by Validate.
func (in *Intake) Previews() *Previews {
	return in.previews
}

// Validate checks the file and, on success, returns a selection with a live
// preview handle. The caller owns the handle and must release it.
func (in *Intake) Validate(file FileInput) (*model.MediaSelection, error) {
	category, err := CheckFile(file, in.maxBytes)
	if err != nil {
		return nil, err
	}

	sel := &model.MediaSelection{
		FileName: file.Name,
		MimeType: file.MimeType,
		Size:     sizeOf(file),
		Category: category,
		Data:     file.Data,
	}
	sel.Preview = in.previews.Open(sel)
	return sel, nil
}

// CheckFile applies the media type and size rules without allocating a
// preview and returns the derived category.
func CheckFile(file FileInput, maxBytes int64) (model.MediaCategory, error) {
	category, ok := CategoryOf(file.MimeType)
	if !ok {
		return "", apperrors.Describe(apperrors.ErrUnsupportedMediaType,
			"unsupported media type %q: select an audio or video file", file.MimeType)
	}

	size := sizeOf(file)
	if size > maxBytes {
		return "", apperrors.Describe(apperrors.ErrFileTooLarge,
			"file is too large (%.2fMB); the limit is %sMB",
			float64(size)/bytesPerMB, formatMB(maxBytes))
	}
	return category, nil
}

// CategoryOf derives the display category from a MIME type.
func CategoryOf(mimeType string) (model.MediaCategory, bool) {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mt, "video/"):
		return model.MediaVideo, true
	case strings.HasPrefix(mt, "audio/"):
		return model.MediaAudio, true
	default:
		return "", false
	}
}

func sizeOf(file FileInput) int64 {
	if file.Size == 0 && len(file.Data) > 0 {
		return int64(len(file.Data))
	}
	return file.Size
}

func formatMB(n int64) string {
	if n%bytesPerMB == 0 {
		return strconv.FormatInt(n/bytesPerMB, 10)
	}
	return strconv.FormatFloat(float64(n)/bytesPerMB, 'f', 2, 64)
}
