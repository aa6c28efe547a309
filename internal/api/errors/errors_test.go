package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "verbaflow/internal/app/errors"
)

func TestFromError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantKind   ErrorKind
		wantStatus int
	}{
		{"unsupported media", apperrors.Describe(apperrors.ErrUnsupportedMediaType, "unsupported media type %q", "text/plain"), KindValidation, http.StatusUnprocessableEntity},
		{"file too large", apperrors.ErrFileTooLarge, KindValidation, http.StatusUnprocessableEntity},
		{"unknown format", apperrors.ErrUnknownFormat, KindValidation, http.StatusUnprocessableEntity},
		{"not found", apperrors.NotFound("history entry", "x"), KindNotFound, http.StatusNotFound},
		{"duplicate", apperrors.AlreadyExists("history entry", "x"), KindConflict, http.StatusConflict},
		{"run in progress", apperrors.ErrRunInProgress, KindConflict, http.StatusConflict},
		{"missing key", apperrors.ErrMissingAPIKey, KindServiceUnavailable, http.StatusServiceUnavailable},
		{"upstream failure", apperrors.ErrTranscriptionFailed, KindUpstream, http.StatusBadGateway},
		{"payload too large", apperrors.ErrPayloadTooLarge, KindPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"storage", fmt.Errorf("save: %w", apperrors.ErrStorageWrite), KindInternal, http.StatusInternalServerError},
		{"export", apperrors.ErrExportFailed, KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := FromError(tc.err)

			if assert.NotNil(t, apiErr) {
				assert.Equal(t, tc.wantKind, apiErr.Kind)
				assert.Equal(t, tc.wantStatus, apiErr.HTTPStatus())
				assert.Equal(t, tc.err.Error(), apiErr.Message)
			}
		})
	}
}

func TestFromErrorWithoutKind(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Nil(t, FromError(fmt.Errorf("disk on fire")))
}

func TestFromErrorKeepsAPIError(t *testing.T) {
	orig := NewBadRequestError("No file uploaded")
	assert.Same(t, orig, FromError(orig))
	assert.Equal(t, http.StatusBadRequest, orig.HTTPStatus())
}
