package whisper

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verbaflow/internal/app/api"
	openaiclient "verbaflow/internal/app/api/openai"
	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

func newTestTranscriber(t *testing.T, handler http.HandlerFunc) *RemoteTranscriber {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRemoteTranscriber(openaiclient.NewClient("test-api-key", server.URL+"/v1", 0), "", 0)
}

func TestRemoteTranscriber_Transcribe(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		sentinel      *apperrors.Error
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
		},
		{
			name:         "special characters",
			mockResponse: `{"text": "Hello, 世界! Olá 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello, 世界! Olá 🎵",
		},
		{
			name:          "unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			sentinel:      apperrors.ErrTranscriptionFailed,
			errorContains: "401",
		},
		{
			name:          "rate limit",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			sentinel:      apperrors.ErrTranscriptionFailed,
			errorContains: "429",
		},
		{
			name:          "payload too large json",
			mockResponse:  `{"error": {"message": "Maximum content size limit exceeded", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusRequestEntityTooLarge,
			sentinel:      apperrors.ErrPayloadTooLarge,
			errorContains: "limit is about 20MB",
		},
		{
			name:          "payload too large html",
			mockResponse:  `<html><body>413 Request Entity Too Large</body></html>`,
			mockStatus:    http.StatusRequestEntityTooLarge,
			sentinel:      apperrors.ErrPayloadTooLarge,
			errorContains: "too large for direct submission",
		},
		{
			name:          "empty transcription",
			mockResponse:  `{"text": ""}`,
			mockStatus:    http.StatusOK,
			sentinel:      apperrors.ErrEmptyTranscript,
			errorContains: "no text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.NotEmpty(t, r.Header.Get("Authorization"))
				assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

				w.WriteHeader(tt.mockStatus)
				_, _ = w.Write([]byte(tt.mockResponse))
			})

			text, err := rt.Transcribe(context.Background(), api.Request{
				FileName: "audio.mp3",
				MimeType: "audio/mpeg",
				Data:     []byte("fake audio"),
				Language: model.LanguageAuto,
			})

			if tt.sentinel != nil {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, tt.sentinel), "got %v", err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, text)
		})
	}
}

func TestRemoteTranscriber_SendsForm(t *testing.T) {
	var (
		gotModel, gotLanguage, gotFileName string
		gotBody                            []byte
	)
	rt := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		gotBody, _ = io.ReadAll(file)

		_, _ = w.Write([]byte(`{"text": "Olá"}`))
	})

	text, err := rt.Transcribe(context.Background(), api.Request{
		FileName: "memo.ogg",
		MimeType: "audio/ogg",
		Data:     []byte("ogg bytes"),
		Language: model.LanguagePortuguese,
	})
	require.NoError(t, err)
	assert.Equal(t, "Olá", text)
	assert.Equal(t, openai.Whisper1, gotModel)
	assert.Equal(t, "pt", gotLanguage)
	assert.True(t, strings.HasSuffix(gotFileName, "memo.ogg"))
	assert.Equal(t, []byte("ogg bytes"), gotBody)
}

func TestRemoteTranscriber_ContextDeadline(t *testing.T) {
	rt := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`{"text": "late"}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := rt.Transcribe(ctx, api.Request{FileName: "a.mp3", Data: []byte("x")})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrTranscriptionFailed))
	assert.Contains(t, err.Error(), "deadline exceeded")
}

func TestCreateOpenAIProvider(t *testing.T) {
	_, err := createOpenAIProvider(api.Settings{})
	assert.True(t, apperrors.Is(err, apperrors.ErrMissingAPIKey))

	tr, err := api.NewTranscriber("openai", api.Settings{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &RemoteTranscriber{}, tr)
}
