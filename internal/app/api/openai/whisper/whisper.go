package whisper

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"verbaflow/internal/app/api"
	apperrors "verbaflow/internal/app/errors"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, model string, temperature float32) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model, temperature: temperature}
}

// Transcribe uploads the media bytes to the transcription endpoint.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, req api.Request) (string, error) {
	name := req.FileName
	if name == "" {
		name = "media"
	}
	resp, err := rt.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:       rt.model,
		FilePath:    name,
		Reader:      bytes.NewReader(req.Data),
		Language:    req.Language.ISO639(),
		Temperature: rt.temperature,
	})
	if err != nil {
		return "", mapError(err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", apperrors.ErrEmptyTranscript
	}
	return resp.Text, nil
}

func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusRequestEntityTooLarge {
		return api.PayloadTooLarge()
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusRequestEntityTooLarge {
		return api.PayloadTooLarge()
	}
	return api.Failure(err.Error())
}
