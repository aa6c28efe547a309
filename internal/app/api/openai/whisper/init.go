package whisper

import (
	"verbaflow/internal/app/api"
	openaiclient "verbaflow/internal/app/api/openai"
	apperrors "verbaflow/internal/app/errors"
)

func init() {
	api.RegisterProvider("openai", createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI Whisper transcriber from settings
func createOpenAIProvider(s api.Settings) (api.Transcriber, error) {
	if s.APIKey == "" {
		return nil, apperrors.Describe(apperrors.ErrMissingAPIKey, "OPENAI_API_KEY is required for the openai provider")
	}
	client := openaiclient.NewClient(s.APIKey, s.BaseURL, s.Timeout)
	return NewRemoteTranscriber(client, s.Model, s.Temperature), nil
}
