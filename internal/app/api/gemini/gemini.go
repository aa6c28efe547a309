// Package gemini transcribes media through the Gemini generateContent API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"verbaflow/internal/app/api"
	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultTemperature = float32(0.2)
)

// contentGenerator is the slice of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Transcriber sends the media inline together with an instruction prompt.
type Transcriber struct {
	models      contentGenerator
	model       string
	temperature float32
}

func init() {
	api.RegisterProvider("gemini", func(s api.Settings) (api.Transcriber, error) {
		return New(context.Background(), s)
	})
}

// New creates a Gemini transcriber for the Gemini API backend.
func New(ctx context.Context, s api.Settings) (*Transcriber, error) {
	if s.APIKey == "" {
		return nil, apperrors.Describe(apperrors.ErrMissingAPIKey, "GEMINI_API_KEY is required for the gemini provider")
	}

	cfg := &genai.ClientConfig{
		APIKey:  s.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = s.BaseURL
	}
	if s.Timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: s.Timeout}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newTranscriber(client.Models, s), nil
}

func newTranscriber(models contentGenerator, s api.Settings) *Transcriber {
	t := &Transcriber{models: models, model: s.Model, temperature: s.Temperature}
	if t.model == "" {
		t.model = DefaultModel
	}
	if t.temperature <= 0 {
		t.temperature = DefaultTemperature
	}
	return t
}

// Transcribe implements api.Transcriber.
func (t *Transcriber) Transcribe(ctx context.Context, req api.Request) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Data, req.MimeType),
		genai.NewPartFromText(Prompt(req.Language)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := t.models.GenerateContent(ctx, t.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(t.temperature),
	})
	if err != nil {
		return "", mapError(err)
	}

	text := ""
	if resp != nil {
		text = resp.Text()
	}
	if strings.TrimSpace(text) == "" {
		return "", apperrors.ErrEmptyTranscript
	}
	return text, nil
}

func mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return api.Failure(err.Error())
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusRequestEntityTooLarge {
		return api.PayloadTooLarge()
	}
	if api.LooksTooLarge(err.Error()) {
		return api.PayloadTooLarge()
	}
	return api.Failure(err.Error())
}

// Prompt builds the instruction sent next to the media.
func Prompt(lang model.Language) string {
	var b strings.Builder
	b.WriteString("You are an expert in audio and video transcription.")
	if lang == "" || lang.IsAuto() {
		b.WriteString(" Detect the spoken language automatically.")
	} else {
		fmt.Fprintf(&b, " The main language of the audio is %s.", lang)
	}
	b.WriteString(`
Your task is to transcribe the content of the provided file with high accuracy.

Guidelines:
1. Formatting: use clear, readable paragraphs.
2. Speakers: if there are multiple speakers, identify them (e.g. Speaker 1, Speaker 2) or use dashes for dialogue.
3. Timestamps: add [MM:SS] markers at the start of each change of topic or main speaker, when possible.
4. Fidelity: keep the text faithful to the audio. Do not summarize, transcribe.
5. Language: the transcription must be in the same language as the spoken audio.
`)
	return b.String()
}
