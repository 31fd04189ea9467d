package providers

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"vitaforge/pkg/utils"
)

// GeminiProvider implements the chat-style transport against the Google
// Gemini API. It supports a native structured-JSON response mode via the
// response MIME type.
type GeminiProvider struct {
	client      *genai.Client
	models      []string
	maxTokens   int32
	temperature float32
}

// NewGeminiProvider creates a Gemini provider instance.
func NewGeminiProvider(ctx context.Context, apiKey string, models []string, maxTokens int, temperature float32) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GeminiProvider{
		client:      client,
		models:      models,
		maxTokens:   int32(maxTokens),
		temperature: temperature,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Label() string {
	return "Google Gemini"
}

func (p *GeminiProvider) Transport() TransportStyle {
	return TransportChat
}

func (p *GeminiProvider) Models() []string {
	return p.models
}

// Complete sends the prompt to the given Gemini model.
func (p *GeminiProvider) Complete(ctx context.Context, model, prompt string, shape ResponseShape) (string, error) {
	m := p.client.GenerativeModel(model)
	m.SetTemperature(p.temperature)
	m.SetMaxOutputTokens(p.maxTokens)
	if shape == ShapeJSONObject {
		m.ResponseMIMEType = "application/json"
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return "", utils.NewTransportStatusError(p.Name(), apiErr.Code, apiErr.Message)
		}
		return "", utils.NewTransportError(p.Name(), err)
	}

	text, err := geminiText(resp)
	if err != nil {
		return "", utils.NewTransportError(p.Name(), err)
	}
	return text, nil
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// geminiText joins the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
