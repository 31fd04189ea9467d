package providers

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"vitaforge/pkg/utils"
)

// ClaudeProvider implements the chat-style transport against Anthropic's
// Messages API. Claude has no native JSON response mode; structured
// responses rely on prompt instructions plus downstream brace recovery.
type ClaudeProvider struct {
	client      anthropic.Client
	models      []string
	maxTokens   int64
	temperature float32
}

// NewClaudeProvider creates a Claude provider instance.
func NewClaudeProvider(apiKey string, models []string, maxTokens int, temperature float32) *ClaudeProvider {
	return &ClaudeProvider{
		client:      anthropic.NewClient(option.WithAPIKey(apiKey)),
		models:      models,
		maxTokens:   int64(maxTokens),
		temperature: temperature,
	}
}

func (p *ClaudeProvider) Name() string {
	return "claude"
}

func (p *ClaudeProvider) Label() string {
	return "Anthropic Claude"
}

func (p *ClaudeProvider) Transport() TransportStyle {
	return TransportChat
}

func (p *ClaudeProvider) Models() []string {
	return p.models
}

// Complete sends the prompt as a single user message.
func (p *ClaudeProvider) Complete(ctx context.Context, model, prompt string, _ ResponseShape) (string, error) {
	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   p.maxTokens,
		Temperature: anthropic.Float(float64(p.temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", utils.NewTransportStatusError(p.Name(), apiErr.StatusCode, apiErr.Error())
		}
		return "", utils.NewTransportError(p.Name(), err)
	}

	if len(response.Content) == 0 {
		return "", utils.NewTransportError(p.Name(), errors.New("empty response"))
	}

	var text string
	for _, content := range response.Content {
		block := content.AsText()
		if block.Text != "" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return "", utils.NewTransportError(p.Name(), errors.New("no text content in response"))
	}

	return text, nil
}
