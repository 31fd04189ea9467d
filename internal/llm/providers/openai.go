package providers

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"

	"vitaforge/pkg/utils"
)

// OpenAIProvider implements the chat-style transport against the OpenAI
// chat-completions API, with the json_object response format when a
// structured response is requested.
type OpenAIProvider struct {
	client      openai.Client
	models      []string
	maxTokens   int
	temperature float32
}

// NewOpenAIProvider creates an OpenAI provider instance. A non-empty
// baseURL points the client at an OpenAI-compatible endpoint.
func NewOpenAIProvider(apiKey, baseURL string, models []string, maxTokens int, temperature float32) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIProvider{
		client:      openai.NewClient(opts...),
		models:      models,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Label() string {
	return "OpenAI"
}

func (p *OpenAIProvider) Transport() TransportStyle {
	return TransportChat
}

func (p *OpenAIProvider) Models() []string {
	return p.models
}

// Complete sends the prompt as a single user message.
func (p *OpenAIProvider) Complete(ctx context.Context, model, prompt string, shape ResponseShape) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(model),
		Temperature: openai.Float(float64(p.temperature)),
		MaxTokens:   openai.Int(int64(p.maxTokens)),
	}

	if shape == ShapeJSONObject {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", utils.NewTransportStatusError(p.Name(), apiErr.StatusCode, apiErr.Message)
		}
		return "", utils.NewTransportError(p.Name(), err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", utils.NewTransportError(p.Name(), errors.New("empty completion"))
	}

	return completion.Choices[0].Message.Content, nil
}
