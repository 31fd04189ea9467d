package llm

import (
	"context"
	"strings"

	"vitaforge/internal/config"
	"vitaforge/internal/llm/providers"
)

// Factory creates provider instances from configuration.
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory.
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{config: cfg}
}

// credentialSet reports whether a configured credential holds a real
// value. Unresolved ${VAR} placeholders from the YAML file count as
// unset.
func credentialSet(v string) bool {
	return v != "" && !strings.Contains(v, "${")
}

// CreateProviders builds one instance per configured provider, in a
// stable order. Unconfigured providers are omitted entirely rather than
// returned as disabled entries.
func (f *Factory) CreateProviders(ctx context.Context) ([]Provider, error) {
	cfg := f.config
	var list []Provider

	if credentialSet(cfg.Providers.Gemini.APIKey) {
		gemini, err := providers.NewGeminiProvider(ctx,
			cfg.Providers.Gemini.APIKey,
			cfg.Providers.Gemini.Models,
			cfg.LLM.MaxTokens,
			cfg.LLM.Temperature)
		if err != nil {
			return nil, err
		}
		list = append(list, gemini)
	}

	if credentialSet(cfg.Providers.OpenAI.APIKey) {
		list = append(list, providers.NewOpenAIProvider(
			cfg.Providers.OpenAI.APIKey,
			cfg.Providers.OpenAI.BaseURL,
			cfg.Providers.OpenAI.Models,
			cfg.LLM.MaxTokens,
			cfg.LLM.Temperature))
	}

	if credentialSet(cfg.Providers.Claude.APIKey) {
		list = append(list, providers.NewClaudeProvider(
			cfg.Providers.Claude.APIKey,
			cfg.Providers.Claude.Models,
			cfg.LLM.MaxTokens,
			cfg.LLM.Temperature))
	}

	if cfg.Providers.OllamaLocal.Enabled && cfg.Providers.OllamaLocal.BaseURL != "" {
		list = append(list, providers.NewOllamaProvider(
			"ollama-local", "Ollama (Local)",
			cfg.Providers.OllamaLocal.BaseURL,
			"",
			cfg.Providers.OllamaLocal.Models))
	}

	if credentialSet(cfg.Providers.OllamaCloud.APIKey) {
		list = append(list, providers.NewOllamaProvider(
			"ollama-cloud", "Ollama (Cloud)",
			cfg.Providers.OllamaCloud.BaseURL,
			cfg.Providers.OllamaCloud.APIKey,
			cfg.Providers.OllamaCloud.Models))
	}

	return list, nil
}
