package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vitaforge/pkg/utils"
)

// OllamaProvider implements the raw-generate transport against an Ollama
// server: single prompt in, single text out, no native JSON mode. The
// same implementation serves both the local daemon and Ollama cloud;
// cloud instances carry a bearer token.
type OllamaProvider struct {
	name       string
	label      string
	baseURL    string
	apiKey     string
	models     []string
	httpClient *http.Client
}

// NewOllamaProvider creates an Ollama provider. name distinguishes the
// local and cloud variants ("ollama-local", "ollama-cloud").
func NewOllamaProvider(name, label, baseURL, apiKey string, models []string) *OllamaProvider {
	return &OllamaProvider{
		name:    name,
		label:   label,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		models:  models,
		// Per-request deadlines come from the dispatch context.
		httpClient: &http.Client{Timeout: 0},
	}
}

func (p *OllamaProvider) Name() string {
	return p.name
}

func (p *OllamaProvider) Label() string {
	return p.label
}

func (p *OllamaProvider) Transport() TransportStyle {
	return TransportGenerate
}

func (p *OllamaProvider) Models() []string {
	return p.models
}

// generateRequest mirrors the JSON accepted by POST /api/generate.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse mirrors the JSON returned by POST /api/generate.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Complete sends the prompt to POST /api/generate. The response shape is
// ignored: the generate API has no structured mode, so JSON is recovered
// from the text by the caller.
func (p *OllamaProvider) Complete(ctx context.Context, model, prompt string, _ ResponseShape) (string, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", utils.NewTransportError(p.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", utils.NewTransportError(p.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", utils.NewTransportError(p.name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", utils.NewTransportError(p.name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", utils.NewTransportStatusError(p.name, resp.StatusCode, utils.Truncate(string(raw), 512))
	}

	var gen generateResponse
	if err := json.Unmarshal(raw, &gen); err != nil {
		return "", utils.NewTransportError(p.name, fmt.Errorf("decoding response: %w", err))
	}
	if gen.Response == "" {
		return "", utils.NewTransportError(p.name, errors.New("empty response"))
	}

	return gen.Response, nil
}

// IsRunning reports whether the Ollama server responds to GET /api/tags.
func (p *OllamaProvider) IsRunning(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
