// Package resume implements the schema-guided extraction, loss-guarded
// content revision, and style-delta generation pipeline on top of the
// LLM dispatch layer.
package resume

import (
	"context"

	"vitaforge/internal/llm"
	"vitaforge/internal/llm/processors"
	"vitaforge/internal/logging"
)

// Prompts beyond this size get truncated; roughly 8k tokens at the
// usual 3 chars/token estimate.
const maxResumeTextChars = 24000

// Dispatcher is the slice of the dispatch layer the pipeline consumes.
type Dispatcher interface {
	Dispatch(ctx context.Context, providerID, modelID, prompt string, shape llm.ResponseShape) (string, error)
	DispatchWithRetry(ctx context.Context, providerID, modelID, prompt string, shape llm.ResponseShape, policy llm.RetryPolicy) (string, error)
}

// Service wires the registry, dispatcher and text cleaner into the three
// pipeline operations.
type Service struct {
	registry   *llm.Registry
	dispatcher Dispatcher
	cleaner    *processors.TextCleaner
	retry      llm.RetryPolicy
	logger     logging.Logger
}

// NewService creates the pipeline service. The retry policy applies to
// extraction dispatches only.
func NewService(registry *llm.Registry, dispatcher Dispatcher, retry llm.RetryPolicy) *Service {
	return &Service{
		registry:   registry,
		dispatcher: dispatcher,
		cleaner:    processors.NewTextCleaner(),
		retry:      retry,
		logger:     logging.GetGlobalLogger(),
	}
}

// active resolves the current provider/model pair and the response shape
// its transport supports.
func (s *Service) active(ctx context.Context) (providerID, modelID string, shape llm.ResponseShape) {
	providerID = s.registry.ActiveProvider(ctx)
	modelID = s.registry.ActiveModel(ctx)

	shape = llm.ShapeText
	if provider, ok := s.registry.Provider(providerID); ok && provider.Transport() == llm.TransportChat {
		shape = llm.ShapeJSONObject
	}
	return providerID, modelID, shape
}

// ActiveSelection exposes the resolved provider/model pair for response
// metadata.
func (s *Service) ActiveSelection(ctx context.Context) (string, string) {
	return s.registry.ActiveProvider(ctx), s.registry.ActiveModel(ctx)
}
