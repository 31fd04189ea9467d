package llm

import (
	"context"
	"errors"
	"sync"

	"vitaforge/internal/logging"
	"vitaforge/internal/store"
	"vitaforge/pkg/models"
	"vitaforge/pkg/utils"
)

// Persistence keys for the active selection.
const (
	selectionProviderKey = "active_provider"
	selectionModelKey    = "active_model"
)

// Registry enumerates the configured providers and owns the persisted
// active provider/model selection. The selection survives restarts
// through the injected key-value store; reads and writes are guarded for
// the single UI interaction that mutates it at a time.
type Registry struct {
	providers []Provider
	byID      map[string]Provider
	defaultID string
	kv        store.KV
	logger    logging.Logger
	mu        sync.RWMutex
}

// NewRegistry creates a registry over the given providers. It fails with
// a configuration error when zero providers are configured; there is
// nothing the service can do without at least one backend.
func NewRegistry(providerList []Provider, kv store.KV, defaultProvider string) (*Registry, error) {
	if len(providerList) == 0 {
		return nil, utils.NewConfigurationError("set at least one provider credential (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OLLAMA_ENABLED or OLLAMA_CLOUD_API_KEY)")
	}

	byID := make(map[string]Provider, len(providerList))
	for _, p := range providerList {
		if len(p.Models()) == 0 {
			return nil, utils.NewConfigurationError("provider " + p.Name() + " has an empty model list")
		}
		byID[p.Name()] = p
	}

	defaultID := providerList[0].Name()
	if _, ok := byID[defaultProvider]; ok {
		defaultID = defaultProvider
	}

	return &Registry{
		providers: providerList,
		byID:      byID,
		defaultID: defaultID,
		kv:        kv,
		logger:    logging.GetGlobalLogger(),
	}, nil
}

// Available returns the configured providers in stable order.
func (r *Registry) Available() []models.ProviderInfo {
	infos := make([]models.ProviderInfo, len(r.providers))
	for i, p := range r.providers {
		infos[i] = models.ProviderInfo{
			ID:     p.Name(),
			Label:  p.Label(),
			Models: append([]string(nil), p.Models()...),
		}
	}
	return infos
}

// Provider returns the provider registered under id.
func (r *Registry) Provider(id string) (Provider, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// ActiveProvider returns the persisted provider choice when it is still
// part of the available set, otherwise the configured default.
func (r *Registry) ActiveProvider(ctx context.Context) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, err := r.kv.Get(ctx, selectionProviderKey)
	if err == nil {
		if _, ok := r.byID[stored]; ok {
			return stored
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("Failed to read persisted provider selection", map[string]interface{}{"error": err.Error()})
	}

	return r.defaultID
}

// ActiveModel returns the persisted model when it belongs to the active
// provider's model list, otherwise that provider's first model. The
// substitution is persisted so the next read is consistent.
func (r *Registry) ActiveModel(ctx context.Context) string {
	providerID := r.ActiveProvider(ctx)
	provider := r.byID[providerID]

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.kv.Get(ctx, selectionModelKey)
	if err == nil && utils.Contains(provider.Models(), stored) {
		return stored
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("Failed to read persisted model selection", map[string]interface{}{"error": err.Error()})
	}

	fallback := provider.Models()[0]
	if err := r.kv.Set(ctx, selectionModelKey, fallback); err != nil {
		r.logger.Warn("Failed to persist model selection", map[string]interface{}{"error": err.Error()})
	}
	return fallback
}

// SetActive validates and persists a provider/model pair. An unknown
// provider is rejected; an omitted or invalid model is substituted with
// the provider's first model. The stored pair is returned.
func (r *Registry) SetActive(ctx context.Context, providerID, modelID string) (string, string, error) {
	provider, ok := r.byID[providerID]
	if !ok {
		return "", "", utils.NewConfigurationError("unknown provider: " + providerID)
	}

	if !utils.Contains(provider.Models(), modelID) {
		modelID = provider.Models()[0]
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.kv.Set(ctx, selectionProviderKey, providerID); err != nil {
		return "", "", err
	}
	if err := r.kv.Set(ctx, selectionModelKey, modelID); err != nil {
		return "", "", err
	}

	r.logger.Info("Active provider updated", map[string]interface{}{
		"provider": providerID,
		"model":    modelID,
	})

	return providerID, modelID, nil
}
