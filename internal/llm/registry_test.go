package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitaforge/internal/store"
	"vitaforge/pkg/utils"
)

type stubProvider struct {
	name      string
	transport TransportStyle
	models    []string

	completeFn func(ctx context.Context, model, prompt string, shape ResponseShape) (string, error)
}

func (s *stubProvider) Name() string              { return s.name }
func (s *stubProvider) Label() string             { return "Stub (" + s.name + ")" }
func (s *stubProvider) Transport() TransportStyle { return s.transport }
func (s *stubProvider) Models() []string          { return s.models }

func (s *stubProvider) Complete(ctx context.Context, model, prompt string, shape ResponseShape) (string, error) {
	if s.completeFn != nil {
		return s.completeFn(ctx, model, prompt, shape)
	}
	return "ok", nil
}

func twoProviderRegistry(t *testing.T, kv store.KV) *Registry {
	t.Helper()

	registry, err := NewRegistry([]Provider{
		&stubProvider{name: "alpha", transport: TransportChat, models: []string{"alpha-large", "alpha-small"}},
		&stubProvider{name: "beta", transport: TransportGenerate, models: []string{"beta-7b"}},
	}, kv, "alpha")
	require.NoError(t, err)
	return registry
}

func TestNewRegistryRejectsEmptyProviderList(t *testing.T) {
	_, err := NewRegistry(nil, store.NewMemoryStore(), "")
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindConfiguration))
}

func TestNewRegistryRejectsProviderWithoutModels(t *testing.T) {
	_, err := NewRegistry([]Provider{
		&stubProvider{name: "alpha", models: nil},
	}, store.NewMemoryStore(), "alpha")
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindConfiguration))
}

func TestNewRegistryFallsBackToFirstProviderAsDefault(t *testing.T) {
	registry, err := NewRegistry([]Provider{
		&stubProvider{name: "alpha", models: []string{"m"}},
	}, store.NewMemoryStore(), "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "alpha", registry.ActiveProvider(context.Background()))
}

func TestRegistryAvailableKeepsOrder(t *testing.T) {
	registry := twoProviderRegistry(t, store.NewMemoryStore())

	infos := registry.Available()
	require.Len(t, infos, 2)
	assert.Equal(t, "alpha", infos[0].ID)
	assert.Equal(t, "beta", infos[1].ID)
	assert.Equal(t, []string{"alpha-large", "alpha-small"}, infos[0].Models)
}

func TestSetActivePersistsSelection(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	registry := twoProviderRegistry(t, kv)

	provider, model, err := registry.SetActive(ctx, "beta", "beta-7b")
	require.NoError(t, err)
	assert.Equal(t, "beta", provider)
	assert.Equal(t, "beta-7b", model)

	// A fresh registry over the same store sees the selection.
	reloaded := twoProviderRegistry(t, kv)
	assert.Equal(t, "beta", reloaded.ActiveProvider(ctx))
	assert.Equal(t, "beta-7b", reloaded.ActiveModel(ctx))
}

func TestSetActiveRejectsUnknownProvider(t *testing.T) {
	registry := twoProviderRegistry(t, store.NewMemoryStore())

	_, _, err := registry.SetActive(context.Background(), "gamma", "")
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindConfiguration))
}

func TestSetActiveSubstitutesInvalidModel(t *testing.T) {
	registry := twoProviderRegistry(t, store.NewMemoryStore())

	provider, model, err := registry.SetActive(context.Background(), "alpha", "no-such-model")
	require.NoError(t, err)
	assert.Equal(t, "alpha", provider)
	assert.Equal(t, "alpha-large", model)
}

func TestActiveModelFallsBackWhenPersistedModelIsStale(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	registry := twoProviderRegistry(t, kv)

	_, _, err := registry.SetActive(ctx, "alpha", "alpha-small")
	require.NoError(t, err)

	// Switching provider leaves a model that belongs to alpha; the
	// registry substitutes beta's first model and persists it.
	require.NoError(t, kv.Set(ctx, "active_provider", "beta"))
	assert.Equal(t, "beta-7b", registry.ActiveModel(ctx))

	stored, err := kv.Get(ctx, "active_model")
	require.NoError(t, err)
	assert.Equal(t, "beta-7b", stored)
}

func TestActiveProviderIgnoresStaleSelection(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, "active_provider", "removed-provider"))

	registry := twoProviderRegistry(t, kv)
	assert.Equal(t, "alpha", registry.ActiveProvider(ctx))
}
