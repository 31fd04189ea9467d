package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "selection.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "active_provider")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, s.Set(ctx, "active_provider", "gemini"))
	require.NoError(t, s.Set(ctx, "active_model", "gemini-2.5-flash"))

	val, err := s.Get(ctx, "active_provider")
	require.NoError(t, err)
	assert.Equal(t, "gemini", val)
	require.NoError(t, s.Close())

	// Values survive a reopen.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	val, err = reopened.Get(ctx, "active_model")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", val)
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "selection.json"))
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "active_provider", "gemini"))
	require.NoError(t, s.Set(ctx, "active_provider", "openai"))

	val, err := s.Get(ctx, "active_provider")
	require.NoError(t, err)
	assert.Equal(t, "openai", val)
}

func TestFileStoreToleratesCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "selection.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err, "corrupt state must not block startup")

	_, err = s.Get(ctx, "active_provider")
	assert.True(t, errors.Is(err, ErrNotFound))

	// Writing repairs the file.
	require.NoError(t, s.Set(ctx, "active_provider", "gemini"))
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	val, err := reopened.Get(ctx, "active_provider")
	require.NoError(t, err)
	assert.Equal(t, "gemini", val)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, s.Set(ctx, "k", "v"))
	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, s.Set(ctx, "k", "v2"))
	val, _ = s.Get(ctx, "k")
	assert.Equal(t, "v2", val)
	assert.NoError(t, s.Close())
}
