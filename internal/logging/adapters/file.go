package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"vitaforge/internal/logging/types"
)

// FileAdapter appends JSON log entries to a file.
type FileAdapter struct {
	name string
	path string
	file *os.File
	mu   sync.Mutex
}

// NewFileAdapter creates a file adapter, creating parent directories as
// needed.
func NewFileAdapter(name, path string) (*FileAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileAdapter{name: name, path: path, file: f}, nil
}

// Write appends a log entry to the file.
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return fmt.Errorf("file adapter %s is closed", a.name)
	}

	b, err := json.Marshal(map[string]interface{}{
		"level":     entry.Level.String(),
		"message":   entry.Message,
		"timestamp": entry.Timestamp,
		"fields":    entry.Fields,
	})
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	_, err = fmt.Fprintln(a.file, string(b))
	return err
}

// Close flushes and closes the underlying file.
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

// Name returns the name of the adapter.
func (a *FileAdapter) Name() string {
	return a.name
}
