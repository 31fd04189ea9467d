package logging

import (
	"sync"

	"vitaforge/internal/logging/adapters"
	"vitaforge/internal/logging/types"
)

// Config describes the logging setup loaded from configuration.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or text
	File   string `yaml:"file"`   // optional file sink
}

var (
	globalLogger types.Logger
	globalMu     sync.RWMutex
)

func init() {
	// Safe default until Initialize runs.
	globalLogger = NewMultiLogger(InfoLevel, adapters.NewStdoutAdapter("stdout", "json"))
}

// Initialize builds the global logger from configuration. The file
// adapter is added only when a path is configured.
func Initialize(cfg Config) error {
	adapterList := []types.LogAdapter{
		adapters.NewStdoutAdapter("stdout", cfg.Format),
	}

	if cfg.File != "" {
		fileAdapter, err := adapters.NewFileAdapter("file", cfg.File)
		if err != nil {
			return err
		}
		adapterList = append(adapterList, fileAdapter)
	}

	logger := NewMultiLogger(types.ParseLevel(cfg.Level), adapterList...)

	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
	return nil
}

// GetGlobalLogger returns the process-wide logger.
func GetGlobalLogger() types.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Shutdown closes the global logger's adapters.
func Shutdown() error {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger.Close()
}
