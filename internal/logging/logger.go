package logging

import (
	"fmt"
	"os"
	"sync"
	"time"

	"vitaforge/internal/logging/types"
)

// Re-export types so callers import a single package.
type (
	LogLevel   = types.LogLevel
	LogEntry   = types.LogEntry
	LogAdapter = types.LogAdapter
	Logger     = types.Logger
)

const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
	FatalLevel = types.FatalLevel
)

// MultiLogger fans log entries out to a set of adapters.
type MultiLogger struct {
	adapters []types.LogAdapter
	level    types.LogLevel
	fields   map[string]interface{}
	mu       sync.RWMutex
}

// NewMultiLogger creates a logger with the given adapters.
func NewMultiLogger(level types.LogLevel, adapters ...types.LogAdapter) *MultiLogger {
	return &MultiLogger{
		adapters: adapters,
		level:    level,
		fields:   make(map[string]interface{}),
	}
}

func (l *MultiLogger) Debug(message string, fields ...map[string]interface{}) {
	l.log(DebugLevel, message, fields...)
}

func (l *MultiLogger) Info(message string, fields ...map[string]interface{}) {
	l.log(InfoLevel, message, fields...)
}

func (l *MultiLogger) Warn(message string, fields ...map[string]interface{}) {
	l.log(WarnLevel, message, fields...)
}

func (l *MultiLogger) Error(message string, fields ...map[string]interface{}) {
	l.log(ErrorLevel, message, fields...)
}

// Fatal logs the message, closes the adapters and exits.
func (l *MultiLogger) Fatal(message string, fields ...map[string]interface{}) {
	l.log(FatalLevel, message, fields...)
	l.Close()
	os.Exit(1)
}

func (l *MultiLogger) log(level types.LogLevel, message string, fields ...map[string]interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.level {
		return
	}

	entry := &types.LogEntry{
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
		Fields:    l.mergeFields(fields...),
	}

	for _, adapter := range l.adapters {
		if err := adapter.Write(entry); err != nil {
			// Adapter errors go to stderr to avoid recursion.
			fmt.Fprintf(os.Stderr, "logging adapter %s error: %v\n", adapter.Name(), err)
		}
	}
}

// WithField returns a child logger carrying an extra field.
func (l *MultiLogger) WithField(key string, value interface{}) types.Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a child logger carrying extra fields.
func (l *MultiLogger) WithFields(fields map[string]interface{}) types.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return &MultiLogger{
		adapters: l.adapters,
		level:    l.level,
		fields:   merged,
	}
}

// SetLevel changes the minimum level written to adapters.
func (l *MultiLogger) SetLevel(level types.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Close closes all adapters.
func (l *MultiLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	for _, adapter := range l.adapters {
		if err := adapter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (l *MultiLogger) mergeFields(fields ...map[string]interface{}) map[string]interface{} {
	if len(l.fields) == 0 && len(fields) == 0 {
		return nil
	}

	merged := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, fm := range fields {
		for k, v := range fm {
			merged[k] = v
		}
	}
	return merged
}
