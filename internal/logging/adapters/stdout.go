package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"vitaforge/internal/logging/types"
)

// StdoutAdapter writes log entries to standard output in either json or
// text format.
type StdoutAdapter struct {
	name   string
	format string
	mu     sync.Mutex
}

// NewStdoutAdapter creates a new stdout adapter.
func NewStdoutAdapter(name, format string) *StdoutAdapter {
	return &StdoutAdapter{name: name, format: format}
}

// Write writes a log entry to stdout.
func (a *StdoutAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var line string
	if strings.ToLower(a.format) == "text" {
		line = formatText(entry)
	} else {
		b, err := json.Marshal(map[string]interface{}{
			"level":     entry.Level.String(),
			"message":   entry.Message,
			"timestamp": entry.Timestamp,
			"fields":    entry.Fields,
		})
		if err != nil {
			return fmt.Errorf("failed to format log entry: %w", err)
		}
		line = string(b)
	}

	_, err := fmt.Fprintln(os.Stdout, line)
	return err
}

// Close closes the adapter (no-op for stdout).
func (a *StdoutAdapter) Close() error {
	return nil
}

// Name returns the name of the adapter.
func (a *StdoutAdapter) Name() string {
	return a.name
}

func formatText(entry *types.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s",
		entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		strings.ToUpper(entry.Level.String()),
		entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}
	return b.String()
}
