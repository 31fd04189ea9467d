package models

import "time"

// ParseResumeResponse is returned by POST /api/v1/resume/parse.
type ParseResumeResponse struct {
	Success        bool            `json:"success"`
	Resume         *ResumeDocument `json:"resume,omitempty"`
	Provider       string          `json:"provider"`
	Model          string          `json:"model"`
	ProcessingTime time.Duration   `json:"processing_time"`
	RequestID      string          `json:"request_id"`
}

// ImproveResumeResponse is returned by POST /api/v1/resume/improve.
// Changed is false when the revision failed soft and Resume is the
// caller's document untouched; Warning then carries the reason.
type ImproveResumeResponse struct {
	Success        bool            `json:"success"`
	Resume         *ResumeDocument `json:"resume"`
	Changed        bool            `json:"changed"`
	Warning        string          `json:"warning,omitempty"`
	Provider       string          `json:"provider"`
	Model          string          `json:"model"`
	ProcessingTime time.Duration   `json:"processing_time"`
	RequestID      string          `json:"request_id"`
}

// ReviseStylesResponse is returned by POST /api/v1/resume/styles.
type ReviseStylesResponse struct {
	Success        bool           `json:"success"`
	Styles         StyleOverrides `json:"styles,omitempty"`
	Provider       string         `json:"provider"`
	Model          string         `json:"model"`
	ProcessingTime time.Duration  `json:"processing_time"`
	RequestID      string         `json:"request_id"`
}

// ProviderInfo describes one configured provider for the settings UI.
type ProviderInfo struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Models []string `json:"models"`
}

// ProvidersResponse is returned by GET /api/v1/providers.
type ProvidersResponse struct {
	Providers []ProviderInfo `json:"providers"`
}

// ActiveProviderResponse is returned by GET and PUT /api/v1/providers/active.
type ActiveProviderResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Provider  string    `json:"provider,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
