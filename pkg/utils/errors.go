package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies application errors into the taxonomy the API and
// the pipeline dispatch on.
type ErrorKind string

const (
	// KindConfiguration means no usable provider is configured. Fatal
	// until the operator edits configuration.
	KindConfiguration ErrorKind = "configuration"
	// KindTransport means a provider call failed at the network/HTTP
	// level or returned an empty body.
	KindTransport ErrorKind = "transport"
	// KindMalformedResponse means the model returned text with no
	// parseable JSON object. Never retried.
	KindMalformedResponse ErrorKind = "malformed_response"
	// KindStyleGeneration is a style-revision-specific failure; always
	// surfaced since prior styles remain untouched by construction.
	KindStyleGeneration ErrorKind = "style_generation"
)

// AppError is the single application error type. Provider is set for
// failures attributable to a specific backend so the UI can display
// "provider + message" per the error-surface contract.
type AppError struct {
	Kind     ErrorKind `json:"kind"`
	Code     int       `json:"code"`
	Message  string    `json:"message"`
	Provider string    `json:"provider,omitempty"`
	Detail   string    `json:"detail,omitempty"`
	Err      error     `json:"-"`
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Provider != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Provider)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigurationError reports that zero providers are usable.
func NewConfigurationError(detail string) *AppError {
	return &AppError{
		Kind:    KindConfiguration,
		Code:    http.StatusServiceUnavailable,
		Message: "No AI provider configured",
		Detail:  detail,
	}
}

// NewTransportError wraps a network/HTTP failure from a provider call.
func NewTransportError(provider string, err error) *AppError {
	return &AppError{
		Kind:     KindTransport,
		Code:     http.StatusBadGateway,
		Message:  "Provider request failed",
		Provider: provider,
		Detail:   errDetail(err),
		Err:      err,
	}
}

// NewTransportStatusError wraps a non-2xx provider response. The upstream
// status is kept in Err for retry classification.
func NewTransportStatusError(provider string, status int, body string) *AppError {
	return &AppError{
		Kind:     KindTransport,
		Code:     http.StatusBadGateway,
		Message:  "Provider request failed",
		Provider: provider,
		Detail:   fmt.Sprintf("unexpected status %d: %s", status, body),
		Err:      &httpStatusError{status: status},
	}
}

// NewMalformedResponseError reports model output with no parseable JSON.
func NewMalformedResponseError(provider, detail string) *AppError {
	return &AppError{
		Kind:     KindMalformedResponse,
		Code:     http.StatusBadGateway,
		Message:  "Model returned unparseable output",
		Provider: provider,
		Detail:   detail,
	}
}

// NewStyleGenerationError wraps any failure of the style-delta call.
func NewStyleGenerationError(provider string, err error) *AppError {
	return &AppError{
		Kind:     KindStyleGeneration,
		Code:     http.StatusBadGateway,
		Message:  "Style generation failed",
		Provider: provider,
		Detail:   errDetail(err),
		Err:      err,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// httpStatusError preserves the upstream HTTP status of a transport
// failure for retry classification.
type httpStatusError struct {
	status int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.status)
}

// IsRetryable reports whether a dispatch failure is worth retrying.
// Only transient transport failures qualify: timeouts and upstream
// 408/429/502/503. Malformed responses are never retryable because
// re-sending the identical prompt is a caller policy decision.
func IsRetryable(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindTransport {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(appErr, &statusErr) {
		switch statusErr.status {
		case http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable:
			return true
		}
		return false
	}

	// Network-level failures without a status (connection reset,
	// deadline exceeded) are treated as transient.
	return true
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
