// Package providers contains one implementation per backend transport
// style: chat-completion (Gemini, OpenAI, Claude) and raw-generate
// (Ollama local and cloud).
package providers

import "context"

// TransportStyle identifies the request/response shape a provider's API
// expects. Each provider has exactly one.
type TransportStyle string

const (
	// TransportChat is the chat-completion style: message array in,
	// single text out, with a native structured-JSON response mode on
	// providers that support one.
	TransportChat TransportStyle = "chat"

	// TransportGenerate is the raw-generate style: single prompt string
	// in, single text out, no native JSON mode. Callers extract JSON
	// from the text downstream.
	TransportGenerate TransportStyle = "generate"
)

// ResponseShape tells the transport what the caller expects back.
type ResponseShape string

const (
	// ShapeText requests free-form text.
	ShapeText ResponseShape = "text"

	// ShapeJSONObject requests a single JSON object. Transports with a
	// native JSON mode enable it; the rest return text and the caller
	// recovers the object by brace matching.
	ShapeJSONObject ResponseShape = "json_object"
)

// Provider is a configured backend capable of text generation.
type Provider interface {
	// Name returns the stable provider identifier (e.g. "gemini",
	// "ollama-local").
	Name() string

	// Label returns the human-readable name shown in settings.
	Label() string

	// Transport returns the provider's transport style.
	Transport() TransportStyle

	// Models returns the configured model identifiers, first one being
	// the default.
	Models() []string

	// Complete sends one prompt to the given model and returns the raw
	// response text. It makes exactly one network round trip.
	Complete(ctx context.Context, model, prompt string, shape ResponseShape) (string, error)
}
