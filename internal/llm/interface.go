package llm

import "vitaforge/internal/llm/providers"

// Re-export the provider contract so consumers outside the LLM layer
// import a single package.
type (
	Provider       = providers.Provider
	TransportStyle = providers.TransportStyle
	ResponseShape  = providers.ResponseShape
)

const (
	TransportChat     = providers.TransportChat
	TransportGenerate = providers.TransportGenerate

	ShapeText       = providers.ShapeText
	ShapeJSONObject = providers.ShapeJSONObject
)
