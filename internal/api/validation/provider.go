package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ProviderIDPattern restricts provider ids to lowercase tokens such as
// "gemini" or "ollama-cloud".
var ProviderIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{1,31}$`)

// ModelIDPattern accepts the id shapes the configured backends use,
// including dotted versions ("gemini-1.5-flash") and Ollama tags
// ("llama3.1:8b").
var ModelIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:/-]{0,63}$`)

// ValidateProviderID validates the shape of a provider id. Whether the
// id names a configured provider is checked by the registry.
func ValidateProviderID(fl validator.FieldLevel) bool {
	return ProviderIDPattern.MatchString(fl.Field().String())
}

// ValidateModelID validates the shape of a model id.
func ValidateModelID(fl validator.FieldLevel) bool {
	return ModelIDPattern.MatchString(fl.Field().String())
}

// RegisterProviderValidators registers all provider-related custom validators
func RegisterProviderValidators(v *validator.Validate) {
	v.RegisterValidation("provider_id", ValidateProviderID)
	v.RegisterValidation("model_id", ValidateModelID)
}
