package resume

import (
	"context"
	"encoding/json"

	"vitaforge/pkg/models"
	"vitaforge/pkg/utils"
)

// ReviseStyles asks the model for style adjustments and shallow-merges
// the result over the current overrides. Model keys win for slots both
// sides mention; slots the model omits keep their current values, so a
// partial answer never strips existing styling. Keys outside the known
// slot vocabulary are discarded. Every failure is wrapped as a style
// generation error and the current overrides are returned untouched.
func (s *Service) ReviseStyles(ctx context.Context, current models.StyleOverrides, instruction string) (models.StyleOverrides, error) {
	providerID, modelID, shape := s.active(ctx)

	prompt := buildStylePrompt(current, instruction)

	raw, err := s.dispatcher.Dispatch(ctx, providerID, modelID, prompt, shape)
	if err != nil {
		return current.Clone(), utils.NewStyleGenerationError(providerID, err)
	}

	payload, ok := extractJSONObject(raw)
	if !ok {
		return current.Clone(), utils.NewStyleGenerationError(providerID,
			utils.NewMalformedResponseError(providerID, "no JSON object found in style response"))
	}

	var proposed map[string]string
	if err := json.Unmarshal([]byte(payload), &proposed); err != nil {
		return current.Clone(), utils.NewStyleGenerationError(providerID,
			utils.NewMalformedResponseError(providerID, "style response is not valid JSON: "+err.Error()))
	}

	merged := current.Clone()
	if merged == nil {
		merged = models.StyleOverrides{}
	}
	applied := 0
	for slot, value := range proposed {
		if !models.IsStyleSlot(slot) || value == "" {
			continue
		}
		merged[slot] = value
		applied++
	}

	s.logger.Info("Styles revised", map[string]interface{}{
		"provider": providerID,
		"model":    modelID,
		"applied":  applied,
	})
	return merged, nil
}
