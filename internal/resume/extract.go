package resume

import (
	"context"
	"encoding/json"

	"vitaforge/pkg/models"
	"vitaforge/pkg/utils"
)

// Extract turns raw resume text into a structured document. The model
// response is recovered with brace matching before decoding so chatty
// providers that wrap their JSON in prose or code fences still parse.
func (s *Service) Extract(ctx context.Context, rawText string) (*models.ResumeDocument, error) {
	providerID, modelID, shape := s.active(ctx)

	text := s.cleaner.Clean(rawText)
	if len(text) > maxResumeTextChars {
		s.logger.Warn("Resume text truncated for extraction", map[string]interface{}{
			"original_chars": len(text),
			"max_chars":      maxResumeTextChars,
		})
		text = text[:maxResumeTextChars]
	}

	prompt := buildExtractionPrompt(text)

	raw, err := s.dispatcher.DispatchWithRetry(ctx, providerID, modelID, prompt, shape, s.retry)
	if err != nil {
		return nil, err
	}

	doc, err := decodeDocument(providerID, raw)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Resume extracted", map[string]interface{}{
		"provider":   providerID,
		"model":      modelID,
		"experience": len(doc.Experience),
		"education":  len(doc.Education),
		"skills":     len(doc.Skills),
	})
	return doc, nil
}

// decodeDocument recovers the JSON object embedded in a model response
// and maps it onto a fresh document with generated ids.
func decodeDocument(providerID, raw string) (*models.ResumeDocument, error) {
	payload, ok := extractJSONObject(raw)
	if !ok {
		return nil, utils.NewMalformedResponseError(providerID, "no JSON object found in model response")
	}

	var wire wireDocument
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, utils.NewMalformedResponseError(providerID, "model response is not valid JSON: "+err.Error())
	}

	return documentFromWire(&wire), nil
}
