package resume

import (
	"context"

	"vitaforge/pkg/models"
)

// ReviseContent applies a free-form instruction to an existing document.
//
// The input document is snapshotted before the call and every model
// failure is soft: the returned document is always usable, and on error
// it is the untouched snapshot so callers can tell the user the content
// was left unchanged. Fields the model dropped or blanked are restored
// from the snapshot by the merge step.
func (s *Service) ReviseContent(ctx context.Context, doc *models.ResumeDocument, instruction string) (*models.ResumeDocument, error) {
	snapshot := doc.Clone()
	providerID, modelID, shape := s.active(ctx)

	prompt := buildRevisionPrompt(doc, instruction)

	raw, err := s.dispatcher.Dispatch(ctx, providerID, modelID, prompt, shape)
	if err != nil {
		s.logger.Warn("Revision dispatch failed, keeping current content", map[string]interface{}{
			"provider": providerID,
			"model":    modelID,
			"error":    err.Error(),
		})
		return snapshot, err
	}

	revised, err := decodeDocument(providerID, raw)
	if err != nil {
		s.logger.Warn("Revision response unusable, keeping current content", map[string]interface{}{
			"provider": providerID,
			"error":    err.Error(),
		})
		return snapshot, err
	}

	merged := mergeWithSnapshot(revised, snapshot)

	s.logger.Info("Resume content revised", map[string]interface{}{
		"provider": providerID,
		"model":    modelID,
	})
	return merged, nil
}
