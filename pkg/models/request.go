package models

// ParseResumeRequest is the payload for POST /api/v1/resume/parse.
// Text is the plain UTF-8 prose extracted from an uploaded file by the
// ingestion collaborator.
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required,min=20"`
}

// ImproveResumeRequest is the payload for POST /api/v1/resume/improve.
type ImproveResumeRequest struct {
	Resume       ResumeDocument `json:"resume" validate:"required"`
	Instructions string         `json:"instructions" validate:"required,min=3,max=2000"`
}

// ReviseStylesRequest is the payload for POST /api/v1/resume/styles.
type ReviseStylesRequest struct {
	Styles      StyleOverrides `json:"styles"`
	Preferences string         `json:"preferences" validate:"required,min=3,max=2000"`
}

// SetProviderRequest is the payload for PUT /api/v1/providers/active.
// Model is optional; an omitted or invalid model resolves to the
// provider's first configured model.
type SetProviderRequest struct {
	Provider string `json:"provider" validate:"required,provider_id"`
	Model    string `json:"model" validate:"omitempty,model_id"`
}
