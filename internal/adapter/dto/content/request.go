package content

// GenerateRequest represents the request to generate artifacts for an
// asset, one per language
type GenerateRequest struct {
	ContentType string   `json:"content_type" validate:"required,oneof=summary quiz case_study short_lecture flashcard audio_track video_script"`
	Languages   []string `json:"languages" validate:"required,min=1,dive,min=2,max=10"`
}

// ListArtifactsRequest represents query parameters for listing current
// artifacts
type ListArtifactsRequest struct {
	Language    string `query:"language" validate:"omitempty,min=2,max=10"`
	ContentType string `query:"content_type" validate:"omitempty,oneof=summary quiz case_study short_lecture flashcard audio_track video_script"`
}
