package program

// CreateProgramRequest represents the request to create a program
type CreateProgramRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=500"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=100"`
	Languages   []string `json:"languages,omitempty" validate:"omitempty,dive,min=2,max=10"`
}

// UpdateProgramRequest represents the request to update a program; nil
// fields are left unchanged
type UpdateProgramRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=100"`
	Languages   []string `json:"languages,omitempty" validate:"omitempty,dive,min=2,max=10"`
	IsPublished *bool    `json:"is_published,omitempty"`
}

// AttachAssetRequest represents the request to attach a video or text asset
type AttachAssetRequest struct {
	Type    string `json:"type" validate:"required,oneof=video text"`
	Title   string `json:"title" validate:"required,min=1,max=500"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty" validate:"omitempty,url"`
}
