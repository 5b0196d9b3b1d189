package program

import "time"

// AssetResponse represents an asset in responses; generated content is
// summarized rather than inlined
type AssetResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	URL           string    `json:"url,omitempty"`
	MimeType      string    `json:"mime_type,omitempty"`
	SizeBytes     int64     `json:"size_bytes,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
	ArtifactCount int       `json:"artifact_count"`
	CurrentCount  int       `json:"current_count"`
}

// ProgramResponse represents a program in responses
type ProgramResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Languages   []string        `json:"languages,omitempty"`
	IsPublished bool            `json:"is_published"`
	Assets      []AssetResponse `json:"assets"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StatsResponse represents aggregated content counts for a program
type StatsResponse struct {
	AssetCount      int            `json:"asset_count"`
	ArtifactCount   int            `json:"artifact_count"`
	CurrentCount    int            `json:"current_count"`
	DeprecatedCount int            `json:"deprecated_count"`
	ByContentType   map[string]int `json:"by_content_type"`
	ByLanguage      map[string]int `json:"by_language"`
}
