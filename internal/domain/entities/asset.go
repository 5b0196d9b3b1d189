package entities

import (
	"time"

	"github.com/google/uuid"
)

// AssetType represents the kind of source material attached to a program
type AssetType string

const (
	AssetTypeVideo    AssetType = "video"
	AssetTypeText     AssetType = "text"
	AssetTypeDocument AssetType = "document"
)

// Valid reports whether the asset type is known
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeVideo, AssetTypeText, AssetTypeDocument:
		return true
	}
	return false
}

// ContentStore owns the ordered list of artifacts generated for one asset
// and enforces the versioning and status rules. It is persisted inline as
// part of the asset, not as a separate row.
type ContentStore struct {
	Artifacts []Artifact `json:"artifacts"`
}

// Append inserts an artifact at the end of the list. No sibling status is
// touched; callers use it only for the first generation of a key.
func (s *ContentStore) Append(artifact Artifact) {
	s.Artifacts = append(s.Artifacts, artifact)
}

// Supersede deprecates the artifact with the given id and appends its
// successor: same key, same title, the provided body, a fresh timestamp and
// version = max(version over the key, missing treated as 1) + 1. The
// artifact list is rebuilt rather than mutated in place so a Supersede on
// one loaded copy never aliases another.
func (s *ContentStore) Supersede(existingID uuid.UUID, body ArtifactBody) (*Artifact, error) {
	var prior *Artifact
	rebuilt := make([]Artifact, 0, len(s.Artifacts)+1)
	for _, a := range s.Artifacts {
		if a.ID == existingID {
			a.Status = ArtifactStatusDeprecated
			a.IsPublished = false
			copied := a
			prior = &copied
		}
		rebuilt = append(rebuilt, a)
	}
	if prior == nil {
		return nil, ErrArtifactNotFound
	}

	maxVersion := 1
	for _, a := range rebuilt {
		if a.sameKey(*prior) && a.EffectiveVersion() > maxVersion {
			maxVersion = a.EffectiveVersion()
		}
	}

	next := Artifact{
		ID:          uuid.New(),
		ContentType: prior.ContentType,
		Title:       prior.Title,
		Body:        body,
		Language:    prior.Language,
		GeneratedAt: time.Now(),
		IsPublished: true,
		Version:     maxVersion + 1,
		Status:      ArtifactStatusPublished,
	}
	s.Artifacts = append(rebuilt, next)
	return &next, nil
}

// Latest returns the current artifact per (content-type, language) key,
// optionally restricted to one language and/or one content type.
func (s *ContentStore) Latest(language string, contentType ContentType) []Artifact {
	return LatestVisible(s.Artifacts, language, contentType)
}

// Current returns the current artifact for one exact key, or nil when the
// key has no published artifact.
func (s *ContentStore) Current(language string, contentType ContentType) *Artifact {
	latest := LatestVisible(s.Artifacts, language, contentType)
	if len(latest) == 0 {
		return nil
	}
	return &latest[0]
}

// FindByID returns the artifact with the given id regardless of status
func (s *ContentStore) FindByID(id uuid.UUID) *Artifact {
	for i := range s.Artifacts {
		if s.Artifacts[i].ID == id {
			return &s.Artifacts[i]
		}
	}
	return nil
}

// Asset is a source content item attached to a program. Depending on the
// type either Content (text assets) or URL (video and document assets)
// carries the source; both fields may be physically present.
type Asset struct {
	ID         uuid.UUID     `json:"id"`
	Type       AssetType     `json:"type"`
	Title      string        `json:"title"`
	Content    string        `json:"content,omitempty"`
	URL        string        `json:"url,omitempty"`
	SizeBytes  int64         `json:"size_bytes,omitempty"`
	MimeType   string        `json:"mime_type,omitempty"`
	UploadedAt time.Time     `json:"uploaded_at"`
	Generated  *ContentStore `json:"generated_content,omitempty"`
}

// NewVideoAsset creates a video asset pointing at an external URL
func NewVideoAsset(title, url string) Asset {
	return Asset{
		ID:         uuid.New(),
		Type:       AssetTypeVideo,
		Title:      title,
		URL:        url,
		UploadedAt: time.Now(),
		Generated:  &ContentStore{},
	}
}

// NewTextAsset creates a text asset with inline content
func NewTextAsset(title, content string) Asset {
	return Asset{
		ID:         uuid.New(),
		Type:       AssetTypeText,
		Title:      title,
		Content:    content,
		UploadedAt: time.Now(),
		Generated:  &ContentStore{},
	}
}

// NewDocumentAsset creates a document asset backed by an uploaded object
func NewDocumentAsset(title, url, mimeType string, sizeBytes int64) Asset {
	return Asset{
		ID:         uuid.New(),
		Type:       AssetTypeDocument,
		Title:      title,
		URL:        url,
		MimeType:   mimeType,
		SizeBytes:  sizeBytes,
		UploadedAt: time.Now(),
		Generated:  &ContentStore{},
	}
}

// Store returns the asset's content store, or ErrAssetNotGenerable when the
// asset carries no generated-content collection at all (legacy assets
// created before generation support).
func (a *Asset) Store() (*ContentStore, error) {
	if a.Generated == nil {
		return nil, ErrAssetNotGenerable
	}
	return a.Generated, nil
}
