package entities

import (
	"time"

	"github.com/google/uuid"
)

// Program is the top-level aggregate: metadata plus the ordered collection
// of assets, each owning its generated content. All writes go through a
// whole-document read-modify-write of this struct; DocVersion is the
// optimistic counter the repository checks on save.
type Program struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"type:varchar(500);not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Tags        []string  `json:"tags,omitempty" gorm:"type:jsonb;serializer:json"`
	Languages   []string  `json:"languages,omitempty" gorm:"type:jsonb;serializer:json"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	Assets      []Asset   `json:"assets" gorm:"type:jsonb;serializer:json"`
	DocVersion  int64     `json:"doc_version" gorm:"type:bigint;not null;default:1"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Program) TableName() string {
	return "programs"
}

// NewProgram creates a program owned by the given user
func NewProgram(ownerID uuid.UUID, title, description string, tags, languages []string) *Program {
	return &Program{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Tags:        tags,
		Languages:   languages,
		Assets:      []Asset{},
		DocVersion:  1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// Touch refreshes UpdatedAt; called before every persisted mutation
func (p *Program) Touch() {
	p.UpdatedAt = time.Now()
}

// AttachAsset appends an asset to the program
func (p *Program) AttachAsset(asset Asset) {
	p.Assets = append(p.Assets, asset)
	p.Touch()
}

// FindAssetByID returns a pointer into the program's asset list
func (p *Program) FindAssetByID(assetID uuid.UUID) (*Asset, error) {
	for i := range p.Assets {
		if p.Assets[i].ID == assetID {
			return &p.Assets[i], nil
		}
	}
	return nil, ErrAssetNotFound
}

// FindArtifactByID locates an artifact anywhere in the program, returning
// the owning asset alongside it
func (p *Program) FindArtifactByID(artifactID uuid.UUID) (*Asset, *Artifact, error) {
	for i := range p.Assets {
		if p.Assets[i].Generated == nil {
			continue
		}
		if a := p.Assets[i].Generated.FindByID(artifactID); a != nil {
			return &p.Assets[i], a, nil
		}
	}
	return nil, nil, ErrArtifactNotFound
}
