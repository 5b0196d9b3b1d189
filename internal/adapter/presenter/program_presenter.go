package presenter

import (
	programDTO "github.com/content-studio-team/content-studio/internal/adapter/dto/program"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
	programUC "github.com/content-studio-team/content-studio/internal/usecase/program"
)

// ToAssetResponse converts an Asset entity to AssetResponse DTO. Inline
// text content and full artifact bodies are deliberately omitted; clients
// fetch artifacts through the dedicated listing endpoint.
func ToAssetResponse(a *entities.Asset) *programDTO.AssetResponse {
	if a == nil {
		return nil
	}

	response := &programDTO.AssetResponse{
		ID:         a.ID.String(),
		Type:       string(a.Type),
		Title:      a.Title,
		URL:        a.URL,
		MimeType:   a.MimeType,
		SizeBytes:  a.SizeBytes,
		UploadedAt: a.UploadedAt,
	}
	if a.Generated != nil {
		response.ArtifactCount = len(a.Generated.Artifacts)
		response.CurrentCount = len(a.Generated.Latest("", ""))
	}
	return response
}

// ToProgramResponse converts a Program entity to ProgramResponse DTO
func ToProgramResponse(p *entities.Program) *programDTO.ProgramResponse {
	if p == nil {
		return nil
	}

	assets := make([]programDTO.AssetResponse, 0, len(p.Assets))
	for i := range p.Assets {
		assets = append(assets, *ToAssetResponse(&p.Assets[i]))
	}

	return &programDTO.ProgramResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		Languages:   p.Languages,
		IsPublished: p.IsPublished,
		Assets:      assets,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProgramListResponse converts a slice of programs
func ToProgramListResponse(programs []entities.Program) []programDTO.ProgramResponse {
	out := make([]programDTO.ProgramResponse, 0, len(programs))
	for i := range programs {
		out = append(out, *ToProgramResponse(&programs[i]))
	}
	return out
}

// ToStatsResponse converts usecase stats to the response DTO
func ToStatsResponse(s *programUC.Stats) *programDTO.StatsResponse {
	if s == nil {
		return nil
	}
	return &programDTO.StatsResponse{
		AssetCount:      s.AssetCount,
		ArtifactCount:   s.ArtifactCount,
		CurrentCount:    s.CurrentCount,
		DeprecatedCount: s.DeprecatedOnly,
		ByContentType:   s.ByContentType,
		ByLanguage:      s.ByLanguage,
	}
}
