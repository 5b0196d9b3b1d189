package program

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	domainrepo "github.com/content-studio-team/content-studio/internal/domain/repositories"
)

// ObjectUploader stores uploaded asset files
type ObjectUploader interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
}

// UpdateInput carries the mutable program fields; nil means leave unchanged
type UpdateInput struct {
	Title       *string
	Description *string
	Tags        []string
	Languages   []string
	IsPublished *bool
}

// Stats summarizes a program's content for dashboards
type Stats struct {
	AssetCount     int            `json:"asset_count"`
	ArtifactCount  int            `json:"artifact_count"`
	CurrentCount   int            `json:"current_count"`
	ByContentType  map[string]int `json:"by_content_type"`
	ByLanguage     map[string]int `json:"by_language"`
	DeprecatedOnly int            `json:"deprecated_count"`
}

// Service defines program aggregate operations
type Service interface {
	CreateProgram(ctx context.Context, ownerID uuid.UUID, title, description string, tags, languages []string) (*entities.Program, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*entities.Program, error)
	ListPrograms(ctx context.Context, ownerID uuid.UUID) ([]entities.Program, error)
	UpdateProgram(ctx context.Context, id uuid.UUID, input UpdateInput) (*entities.Program, error)
	DeleteProgram(ctx context.Context, id uuid.UUID) error

	// AttachAsset appends a video or text asset described inline
	AttachAsset(ctx context.Context, programID uuid.UUID, assetType entities.AssetType, title, content, url string) (*entities.Asset, error)

	// UploadAsset stores a document file in object storage and attaches an
	// asset pointing at it
	UploadAsset(ctx context.Context, programID uuid.UUID, title, filename, mimeType string, reader io.Reader, size int64) (*entities.Asset, error)

	// GetStats aggregates artifact counts across the program's assets
	GetStats(ctx context.Context, id uuid.UUID) (*Stats, error)
}

type programService struct {
	programRepo domainrepo.ProgramRepository
	uploader    ObjectUploader
	logger      *zap.Logger
}

// NewService constructs the program service. uploader may be nil when
// object storage is not configured; uploads then fail cleanly.
func NewService(programRepo domainrepo.ProgramRepository, uploader ObjectUploader, logger *zap.Logger) Service {
	return &programService{
		programRepo: programRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

func (s *programService) CreateProgram(ctx context.Context, ownerID uuid.UUID, title, description string, tags, languages []string) (*entities.Program, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidRequest)
	}

	program := entities.NewProgram(ownerID, title, description, tags, languages)
	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("program created",
			zap.String("program_id", program.ID.String()),
			zap.String("owner_id", ownerID.String()))
	}
	return program, nil
}

func (s *programService) GetProgram(ctx context.Context, id uuid.UUID) (*entities.Program, error) {
	program, err := s.programRepo.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}
	if program == nil {
		return nil, entities.ErrProgramNotFound
	}
	return program, nil
}

func (s *programService) ListPrograms(ctx context.Context, ownerID uuid.UUID) ([]entities.Program, error) {
	programs, err := s.programRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, nil
}

func (s *programService) UpdateProgram(ctx context.Context, id uuid.UUID, input UpdateInput) (*entities.Program, error) {
	for attempt := 0; attempt < 3; attempt++ {
		program, err := s.GetProgram(ctx, id)
		if err != nil {
			return nil, err
		}

		if input.Title != nil {
			if strings.TrimSpace(*input.Title) == "" {
				return nil, fmt.Errorf("%w: title cannot be empty", entities.ErrInvalidRequest)
			}
			program.Title = *input.Title
		}
		if input.Description != nil {
			program.Description = *input.Description
		}
		if input.Tags != nil {
			program.Tags = input.Tags
		}
		if input.Languages != nil {
			program.Languages = input.Languages
		}
		if input.IsPublished != nil {
			program.IsPublished = *input.IsPublished
		}

		program.Touch()
		err = s.programRepo.Save(ctx, program)
		if err == nil {
			return program, nil
		}
		if !errors.Is(err, entities.ErrStaleProgram) {
			return nil, fmt.Errorf("failed to save program: %w", err)
		}
	}
	return nil, fmt.Errorf("failed to save program: %w", entities.ErrStaleProgram)
}

func (s *programService) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	program, err := s.programRepo.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}
	if program == nil {
		return entities.ErrProgramNotFound
	}
	if err := s.programRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	return nil
}

func (s *programService) AttachAsset(ctx context.Context, programID uuid.UUID, assetType entities.AssetType, title, content, url string) (*entities.Asset, error) {
	var asset entities.Asset
	switch assetType {
	case entities.AssetTypeVideo:
		if url == "" {
			return nil, fmt.Errorf("%w: video assets require a url", entities.ErrInvalidRequest)
		}
		asset = entities.NewVideoAsset(title, url)
	case entities.AssetTypeText:
		if strings.TrimSpace(content) == "" {
			return nil, fmt.Errorf("%w: text assets require content", entities.ErrInvalidRequest)
		}
		asset = entities.NewTextAsset(title, content)
	case entities.AssetTypeDocument:
		return nil, fmt.Errorf("%w: document assets are attached via upload", entities.ErrInvalidRequest)
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidAssetType, assetType)
	}

	if err := s.attach(ctx, programID, asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *programService) UploadAsset(ctx context.Context, programID uuid.UUID, title, filename, mimeType string, reader io.Reader, size int64) (*entities.Asset, error) {
	if s.uploader == nil {
		return nil, fmt.Errorf("%w: object storage not configured", entities.ErrInvalidRequest)
	}

	// The object key embeds the program so storage stays browsable.
	objectName := fmt.Sprintf("programs/%s/assets/%s-%s", programID, uuid.New(), filename)
	if err := s.uploader.UploadFile(ctx, objectName, reader, size, mimeType); err != nil {
		return nil, fmt.Errorf("failed to upload asset file: %w", err)
	}

	asset := entities.NewDocumentAsset(title, objectName, mimeType, size)
	if err := s.attach(ctx, programID, asset); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("asset uploaded",
			zap.String("program_id", programID.String()),
			zap.String("asset_id", asset.ID.String()),
			zap.String("object", objectName),
			zap.Int64("size_bytes", size))
	}
	return &asset, nil
}

func (s *programService) attach(ctx context.Context, programID uuid.UUID, asset entities.Asset) error {
	for attempt := 0; attempt < 3; attempt++ {
		program, err := s.GetProgram(ctx, programID)
		if err != nil {
			return err
		}

		program.AttachAsset(asset)
		err = s.programRepo.Save(ctx, program)
		if err == nil {
			return nil
		}
		if !errors.Is(err, entities.ErrStaleProgram) {
			return fmt.Errorf("failed to save program: %w", err)
		}
	}
	return fmt.Errorf("failed to save program: %w", entities.ErrStaleProgram)
}

func (s *programService) GetStats(ctx context.Context, id uuid.UUID) (*Stats, error) {
	program, err := s.GetProgram(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		AssetCount:    len(program.Assets),
		ByContentType: make(map[string]int),
		ByLanguage:    make(map[string]int),
	}
	for i := range program.Assets {
		store := program.Assets[i].Generated
		if store == nil {
			continue
		}
		stats.ArtifactCount += len(store.Artifacts)
		current := store.Latest("", "")
		stats.CurrentCount += len(current)
		for _, a := range current {
			stats.ByContentType[string(a.ContentType)]++
			stats.ByLanguage[a.Language]++
		}
	}
	stats.DeprecatedOnly = stats.ArtifactCount - stats.CurrentCount
	return stats, nil
}
