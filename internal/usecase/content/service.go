package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	domainrepo "github.com/content-studio-team/content-studio/internal/domain/repositories"
	usecaseerrors "github.com/content-studio-team/content-studio/internal/usecase/errors"
)

// saveRetries bounds how often a save is replayed after losing a
// doc_version race before the whole operation fails.
const saveRetries = 3

// LanguageError marks which language a generation batch died on
type LanguageError struct {
	Language string
	Err      error
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("generation failed for language %q: %v", e.Language, e.Err)
}

func (e *LanguageError) Unwrap() error { return e.Err }

// Generator produces raw model output for one content type in one language
type Generator interface {
	GenerateArtifact(ctx context.Context, contentType entities.ContentType, sourceText string, language string) (string, error)
}

// Service defines content generation orchestration methods
type Service interface {
	// StartGeneration generates one artifact per requested language. The
	// batch stops at the first failing language; artifacts persisted before
	// the failure stay persisted and are returned alongside the error.
	StartGeneration(ctx context.Context, programID, assetID uuid.UUID, contentType entities.ContentType, languages []string) ([]entities.Artifact, error)

	// StartRegeneration replaces one existing artifact with a fresh
	// generation. The old artifact is deprecated and the new one becomes
	// current; on failure the program is left untouched.
	StartRegeneration(ctx context.Context, programID, assetID, artifactID uuid.UUID) (*entities.Artifact, error)

	// ListLatest returns the current artifact per (content-type, language)
	// key for an asset, optionally filtered by language and content type.
	ListLatest(ctx context.Context, programID, assetID uuid.UUID, language string, contentType entities.ContentType) ([]entities.Artifact, error)
}

type contentService struct {
	programRepo domainrepo.ProgramRepository
	generator   Generator
	parser      *Parser
	resolver    *SourceResolver
	logger      *zap.Logger
}

// NewService constructs the content generation service
func NewService(
	programRepo domainrepo.ProgramRepository,
	generator Generator,
	resolver *SourceResolver,
	logger *zap.Logger,
) Service {
	return &contentService{
		programRepo: programRepo,
		generator:   generator,
		parser:      NewParser(),
		resolver:    resolver,
		logger:      logger,
	}
}

func (s *contentService) StartGeneration(ctx context.Context, programID, assetID uuid.UUID, contentType entities.ContentType, languages []string) ([]entities.Artifact, error) {
	if !contentType.Valid() {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidContentType, contentType)
	}
	if len(languages) == 0 {
		return nil, entities.ErrNoLanguages
	}
	if s.generator == nil {
		return nil, usecaseerrors.ErrGeneratorUnavailable
	}

	// Source text is resolved once and reused across languages.
	sourceText, err := s.resolveSource(ctx, programID, assetID)
	if err != nil {
		return nil, err
	}

	persisted := make([]entities.Artifact, 0, len(languages))
	for _, language := range languages {
		artifact, err := s.generateOne(ctx, programID, assetID, contentType, language, sourceText)
		if err != nil {
			if s.logger != nil {
				s.logger.Error("generation batch aborted",
					zap.String("program_id", programID.String()),
					zap.String("asset_id", assetID.String()),
					zap.String("content_type", string(contentType)),
					zap.String("language", language),
					zap.Int("persisted", len(persisted)),
					zap.Error(err))
			}
			return persisted, &LanguageError{Language: language, Err: err}
		}
		persisted = append(persisted, *artifact)
	}

	if s.logger != nil {
		s.logger.Info("generation batch completed",
			zap.String("program_id", programID.String()),
			zap.String("asset_id", assetID.String()),
			zap.String("content_type", string(contentType)),
			zap.Int("artifacts", len(persisted)))
	}
	return persisted, nil
}

// resolveSource loads the program once to turn the asset into source text.
// It also front-loads the not-found and not-generable checks so a batch
// fails before the first model call, not after.
func (s *contentService) resolveSource(ctx context.Context, programID, assetID uuid.UUID) (string, error) {
	program, err := s.programRepo.Load(ctx, programID)
	if err != nil {
		return "", fmt.Errorf("failed to load program: %w", err)
	}
	if program == nil {
		return "", entities.ErrProgramNotFound
	}

	asset, err := program.FindAssetByID(assetID)
	if err != nil {
		return "", err
	}
	if _, err := asset.Store(); err != nil {
		return "", err
	}

	if s.resolver == nil {
		return asset.Content, nil
	}
	return s.resolver.Resolve(ctx, asset), nil
}

// generateOne runs model call, parse, and persist for a single language.
// The persist step replays the whole load-mutate-save cycle when another
// writer bumped doc_version in between.
func (s *contentService) generateOne(ctx context.Context, programID, assetID uuid.UUID, contentType entities.ContentType, language, sourceText string) (*entities.Artifact, error) {
	raw, err := s.generator.GenerateArtifact(ctx, contentType, sourceText, language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseerrors.ErrModelCallFailed, err)
	}

	body, err := s.parser.ParseBody(contentType, raw)
	if err != nil {
		return nil, err
	}

	var artifact *entities.Artifact
	for attempt := 0; attempt < saveRetries; attempt++ {
		program, err := s.programRepo.Load(ctx, programID)
		if err != nil {
			return nil, fmt.Errorf("failed to load program: %w", err)
		}
		if program == nil {
			return nil, entities.ErrProgramNotFound
		}

		asset, err := program.FindAssetByID(assetID)
		if err != nil {
			return nil, err
		}
		store, err := asset.Store()
		if err != nil {
			return nil, err
		}

		// A key that already has a current artifact gets a successor
		// version; a fresh key starts at version 1.
		if current := store.Current(language, contentType); current != nil {
			artifact, err = store.Supersede(current.ID, body)
			if err != nil {
				return nil, err
			}
		} else {
			created := entities.NewArtifact(contentType, defaultTitle(contentType, asset.Title), language, body)
			store.Append(created)
			artifact = &created
		}

		program.Touch()
		err = s.programRepo.Save(ctx, program)
		if err == nil {
			return artifact, nil
		}
		if !errors.Is(err, entities.ErrStaleProgram) {
			return nil, fmt.Errorf("failed to save program: %w", err)
		}
		if s.logger != nil {
			s.logger.Warn("program changed concurrently, retrying save",
				zap.String("program_id", programID.String()),
				zap.Int("attempt", attempt+1))
		}
	}
	return nil, fmt.Errorf("failed to save program: %w", entities.ErrStaleProgram)
}

func (s *contentService) StartRegeneration(ctx context.Context, programID, assetID, artifactID uuid.UUID) (*entities.Artifact, error) {
	if s.generator == nil {
		return nil, usecaseerrors.ErrGeneratorUnavailable
	}

	program, err := s.programRepo.Load(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}
	if program == nil {
		return nil, entities.ErrProgramNotFound
	}

	asset, target, err := program.FindArtifactByID(artifactID)
	if err != nil {
		return nil, err
	}
	if asset.ID != assetID {
		return nil, entities.ErrArtifactNotFound
	}

	var sourceText string
	if s.resolver != nil {
		sourceText = s.resolver.Resolve(ctx, asset)
	} else {
		sourceText = asset.Content
	}

	// Everything fallible happens before the program is mutated, so a
	// failed regeneration leaves the stored document exactly as it was.
	raw, err := s.generator.GenerateArtifact(ctx, target.ContentType, sourceText, target.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseerrors.ErrModelCallFailed, err)
	}

	body, err := s.parser.ParseBody(target.ContentType, raw)
	if err != nil {
		return nil, err
	}

	var artifact *entities.Artifact
	for attempt := 0; attempt < saveRetries; attempt++ {
		if attempt > 0 {
			program, err = s.programRepo.Load(ctx, programID)
			if err != nil {
				return nil, fmt.Errorf("failed to load program: %w", err)
			}
			if program == nil {
				return nil, entities.ErrProgramNotFound
			}
			asset, _, err = program.FindArtifactByID(artifactID)
			if err != nil {
				return nil, err
			}
		}

		store, err := asset.Store()
		if err != nil {
			return nil, err
		}
		artifact, err = store.Supersede(artifactID, body)
		if err != nil {
			return nil, err
		}

		program.Touch()
		err = s.programRepo.Save(ctx, program)
		if err == nil {
			if s.logger != nil {
				s.logger.Info("artifact regenerated",
					zap.String("program_id", programID.String()),
					zap.String("artifact_id", artifactID.String()),
					zap.String("new_artifact_id", artifact.ID.String()),
					zap.Int("version", artifact.Version))
			}
			return artifact, nil
		}
		if !errors.Is(err, entities.ErrStaleProgram) {
			return nil, fmt.Errorf("failed to save program: %w", err)
		}
	}
	return nil, fmt.Errorf("failed to save program: %w", entities.ErrStaleProgram)
}

func (s *contentService) ListLatest(ctx context.Context, programID, assetID uuid.UUID, language string, contentType entities.ContentType) ([]entities.Artifact, error) {
	if contentType != "" && !contentType.Valid() {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidContentType, contentType)
	}

	program, err := s.programRepo.Load(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}
	if program == nil {
		return nil, entities.ErrProgramNotFound
	}

	asset, err := program.FindAssetByID(assetID)
	if err != nil {
		return nil, err
	}
	if asset.Generated == nil {
		return []entities.Artifact{}, nil
	}
	return asset.Generated.Latest(language, contentType), nil
}

// defaultTitle names a freshly generated artifact after its content type
// and source asset.
func defaultTitle(contentType entities.ContentType, assetTitle string) string {
	labels := map[entities.ContentType]string{
		entities.ContentTypeSummary:      "Summary",
		entities.ContentTypeQuiz:         "Quiz",
		entities.ContentTypeCaseStudy:    "Case Study",
		entities.ContentTypeShortLecture: "Short Lecture",
		entities.ContentTypeFlashcard:    "Flashcards",
		entities.ContentTypeAudioTrack:   "Audio Track",
		entities.ContentTypeVideoScript:  "Video Script",
	}
	label, ok := labels[contentType]
	if !ok {
		label = string(contentType)
	}
	if assetTitle == "" {
		return label
	}
	return fmt.Sprintf("%s: %s", label, assetTitle)
}
