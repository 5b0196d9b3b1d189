package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	domainrepo "github.com/content-studio-team/content-studio/internal/domain/repositories"
)

type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a program repository backed by GORM. The
// program is stored as one document row: scalar columns for the metadata
// and a JSONB column holding the full asset/artifact tree.
func NewProgramRepository(db *gorm.DB) domainrepo.ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(ctx context.Context, program *entities.Program) error {
	if program == nil {
		return errors.New("program cannot be nil")
	}
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepository) Load(ctx context.Context, id uuid.UUID) (*entities.Program, error) {
	var program entities.Program
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

// Save writes the whole document back. The doc_version guard rejects a
// writer whose loaded copy went stale; on success the in-memory copy is
// bumped so the caller can keep mutating and save again.
func (r *programRepository) Save(ctx context.Context, program *entities.Program) error {
	if program == nil {
		return errors.New("program cannot be nil")
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Program{}).
		Where("id = ? AND doc_version = ?", program.ID, program.DocVersion).
		Updates(map[string]interface{}{
			"title":        program.Title,
			"description":  program.Description,
			"tags":         program.Tags,
			"languages":    program.Languages,
			"is_published": program.IsPublished,
			"assets":       program.Assets,
			"doc_version":  program.DocVersion + 1,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrStaleProgram
	}

	program.DocVersion++
	return nil
}

func (r *programRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Program, error) {
	var programs []entities.Program
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Program{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrProgramNotFound
	}
	return nil
}
