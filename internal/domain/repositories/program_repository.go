package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
)

// ProgramRepository defines the whole-document persistence boundary for the
// program aggregate. Load returns (nil, nil) on miss; callers translate
// that into a not-found condition. Save writes the entire document and
// fails with entities.ErrStaleProgram when the stored doc_version no longer
// matches the loaded one.
type ProgramRepository interface {
	// Create inserts a new program document
	Create(ctx context.Context, program *entities.Program) error

	// Load reads the full program document by id
	Load(ctx context.Context, id uuid.UUID) (*entities.Program, error)

	// Save writes the full program document back (read-modify-write)
	Save(ctx context.Context, program *entities.Program) error

	// ListByOwner returns all programs owned by a user, newest first
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Program, error)

	// Delete removes a program document
	Delete(ctx context.Context, id uuid.UUID) error
}
