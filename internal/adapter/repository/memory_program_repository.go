package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	domainrepo "github.com/content-studio-team/content-studio/internal/domain/repositories"
)

// MemoryProgramRepository is an in-memory document store with the same
// load/save contract as the Postgres-backed one, including the stale-write
// guard. Used in tests and local development without a database.
type MemoryProgramRepository struct {
	mu       sync.RWMutex
	programs map[uuid.UUID]*entities.Program
}

// NewMemoryProgramRepository creates an empty in-memory program store
func NewMemoryProgramRepository() *MemoryProgramRepository {
	return &MemoryProgramRepository{
		programs: make(map[uuid.UUID]*entities.Program),
	}
}

var _ domainrepo.ProgramRepository = (*MemoryProgramRepository)(nil)

// cloneProgram deep-copies via JSON so callers never alias stored state
func cloneProgram(p *entities.Program) *entities.Program {
	raw, _ := json.Marshal(p)
	var out entities.Program
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (r *MemoryProgramRepository) Create(ctx context.Context, program *entities.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.programs[program.ID] = cloneProgram(program)
	return nil
}

func (r *MemoryProgramRepository) Load(ctx context.Context, id uuid.UUID) (*entities.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.programs[id]
	if !ok {
		return nil, nil
	}
	return cloneProgram(stored), nil
}

func (r *MemoryProgramRepository) Save(ctx context.Context, program *entities.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.programs[program.ID]
	if !ok || stored.DocVersion != program.DocVersion {
		return entities.ErrStaleProgram
	}

	program.DocVersion++
	program.Touch()
	r.programs[program.ID] = cloneProgram(program)
	return nil
}

func (r *MemoryProgramRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.Program
	for _, p := range r.programs {
		if p.OwnerID == ownerID {
			out = append(out, *cloneProgram(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryProgramRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.programs[id]; !ok {
		return entities.ErrProgramNotFound
	}
	delete(r.programs, id)
	return nil
}
