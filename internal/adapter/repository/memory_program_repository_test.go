package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
)

func TestMemoryRepositoryLoadReturnsCopy(t *testing.T) {
	repo := NewMemoryProgramRepository()
	ctx := context.Background()

	program := entities.NewProgram(uuid.New(), "Course", "", nil, nil)
	if err := repo.Create(ctx, program); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	loaded, err := repo.Load(ctx, program.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	loaded.Title = "mutated"

	again, err := repo.Load(ctx, program.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if again.Title != "Course" {
		t.Fatalf("stored program aliased by caller mutation, got %q", again.Title)
	}
}

func TestMemoryRepositoryLoadMissing(t *testing.T) {
	repo := NewMemoryProgramRepository()

	program, err := repo.Load(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if program != nil {
		t.Fatalf("expected nil for unknown program, got %+v", program)
	}
}

func TestMemoryRepositorySaveDetectsStaleWrite(t *testing.T) {
	repo := NewMemoryProgramRepository()
	ctx := context.Background()

	program := entities.NewProgram(uuid.New(), "Course", "", nil, nil)
	if err := repo.Create(ctx, program); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, _ := repo.Load(ctx, program.ID)
	second, _ := repo.Load(ctx, program.ID)

	first.Title = "first writer"
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second.Title = "second writer"
	if err := repo.Save(ctx, second); !errors.Is(err, entities.ErrStaleProgram) {
		t.Fatalf("expected ErrStaleProgram, got %v", err)
	}

	stored, _ := repo.Load(ctx, program.ID)
	if stored.Title != "first writer" {
		t.Fatalf("losing writer must not overwrite, got %q", stored.Title)
	}
}

func TestMemoryRepositorySaveBumpsDocVersion(t *testing.T) {
	repo := NewMemoryProgramRepository()
	ctx := context.Background()

	program := entities.NewProgram(uuid.New(), "Course", "", nil, nil)
	if err := repo.Create(ctx, program); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	loaded, _ := repo.Load(ctx, program.ID)
	before := loaded.DocVersion
	if err := repo.Save(ctx, loaded); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if loaded.DocVersion != before+1 {
		t.Fatalf("expected doc version %d, got %d", before+1, loaded.DocVersion)
	}
}

func TestMemoryRepositoryListByOwner(t *testing.T) {
	repo := NewMemoryProgramRepository()
	ctx := context.Background()
	owner := uuid.New()

	older := entities.NewProgram(owner, "Older", "", nil, nil)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := entities.NewProgram(owner, "Newer", "", nil, nil)
	other := entities.NewProgram(uuid.New(), "Someone else", "", nil, nil)

	for _, p := range []*entities.Program{older, newer, other} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	programs, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(programs))
	}
	if programs[0].Title != "Newer" || programs[1].Title != "Older" {
		t.Fatalf("expected newest first, got %q then %q", programs[0].Title, programs[1].Title)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryProgramRepository()
	ctx := context.Background()

	program := entities.NewProgram(uuid.New(), "Course", "", nil, nil)
	if err := repo.Create(ctx, program); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Delete(ctx, program.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, program.ID); !errors.Is(err, entities.ErrProgramNotFound) {
		t.Fatalf("expected ErrProgramNotFound, got %v", err)
	}
}
