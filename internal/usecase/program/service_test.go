package program

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/content-studio-team/content-studio/internal/adapter/repository"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
)

type fakeUploader struct {
	objects map[string]string
	err     error
}

func (f *fakeUploader) UploadFile(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) error {
	if f.err != nil {
		return f.err
	}
	data, _ := io.ReadAll(reader)
	if f.objects == nil {
		f.objects = make(map[string]string)
	}
	f.objects[objectName] = string(data)
	return nil
}

func TestCreateProgram(t *testing.T) {
	repo := repository.NewMemoryProgramRepository()
	svc := NewService(repo, nil, nil)
	owner := uuid.New()

	program, err := svc.CreateProgram(context.Background(), owner, "Go Course", "desc", []string{"go"}, []string{"en"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if program.OwnerID != owner || program.Title != "Go Course" {
		t.Fatalf("unexpected program: %+v", program)
	}

	stored, err := svc.GetProgram(context.Background(), program.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Title != "Go Course" {
		t.Fatalf("program not persisted, got %+v", stored)
	}
}

func TestCreateProgramRequiresTitle(t *testing.T) {
	svc := NewService(repository.NewMemoryProgramRepository(), nil, nil)

	if _, err := svc.CreateProgram(context.Background(), uuid.New(), "   ", "", nil, nil); !errors.Is(err, entities.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestGetProgramNotFound(t *testing.T) {
	svc := NewService(repository.NewMemoryProgramRepository(), nil, nil)

	if _, err := svc.GetProgram(context.Background(), uuid.New()); !errors.Is(err, entities.ErrProgramNotFound) {
		t.Fatalf("expected ErrProgramNotFound, got %v", err)
	}
}

func TestUpdateProgramPartial(t *testing.T) {
	repo := repository.NewMemoryProgramRepository()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	program, err := svc.CreateProgram(ctx, uuid.New(), "Original", "keep me", []string{"a"}, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "Renamed"
	published := true
	updated, err := svc.UpdateProgram(ctx, program.ID, UpdateInput{Title: &title, IsPublished: &published})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" || !updated.IsPublished {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Description != "keep me" || len(updated.Tags) != 1 {
		t.Fatalf("nil input fields must stay unchanged: %+v", updated)
	}
}

func TestDeleteProgram(t *testing.T) {
	repo := repository.NewMemoryProgramRepository()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	program, err := svc.CreateProgram(ctx, uuid.New(), "Course", "", nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.DeleteProgram(ctx, program.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteProgram(ctx, program.ID); !errors.Is(err, entities.ErrProgramNotFound) {
		t.Fatalf("expected ErrProgramNotFound, got %v", err)
	}
}

func TestAttachAsset(t *testing.T) {
	repo := repository.NewMemoryProgramRepository()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	program, err := svc.CreateProgram(ctx, uuid.New(), "Course", "", nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	asset, err := svc.AttachAsset(ctx, program.ID, entities.AssetTypeText, "Notes", "lecture notes", "")
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if asset.Generated == nil {
		t.Fatalf("attached asset must be generable")
	}

	stored, _ := svc.GetProgram(ctx, program.ID)
	if len(stored.Assets) != 1 || stored.Assets[0].ID != asset.ID {
		t.Fatalf("asset not persisted: %+v", stored.Assets)
	}
}

func TestAttachAssetValidation(t *testing.T) {
	repo := repository.NewMemoryProgramRepository()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	program, err := svc.CreateProgram(ctx, uuid.New(), "Course", "", nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.AttachAsset(ctx, program.ID, entities.AssetTypeVideo, "Talk", "", ""); !errors.Is(err, entities.ErrInvalidRequest) {
		t.Fatalf("video without url must fail, got %v", err)
	}
	if _, err := svc.AttachAsset(ctx, program.ID, entities.AssetTypeText, "Notes", "  ", ""); !errors.Is(err, entities.ErrInvalidRequest) {
		t.Fatalf("text without content must fail, got %v", err)
	}
	if _, err := svc.AttachAsset(ctx, program.ID, entities.AssetTypeDocument, "Doc", "", ""); !errors.Is(err, entities.ErrInvalidRequest) {
		t.Fatalf("inline document attach must fail, got %v", err)
	}
	if _, err := svc.AttachAsset(ctx, program.ID, "dataset", "X", "", ""); !errors.Is(err, entities.ErrInvalidAssetType) {
		t.Fatalf("unknown asset type must fail, got %v", err)
	}
}

func TestUploadAsset(t *testing.T) {
	repo := repository.NewMemoryProgramRepository()
	uploader := &fakeUploader{}
	svc := NewService(repo, uploader, nil)
	ctx := context.Background()

	program, err := svc.CreateProgram(ctx, uuid.New(), "Course", "", nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	asset, err := svc.UploadAsset(ctx, program.ID, "Paper", "paper.pdf", "application/pdf", strings.NewReader("pdf bytes"), 9)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if asset.Type != entities.AssetTypeDocument || asset.SizeBytes != 9 {
		t.Fatalf("unexpected asset: %+v", asset)
	}
	if _, ok := uploader.objects[asset.URL]; !ok {
		t.Fatalf("object %q not stored", asset.URL)
	}
	if !strings.HasPrefix(asset.URL, fmt.Sprintf("programs/%s/assets/", program.ID)) {
		t.Fatalf("object key must be scoped to the program, got %q", asset.URL)
	}
}

func TestUploadAssetWithoutUploader(t *testing.T) {
	svc := NewService(repository.NewMemoryProgramRepository(), nil, nil)

	_, err := svc.UploadAsset(context.Background(), uuid.New(), "Paper", "paper.pdf", "application/pdf", strings.NewReader("x"), 1)
	if !errors.Is(err, entities.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestGetStats(t *testing.T) {
	repo := repository.NewMemoryProgramRepository()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	program, err := svc.CreateProgram(ctx, uuid.New(), "Course", "", nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	asset, err := svc.AttachAsset(ctx, program.ID, entities.AssetTypeText, "Notes", "content", "")
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	// Two artifacts in one chain plus one in another key.
	loaded, _ := repo.Load(ctx, program.ID)
	stored, _ := loaded.FindAssetByID(asset.ID)
	first := entities.NewArtifact(entities.ContentTypeSummary, "Summary", "en", entities.ArtifactBody{Text: "v1"})
	stored.Generated.Append(first)
	if _, err := stored.Generated.Supersede(first.ID, entities.ArtifactBody{Text: "v2"}); err != nil {
		t.Fatalf("supersede failed: %v", err)
	}
	stored.Generated.Append(entities.NewArtifact(entities.ContentTypeQuiz, "Quiz", "es", entities.ArtifactBody{}))
	if err := repo.Save(ctx, loaded); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stats, err := svc.GetStats(ctx, program.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.AssetCount != 1 {
		t.Fatalf("expected 1 asset, got %d", stats.AssetCount)
	}
	if stats.ArtifactCount != 3 || stats.CurrentCount != 2 || stats.DeprecatedOnly != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.ByContentType["summary"] != 1 || stats.ByContentType["quiz"] != 1 {
		t.Fatalf("unexpected content type breakdown: %+v", stats.ByContentType)
	}
	if stats.ByLanguage["en"] != 1 || stats.ByLanguage["es"] != 1 {
		t.Fatalf("unexpected language breakdown: %+v", stats.ByLanguage)
	}
}
