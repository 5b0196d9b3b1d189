package entities

import (
	"testing"

	"github.com/google/uuid"
)

func TestProgramAttachAndFindAsset(t *testing.T) {
	p := NewProgram(uuid.New(), "Course", "", nil, []string{"en"})
	asset := NewTextAsset("Lesson 1", "source text")
	p.AttachAsset(asset)

	found, err := p.FindAssetByID(asset.ID)
	if err != nil {
		t.Fatalf("expected asset, got error %v", err)
	}
	if found.Title != "Lesson 1" {
		t.Fatalf("unexpected asset title %q", found.Title)
	}

	if _, err := p.FindAssetByID(uuid.New()); err != ErrAssetNotFound {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestProgramFindArtifactAcrossAssets(t *testing.T) {
	p := NewProgram(uuid.New(), "Course", "", nil, nil)
	first := NewTextAsset("a", "x")
	second := NewTextAsset("b", "y")
	artifact := NewArtifact(ContentTypeSummary, "s", "en", ArtifactBody{Text: "t"})
	second.Generated.Append(artifact)
	p.AttachAsset(first)
	p.AttachAsset(second)

	owner, found, err := p.FindArtifactByID(artifact.ID)
	if err != nil {
		t.Fatalf("expected artifact, got error %v", err)
	}
	if owner.ID != second.ID {
		t.Fatalf("artifact resolved to the wrong owning asset")
	}
	if found.ID != artifact.ID {
		t.Fatalf("unexpected artifact id")
	}

	if _, _, err := p.FindArtifactByID(uuid.New()); err != ErrArtifactNotFound {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
}

func TestFindArtifactSkipsAssetsWithoutStore(t *testing.T) {
	p := NewProgram(uuid.New(), "Course", "", nil, nil)
	legacy := Asset{ID: uuid.New(), Type: AssetTypeText, Title: "legacy"}
	p.AttachAsset(legacy)

	if _, _, err := p.FindArtifactByID(uuid.New()); err != ErrArtifactNotFound {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
}
