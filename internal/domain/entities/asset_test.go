package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func publishedCount(store *ContentStore, language string, contentType ContentType) int {
	n := 0
	for _, a := range store.Artifacts {
		if a.Language == language && a.ContentType == contentType && a.Status == ArtifactStatusPublished {
			n++
		}
	}
	return n
}

func TestContentStoreAppendFirstGeneration(t *testing.T) {
	store := &ContentStore{}
	a := NewArtifact(ContentTypeSummary, "Summary: Intro", "en", ArtifactBody{Text: "short"})
	store.Append(a)

	if len(store.Artifacts) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(store.Artifacts))
	}
	got := store.Artifacts[0]
	if got.Version != 1 {
		t.Fatalf("expected version 1, got %d", got.Version)
	}
	if got.Status != ArtifactStatusPublished || !got.IsPublished {
		t.Fatalf("fresh generation must be published, got status=%s published=%v", got.Status, got.IsPublished)
	}
}

func TestContentStoreSupersedeChainsVersions(t *testing.T) {
	store := &ContentStore{}
	first := NewArtifact(ContentTypeQuiz, "Quiz: Intro", "en", ArtifactBody{Questions: []QuizQuestion{{Question: "q", Options: []string{"a", "b"}}}})
	store.Append(first)

	second, err := store.Supersede(first.ID, ArtifactBody{Questions: []QuizQuestion{{Question: "q2", Options: []string{"a", "b"}}}})
	if err != nil {
		t.Fatalf("supersede failed: %v", err)
	}
	if second.Version != 2 {
		t.Fatalf("expected version 2, got %d", second.Version)
	}
	if second.Title != first.Title || second.Language != first.Language || second.ContentType != first.ContentType {
		t.Fatalf("successor must inherit the key and title of its predecessor")
	}

	third, err := store.Supersede(second.ID, ArtifactBody{Questions: []QuizQuestion{{Question: "q3", Options: []string{"a", "b"}}}})
	if err != nil {
		t.Fatalf("supersede failed: %v", err)
	}
	if third.Version != 3 {
		t.Fatalf("expected version 3, got %d", third.Version)
	}

	if len(store.Artifacts) != 3 {
		t.Fatalf("superseded artifacts must be kept, got %d", len(store.Artifacts))
	}
	if n := publishedCount(store, "en", ContentTypeQuiz); n != 1 {
		t.Fatalf("expected exactly one published artifact per key, got %d", n)
	}
	for _, a := range store.Artifacts {
		if a.ID != third.ID && a.Status != ArtifactStatusDeprecated {
			t.Fatalf("prior version %d should be deprecated, got %s", a.Version, a.Status)
		}
	}
}

func TestContentStoreSupersedeTreatsMissingVersionAsOne(t *testing.T) {
	store := &ContentStore{}
	legacy := Artifact{
		ID:          uuid.New(),
		ContentType: ContentTypeSummary,
		Title:       "Summary: Old",
		Language:    "en",
		GeneratedAt: time.Now(),
		IsPublished: true,
		Status:      ArtifactStatusPublished,
		// Version deliberately zero, as written by an older release
	}
	store.Append(legacy)

	next, err := store.Supersede(legacy.ID, ArtifactBody{Text: "fresh"})
	if err != nil {
		t.Fatalf("supersede failed: %v", err)
	}
	if next.Version != 2 {
		t.Fatalf("missing version counts as 1, so successor must be 2, got %d", next.Version)
	}
}

func TestContentStoreSupersedeUnknownArtifact(t *testing.T) {
	store := &ContentStore{}
	store.Append(NewArtifact(ContentTypeSummary, "s", "en", ArtifactBody{Text: "x"}))

	if _, err := store.Supersede(uuid.New(), ArtifactBody{Text: "y"}); err != ErrArtifactNotFound {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
}

func TestContentStoreKeysAreIndependent(t *testing.T) {
	store := &ContentStore{}
	enSummary := NewArtifact(ContentTypeSummary, "s", "en", ArtifactBody{Text: "en"})
	esSummary := NewArtifact(ContentTypeSummary, "s", "es", ArtifactBody{Text: "es"})
	enQuiz := NewArtifact(ContentTypeQuiz, "q", "en", ArtifactBody{Questions: []QuizQuestion{{Question: "q", Options: []string{"a", "b"}}}})
	store.Append(enSummary)
	store.Append(esSummary)
	store.Append(enQuiz)

	if _, err := store.Supersede(enSummary.ID, ArtifactBody{Text: "en v2"}); err != nil {
		t.Fatalf("supersede failed: %v", err)
	}

	if cur := store.Current("es", ContentTypeSummary); cur == nil || cur.ID != esSummary.ID {
		t.Fatalf("superseding one key must not touch siblings")
	}
	if cur := store.Current("en", ContentTypeQuiz); cur == nil || cur.ID != enQuiz.ID {
		t.Fatalf("superseding one key must not touch other content types")
	}
	if cur := store.Current("en", ContentTypeSummary); cur == nil || cur.Version != 2 {
		t.Fatalf("expected en summary v2 to be current")
	}
}

func TestLatestVisibleTieBreaksOnGeneratedAt(t *testing.T) {
	now := time.Now()
	older := Artifact{ID: uuid.New(), ContentType: ContentTypeSummary, Language: "en", Version: 2, Status: ArtifactStatusPublished, IsPublished: true, GeneratedAt: now.Add(-time.Hour)}
	newer := Artifact{ID: uuid.New(), ContentType: ContentTypeSummary, Language: "en", Version: 2, Status: ArtifactStatusPublished, IsPublished: true, GeneratedAt: now}

	got := LatestVisible([]Artifact{older, newer}, "", "")
	if len(got) != 1 {
		t.Fatalf("expected one current artifact, got %d", len(got))
	}
	if got[0].ID != newer.ID {
		t.Fatalf("equal versions must tie-break on later GeneratedAt")
	}
}

func TestLatestVisibleIgnoresUnpublished(t *testing.T) {
	store := &ContentStore{}
	a := NewArtifact(ContentTypeSummary, "s", "en", ArtifactBody{Text: "x"})
	store.Append(a)
	if _, err := store.Supersede(a.ID, ArtifactBody{Text: "y"}); err != nil {
		t.Fatalf("supersede failed: %v", err)
	}

	deprecatedSeen := false
	for _, cur := range store.Latest("", "") {
		if cur.Status != ArtifactStatusPublished {
			deprecatedSeen = true
		}
	}
	if deprecatedSeen {
		t.Fatalf("deprecated artifacts must never be selected as current")
	}
}

func TestLatestVisibleIsDeterministic(t *testing.T) {
	store := &ContentStore{}
	store.Append(NewArtifact(ContentTypeSummary, "s", "en", ArtifactBody{Text: "1"}))
	store.Append(NewArtifact(ContentTypeQuiz, "q", "en", ArtifactBody{Questions: []QuizQuestion{{Question: "q", Options: []string{"a", "b"}}}}))
	store.Append(NewArtifact(ContentTypeSummary, "s", "es", ArtifactBody{Text: "2"}))

	first := store.Latest("", "")
	second := store.Latest("", "")
	if len(first) != len(second) {
		t.Fatalf("repeated reads differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("repeated reads differ at index %d", i)
		}
	}
}

func TestCountVisibleMatchesLatest(t *testing.T) {
	store := &ContentStore{}
	a := NewArtifact(ContentTypeSummary, "s", "en", ArtifactBody{Text: "1"})
	store.Append(a)
	store.Append(NewArtifact(ContentTypeFlashcard, "f", "en", ArtifactBody{Cards: []Flashcard{{Front: "f", Back: "b"}}}))
	if _, err := store.Supersede(a.ID, ArtifactBody{Text: "2"}); err != nil {
		t.Fatalf("supersede failed: %v", err)
	}

	if got, want := CountVisible(store.Artifacts), len(store.Latest("", "")); got != want {
		t.Fatalf("CountVisible=%d but Latest returned %d", got, want)
	}
}

func TestAssetStoreNilGenerated(t *testing.T) {
	asset := Asset{ID: uuid.New(), Type: AssetTypeText, Title: "legacy"}
	if _, err := asset.Store(); err != ErrAssetNotGenerable {
		t.Fatalf("expected ErrAssetNotGenerable, got %v", err)
	}

	fresh := NewTextAsset("t", "content")
	if _, err := fresh.Store(); err != nil {
		t.Fatalf("constructed assets must be generable: %v", err)
	}
}
