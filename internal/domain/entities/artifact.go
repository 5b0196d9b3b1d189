package entities

import (
	"time"

	"github.com/google/uuid"
)

// ContentType identifies the kind of generated content an artifact holds
type ContentType string

const (
	ContentTypeSummary      ContentType = "summary"
	ContentTypeQuiz         ContentType = "quiz"
	ContentTypeCaseStudy    ContentType = "case_study"
	ContentTypeShortLecture ContentType = "short_lecture"
	ContentTypeFlashcard    ContentType = "flashcard"
	ContentTypeAudioTrack   ContentType = "audio_track"
	ContentTypeVideoScript  ContentType = "video_script"
)

// Valid reports whether the content type is one of the known kinds
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeSummary, ContentTypeQuiz, ContentTypeCaseStudy,
		ContentTypeShortLecture, ContentTypeFlashcard,
		ContentTypeAudioTrack, ContentTypeVideoScript:
		return true
	}
	return false
}

// IsStructured reports whether the model output for this type is JSON
// rather than free text
func (t ContentType) IsStructured() bool {
	switch t {
	case ContentTypeQuiz, ContentTypeFlashcard, ContentTypeCaseStudy, ContentTypeVideoScript:
		return true
	}
	return false
}

// ArtifactStatus represents the lifecycle status of a generated artifact
type ArtifactStatus string

const (
	ArtifactStatusDraft      ArtifactStatus = "draft"
	ArtifactStatusPublished  ArtifactStatus = "published"
	ArtifactStatusDeprecated ArtifactStatus = "deprecated"
)

// QuizQuestion is a single multiple-choice question
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Flashcard is one front/back study card
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// CaseStudy is a scenario-based exercise derived from the source material
type CaseStudy struct {
	Title     string   `json:"title"`
	Scenario  string   `json:"scenario"`
	Questions []string `json:"questions"`
	Takeaways []string `json:"takeaways,omitempty"`
}

// ScriptScene is one scene of a video script
type ScriptScene struct {
	Heading   string `json:"heading"`
	Narration string `json:"narration"`
	Visual    string `json:"visual,omitempty"`
}

// VideoScript is a structured script for a short video
type VideoScript struct {
	Hook         string        `json:"hook"`
	Scenes       []ScriptScene `json:"scenes"`
	CallToAction string        `json:"call_to_action,omitempty"`
}

// ArtifactBody holds the generated material. Exactly one of the fields is
// populated depending on the artifact's content type: Text for summary,
// short_lecture and audio_track, the others for their structured kinds.
type ArtifactBody struct {
	Text      string         `json:"text,omitempty"`
	Questions []QuizQuestion `json:"questions,omitempty"`
	Cards     []Flashcard    `json:"cards,omitempty"`
	CaseStudy *CaseStudy     `json:"case_study,omitempty"`
	Script    *VideoScript   `json:"script,omitempty"`
}

// Artifact is one generated-content version for one (content-type, language)
// pair under one asset. Artifacts are never deleted; superseded versions are
// kept with status deprecated.
type Artifact struct {
	ID          uuid.UUID      `json:"id"`
	ContentType ContentType    `json:"content_type"`
	Title       string         `json:"title"`
	Body        ArtifactBody   `json:"body"`
	Language    string         `json:"language"`
	GeneratedAt time.Time      `json:"generated_at"`
	IsPublished bool           `json:"is_published"`
	Version     int            `json:"version"`
	Status      ArtifactStatus `json:"status"`
}

// NewArtifact creates a version-1 published artifact. Fresh generations are
// immediately visible.
func NewArtifact(contentType ContentType, title, language string, body ArtifactBody) Artifact {
	return Artifact{
		ID:          uuid.New(),
		ContentType: contentType,
		Title:       title,
		Body:        body,
		Language:    language,
		GeneratedAt: time.Now(),
		IsPublished: true,
		Version:     1,
		Status:      ArtifactStatusPublished,
	}
}

// EffectiveVersion treats a missing version as 1 (legacy rows predate the
// version field)
func (a Artifact) EffectiveVersion() int {
	if a.Version < 1 {
		return 1
	}
	return a.Version
}

// sameKey reports whether two artifacts belong to the same
// (content-type, language) combination
func (a Artifact) sameKey(other Artifact) bool {
	return a.ContentType == other.ContentType && a.Language == other.Language
}

// LatestVisible computes the current artifact per (content-type, language)
// key: for every key present among published artifacts the single highest
// version wins; a version tie goes to the later GeneratedAt. Draft and
// deprecated artifacts are excluded. The result preserves the order in
// which each key first appears in the input, so repeated calls over an
// unchanged collection yield identical results.
func LatestVisible(artifacts []Artifact, language string, contentType ContentType) []Artifact {
	type key struct {
		ct   ContentType
		lang string
	}

	best := make(map[key]Artifact)
	var order []key

	for _, a := range artifacts {
		if a.Status != ArtifactStatusPublished {
			continue
		}
		if language != "" && a.Language != language {
			continue
		}
		if contentType != "" && a.ContentType != contentType {
			continue
		}

		k := key{ct: a.ContentType, lang: a.Language}
		cur, seen := best[k]
		if !seen {
			best[k] = a
			order = append(order, k)
			continue
		}
		if a.EffectiveVersion() > cur.EffectiveVersion() ||
			(a.EffectiveVersion() == cur.EffectiveVersion() && a.GeneratedAt.After(cur.GeneratedAt)) {
			best[k] = a
		}
	}

	result := make([]Artifact, 0, len(order))
	for _, k := range order {
		result = append(result, best[k])
	}
	return result
}

// CountVisible is the number of distinct (content-type, language) keys among
// published artifacts; always equals len(LatestVisible) with no filters.
func CountVisible(artifacts []Artifact) int {
	return len(LatestVisible(artifacts, "", ""))
}
