package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	usecaseerrors "github.com/content-studio-team/content-studio/internal/usecase/errors"
)

// Parser converts raw model output into typed artifact bodies. Free-text
// kinds pass through trimmed; structured kinds are extracted from whatever
// markdown wrapping the model added and validated. A parse failure is
// returned as an error, never a panic, so the orchestrator can surface it
// as a generation failure without touching the program.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseBody turns raw model output into the body for the given content type
func (p *Parser) ParseBody(contentType entities.ContentType, raw string) (entities.ArtifactBody, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return entities.ArtifactBody{}, usecaseerrors.ErrEmptyModelOutput
	}

	switch contentType {
	case entities.ContentTypeSummary, entities.ContentTypeShortLecture, entities.ContentTypeAudioTrack:
		return entities.ArtifactBody{Text: trimmed}, nil
	case entities.ContentTypeQuiz:
		return p.parseQuiz(trimmed)
	case entities.ContentTypeFlashcard:
		return p.parseFlashcards(trimmed)
	case entities.ContentTypeCaseStudy:
		return p.parseCaseStudy(trimmed)
	case entities.ContentTypeVideoScript:
		return p.parseVideoScript(trimmed)
	}
	return entities.ArtifactBody{}, fmt.Errorf("%w: unknown content type %q", usecaseerrors.ErrUnparseableOutput, contentType)
}

func (p *Parser) parseQuiz(raw string) (entities.ArtifactBody, error) {
	var questions []entities.QuizQuestion
	if err := json.Unmarshal([]byte(extractJSON(raw)), &questions); err != nil {
		return entities.ArtifactBody{}, fmt.Errorf("%w: quiz: %v", usecaseerrors.ErrUnparseableOutput, err)
	}
	if len(questions) == 0 {
		return entities.ArtifactBody{}, fmt.Errorf("%w: quiz has no questions", usecaseerrors.ErrUnparseableOutput)
	}
	for i, q := range questions {
		if q.Question == "" {
			return entities.ArtifactBody{}, fmt.Errorf("%w: question %d has empty text", usecaseerrors.ErrUnparseableOutput, i)
		}
		if len(q.Options) < 2 {
			return entities.ArtifactBody{}, fmt.Errorf("%w: question %d has fewer than 2 options", usecaseerrors.ErrUnparseableOutput, i)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return entities.ArtifactBody{}, fmt.Errorf("%w: question %d correct_index out of range", usecaseerrors.ErrUnparseableOutput, i)
		}
	}
	return entities.ArtifactBody{Questions: questions}, nil
}

func (p *Parser) parseFlashcards(raw string) (entities.ArtifactBody, error) {
	var cards []entities.Flashcard
	if err := json.Unmarshal([]byte(extractJSON(raw)), &cards); err != nil {
		return entities.ArtifactBody{}, fmt.Errorf("%w: flashcards: %v", usecaseerrors.ErrUnparseableOutput, err)
	}
	if len(cards) == 0 {
		return entities.ArtifactBody{}, fmt.Errorf("%w: no flashcards", usecaseerrors.ErrUnparseableOutput)
	}
	for i, c := range cards {
		if c.Front == "" || c.Back == "" {
			return entities.ArtifactBody{}, fmt.Errorf("%w: flashcard %d has an empty side", usecaseerrors.ErrUnparseableOutput, i)
		}
	}
	return entities.ArtifactBody{Cards: cards}, nil
}

func (p *Parser) parseCaseStudy(raw string) (entities.ArtifactBody, error) {
	var cs entities.CaseStudy
	if err := json.Unmarshal([]byte(extractJSON(raw)), &cs); err != nil {
		return entities.ArtifactBody{}, fmt.Errorf("%w: case study: %v", usecaseerrors.ErrUnparseableOutput, err)
	}
	if cs.Scenario == "" {
		return entities.ArtifactBody{}, fmt.Errorf("%w: case study has no scenario", usecaseerrors.ErrUnparseableOutput)
	}
	if cs.Questions == nil {
		cs.Questions = make([]string, 0)
	}
	return entities.ArtifactBody{CaseStudy: &cs}, nil
}

func (p *Parser) parseVideoScript(raw string) (entities.ArtifactBody, error) {
	var vs entities.VideoScript
	if err := json.Unmarshal([]byte(extractJSON(raw)), &vs); err != nil {
		return entities.ArtifactBody{}, fmt.Errorf("%w: video script: %v", usecaseerrors.ErrUnparseableOutput, err)
	}
	if len(vs.Scenes) == 0 {
		return entities.ArtifactBody{}, fmt.Errorf("%w: video script has no scenes", usecaseerrors.ErrUnparseableOutput)
	}
	return entities.ArtifactBody{Script: &vs}, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	content = strings.TrimSpace(content)

	// Models sometimes add prose around the payload; cut to the outermost
	// bracket pair when present.
	start := strings.IndexAny(content, "[{")
	if start > 0 {
		end := strings.LastIndexAny(content, "]}")
		if end > start {
			content = content[start : end+1]
		}
	}

	return strings.TrimSpace(content)
}
