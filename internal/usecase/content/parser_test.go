package content

import (
	"errors"
	"testing"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	usecaseerrors "github.com/content-studio-team/content-studio/internal/usecase/errors"
)

func TestParseBodyFreeText(t *testing.T) {
	p := NewParser()

	body, err := p.ParseBody(entities.ContentTypeSummary, "  A concise summary.\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if body.Text != "A concise summary." {
		t.Fatalf("unexpected text %q", body.Text)
	}
}

func TestParseBodyEmptyOutput(t *testing.T) {
	p := NewParser()

	if _, err := p.ParseBody(entities.ContentTypeSummary, "   \n "); !errors.Is(err, usecaseerrors.ErrEmptyModelOutput) {
		t.Fatalf("expected ErrEmptyModelOutput, got %v", err)
	}
}

func TestParseBodyQuizWithMarkdownFences(t *testing.T) {
	p := NewParser()
	raw := "```json\n[{\"question\":\"What is Raft?\",\"options\":[\"A protocol\",\"A river\"],\"correct_index\":0}]\n```"

	body, err := p.ParseBody(entities.ContentTypeQuiz, raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(body.Questions) != 1 || body.Questions[0].CorrectIndex != 0 {
		t.Fatalf("unexpected quiz body %+v", body.Questions)
	}
}

func TestParseBodyQuizSurroundedByProse(t *testing.T) {
	p := NewParser()
	raw := "Here is your quiz:\n[{\"question\":\"q\",\"options\":[\"a\",\"b\"],\"correct_index\":1}]\nEnjoy!"

	body, err := p.ParseBody(entities.ContentTypeQuiz, raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(body.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(body.Questions))
	}
}

func TestParseBodyQuizValidation(t *testing.T) {
	p := NewParser()

	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "the model rambled instead of emitting JSON"},
		{"empty list", "[]"},
		{"one option", `[{"question":"q","options":["only"],"correct_index":0}]`},
		{"index out of range", `[{"question":"q","options":["a","b"],"correct_index":5}]`},
		{"empty question", `[{"question":"","options":["a","b"],"correct_index":0}]`},
	}
	for _, tc := range cases {
		if _, err := p.ParseBody(entities.ContentTypeQuiz, tc.raw); !errors.Is(err, usecaseerrors.ErrUnparseableOutput) {
			t.Fatalf("%s: expected ErrUnparseableOutput, got %v", tc.name, err)
		}
	}
}

func TestParseBodyFlashcards(t *testing.T) {
	p := NewParser()

	body, err := p.ParseBody(entities.ContentTypeFlashcard, `[{"front":"CAP","back":"Consistency, availability, partition tolerance"}]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(body.Cards) != 1 || body.Cards[0].Front != "CAP" {
		t.Fatalf("unexpected cards %+v", body.Cards)
	}

	if _, err := p.ParseBody(entities.ContentTypeFlashcard, `[{"front":"x","back":""}]`); !errors.Is(err, usecaseerrors.ErrUnparseableOutput) {
		t.Fatalf("expected ErrUnparseableOutput for empty side, got %v", err)
	}
}

func TestParseBodyCaseStudy(t *testing.T) {
	p := NewParser()

	body, err := p.ParseBody(entities.ContentTypeCaseStudy, `{"title":"Outage","scenario":"A region fails","questions":["What now?"]}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if body.CaseStudy == nil || body.CaseStudy.Scenario != "A region fails" {
		t.Fatalf("unexpected case study %+v", body.CaseStudy)
	}

	if _, err := p.ParseBody(entities.ContentTypeCaseStudy, `{"title":"no scenario"}`); !errors.Is(err, usecaseerrors.ErrUnparseableOutput) {
		t.Fatalf("expected ErrUnparseableOutput for missing scenario, got %v", err)
	}
}

func TestParseBodyVideoScript(t *testing.T) {
	p := NewParser()

	body, err := p.ParseBody(entities.ContentTypeVideoScript, `{"hook":"Ever wondered?","scenes":[{"heading":"Intro","narration":"Welcome"}],"call_to_action":"Subscribe"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if body.Script == nil || len(body.Script.Scenes) != 1 {
		t.Fatalf("unexpected script %+v", body.Script)
	}

	if _, err := p.ParseBody(entities.ContentTypeVideoScript, `{"hook":"x","scenes":[]}`); !errors.Is(err, usecaseerrors.ErrUnparseableOutput) {
		t.Fatalf("expected ErrUnparseableOutput for empty scenes, got %v", err)
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n[1,2]\n```", "[1,2]"},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"plain [1,2] trailing", "[1,2]"},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tc := range cases {
		if got := extractJSON(tc.in); got != tc.want {
			t.Fatalf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
