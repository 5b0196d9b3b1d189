package content

import "time"

// QuizQuestionResponse represents one quiz question
type QuizQuestionResponse struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// FlashcardResponse represents one flashcard
type FlashcardResponse struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// CaseStudyResponse represents a case study body
type CaseStudyResponse struct {
	Title     string   `json:"title,omitempty"`
	Scenario  string   `json:"scenario"`
	Questions []string `json:"questions"`
	Takeaways []string `json:"takeaways,omitempty"`
}

// SceneResponse represents one scene of a video script
type SceneResponse struct {
	Heading   string `json:"heading"`
	Narration string `json:"narration"`
	Visual    string `json:"visual,omitempty"`
}

// VideoScriptResponse represents a video script body
type VideoScriptResponse struct {
	Hook         string          `json:"hook,omitempty"`
	Scenes       []SceneResponse `json:"scenes"`
	CallToAction string          `json:"call_to_action,omitempty"`
}

// ArtifactBodyResponse carries the typed payload; exactly one field is set
// depending on the content type
type ArtifactBodyResponse struct {
	Text      string                 `json:"text,omitempty"`
	Questions []QuizQuestionResponse `json:"questions,omitempty"`
	Cards     []FlashcardResponse    `json:"cards,omitempty"`
	CaseStudy *CaseStudyResponse     `json:"case_study,omitempty"`
	Script    *VideoScriptResponse   `json:"script,omitempty"`
}

// ArtifactResponse represents a generated artifact
type ArtifactResponse struct {
	ID          string               `json:"id"`
	ContentType string               `json:"content_type"`
	Title       string               `json:"title"`
	Language    string               `json:"language"`
	Version     int                  `json:"version"`
	Status      string               `json:"status"`
	GeneratedAt time.Time            `json:"generated_at"`
	Body        ArtifactBodyResponse `json:"body"`
}

// GenerateResponse represents the result of a generation batch
type GenerateResponse struct {
	Artifacts []ArtifactResponse `json:"artifacts"`
	Requested int                `json:"requested"`
	Generated int                `json:"generated"`
}
