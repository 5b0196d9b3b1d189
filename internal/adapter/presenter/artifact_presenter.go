package presenter

import (
	contentDTO "github.com/content-studio-team/content-studio/internal/adapter/dto/content"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
)

// ToArtifactResponse converts an Artifact entity to ArtifactResponse DTO
func ToArtifactResponse(a *entities.Artifact) *contentDTO.ArtifactResponse {
	if a == nil {
		return nil
	}
	return &contentDTO.ArtifactResponse{
		ID:          a.ID.String(),
		ContentType: string(a.ContentType),
		Title:       a.Title,
		Language:    a.Language,
		Version:     a.EffectiveVersion(),
		Status:      string(a.Status),
		GeneratedAt: a.GeneratedAt,
		Body:        toBodyResponse(a.Body),
	}
}

// ToArtifactListResponse converts a slice of artifacts
func ToArtifactListResponse(artifacts []entities.Artifact) []contentDTO.ArtifactResponse {
	out := make([]contentDTO.ArtifactResponse, 0, len(artifacts))
	for i := range artifacts {
		out = append(out, *ToArtifactResponse(&artifacts[i]))
	}
	return out
}

// ToGenerateResponse wraps a generation batch result
func ToGenerateResponse(artifacts []entities.Artifact, requested int) *contentDTO.GenerateResponse {
	return &contentDTO.GenerateResponse{
		Artifacts: ToArtifactListResponse(artifacts),
		Requested: requested,
		Generated: len(artifacts),
	}
}

func toBodyResponse(b entities.ArtifactBody) contentDTO.ArtifactBodyResponse {
	out := contentDTO.ArtifactBodyResponse{Text: b.Text}

	if len(b.Questions) > 0 {
		out.Questions = make([]contentDTO.QuizQuestionResponse, 0, len(b.Questions))
		for _, q := range b.Questions {
			out.Questions = append(out.Questions, contentDTO.QuizQuestionResponse{
				Question:     q.Question,
				Options:      q.Options,
				CorrectIndex: q.CorrectIndex,
				Explanation:  q.Explanation,
			})
		}
	}

	if len(b.Cards) > 0 {
		out.Cards = make([]contentDTO.FlashcardResponse, 0, len(b.Cards))
		for _, c := range b.Cards {
			out.Cards = append(out.Cards, contentDTO.FlashcardResponse{Front: c.Front, Back: c.Back})
		}
	}

	if b.CaseStudy != nil {
		out.CaseStudy = &contentDTO.CaseStudyResponse{
			Title:     b.CaseStudy.Title,
			Scenario:  b.CaseStudy.Scenario,
			Questions: b.CaseStudy.Questions,
			Takeaways: b.CaseStudy.Takeaways,
		}
	}

	if b.Script != nil {
		scenes := make([]contentDTO.SceneResponse, 0, len(b.Script.Scenes))
		for _, s := range b.Script.Scenes {
			scenes = append(scenes, contentDTO.SceneResponse{
				Heading:   s.Heading,
				Narration: s.Narration,
				Visual:    s.Visual,
			})
		}
		out.Script = &contentDTO.VideoScriptResponse{
			Hook:         b.Script.Hook,
			Scenes:       scenes,
			CallToAction: b.Script.CallToAction,
		}
	}

	return out
}
