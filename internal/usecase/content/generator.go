package content

import (
	"context"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	pkgai "github.com/content-studio-team/content-studio/pkg/ai"
)

// ModelGenerator adapts the Groq client to the Generator interface
type ModelGenerator struct {
	client *pkgai.GroqClient
}

// NewModelGenerator wraps a Groq client
func NewModelGenerator(client *pkgai.GroqClient) *ModelGenerator {
	return &ModelGenerator{client: client}
}

// GenerateArtifact produces raw model output for one artifact
func (m *ModelGenerator) GenerateArtifact(ctx context.Context, contentType entities.ContentType, sourceText string, language string) (string, error) {
	return m.client.GenerateArtifact(ctx, string(contentType), sourceText, language)
}
