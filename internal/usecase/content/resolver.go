package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	"github.com/content-studio-team/content-studio/internal/infrastructure/cache"
)

// ObjectTextGetter reads an uploaded object back as text
type ObjectTextGetter interface {
	GetObjectText(ctx context.Context, objectName string) (string, error)
}

// SourceResolver turns an asset into the source text handed to the
// generator. Resolution is best effort: a video whose metadata lookup fails
// or a document that cannot be read falls back to a placeholder built from
// the asset title, so generation still proceeds.
type SourceResolver struct {
	httpClient     *http.Client
	objects        ObjectTextGetter
	store          cache.Store
	oembedEndpoint string
	cacheTTL       time.Duration
	logger         *zap.Logger
}

// oembedResponse is the subset of the oEmbed payload we use
type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// NewSourceResolver creates a resolver. objects and store may be nil; the
// corresponding lookups are then skipped and fall back to placeholders.
func NewSourceResolver(objects ObjectTextGetter, store cache.Store, oembedEndpoint string, cacheTTL time.Duration, logger *zap.Logger) *SourceResolver {
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &SourceResolver{
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		objects:        objects,
		store:          store,
		oembedEndpoint: oembedEndpoint,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

// Resolve returns the source text for an asset. It never returns an error;
// the worst case is a short placeholder describing the asset.
func (r *SourceResolver) Resolve(ctx context.Context, asset *entities.Asset) string {
	switch asset.Type {
	case entities.AssetTypeText:
		if text := strings.TrimSpace(asset.Content); text != "" {
			return text
		}
	case entities.AssetTypeVideo:
		if text := r.resolveVideo(ctx, asset); text != "" {
			return text
		}
	case entities.AssetTypeDocument:
		if text := r.resolveDocument(ctx, asset); text != "" {
			return text
		}
	}
	return r.placeholder(asset)
}

func (r *SourceResolver) resolveVideo(ctx context.Context, asset *entities.Asset) string {
	if asset.URL == "" {
		return ""
	}

	cacheKey := "source:video:" + asset.URL
	if r.store != nil {
		if cached, ok, err := r.store.Get(ctx, cacheKey); err == nil && ok {
			return cached
		}
	}

	meta, err := r.fetchOEmbed(ctx, asset.URL)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("oembed lookup failed, using placeholder",
				zap.String("url", asset.URL),
				zap.Error(err))
		}
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Video: " + meta.Title)
	if meta.AuthorName != "" {
		sb.WriteString("\nAuthor: " + meta.AuthorName)
	}
	sb.WriteString("\nURL: " + asset.URL)
	text := sb.String()

	if r.store != nil {
		if err := r.store.Set(ctx, cacheKey, text, r.cacheTTL); err != nil && r.logger != nil {
			r.logger.Warn("failed to cache resolved source", zap.Error(err))
		}
	}
	return text
}

// fetchOEmbed queries the oEmbed endpoint with bounded retries
func (r *SourceResolver) fetchOEmbed(ctx context.Context, videoURL string) (*oembedResponse, error) {
	endpoint := fmt.Sprintf("%s?url=%s&format=json", r.oembedEndpoint, url.QueryEscape(videoURL))

	var meta *oembedResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := r.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnauthorized {
			return backoff.Permanent(fmt.Errorf("oembed returned status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("oembed returned status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		var parsed oembedResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to parse oembed response: %w", err))
		}
		meta = &parsed
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, err
	}
	if meta == nil || meta.Title == "" {
		return nil, fmt.Errorf("oembed response missing title")
	}
	return meta, nil
}

func (r *SourceResolver) resolveDocument(ctx context.Context, asset *entities.Asset) string {
	if r.objects == nil || asset.URL == "" {
		return ""
	}

	text, err := r.objects.GetObjectText(ctx, asset.URL)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("failed to read document object, using placeholder",
				zap.String("object", asset.URL),
				zap.Error(err))
		}
		return ""
	}
	return strings.TrimSpace(text)
}

func (r *SourceResolver) placeholder(asset *entities.Asset) string {
	title := asset.Title
	if title == "" {
		title = "untitled asset"
	}
	return fmt.Sprintf("Content about %s (%s asset)", title, asset.Type)
}
