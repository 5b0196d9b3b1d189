package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/content-studio-team/content-studio/pkg/config"
)

func newTestClient(baseURL string) *GroqClient {
	return NewGroqClient(&config.GroqConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
	})
}

func TestGenerateArtifact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("unexpected model: %q", req.Model)
		}

		fmt.Fprint(w, `{"choices":[{"message":{"content":"A short summary."}}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.GenerateArtifact(context.Background(), "summary", "source text", "en")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if got != "A short summary." {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestGenerateArtifactQuotaExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GenerateArtifact(context.Background(), "summary", "source text", "en")
	if err == nil || !strings.Contains(err.Error(), "quota") {
		t.Fatalf("expected quota error, got %v", err)
	}
}

func TestGenerateArtifactServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GenerateArtifact(context.Background(), "summary", "source text", "en")
	if err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestGenerateArtifactEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GenerateArtifact(context.Background(), "summary", "source text", "en")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("expected empty response error, got %v", err)
	}
}

func TestGenerateArtifactUnknownContentType(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")
	if _, err := client.GenerateArtifact(context.Background(), "poem", "source", "en"); err == nil {
		t.Fatalf("expected prompt build error for unknown content type")
	}
}
