package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personachat/internal/domain"
)

func newTestClient(t *testing.T, baseURL string, dimension int) *Client {
	t.Helper()
	t.Setenv("TEST_OPENAI_KEY", "sk-test")
	c, err := NewClient(Config{
		APIKeyEnv:          "TEST_OPENAI_KEY",
		BaseURL:            baseURL,
		EmbeddingModel:     "text-embedding-3-small",
		ChatModel:          "gpt-4o-mini",
		EmbeddingDimension: dimension,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestClient_Embed(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotModel, _ = req["model"].(string)
		_, _ = w.Write([]byte(`{"object":"list","data":[{"object":"embedding","index":0,"embedding":[0.1,0.2,0.3]}],"model":"text-embedding-3-small"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	vec, err := c.Embed(context.Background(), "qual o seu papel?")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(vec) != 3 {
		t.Errorf("expected 3-dimensional vector, got %d", len(vec))
	}
	if gotModel != "text-embedding-3-small" {
		t.Errorf("wrong model requested: %q", gotModel)
	}
}

func TestClient_EmbedRejectsWrongDimension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"object":"list","data":[{"object":"embedding","index":0,"embedding":[0.1,0.2]}],"model":"m"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	if _, err := c.Embed(context.Background(), "texto"); err == nil {
		t.Error("expected error for mismatched embedding dimension")
	}
}

func TestClient_EmbedProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	if _, err := c.Embed(context.Background(), "texto"); err == nil {
		t.Error("expected provider error to surface")
	}
}

func TestClient_Complete(t *testing.T) {
	var gotReq struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float32 `json:"temperature"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"É, a gente trabalha pelo cooperado."}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	msgs := []domain.Message{
		{Role: domain.RoleSystem, Content: "persona"},
		{Role: domain.RoleUser, Content: "pergunta"},
	}
	got, err := c.Complete(context.Background(), msgs, 0.3)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "É, a gente trabalha pelo cooperado." {
		t.Errorf("unexpected content %q", got)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("wrong model %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("roles not mapped: %+v", gotReq.Messages)
	}
	if gotReq.Temperature != 0.3 {
		t.Errorf("temperature %v, want 0.3", gotReq.Temperature)
	}
}

func TestClient_CompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	if _, err := c.Complete(context.Background(), []domain.Message{{Role: domain.RoleUser, Content: "x"}}, 0.3); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv("TEST_OPENAI_KEY", "")
	if _, err := NewClient(Config{APIKeyEnv: "TEST_OPENAI_KEY"}); err == nil {
		t.Error("expected error for missing API key")
	}
}
