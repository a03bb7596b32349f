package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("embedding model default wrong: %q", cfg.OpenAI.EmbeddingModel)
	}
	if cfg.OpenAI.ChatModel != "gpt-4o-mini" {
		t.Errorf("chat model default wrong: %q", cfg.OpenAI.ChatModel)
	}
	if cfg.OpenAI.EmbeddingDimension != 1536 {
		t.Errorf("dimension default wrong: %d", cfg.OpenAI.EmbeddingDimension)
	}
	if cfg.Retrieval.Limit != 3 {
		t.Errorf("retrieval limit default wrong: %d", cfg.Retrieval.Limit)
	}
	if cfg.Astra.TimeoutSecs != 10 {
		t.Errorf("astra timeout default wrong: %d", cfg.Astra.TimeoutSecs)
	}
	if cfg.Persona.Mode != ModeContextual || cfg.Persona.Passes != 3 {
		t.Errorf("persona defaults wrong: %+v", cfg.Persona)
	}
	if cfg.Persona.Temperature != 0.3 || cfg.Persona.HistoryTemperature != 0.7 {
		t.Errorf("temperature defaults wrong: %+v", cfg.Persona)
	}
}

func TestLoad_AppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
astra:
  collection: presidente
persona:
  mode: conversational
  passes: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Astra.Collection != "presidente" {
		t.Errorf("explicit collection lost: %q", cfg.Astra.Collection)
	}
	if cfg.Astra.Namespace != "default_keyspace" {
		t.Errorf("namespace default not applied: %q", cfg.Astra.Namespace)
	}
	if cfg.Persona.Mode != ModeConversational || cfg.Persona.Passes != 1 {
		t.Errorf("persona overrides lost: %+v", cfg.Persona)
	}
	if cfg.OpenAI.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("api key env default not applied: %q", cfg.OpenAI.APIKeyEnv)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad mode", "persona:\n  mode: hybrid\n"},
		{"too many passes", "persona:\n  passes: 5\n"},
		{"negative limit", "retrieval:\n  limit: -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Astra.Collection = "cooperativa"
	cfg.Retrieval.Limit = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Astra.Collection != "cooperativa" || loaded.Retrieval.Limit != 5 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
