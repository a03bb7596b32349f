package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Mode selects how a turn is generated.
const (
	// ModeContextual grounds every answer on retrieved vector-store context.
	ModeContextual = "contextual"
	// ModeConversational sends the full message history to a single
	// generation pass, with no retrieval step.
	ModeConversational = "conversational"
)

// OpenAIConfig holds configuration for the OpenAI embeddings and chat client.
type OpenAIConfig struct {
	APIKeyEnv          string `yaml:"api_key_env"`
	EmbeddingModel     string `yaml:"embedding_model"`
	ChatModel          string `yaml:"chat_model"`
	EmbeddingDimension int    `yaml:"embedding_dimension"`
	TimeoutSecs        int    `yaml:"timeout_secs"`
}

// AstraConfig contains connection details for an AstraDB vector collection.
// Endpoint and token are taken from the named environment variables so that
// secrets never live in the config file.
type AstraConfig struct {
	EndpointEnv string `yaml:"endpoint_env"`
	TokenEnv    string `yaml:"token_env"`
	Namespace   string `yaml:"namespace"`
	Collection  string `yaml:"collection"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// PersonaConfig configures the generation chain.
type PersonaConfig struct {
	Mode string `yaml:"mode"`
	// Passes is how many of the staged persona passes run per answer (1-3).
	Passes             int     `yaml:"passes"`
	Temperature        float32 `yaml:"temperature"`
	HistoryTemperature float32 `yaml:"history_temperature"`
}

// RetrievalConfig configures vector similarity search.
type RetrievalConfig struct {
	Limit int `yaml:"limit"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Astra     AstraConfig     `yaml:"astra"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Persona   PersonaConfig   `yaml:"persona"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/personachat/config.yaml.
// If neither exists, it writes defaults to ~/.config/personachat/config.yaml
// and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports configuration values no component could work with.
func (cfg *AppConfig) Validate() error {
	if cfg.Persona.Mode != ModeContextual && cfg.Persona.Mode != ModeConversational {
		return fmt.Errorf("unknown persona mode: %q", cfg.Persona.Mode)
	}
	if cfg.Persona.Passes < 1 || cfg.Persona.Passes > 3 {
		return fmt.Errorf("persona passes must be between 1 and 3, got %d", cfg.Persona.Passes)
	}
	if cfg.Retrieval.Limit < 1 {
		return fmt.Errorf("retrieval limit must be at least 1, got %d", cfg.Retrieval.Limit)
	}
	if cfg.OpenAI.EmbeddingDimension <= 0 {
		return fmt.Errorf("invalid embedding dimension: %d", cfg.OpenAI.EmbeddingDimension)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "personachat", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.OpenAI.APIKeyEnv == "" {
		cfg.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.OpenAI.EmbeddingModel == "" {
		cfg.OpenAI.EmbeddingModel = "text-embedding-3-small"
	}
	if cfg.OpenAI.ChatModel == "" {
		cfg.OpenAI.ChatModel = "gpt-4o-mini"
	}
	if cfg.OpenAI.EmbeddingDimension == 0 {
		cfg.OpenAI.EmbeddingDimension = 1536
	}
	if cfg.OpenAI.TimeoutSecs == 0 {
		cfg.OpenAI.TimeoutSecs = 30
	}
	if cfg.Astra.EndpointEnv == "" {
		cfg.Astra.EndpointEnv = "ASTRA_DB_API_ENDPOINT"
	}
	if cfg.Astra.TokenEnv == "" {
		cfg.Astra.TokenEnv = "ASTRA_DB_APPLICATION_TOKEN"
	}
	if cfg.Astra.Namespace == "" {
		cfg.Astra.Namespace = "default_keyspace"
	}
	if cfg.Astra.Collection == "" {
		cfg.Astra.Collection = "holamba"
	}
	if cfg.Astra.TimeoutSecs == 0 {
		cfg.Astra.TimeoutSecs = 10
	}
	if cfg.Retrieval.Limit == 0 {
		cfg.Retrieval.Limit = 3
	}
	if cfg.Persona.Mode == "" {
		cfg.Persona.Mode = ModeContextual
	}
	if cfg.Persona.Passes == 0 {
		cfg.Persona.Passes = 3
	}
	if cfg.Persona.Temperature == 0 {
		cfg.Persona.Temperature = 0.3
	}
	if cfg.Persona.HistoryTemperature == 0 {
		cfg.Persona.HistoryTemperature = 0.7
	}
}
