package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"personachat/internal/config"
	"personachat/internal/observability"
	"personachat/internal/openai"
	"personachat/internal/persona"
	"personachat/internal/service"
	"personachat/internal/session"
	"personachat/internal/tui"
	"personachat/internal/vectorstore/astra"
)

const personaName = "Luiz Lourenço"

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/personachat/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// stderr is shared with the TUI, logs go to a file instead
	if logFile, err := openLogFile(); err == nil {
		defer logFile.Close()
		observability.SetOutput(logFile)
	}

	llm, err := openai.NewClient(openai.Config{
		APIKeyEnv:          cfg.OpenAI.APIKeyEnv,
		EmbeddingModel:     cfg.OpenAI.EmbeddingModel,
		ChatModel:          cfg.OpenAI.ChatModel,
		EmbeddingDimension: cfg.OpenAI.EmbeddingDimension,
		Timeout:            time.Duration(cfg.OpenAI.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("openai client init failed: %v", err)
	}

	store, err := astra.NewClient(astra.Config{
		EndpointEnv: cfg.Astra.EndpointEnv,
		TokenEnv:    cfg.Astra.TokenEnv,
		Namespace:   cfg.Astra.Namespace,
		Timeout:     time.Duration(cfg.Astra.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("astra client init failed: %v", err)
	}

	chain := persona.NewChain(llm, persona.Config{
		Passes:             persona.DefaultPasses()[:cfg.Persona.Passes],
		Temperature:        cfg.Persona.Temperature,
		HistoryTemperature: cfg.Persona.HistoryTemperature,
	})

	assistant := service.NewAssistant(llm, store, chain, service.Config{
		Collection: cfg.Astra.Collection,
		Limit:      cfg.Retrieval.Limit,
		Mode:       cfg.Persona.Mode,
	})

	m := tui.New(assistant, session.New(), personaName)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".config", "personachat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "personachat.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
