package providers

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sozercan/textlens/internal/config"
	"github.com/sozercan/textlens/internal/llm"
)

const (
	NameSimple = "simple"
	NameOpenAI = "openai"
	NameOllama = "ollama"
)

// New builds the provider named in cfg.Analysis.Provider. Unknown names fall
// back to the simple provider.
func New(cfg *config.Config) (Provider, error) {
	switch strings.ToLower(cfg.Analysis.Provider) {
	case NameOpenAI:
		client, err := llm.NewOpenAI(&cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return NewLLM(NameOpenAI, client), nil

	case NameOllama:
		client, err := llm.NewOllama(&cfg.Ollama)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return NewLLM(NameOllama, client), nil

	case NameSimple, "":
		return NewSimple(), nil

	default:
		slog.Warn("Unknown provider, using simple", "provider", cfg.Analysis.Provider)
		return NewSimple(), nil
	}
}
