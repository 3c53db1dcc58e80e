package factory

import (
	"ai-bankassist-be/pkg/llm"
	"ai-bankassist-be/pkg/llm/minimax"
	"ai-bankassist-be/pkg/llm/ollama"
	"ai-bankassist-be/pkg/llm/openai"
	"fmt"
)

type ProviderConfig struct {
	Provider      string // "openai", "minimax", "ollama"
	Model         string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	MiniMaxAPIKey string
	MiniMaxGroup  string
	OllamaBaseURL string
}

func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model), nil
	case "minimax":
		if cfg.MiniMaxAPIKey == "" {
			return nil, fmt.Errorf("minimax provider requires an API key")
		}
		return minimax.NewMiniMaxProvider(cfg.MiniMaxAPIKey, cfg.MiniMaxGroup, cfg.Model), nil
	case "ollama":
		return ollama.NewOllamaProvider(cfg.OllamaBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
