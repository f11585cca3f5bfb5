package embed

import (
	"context"
	"fmt"
	"os"
)

// Config holds embedding provider configuration.
type Config struct {
	// Provider selects which embedder to use.
	// Values: "gemini", "openai", "mock"
	Provider string

	Gemini GeminiConfig
	OpenAI OpenAIConfig
}

// GeminiConfig holds Gemini embedding configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-embedding-001"
}

// OpenAIConfig holds OpenAI embedding configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "text-embedding-3-small"
	BaseURL string // Optional override for compatible APIs.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini:   GeminiConfig{Model: "gemini-embedding-001"},
		OpenAI:   OpenAIConfig{Model: "text-embedding-3-small"},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Standard provider key env vars
// (GEMINI_API_KEY, OPENAI_API_KEY) are honored when the APPRISE-prefixed
// ones are not set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("APPRISE_EMBED_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := firstEnv("APPRISE_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("APPRISE_EMBED_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := firstEnv("APPRISE_OPENAI_API_KEY", "OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("APPRISE_EMBED_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("APPRISE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	// No key for the selected provider: fall back to the deterministic
	// local embedder so the index still works offline.
	switch cfg.Provider {
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			cfg.Provider = "mock"
		}
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			cfg.Provider = "mock"
		}
	}

	return cfg
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// New creates an Embedder from configuration.
func New(ctx context.Context, cfg Config) (Embedder, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiEmbedder(ctx, cfg.Gemini)
	case "openai":
		return NewOpenAIEmbedder(cfg.OpenAI)
	case "mock":
		return NewMockEmbedder(), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
}
