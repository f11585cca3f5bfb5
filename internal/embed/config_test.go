package embed

import (
	"context"
	"testing"
)

func clearEmbedEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"APPRISE_EMBED_PROVIDER",
		"APPRISE_EMBED_GEMINI_MODEL", "APPRISE_EMBED_OPENAI_MODEL",
		"APPRISE_GEMINI_API_KEY", "APPRISE_OPENAI_API_KEY", "APPRISE_OPENAI_BASE_URL",
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func TestConfigFromEnvFallsBackToMock(t *testing.T) {
	clearEmbedEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "mock" {
		t.Errorf("without keys the provider should be mock, got %q", cfg.Provider)
	}
}

func TestConfigFromEnvGeminiKey(t *testing.T) {
	clearEmbedEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("expected gemini with key, got %+v", cfg)
	}
	if cfg.Gemini.Model != "gemini-embedding-001" {
		t.Errorf("default model wrong: %q", cfg.Gemini.Model)
	}
}

func TestConfigFromEnvExplicitProvider(t *testing.T) {
	clearEmbedEnv(t)
	t.Setenv("APPRISE_EMBED_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("APPRISE_EMBED_OPENAI_MODEL", "text-embedding-3-large")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("expected openai with key, got %+v", cfg)
	}
	if cfg.OpenAI.Model != "text-embedding-3-large" {
		t.Errorf("model override not applied: %q", cfg.OpenAI.Model)
	}
}

func TestNewUnknownProvider(t *testing.T) {
	if _, err := New(context.Background(), Config{Provider: "quantum"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewMock(t *testing.T) {
	e, err := New(context.Background(), Config{Provider: "mock"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if e.ModelID() != "mock" {
		t.Errorf("unexpected model id %q", e.ModelID())
	}
}
