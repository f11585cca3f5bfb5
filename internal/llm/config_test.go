package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"APPRISE_LLM_PROVIDER",
		"APPRISE_GEMINI_API_KEY", "APPRISE_GEMINI_MODEL",
		"APPRISE_OPENAI_API_KEY", "APPRISE_OPENAI_MODEL", "APPRISE_OPENAI_BASE_URL",
		"APPRISE_ANTHROPIC_API_KEY", "APPRISE_ANTHROPIC_MODEL",
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("APPRISE_LLM_PROVIDER", "openai")
	t.Setenv("APPRISE_OPENAI_API_KEY", "sk-test")
	t.Setenv("APPRISE_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config not read from env: %+v", cfg.OpenAI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("gemini without API key should fail validation")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider needs no key: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider should fail validation")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("no keys set: discovery should fail")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic, got %+v ok=%v", cfg, ok)
	}

	// Gemini outranks the others.
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("expected gemini to win, got %+v", cfg)
	}
}
