package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/apprise/internal/llm"
)

func TestGenerateReturnsProviderText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "### Overall Performance Analysis\nSolid work."})
	svc := NewService(mock, DefaultConfig())

	text, err := svc.Generate(context.Background(), Request{Role: "Engineer", Score: 8, TotalQuestions: 10, Percentage: 80})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(text, "Solid work.") {
		t.Errorf("unexpected text %q", text)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	call := mock.Calls[0]
	if call.System == "" {
		t.Error("system prompt should be set")
	}
	if !strings.Contains(call.Prompt, "Role assessed: Engineer") {
		t.Errorf("prompt missing role summary: %q", call.Prompt)
	}
	if call.MaxTokens != DefaultConfig().MaxTokens {
		t.Errorf("MaxTokens %d, want %d", call.MaxTokens, DefaultConfig().MaxTokens)
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	svc := NewService(mock, DefaultConfig())

	req := Request{Role: "Engineer", Score: 3, TotalQuestions: 10, Percentage: 30}
	text, err := svc.Generate(context.Background(), req)

	var unavailable *ErrFeedbackUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrFeedbackUnavailable, got %v", err)
	}
	if text != Fallback(req) {
		t.Errorf("expected fallback text, got %q", text)
	}
	if !strings.Contains(text, "3 out of 10") {
		t.Errorf("fallback should carry the score: %q", text)
	}
}

func TestFallbackDeterministic(t *testing.T) {
	req := Request{Score: 7, TotalQuestions: 10, Percentage: 70}
	if Fallback(req) != Fallback(req) {
		t.Error("fallback must be deterministic")
	}
	if !strings.Contains(Fallback(req), "70.0%") {
		t.Errorf("fallback should include the percentage: %q", Fallback(req))
	}
}
