package feedback

import (
	"context"
	"fmt"

	"github.com/abhisek/apprise/internal/llm"
)

// ErrFeedbackUnavailable indicates narrative feedback could not be
// generated. The score is still valid and deliverable; callers surface
// the fallback text alongside this condition.
type ErrFeedbackUnavailable struct {
	Err error
}

func (e *ErrFeedbackUnavailable) Error() string {
	return fmt.Sprintf("feedback unavailable: %v", e.Err)
}

func (e *ErrFeedbackUnavailable) Unwrap() error { return e.Err }

// Config holds feedback generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default feedback generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service generates narrative feedback from a feedback Request.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a feedback Service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces narrative feedback for the given request. On provider
// failure it returns a deterministic fallback summary together with
// ErrFeedbackUnavailable, so the caller still has usable text either way.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	ctx = llm.WithPurpose(ctx, "feedback")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(req),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return Fallback(req), &ErrFeedbackUnavailable{Err: err}
	}

	return resp.Text, nil
}

// Fallback returns the deterministic summary used when narrative feedback
// cannot be generated.
func Fallback(req Request) string {
	return fmt.Sprintf(
		"Assessment completed with a score of %d out of %d questions correct (%.1f%%). Detailed feedback is temporarily unavailable.",
		req.Score, req.TotalQuestions, req.Percentage)
}
