package llm

import (
	"context"
	"log/slog"
	"time"
)

// AuditRecord captures one LLM request for the audit log.
type AuditRecord struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
}

// AuditRecorder persists audit records. Implemented by the audit package.
type AuditRecorder interface {
	RecordLLMRequest(ctx context.Context, rec AuditRecord) error
}

// AuditProvider is a decorator that records every LLM request.
type AuditProvider struct {
	inner    Provider
	recorder AuditRecorder
	log      *slog.Logger
}

// WithAudit wraps a Provider with audit logging.
func WithAudit(p Provider, recorder AuditRecorder, log *slog.Logger) Provider {
	if log == nil {
		log = slog.Default()
	}
	return &AuditProvider{inner: p, recorder: recorder, log: log}
}

func (a *AuditProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := a.inner.Generate(ctx, req)

	rec := AuditRecord{
		Provider:  a.inner.ModelID(),
		Model:     a.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Record the event but don't fail the request if recording fails.
	if recErr := a.recorder.RecordLLMRequest(ctx, rec); recErr != nil {
		a.log.Warn("failed to record LLM request audit event", "error", recErr)
	}

	return resp, err
}

func (a *AuditProvider) ModelID() string {
	return a.inner.ModelID()
}
