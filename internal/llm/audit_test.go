package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type recordingAuditor struct {
	records []AuditRecord
	fail    error
}

func (r *recordingAuditor) RecordLLMRequest(_ context.Context, rec AuditRecord) error {
	if r.fail != nil {
		return r.fail
	}
	r.records = append(r.records, rec)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuditRecordsSuccess(t *testing.T) {
	rec := &recordingAuditor{}
	p := WithAudit(NewMockProvider(MockResponse{Text: "hello"}), rec, discardLogger())

	ctx := WithPurpose(context.Background(), "feedback")
	if _, err := p.Generate(ctx, Request{Prompt: "hi"}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(rec.records))
	}
	got := rec.records[0]
	if !got.Success {
		t.Error("record should mark success")
	}
	if got.Purpose != "feedback" {
		t.Errorf("purpose %q, want feedback", got.Purpose)
	}
	if got.Model != "mock" {
		t.Errorf("model %q, want mock", got.Model)
	}
	if got.ErrorMessage != "" {
		t.Errorf("unexpected error message %q", got.ErrorMessage)
	}
}

func TestAuditRecordsFailure(t *testing.T) {
	rec := &recordingAuditor{}
	p := WithAudit(NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}), rec, discardLogger())

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(rec.records))
	}
	got := rec.records[0]
	if got.Success {
		t.Error("record should mark failure")
	}
	if got.ErrorMessage == "" {
		t.Error("error message should be recorded")
	}
}

func TestAuditRecorderFailureDoesNotFailRequest(t *testing.T) {
	rec := &recordingAuditor{fail: errors.New("disk full")}
	p := WithAudit(NewMockProvider(MockResponse{Text: "hello"}), rec, discardLogger())

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("request must not fail when audit recording fails: %v", err)
	}
	if resp.Text != "hello" {
		t.Errorf("unexpected text %q", resp.Text)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("expected unknown purpose, got %q", got)
	}
	ctx := WithPurpose(context.Background(), "feedback")
	if got := PurposeFrom(ctx); got != "feedback" {
		t.Errorf("expected feedback, got %q", got)
	}
}
