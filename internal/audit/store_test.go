package audit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/apprise/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	records := []llm.AuditRecord{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "feedback", LatencyMs: 120, Success: true, InputTokens: 400, OutputTokens: 800},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "feedback", LatencyMs: 90, Success: false, ErrorMessage: "rate limited"},
	}
	for _, rec := range records {
		if err := store.RecordLLMRequest(ctx, rec); err != nil {
			t.Fatalf("RecordLLMRequest failed: %v", err)
		}
	}

	events, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Success || events[0].ErrorMessage != "rate limited" {
		t.Errorf("newest event wrong: %+v", events[0])
	}
	if !events[1].Success || events[1].InputTokens != 400 || events[1].OutputTokens != 800 {
		t.Errorf("oldest event wrong: %+v", events[1])
	}
	if events[1].Purpose != "feedback" || events[1].Provider != "gemini" {
		t.Errorf("labels wrong: %+v", events[1])
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := llm.AuditRecord{Provider: "mock", Model: "mock", Purpose: "feedback", Success: true}
		if err := store.RecordLLMRequest(ctx, rec); err != nil {
			t.Fatalf("RecordLLMRequest failed: %v", err)
		}
	}

	events, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("expected limit of 3, got %d", len(events))
	}

	// Non-positive limit falls back to the default.
	events, err = store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 5 {
		t.Errorf("expected all 5 events with default limit, got %d", len(events))
	}
}

func TestRecentEmpty(t *testing.T) {
	store := openTestStore(t)

	events, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
