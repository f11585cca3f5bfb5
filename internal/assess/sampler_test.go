package assess

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/abhisek/apprise/internal/bank"
)

func storeWithPool(t *testing.T, role string, size int) *bank.Store {
	t.Helper()
	doc := fmt.Sprintf("{%q: [", role)
	for i := 0; i < size; i++ {
		if i > 0 {
			doc += ","
		}
		doc += fmt.Sprintf(`{"question": "Question %d?", "options": ["a", "b"], "answer": "a"}`, i)
	}
	doc += "]}"

	store := bank.NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := store.Load([]byte(doc), bank.FormatJSON); err != nil {
		t.Fatalf("load bank: %v", err)
	}
	return store
}

func TestSampleCount(t *testing.T) {
	store := storeWithPool(t, "Engineer", 20)
	sampler := NewSeededSampler(store, 1)

	session, err := sampler.Sample("Engineer", 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if session.Total() != 10 {
		t.Errorf("expected 10 questions, got %d", session.Total())
	}
	if session.Role != "Engineer" {
		t.Errorf("unexpected role %q", session.Role)
	}
	if session.ID == "" {
		t.Error("session ID should be set")
	}
}

func TestSampleClampsToPool(t *testing.T) {
	store := storeWithPool(t, "Engineer", 3)
	sampler := NewSeededSampler(store, 1)

	// Asking for more than the pool returns the whole pool, not an error.
	session, err := sampler.Sample("Engineer", 50)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if session.Total() != 3 {
		t.Errorf("expected whole pool (3), got %d", session.Total())
	}
	if session.Requested != 50 {
		t.Errorf("Requested should record the original ask, got %d", session.Requested)
	}

	// Zero and negative counts clamp up to one question.
	for _, count := range []int{0, -5} {
		session, err = sampler.Sample("Engineer", count)
		if err != nil {
			t.Fatalf("Sample(%d) failed: %v", count, err)
		}
		if session.Total() != 1 {
			t.Errorf("Sample(%d): expected 1 question, got %d", count, session.Total())
		}
	}
}

func TestSampleNoDuplicates(t *testing.T) {
	store := storeWithPool(t, "Engineer", 30)
	sampler := NewSampler(store)

	for trial := 0; trial < 20; trial++ {
		session, err := sampler.Sample("Engineer", 15)
		if err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
		seen := make(map[string]bool, session.Total())
		for _, q := range session.Questions {
			if seen[q.Text] {
				t.Fatalf("duplicate question sampled: %q", q.Text)
			}
			seen[q.Text] = true
		}
	}
}

func TestSampleUnknownRole(t *testing.T) {
	store := storeWithPool(t, "Engineer", 5)
	sampler := NewSampler(store)

	_, err := sampler.Sample("Astronaut", 5)
	var unknown *bank.ErrUnknownRole
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestSeededSamplerDeterministic(t *testing.T) {
	store := storeWithPool(t, "Engineer", 25)

	a, err := NewSeededSampler(store, 42).Sample("Engineer", 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	b, err := NewSeededSampler(store, 42).Sample("Engineer", 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	for i := range a.Questions {
		if a.Questions[i].Text != b.Questions[i].Text {
			t.Fatalf("selections diverge at %d: %q vs %q",
				i, a.Questions[i].Text, b.Questions[i].Text)
		}
	}
	if a.ID == b.ID {
		t.Error("session IDs should be unique even for identical selections")
	}
}
