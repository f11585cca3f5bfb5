package index

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abhisek/apprise/internal/bank"
	"github.com/abhisek/apprise/internal/embed"
)

// DefaultBuildTimeout bounds embedding time during a rebuild.
const DefaultBuildTimeout = 2 * time.Minute

// Entry is one indexed question: derived, read-only data regenerated from
// the bank whenever its fingerprint changes.
type Entry struct {
	// Role is the role this question belongs to.
	Role string

	// Ref is the question's index within its role's ordered list.
	Ref int

	// Text is the question text the vector was computed from.
	Text string

	// Vector is the embedding of Text.
	Vector []float32
}

// Match is a search hit with its similarity score.
type Match struct {
	Entry
	Score float64
}

// Config holds index construction settings.
type Config struct {
	// BuildTimeout is the maximum duration of one rebuild's embedding work.
	// Zero means DefaultBuildTimeout.
	BuildTimeout time.Duration
}

// Index is a role-filtered semantic search structure over the question
// bank. Rebuilds follow a copy-then-swap discipline: a complete new
// snapshot is built off to the side and installed atomically, so readers
// see either the old or the new index, never a mix.
type Index struct {
	store    *bank.Store
	embedder embed.Embedder
	log      *slog.Logger
	timeout  time.Duration

	// buildMu serializes rebuilds. Concurrent triggers coalesce via the
	// fingerprint re-check taken under the lock.
	buildMu sync.Mutex
	snap    atomic.Pointer[snapshot]
}

// snapshot is one complete, immutable index generation.
type snapshot struct {
	fingerprint string
	byRole      map[string][]Entry
	total       int
}

// New creates an Index over the given store and embedder. The index starts
// empty and stale; the first EnsureFresh or Search builds it.
func New(store *bank.Store, embedder embed.Embedder, cfg Config, log *slog.Logger) *Index {
	if log == nil {
		log = slog.Default()
	}
	timeout := cfg.BuildTimeout
	if timeout <= 0 {
		timeout = DefaultBuildTimeout
	}
	return &Index{
		store:    store,
		embedder: embedder,
		log:      log,
		timeout:  timeout,
	}
}

// Stale reports whether the current index was built from a different bank
// fingerprint than the store now holds. An index that was never built is
// stale.
func (ix *Index) Stale() bool {
	snap := ix.snap.Load()
	return snap == nil || snap.fingerprint != ix.store.Fingerprint()
}

// EnsureFresh rebuilds the index if and only if it is stale. Concurrent
// callers are serialized; once one of them has rebuilt for the current
// fingerprint the rest return without embedding anything.
func (ix *Index) EnsureFresh(ctx context.Context) error {
	if !ix.Stale() {
		return nil
	}

	ix.buildMu.Lock()
	defer ix.buildMu.Unlock()

	// Re-check under the lock: a concurrent caller may have rebuilt.
	if !ix.Stale() {
		return nil
	}
	return ix.rebuildLocked(ctx)
}

// Rebuild unconditionally rebuilds the index from the current bank.
func (ix *Index) Rebuild(ctx context.Context) error {
	ix.buildMu.Lock()
	defer ix.buildMu.Unlock()
	return ix.rebuildLocked(ctx)
}

// rebuildLocked builds a complete new snapshot and swaps it in. On failure
// (including timeout) the previous snapshot stays in place.
func (ix *Index) rebuildLocked(ctx context.Context) error {
	bankSnap := ix.store.Snapshot()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, ix.timeout)
	defer cancel()

	// Collect every question text in deterministic order: sorted role
	// names, then each role's insertion order.
	roles := bankSnap.Roles()
	var texts []string
	counts := make(map[string]int, len(roles))
	for _, role := range roles {
		qs, err := bankSnap.QuestionsFor(role)
		if err != nil {
			return err
		}
		counts[role] = len(qs)
		for _, q := range qs {
			texts = append(texts, q.Text)
		}
	}

	byRole := make(map[string][]Entry, len(roles))
	if len(texts) > 0 {
		vectors, err := ix.embedder.Embed(ctx, texts)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return &ErrRebuildTimeout{Timeout: ix.timeout, Err: err}
			}
			return err
		}

		offset := 0
		for _, role := range roles {
			n := counts[role]
			entries := make([]Entry, n)
			for i := 0; i < n; i++ {
				entries[i] = Entry{
					Role:   role,
					Ref:    i,
					Text:   texts[offset+i],
					Vector: vectors[offset+i],
				}
			}
			byRole[role] = entries
			offset += n
		}
	}

	ix.snap.Store(&snapshot{
		fingerprint: bankSnap.Fingerprint(),
		byRole:      byRole,
		total:       len(texts),
	})

	ix.log.Info("semantic index rebuilt",
		"roles", len(roles),
		"entries", len(texts),
		"model", ix.embedder.ModelID(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// Search returns up to k entries for the role, ranked by cosine similarity
// to the query (descending), ties broken by insertion order. A stale index
// is rebuilt first, so callers never see results computed against outdated
// bank content. k <= 0 means no limit.
func (ix *Index) Search(ctx context.Context, role, query string, k int) ([]Match, error) {
	if err := ix.EnsureFresh(ctx); err != nil {
		return nil, err
	}

	snap := ix.snap.Load()
	entries := snap.byRole[role]
	if len(entries) == 0 {
		return nil, &ErrEmptyIndex{Role: role}
	}

	vectors, err := ix.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	queryVec := vectors[0]

	matches := make([]Match, len(entries))
	for i, entry := range entries {
		matches[i] = Match{Entry: entry, Score: cosine(queryVec, entry.Vector)}
	}
	// Stable sort preserves insertion order among equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k > 0 && k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// EntryCount returns the number of indexed questions for a role in the
// current snapshot, without triggering a rebuild. Zero if never built.
func (ix *Index) EntryCount(role string) int {
	snap := ix.snap.Load()
	if snap == nil {
		return 0
	}
	return len(snap.byRole[role])
}

// Size returns the total number of indexed questions across all roles.
func (ix *Index) Size() int {
	snap := ix.snap.Load()
	if snap == nil {
		return 0
	}
	return snap.total
}

// cosine computes cosine similarity between two vectors. Mismatched or
// zero-norm vectors score 0.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
