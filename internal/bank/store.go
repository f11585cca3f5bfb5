package bank

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
)

// Snapshot is an immutable view of a loaded bank. All reads against a
// Snapshot are consistent with each other and with its fingerprint.
type Snapshot struct {
	roles       map[string][]Question
	names       []string
	fingerprint string
	total       int
}

// Roles returns the known role names in sorted order.
func (s *Snapshot) Roles() []string {
	return slices.Clone(s.names)
}

// QuestionsFor returns the ordered question list for a role.
func (s *Snapshot) QuestionsFor(role string) ([]Question, error) {
	qs, ok := s.roles[role]
	if !ok {
		return nil, &ErrUnknownRole{Role: role}
	}
	return slices.Clone(qs), nil
}

// Fingerprint returns the content hash this snapshot was built from.
func (s *Snapshot) Fingerprint() string {
	return s.fingerprint
}

// TotalQuestions returns the number of questions across all roles.
func (s *Snapshot) TotalQuestions() int {
	return s.total
}

// Store owns the authoritative role → questions mapping. The bank is
// replaced wholesale on reload; readers always see either the previous or
// the new complete bank, never a partial update.
type Store struct {
	log *slog.Logger

	// reloadMu serializes Load calls. Readers never take it.
	reloadMu sync.Mutex
	snap     atomic.Pointer[Snapshot]
}

// NewStore creates an empty Store. Reads against an empty store report
// every role as unknown.
func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{log: log}
	s.snap.Store(&Snapshot{
		roles:       map[string][]Question{},
		fingerprint: Fingerprint(nil),
	})
	return s
}

// Load parses a bank document and atomically replaces the current bank.
// Skipped records and dropped roles are logged as warnings. On error the
// previous bank stays in place.
func (s *Store) Load(data []byte, format Format) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	result, err := Parse(data, format)
	if err != nil {
		return err
	}

	for _, skipped := range result.Skipped {
		s.log.Warn("skipping invalid question record",
			"role", skipped.Role, "index", skipped.Index, "reason", skipped.Err.Error())
	}
	for _, role := range result.DroppedRoles {
		s.log.Warn("dropping role with no valid questions", "role", role)
	}

	names := make([]string, 0, len(result.Roles))
	total := 0
	for role, qs := range result.Roles {
		names = append(names, role)
		total += len(qs)
	}
	sort.Strings(names)

	next := &Snapshot{
		roles:       result.Roles,
		names:       names,
		fingerprint: Fingerprint(result.Roles),
		total:       total,
	}
	s.snap.Store(next)

	s.log.Info("question bank loaded",
		"roles", len(names), "questions", total, "fingerprint", next.fingerprint[:12])
	return nil
}

// LoadFile reads and loads a bank document, detecting the format from the
// file extension.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bank file: %w", err)
	}
	return s.Load(data, DetectFormat(path))
}

// Snapshot returns the current immutable bank view.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// Roles returns the known role names.
func (s *Store) Roles() []string {
	return s.Snapshot().Roles()
}

// QuestionsFor returns the ordered question list for a role.
func (s *Store) QuestionsFor(role string) ([]Question, error) {
	return s.Snapshot().QuestionsFor(role)
}

// Fingerprint returns the content hash of the loaded bank.
func (s *Store) Fingerprint() string {
	return s.Snapshot().Fingerprint()
}
