package assess

import (
	"math/rand/v2"
	"sync"

	"github.com/abhisek/apprise/internal/bank"
)

// Sampler selects bounded, non-repeating question sets for a role.
type Sampler struct {
	store *bank.Store

	// mu guards rng; rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a Sampler drawing uniformly at random.
func NewSampler(store *bank.Store) *Sampler {
	return &Sampler{
		store: store,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeededSampler creates a Sampler whose selection is fully reproducible
// for a given seed. Used for tests and deterministic runs.
func NewSeededSampler(store *bank.Store, seed uint64) *Sampler {
	return &Sampler{
		store: store,
		rng:   rand.New(rand.NewPCG(seed, seed)),
	}
}

// Sample selects count questions for the role, without replacement. The
// count is clamped to [1, pool size]: asking for more than the role has
// returns the whole pool, not an error. The returned session's question
// order is frozen.
func (s *Sampler) Sample(role string, count int) (*Session, error) {
	pool, err := s.store.QuestionsFor(role)
	if err != nil {
		return nil, err
	}

	requested := count
	if count < 1 {
		count = 1
	}
	if count > len(pool) {
		count = len(pool)
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(pool))
	s.mu.Unlock()

	selected := make([]bank.Question, count)
	for i := 0; i < count; i++ {
		selected[i] = pool[perm[i]]
	}

	return newSession(role, selected, requested), nil
}
