package embed

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"sync"
)

// mockDimension keeps mock vectors small; the mock embedder exists for
// tests and offline runs, not retrieval quality.
const mockDimension = 64

// MockEmbedder is a deterministic, offline Embedder. Vectors are derived
// from a hash of the text, so identical texts always embed identically and
// different texts almost always differ. It also records every Embed call.
type MockEmbedder struct {
	mu    sync.Mutex
	Calls [][]string

	// Delay, when set, makes each Embed call wait for ctx or the delay.
	// Used to exercise rebuild timeouts in tests.
	Delay func(ctx context.Context) error
}

// NewMockEmbedder creates a MockEmbedder.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

func (m *MockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, texts)
	delay := m.Delay
	m.mu.Unlock()

	if delay != nil {
		if err := delay(ctx); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = hashVector(text)
	}
	return vectors, nil
}

func (m *MockEmbedder) Dimension() int {
	return mockDimension
}

func (m *MockEmbedder) ModelID() string {
	return "mock"
}

// CallCount returns the number of Embed calls made.
func (m *MockEmbedder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// hashVector expands a sha256 digest of the text into a unit vector.
func hashVector(text string) []float32 {
	v := make([]float32, mockDimension)
	seed := sha256.Sum256([]byte(text))

	var norm float64
	digest := seed
	for i := 0; i < mockDimension; i += 8 {
		digest = sha256.Sum256(digest[:])
		for j := 0; j < 8 && i+j < mockDimension; j++ {
			bits := binary.BigEndian.Uint32(digest[j*4 : j*4+4])
			// Map to [-1, 1).
			val := float64(bits)/float64(math.MaxUint32)*2 - 1
			v[i+j] = float32(val)
			norm += val * val
		}
	}

	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range v {
			v[i] *= scale
		}
	}
	return v
}
