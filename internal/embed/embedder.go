package embed

import "context"

// Embedder converts texts into fixed-length numeric vectors for semantic
// similarity ranking. Implementations must be deterministic for a fixed
// model: embedding the same text twice yields the same vector.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the vector length this embedder produces.
	Dimension() int

	// ModelID returns the embedding model identifier.
	ModelID() string
}
