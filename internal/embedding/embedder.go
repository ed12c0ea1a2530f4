// Package embedding defines the injected embedding capability used for
// semantic similarity scoring, plus vector math helpers.
package embedding

import (
	"context"
	"fmt"
	"math"
)

// Embedder turns text into fixed-length vectors. The matching core treats it
// as an external capability: implementations may call a remote model, and
// failures degrade a single component score rather than failing a match.
type Embedder interface {
	// Embed generates an embedding for one text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch generates embeddings for several texts in one call where the
	// backend supports it. Result order matches input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Cosine computes the cosine similarity of two vectors, in [-1,1].
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("empty vectors")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("zero-magnitude vector")
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// NormalizeL2 returns a unit-length copy of the vector, or nil for a
// zero-magnitude input.
func NormalizeL2(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
