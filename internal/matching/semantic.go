package matching

import "github.com/jonathan/candidate-matcher/internal/embedding"

// ScoreSemantic computes the semantic similarity component from two
// embeddings. Cosine similarity in [-1,1] is normalized to [0,1] via
// (sim+1)/2. When either embedding is missing the component degrades to 0.0
// and ok is false so the caller can record the degradation; it never fails
// the match.
func ScoreSemantic(jobEmbedding, candidateEmbedding []float32) (score float64, ok bool) {
	if len(jobEmbedding) == 0 || len(candidateEmbedding) == 0 {
		return 0, false
	}
	sim, err := embedding.Cosine(jobEmbedding, candidateEmbedding)
	if err != nil {
		return 0, false
	}
	return clamp01((sim + 1) / 2), true
}
