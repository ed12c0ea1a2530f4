package optimize

import (
	"sort"
	"sync"

	"github.com/jonathan/candidate-matcher/internal/embedding"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Hit is one vector-index search result.
type Hit struct {
	CandidateID string
	// Similarity is the cosine similarity in [-1,1].
	Similarity float64
}

// indexEntry holds one candidate's L2-normalized embedding.
type indexEntry struct {
	candidateID string
	vector      []float32
}

// VectorIndex supports top-K retrieval of candidates by embedding similarity.
// The index is read-heavy and rebuilt wholesale when the candidate-pool
// fingerprint changes; Rebuild swaps the entry set atomically so readers
// never observe a partially built index.
type VectorIndex struct {
	mu          sync.RWMutex
	fingerprint string
	entries     []indexEntry
}

// NewVectorIndex creates an empty index.
func NewVectorIndex() *VectorIndex {
	return &VectorIndex{}
}

// Current reports whether the index was built for the given pool fingerprint.
func (idx *VectorIndex) Current(fingerprint string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.fingerprint == fingerprint && idx.fingerprint != ""
}

// Rebuild constructs the entry set for a candidate pool and swaps it in.
// Candidates without embeddings are skipped; they cannot be retrieved by
// similarity and the fast strategy reports them as degraded.
func (idx *VectorIndex) Rebuild(fingerprint string, pool []*types.CandidateProfile) {
	entries := make([]indexEntry, 0, len(pool))
	for _, c := range pool {
		normalized := embedding.NormalizeL2(c.Embedding)
		if normalized == nil {
			continue
		}
		entries = append(entries, indexEntry{candidateID: c.CandidateID, vector: normalized})
	}

	idx.mu.Lock()
	idx.fingerprint = fingerprint
	idx.entries = entries
	idx.mu.Unlock()
}

// Size returns the number of indexed candidates.
func (idx *VectorIndex) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Search returns the top-k candidates by cosine similarity to the query
// vector, ordered by descending similarity with candidate ID as a
// deterministic tie-break.
func (idx *VectorIndex) Search(query []float32, k int) []Hit {
	normalized := embedding.NormalizeL2(query)
	if normalized == nil || k <= 0 {
		return nil
	}

	idx.mu.RLock()
	hits := make([]Hit, 0, len(idx.entries))
	for _, entry := range idx.entries {
		if len(entry.vector) != len(normalized) {
			continue
		}
		var dot float64
		for i := range entry.vector {
			dot += float64(entry.vector[i]) * float64(normalized[i])
		}
		hits = append(hits, Hit{CandidateID: entry.candidateID, Similarity: dot})
	}
	idx.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		return hits[i].CandidateID < hits[j].CandidateID
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}
