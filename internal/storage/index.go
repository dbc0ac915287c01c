// ABOUTME: In-memory vector index with brute-force cosine similarity search
// ABOUTME: Chunks and embeddings are parallel slices; position is identity
package storage

import (
	"fmt"
	"math"
	"sort"
)

// Index holds one document's chunks and their embeddings. It is immutable
// once built, so concurrent searches need no locking. Search is a linear
// scan over every stored vector.
type Index struct {
	chunks  []string
	vectors [][]float64
}

// NewIndex builds an index from parallel chunk and embedding slices.
// Chunk i's embedding is vectors[i]; the slices must have equal length and
// every vector the same dimension.
func NewIndex(chunks []string, vectors [][]float64) (*Index, error) {
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunks and embeddings length mismatch: %d vs %d", len(chunks), len(vectors))
	}
	for i, vec := range vectors {
		if len(vec) != len(vectors[0]) {
			return nil, fmt.Errorf("embedding %d dimension mismatch: got %d, expected %d", i, len(vec), len(vectors[0]))
		}
	}
	return &Index{chunks: chunks, vectors: vectors}, nil
}

// Len returns the number of stored chunks.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.chunks)
}

// Chunks returns the stored chunks in original document order.
func (ix *Index) Chunks() []string {
	if ix == nil {
		return nil
	}
	return ix.chunks
}

// Search returns up to k chunks ranked by descending cosine similarity to
// the query vector. Ties keep original chunk order. An empty index returns
// an empty result, never an error.
func (ix *Index) Search(query []float64, k int) []string {
	if ix.Len() == 0 || k <= 0 {
		return nil
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(ix.vectors))
	for i, vec := range ix.vectors {
		scores[i] = scored{idx: i, score: cosineSimilarity(query, vec)}
	}

	// Stable sort preserves document order among equal scores
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	if k > len(scores) {
		k = len(scores)
	}
	results := make([]string, k)
	for i := 0; i < k; i++ {
		results[i] = ix.chunks[scores[i].idx]
	}
	return results
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
