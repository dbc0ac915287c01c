// ABOUTME: Tests for the in-memory vector index
// ABOUTME: Verifies ranking, ties, empty index behavior, and construction invariants
package storage

import (
	"math"
	"reflect"
	"testing"
)

func TestNewIndex_LengthMismatch(t *testing.T) {
	_, err := NewIndex([]string{"a", "b"}, [][]float64{{1, 0}})
	if err == nil {
		t.Error("NewIndex() with mismatched lengths succeeded, want error")
	}
}

func TestNewIndex_DimensionMismatch(t *testing.T) {
	_, err := NewIndex([]string{"a", "b"}, [][]float64{{1, 0}, {1, 0, 0}})
	if err == nil {
		t.Error("NewIndex() with mixed dimensions succeeded, want error")
	}
}

func TestSearch_EmptyIndex(t *testing.T) {
	ix, err := NewIndex(nil, nil)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	if got := ix.Search([]float64{1, 0}, 3); len(got) != 0 {
		t.Errorf("Search() on empty index = %v, want empty", got)
	}
}

func TestSearch_NilIndex(t *testing.T) {
	var ix *Index
	if got := ix.Search([]float64{1, 0}, 3); len(got) != 0 {
		t.Errorf("Search() on nil index = %v, want empty", got)
	}
	if ix.Len() != 0 {
		t.Errorf("Len() on nil index = %d, want 0", ix.Len())
	}
}

func TestSearch_RanksByCosineSimilarity(t *testing.T) {
	chunks := []string{"chunk one", "chunk two", "chunk three"}
	vectors := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	ix, err := NewIndex(chunks, vectors)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	// Query nearest to chunk two
	got := ix.Search([]float64{0.1, 0.9, 0.1}, 1)
	if len(got) != 1 || got[0] != "chunk two" {
		t.Errorf("Search(q, 1) = %v, want [chunk two]", got)
	}
}

func TestSearch_FullRankingOrder(t *testing.T) {
	chunks := []string{"a", "b", "c"}
	vectors := [][]float64{
		{1, 0},
		{0.6, 0.8},
		{0, 1},
	}
	ix, err := NewIndex(chunks, vectors)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got := ix.Search([]float64{0, 1}, 3)
	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search() order = %v, want %v", got, want)
	}
}

func TestSearch_TiesKeepDocumentOrder(t *testing.T) {
	chunks := []string{"first", "second", "third"}
	same := []float64{1, 1}
	ix, err := NewIndex(chunks, [][]float64{same, same, same})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got := ix.Search([]float64{1, 0}, 3)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search() with equal scores = %v, want document order %v", got, want)
	}
}

func TestSearch_KLargerThanIndex(t *testing.T) {
	ix, err := NewIndex([]string{"only"}, [][]float64{{1}})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	if got := ix.Search([]float64{1}, 10); len(got) != 1 {
		t.Errorf("Search(q, 10) on 1-chunk index returned %d results, want 1", len(got))
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1.0},
		{"length mismatch", []float64{1, 0}, []float64{1}, 0.0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
