// Package similarity builds the pairwise cosine similarity matrix of a
// vectorized catalog.
package similarity

import "reelmatch/internal/textutil"

// Matrix is a square, symmetric similarity matrix stored row-major.
// It is read-only after Build.
type Matrix struct {
	n      int
	values []float64
}

// Build computes cosine similarity for every pair of vectors. The upper
// triangle is computed and mirrored, so At(i, j) == At(j, i) exactly. The
// diagonal is 1 for weighted vectors and 0 for zero vectors.
func Build(vectors []textutil.Vector) *Matrix {
	n := len(vectors)
	m := &Matrix{n: n, values: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		if !vectors[i].IsZero() {
			m.values[i*n+i] = 1
		}
		for j := i + 1; j < n; j++ {
			score := textutil.CosineSimilarity(vectors[i], vectors[j])
			m.values[i*n+j] = score
			m.values[j*n+i] = score
		}
	}
	return m
}

// Size returns the number of rows (and columns).
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

// At returns the similarity between documents i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.values[i*m.n+j]
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	copy(row, m.values[i*m.n:(i+1)*m.n])
	return row
}
