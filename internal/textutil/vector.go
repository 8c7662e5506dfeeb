package textutil

import (
	"math"
	"sort"
)

// Vector is a sparse weight vector over a Vocabulary. Columns are stored in
// ascending order so dot products are deterministic.
type Vector struct {
	dim     int
	columns []int
	weights []float64
	norm    float64
}

// Weigh builds the L2-normalized TF-IDF vector of a token list. Tokens missing
// from vocab are ignored, as are terms whose weight is zero. A token list with
// no weighted terms yields the zero vector.
func Weigh(tokens []string, vocab *Vocabulary, idf map[string]float64) Vector {
	vec := Vector{dim: vocab.Len()}
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[int]float64, len(tokens))
	for _, token := range tokens {
		if col, ok := vocab.Index(token); ok {
			counts[col]++
		}
	}

	columns := make([]int, 0, len(counts))
	for col := range counts {
		columns = append(columns, col)
	}
	sort.Ints(columns)

	var sum float64
	weights := make([]float64, 0, len(columns))
	kept := columns[:0]
	for _, col := range columns {
		w := counts[col] * idf[vocab.Term(col)]
		if w == 0 {
			continue
		}
		kept = append(kept, col)
		weights = append(weights, w)
		sum += w * w
	}
	if sum == 0 {
		return vec
	}

	norm := math.Sqrt(sum)
	for i := range weights {
		weights[i] /= norm
	}
	vec.columns = kept
	vec.weights = weights
	vec.norm = 1
	return vec
}

// Dim returns the vocabulary size the vector is dimensioned by.
func (v Vector) Dim() int { return v.dim }

// Norm returns the L2 norm: 1 for weighted vectors, 0 for the zero vector.
func (v Vector) Norm() float64 { return v.norm }

// IsZero reports whether every weight is zero.
func (v Vector) IsZero() bool { return len(v.columns) == 0 }

// NonZero returns the number of stored weights.
func (v Vector) NonZero() int { return len(v.columns) }

// Weight returns the weight at column col.
func (v Vector) Weight(col int) float64 {
	i := sort.SearchInts(v.columns, col)
	if i < len(v.columns) && v.columns[i] == col {
		return v.weights[i]
	}
	return 0
}

// Dense expands the vector to a slice of length Dim.
func (v Vector) Dense() []float64 {
	out := make([]float64, v.dim)
	for i, col := range v.columns {
		out[col] = v.weights[i]
	}
	return out
}

func (v Vector) dot(other Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.columns) && j < len(other.columns) {
		switch {
		case v.columns[i] == other.columns[j]:
			sum += v.weights[i] * other.weights[j]
			i++
			j++
		case v.columns[i] < other.columns[j]:
			i++
		default:
			j++
		}
	}
	return sum
}
