package textutil

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 if either vector has zero norm.
func CosineSimilarity(a, b Vector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	dot := a.dot(b)
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}
