// Package recommend ranks catalog titles by how closely their descriptions
// resemble a queried title's description.
//
// Build runs the full pipeline once (tokenize, vocabulary, TF-IDF weights,
// cosine matrix) and returns an immutable Engine. Queries are pure reads over
// that snapshot, so an Engine can be shared freely across goroutines.
package recommend
