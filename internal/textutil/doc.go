// Package textutil turns free-text descriptions into comparable TF-IDF vectors.
//
// Vectorization runs in two explicit stages:
//   - Tokenizer normalizes, case-folds, and splits text into word tokens,
//     dropping English stop words and single-character tokens
//   - Vectorizer builds the shared Vocabulary, collects document frequencies
//     in a Corpus, and weighs each token list into an L2-normalized Vector
//
// Vectors are sparse, store their columns in ascending order, and compare with
// CosineSimilarity. A document without surviving tokens becomes the zero
// vector, which is dissimilar (score 0) to everything.
package textutil
