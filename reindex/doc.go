// Package reindex provides functionality for regenerating the embeddings of
// stored candidate records with new or updated embedding models.
//
// This package supports batch processing of candidate records, progress
// tracking, retry logic with exponential backoff, and vector normalization to
// ensure compatibility with cosine similarity search.
package reindex
