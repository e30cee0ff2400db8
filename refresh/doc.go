// Package refresh provides maintenance passes over the stored job corpus.
//
// Its main entry point is the Renormalizer, which re-runs location
// normalization and classification inference over every stored posting.
// Run it after updating the alias table or the inference heuristics so old
// records pick up the new rules.
//
// The package supports batch processing, progress tracking, and retry logic
// with exponential backoff.
package refresh
