// Package ingestion provides pipeline orchestration for importing job postings.
//
// The Pipeline type manages the import workflow for job records, including:
//   - Validating and deduplicating incoming postings
//   - Adding records to storage under content-based IDs
//   - Enriching records asynchronously with inferred tier, work mode,
//     and canonical location
//
// Enrichment is performed concurrently using a worker pool. Errors during
// async enrichment are logged but do not fail the import operation.
package ingestion
