package storage

import (
	"context"
	"time"

	"github.com/hirebuddy/scout/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// JobRepository provides operations for managing job postings.
type JobRepository interface {
	Repository
	// AddJobs adds one or more job postings to storage.
	// IDs are content-based (IDFromContent of the record's ContentKey), so a
	// re-import of the same posting updates in place instead of duplicating.
	// Sets InsertedAt if not already set.
	// Returns the records with IDs and timestamps populated.
	AddJobs(ctx context.Context, jobs ...*core.JobRecord) ([]*core.JobRecord, error)

	// UpdateJobs updates existing job postings.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateJobs(ctx context.Context, jobs ...*core.JobRecord) ([]*core.JobRecord, error)

	// DeleteJobs removes job postings by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteJobs(ctx context.Context, ids ...core.ID) error

	// GetJob retrieves a single job posting by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetJob(ctx context.Context, id core.ID) (*core.JobRecord, error)

	// GetJobs retrieves multiple job postings by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetJobs(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error)

	// GetJobsByDateRange retrieves postings published within a time range.
	// Returns records where start <= PostedAt < end, ordered by PostedAt.
	GetJobsByDateRange(ctx context.Context, start, end time.Time) ([]*core.JobRecord, error)

	// GetRecentJobs retrieves the N most recently published postings.
	// Returns up to limit records, most recent first.
	GetRecentJobs(ctx context.Context, limit int) ([]*core.JobRecord, error)

	// GetJobsByCompany retrieves IDs of postings from the given company.
	// The company name is matched exactly after lowercasing.
	GetJobsByCompany(ctx context.Context, company string) ([]core.ID, error)

	// AllJobs retrieves every stored posting. Intended for in-memory search
	// and maintenance passes over modest corpora.
	AllJobs(ctx context.Context) ([]*core.JobRecord, error)
}

// HistoryRepository provides operations for the search history log.
type HistoryRepository interface {
	Repository
	// AddEntry appends one search to the history log.
	// Assigns a sequence ID and sets Timestamp if not already set.
	AddEntry(ctx context.Context, entry *core.SearchEntry) (*core.SearchEntry, error)

	// RecentEntries retrieves the N most recent history entries,
	// most recent first.
	RecentEntries(ctx context.Context, limit int) ([]*core.SearchEntry, error)

	// Clear removes the entire history log.
	Clear(ctx context.Context) error
}
