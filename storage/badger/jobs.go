package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/storage"
)

// JobRepository implements storage.JobRepository for BadgerDB.
type JobRepository struct {
	backend *Backend
	owned   bool
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository backed by a database at path.
// The repository owns the backend; Close shuts it down.
func NewJobRepository(path string) (storage.JobRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	repo := newJobRepository(backend)
	repo.owned = true
	return repo, nil
}

// NewSharedJobRepository creates a JobRepository on an existing backend.
// The caller keeps ownership of the backend and must close it.
func NewSharedJobRepository(backend *Backend) storage.JobRepository {
	return newJobRepository(backend)
}

func newJobRepository(backend *Backend) *JobRepository {
	return &JobRepository{backend: backend}
}

// Close releases resources. A shared backend is closed by its owner instead.
func (r *JobRepository) Close() error {
	if r.owned {
		return r.backend.Close()
	}
	return nil
}

// WithTransaction delegates to the backend.
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddJobs adds one or more job postings to storage.
// IDs are derived from the record's content key, so adding the same posting
// twice overwrites in place rather than duplicating it.
func (r *JobRepository) AddJobs(ctx context.Context, jobs ...*core.JobRecord) ([]*core.JobRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, job := range jobs {
			if job.Id == 0 {
				job.Id = core.IDFromContent(job.ContentKey())
			}

			now := time.Now().UTC()
			if job.InsertedAt.IsZero() {
				job.InsertedAt = now
			}
			job.UpdatedAt = now

			// A re-import may carry a new posted date; drop the stale
			// index entry before writing the new one.
			key := makeJobKey(job.Id)
			old, err := r.readJob(tx, key)
			if err != nil {
				return err
			}
			if old != nil && !old.PostedAt.Equal(job.PostedAt) {
				if err := tx.Delete(makeJobDateKey(old.PostedAt, old.Id)); err != nil {
					return err
				}
			}

			value := storage.MarshalJobRecord(job)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			dateKey := makeJobDateKey(job.PostedAt, job.Id)
			if err := tx.Set(dateKey, storage.MarshalID(job.Id)); err != nil {
				return err
			}

			companyKey := makeJobCompanyKey(job.Company, job.Id)
			if err := tx.Set(companyKey, storage.MarshalID(job.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return jobs, err
}

// UpdateJobs updates existing job postings.
func (r *JobRepository) UpdateJobs(ctx context.Context, jobs ...*core.JobRecord) ([]*core.JobRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, job := range jobs {
			key := makeJobKey(job.Id)

			// Read old record to detect index changes
			old, err := r.readJob(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			job.UpdatedAt = time.Now().UTC()

			value := storage.MarshalJobRecord(job)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			if !old.PostedAt.Equal(job.PostedAt) {
				if err := tx.Delete(makeJobDateKey(old.PostedAt, old.Id)); err != nil {
					return err
				}
				if err := tx.Set(makeJobDateKey(job.PostedAt, job.Id), storage.MarshalID(job.Id)); err != nil {
					return err
				}
			}

			if old.Company != job.Company {
				if err := tx.Delete(makeJobCompanyKey(old.Company, old.Id)); err != nil {
					return err
				}
				if err := tx.Set(makeJobCompanyKey(job.Company, job.Id), storage.MarshalID(job.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return jobs, err
}

// DeleteJobs removes job postings by their IDs.
func (r *JobRepository) DeleteJobs(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeJobKey(id)

			// Read record to get metadata for index cleanup
			job, err := r.readJob(tx, key)
			if err != nil {
				return err
			}
			if job == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeJobDateKey(job.PostedAt, job.Id)); err != nil {
				return err
			}
			if err := tx.Delete(makeJobCompanyKey(job.Company, job.Id)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetJob retrieves a single job posting by ID.
func (r *JobRepository) GetJob(ctx context.Context, id core.ID) (*core.JobRecord, error) {
	var result *core.JobRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readJob(tx, makeJobKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetJobs retrieves multiple job postings by their IDs.
func (r *JobRepository) GetJobs(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
	var result []*core.JobRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			job, err := r.readJob(tx, makeJobKey(id))
			if err != nil {
				return err
			}
			if job != nil {
				result = append(result, job)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetJobsByDateRange retrieves postings published within a time range.
func (r *JobRepository) GetJobsByDateRange(ctx context.Context, start, end time.Time) ([]*core.JobRecord, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.JobRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialJobDateKey(start)
		endKey := makePartialJobDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			var jobID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				jobID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			job, err := r.readJob(tx, makeJobKey(jobID))
			if err != nil {
				return err
			}
			if job != nil {
				results = append(results, job)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetRecentJobs retrieves the N most recently published postings.
func (r *JobRepository) GetRecentJobs(ctx context.Context, limit int) ([]*core.JobRecord, error) {
	var results []*core.JobRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index.
		startKey := makePartialJobDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(jobDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var jobID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				jobID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			job, err := r.readJob(tx, makeJobKey(jobID))
			if err != nil {
				return err
			}
			if job != nil {
				results = append(results, job)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetJobsByCompany retrieves IDs of postings from the given company.
func (r *JobRepository) GetJobsByCompany(ctx context.Context, company string) ([]core.ID, error) {
	var ids []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialJobCompanyKey(company)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) {
				break
			}
			if slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var jobID core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				jobID, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}
			ids = append(ids, jobID)
		}
		return nil
	}, false)

	return ids, err
}

// AllJobs retrieves every stored posting.
func (r *JobRepository) AllJobs(ctx context.Context) ([]*core.JobRecord, error) {
	var results []*core.JobRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jobRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var job *core.JobRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				job, err = storage.UnmarshalJobRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if job != nil {
				results = append(results, job)
			}
		}
		return nil
	}, false)

	return results, err
}

// readJob reads a job record from the transaction.
// Returns nil, nil when the key does not exist.
func (r *JobRepository) readJob(tx *badger.Txn, key []byte) (*core.JobRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var job *core.JobRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		job, unmarshalErr = storage.UnmarshalJobRecord(val)
		return unmarshalErr
	})
	return job, err
}
