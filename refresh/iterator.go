// Copyright 2025 Hirebuddy
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package refresh

import (
	"context"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/storage"
)

const (
	// DefaultBatchSize is the default number of records to process per batch
	DefaultBatchSize = 100
)

// JobIterator iterates over all stored job postings in batches.
type JobIterator struct {
	repo      storage.JobRepository
	batchSize int
}

// NewJobIterator creates a new job iterator.
// batchSize: number of records per batch (must be > 0)
func NewJobIterator(repo storage.JobRepository, batchSize int) *JobIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &JobIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all job postings, calling fn for each batch.
// Iteration stops on first error from fn or when all records are processed.
// Context cancellation is checked between batches.
func (it *JobIterator) ForEach(ctx context.Context, fn func([]*core.JobRecord) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	jobs, err := it.repo.AllJobs(ctx)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		return nil
	}

	for i := 0; i < len(jobs); i += it.batchSize {
		end := i + it.batchSize
		if end > len(jobs) {
			end = len(jobs)
		}

		if err := fn(jobs[i:end]); err != nil {
			return err
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
