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
	"fmt"
	"io"
	"time"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/location"
	"github.com/hirebuddy/scout/storage"
)

// Config holds configuration for the renormalization operation.
type Config struct {
	// BatchSize is the number of records to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed updates
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Renormalizer re-runs location normalization and classification inference
// over every stored posting.
type Renormalizer struct {
	repo     storage.JobRepository
	aliases  *location.Table
	config   *Config
	progress io.Writer
	iterator *JobIterator
}

// NewRenormalizer creates a new renormalizer.
// progress: where to write progress output (typically os.Stderr)
func NewRenormalizer(repo storage.JobRepository, aliases *location.Table, config *Config, progress io.Writer) *Renormalizer {
	if config == nil {
		config = DefaultConfig()
	}
	if aliases == nil {
		aliases = location.Default()
	}

	return &Renormalizer{
		repo:     repo,
		aliases:  aliases,
		config:   config,
		progress: progress,
		iterator: NewJobIterator(repo, config.BatchSize),
	}
}

// Run executes the renormalization pass. Records whose derived fields don't
// change are left untouched; changed ones are written back with retry.
func (r *Renormalizer) Run(ctx context.Context) error {
	all, err := r.repo.AllJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to query records: %w", err)
	}

	total := len(all)
	if total == 0 {
		fmt.Fprintf(r.progress, "No records found in database (0 records)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting renormalization of %d records (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	processed := 0
	changed := 0

	err = r.iterator.ForEach(ctx, func(jobs []*core.JobRecord) error {
		dirty := make([]*core.JobRecord, 0, len(jobs))
		for _, job := range jobs {
			if r.renormalizeJob(job) {
				dirty = append(dirty, job)
			}
		}

		if len(dirty) > 0 {
			err := RetryWithBackoff(ctx, func() error {
				_, err := r.repo.UpdateJobs(ctx, dirty...)
				return err
			}, r.config.MaxRetries, r.config.RetryDelay)
			if err != nil {
				return fmt.Errorf("failed to update batch: %w", err)
			}
			changed += len(dirty)
		}

		processed += len(jobs)
		tracker.Update(processed)
		return nil
	})

	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Renormalization complete. Processed %d records (%d changed) in %v\n",
		total, changed, elapsed.Round(time.Second))

	return nil
}

// renormalizeJob reapplies the derivation rules and reports whether the
// record changed.
func (r *Renormalizer) renormalizeJob(job *core.JobRecord) bool {
	dirty := false

	if canonical := r.aliases.Normalize(job.Location); canonical != job.Location {
		job.Location = canonical
		dirty = true
	}

	if job.Tier == core.TierUnknown {
		if tier := core.InferTier(job.Title, job.Description); tier != core.TierUnknown {
			job.Tier = tier
			dirty = true
		}
	}

	if job.WorkMode == core.WorkModeUnknown {
		if mode := core.InferWorkMode(job.Location, job.Title, job.Description); mode != core.WorkModeUnknown {
			job.WorkMode = mode
			dirty = true
		}
	}

	if !job.IsRemote && job.WorkMode == core.WorkModeRemote {
		job.IsRemote = true
		dirty = true
	}

	return dirty
}
