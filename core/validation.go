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


package core

import (
	"fmt"
	"time"
)

// ValidateJobRecord validates a JobRecord according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Company must not be empty
//   - PostedAt must not be in the future
//
// NOT validated (populated by enrichment):
//   - Tier (TierUnknown until the enrichment processor runs)
//   - WorkMode (WorkModeUnknown until the enrichment processor runs)
//   - ID (0 is valid before content hashing)
func ValidateJobRecord(job *JobRecord) error {
	if job == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidJobRecord)
	}

	if job.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJobRecord, ErrEmptyTitle)
	}

	if job.Company == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJobRecord, ErrEmptyCompany)
	}

	if !job.PostedAt.IsZero() && !IsValidTimestamp(job.PostedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidJobRecord, ErrInvalidPostedAt)
	}

	return nil
}

// ValidateSearchEntry validates a SearchEntry according to domain rules.
//
// Validation rules:
//   - Query or Filters must be present
//   - Hits must not be negative
func ValidateSearchEntry(entry *SearchEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidSearchEntry)
	}

	if entry.Query == "" && entry.Filters == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSearchEntry, ErrEmptyQuery)
	}

	if entry.Hits < 0 {
		return fmt.Errorf("%w: negative hit count %d", ErrInvalidSearchEntry, entry.Hits)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
