package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateJobRecord(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name    string
		job     *JobRecord
		wantErr error
	}{
		{
			name: "valid record",
			job: &JobRecord{
				Title:    "Backend Engineer",
				Company:  "Acme",
				PostedAt: past,
			},
			wantErr: nil,
		},
		{
			name: "valid record with zero posted date",
			job: &JobRecord{
				Title:   "Backend Engineer",
				Company: "Acme",
			},
			wantErr: nil,
		},
		{
			name: "valid record without enrichment",
			job: &JobRecord{
				Title:    "Backend Engineer",
				Company:  "Acme",
				Tier:     TierUnknown,
				WorkMode: WorkModeUnknown,
				PostedAt: past,
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			job:     nil,
			wantErr: ErrInvalidJobRecord,
		},
		{
			name: "empty title",
			job: &JobRecord{
				Company:  "Acme",
				PostedAt: past,
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "empty company",
			job: &JobRecord{
				Title:    "Backend Engineer",
				PostedAt: past,
			},
			wantErr: ErrEmptyCompany,
		},
		{
			name: "future posted date",
			job: &JobRecord{
				Title:    "Backend Engineer",
				Company:  "Acme",
				PostedAt: future,
			},
			wantErr: ErrInvalidPostedAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJobRecord(tt.job)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateJobRecord() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateJobRecord() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidJobRecord) {
				t.Errorf("ValidateJobRecord() error = %v, want wrapped %v", err, ErrInvalidJobRecord)
			}
		})
	}
}

func TestValidateSearchEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *SearchEntry
		wantErr error
	}{
		{
			name:    "valid entry",
			entry:   &SearchEntry{Query: "react", Hits: 3, Timestamp: time.Now()},
			wantErr: nil,
		},
		{
			name:    "filters only",
			entry:   &SearchEntry{Filters: "location=Bangalore", Hits: 0},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidSearchEntry,
		},
		{
			name:    "empty entry",
			entry:   &SearchEntry{},
			wantErr: ErrEmptyQuery,
		},
		{
			name:    "negative hits",
			entry:   &SearchEntry{Query: "react", Hits: -1},
			wantErr: ErrInvalidSearchEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSearchEntry(tt.entry)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSearchEntry() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSearchEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
