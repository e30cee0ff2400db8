package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/storage"
)

func TestJobRecordBasics(t *testing.T) {
	jobRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		historyRepo.Close()
		jobRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	job := &core.JobRecord{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Bangalore",
		URL:      "https://acme.example/jobs/1",
		PostedAt: time.Now().UTC(),
	}

	added, err := jobRepo.AddJobs(ctx, job)
	if err != nil {
		t.Fatalf("Failed to add job: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added[0].Id != core.IDFromContent(job.ContentKey()) {
		t.Fatal("Expected content-based ID")
	}

	retrieved, err := jobRepo.GetJob(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get job: %v", err)
	}

	if retrieved.Title != "Backend Engineer" {
		t.Fatalf("Expected 'Backend Engineer', got '%s'", retrieved.Title)
	}
	if retrieved.InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}
}

func TestAddJobsDeduplicates(t *testing.T) {
	jobRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	first := &core.JobRecord{
		Title:    "Backend Engineer",
		Company:  "Acme",
		URL:      "https://acme.example/jobs/1",
		PostedAt: time.Now().UTC(),
	}
	reimport := &core.JobRecord{
		Title:       "Backend Engineer",
		Company:     "Acme",
		URL:         "https://acme.example/jobs/1",
		Description: "Updated posting",
		PostedAt:    time.Now().UTC().Add(time.Hour),
	}

	if _, err := jobRepo.AddJobs(ctx, first); err != nil {
		t.Fatalf("Failed to add job: %v", err)
	}
	if _, err := jobRepo.AddJobs(ctx, reimport); err != nil {
		t.Fatalf("Failed to re-add job: %v", err)
	}

	all, err := jobRepo.AllJobs(ctx)
	if err != nil {
		t.Fatalf("Failed to list jobs: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 job after re-import, got %d", len(all))
	}
	if all[0].Description != "Updated posting" {
		t.Fatalf("Expected updated description, got '%s'", all[0].Description)
	}

	// The stale date index entry must not resurface the old posting.
	recent, err := jobRepo.GetRecentJobs(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent jobs: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Expected 1 recent job, got %d", len(recent))
	}
}

func TestJobDateRange(t *testing.T) {
	jobRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	jobs := []*core.JobRecord{
		{Title: "Job 1", Company: "A", URL: "u1", PostedAt: now.Add(-72 * time.Hour)},
		{Title: "Job 2", Company: "B", URL: "u2", PostedAt: now.Add(-24 * time.Hour)},
		{Title: "Job 3", Company: "C", URL: "u3", PostedAt: now},
	}

	if _, err := jobRepo.AddJobs(ctx, jobs...); err != nil {
		t.Fatalf("Failed to add jobs: %v", err)
	}

	results, err := jobRepo.GetJobsByDateRange(ctx, now.Add(-36*time.Hour), now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Failed to query date range: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 jobs, got %d", len(results))
	}
	if results[0].Title != "Job 2" || results[1].Title != "Job 3" {
		t.Fatalf("Expected jobs ordered by posted date, got %s then %s", results[0].Title, results[1].Title)
	}
}

func TestGetRecentJobs(t *testing.T) {
	jobRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	jobs := []*core.JobRecord{
		{Title: "Oldest", Company: "A", URL: "u1", PostedAt: now.Add(-3 * time.Hour)},
		{Title: "Middle", Company: "B", URL: "u2", PostedAt: now.Add(-2 * time.Hour)},
		{Title: "Newest", Company: "C", URL: "u3", PostedAt: now},
	}

	if _, err := jobRepo.AddJobs(ctx, jobs...); err != nil {
		t.Fatalf("Failed to add jobs: %v", err)
	}

	results, err := jobRepo.GetRecentJobs(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get recent jobs: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 jobs, got %d", len(results))
	}
	if results[0].Title != "Newest" || results[1].Title != "Middle" {
		t.Fatalf("Expected newest first, got %s then %s", results[0].Title, results[1].Title)
	}
}

func TestGetJobsByCompany(t *testing.T) {
	jobRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	jobs := []*core.JobRecord{
		{Title: "Job 1", Company: "Acme", URL: "u1"},
		{Title: "Job 2", Company: "Acme", URL: "u2"},
		{Title: "Job 3", Company: "Beta", URL: "u3"},
	}

	if _, err := jobRepo.AddJobs(ctx, jobs...); err != nil {
		t.Fatalf("Failed to add jobs: %v", err)
	}

	// Lookup is case-insensitive
	ids, err := jobRepo.GetJobsByCompany(ctx, "ACME")
	if err != nil {
		t.Fatalf("Failed to query by company: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 IDs, got %d", len(ids))
	}

	records, err := jobRepo.GetJobs(ctx, ids...)
	if err != nil {
		t.Fatalf("Failed to resolve IDs: %v", err)
	}
	for _, rec := range records {
		if rec.Company != "Acme" {
			t.Fatalf("Expected Acme job, got %s", rec.Company)
		}
	}
}

func TestUpdateAndDeleteJobs(t *testing.T) {
	jobRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	job := &core.JobRecord{Title: "Engineer", Company: "Acme", URL: "u1", PostedAt: time.Now().UTC()}
	added, err := jobRepo.AddJobs(ctx, job)
	if err != nil {
		t.Fatalf("Failed to add job: %v", err)
	}

	added[0].Company = "Acme Robotics"
	if _, err := jobRepo.UpdateJobs(ctx, added[0]); err != nil {
		t.Fatalf("Failed to update job: %v", err)
	}

	// Old company index entry is gone, new one resolves.
	oldIDs, err := jobRepo.GetJobsByCompany(ctx, "Acme")
	if err != nil {
		t.Fatalf("Failed to query old company: %v", err)
	}
	if len(oldIDs) != 0 {
		t.Fatalf("Expected old company index cleared, got %d entries", len(oldIDs))
	}
	newIDs, err := jobRepo.GetJobsByCompany(ctx, "Acme Robotics")
	if err != nil {
		t.Fatalf("Failed to query new company: %v", err)
	}
	if len(newIDs) != 1 {
		t.Fatalf("Expected 1 entry for new company, got %d", len(newIDs))
	}

	if err := jobRepo.DeleteJobs(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete job: %v", err)
	}
	if _, err := jobRepo.GetJob(ctx, added[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	if err := jobRepo.DeleteJobs(ctx, added[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestUpdateJobsMissingRecord(t *testing.T) {
	jobRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); jobRepo.Close(); backend.Close() }()

	_, err = jobRepo.UpdateJobs(context.Background(), &core.JobRecord{Id: 12345, Title: "Ghost", Company: "None"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
