package ingestion

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/location"
	"github.com/hirebuddy/scout/storage"
	"github.com/hirebuddy/scout/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (storage.JobRepository, func()) {
	t.Helper()
	jobRepo, historyRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)

	cleanup := func() {
		historyRepo.Close()
		jobRepo.Close()
		backend.Close()
	}
	return jobRepo, cleanup
}

func TestNewPipeline(t *testing.T) {
	jobRepo, cleanup := setupTestRepository(t)
	defer cleanup()

	t.Run("defaults", func(t *testing.T) {
		p, err := NewPipeline(jobRepo)
		require.NoError(t, err)
		defer p.Release()
		assert.NotNil(t, p)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil)
		assert.Equal(t, ErrJobRepositoryRequired, err)
	})

	t.Run("nil alias table", func(t *testing.T) {
		_, err := NewPipeline(jobRepo, WithAliases(nil))
		assert.Equal(t, ErrAliasTableRequired, err)
	})

	t.Run("pool size floor", func(t *testing.T) {
		p, err := NewPipeline(jobRepo, WithPoolSize(0))
		require.NoError(t, err)
		defer p.Release()
	})
}

func TestIngest(t *testing.T) {
	jobRepo, cleanup := setupTestRepository(t)
	defer cleanup()

	p, err := NewPipeline(jobRepo)
	require.NoError(t, err)
	defer p.Release()

	ctx := context.Background()

	jobs := []*core.JobRecord{
		{Title: "Senior Backend Developer", Company: "Acme", Location: "Banglore", URL: "u1", Description: "5+ years building services, fully remote"},
		{Title: "", Company: "Broken", URL: "u2"},
		nil,
	}

	result, err := p.Ingest(ctx, jobs, "import:test")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)

	all, err := jobRepo.AllJobs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "import:test", all[0].Source)
	assert.False(t, all[0].PostedAt.IsZero())

	// Enrichment runs async; poll until it lands.
	require.Eventually(t, func() bool {
		job, err := jobRepo.GetJob(ctx, all[0].Id)
		if err != nil {
			return false
		}
		return job.Tier == core.TierSenior && job.Location == "Bangalore" && job.IsRemote
	}, 2*time.Second, 20*time.Millisecond)
}

func TestIngestEmptyBatch(t *testing.T) {
	jobRepo, cleanup := setupTestRepository(t)
	defer cleanup()

	p, err := NewPipeline(jobRepo)
	require.NoError(t, err)
	defer p.Release()

	result, err := p.Ingest(context.Background(), nil, "import:test")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 0, result.Skipped)
}

func TestEnrichJobPreservesManualFields(t *testing.T) {
	table := location.Default()

	job := &core.JobRecord{
		Title:       "Developer",
		Company:     "Acme",
		Location:    "blr",
		Description: "hybrid, 3+ years",
		Tier:        core.TierLead, // manually set, must survive
	}
	enrichJob(job, table)

	assert.Equal(t, core.TierLead, job.Tier)
	assert.Equal(t, core.WorkModeHybrid, job.WorkMode)
	assert.Equal(t, "Bangalore", job.Location)
	assert.False(t, job.IsRemote)
}

func TestDecodeJobs(t *testing.T) {
	feed := `[
		{"title": "Backend Engineer", "company": "Acme", "location": "Bangalore",
		 "tags": ["go"], "remote": true, "url": "https://acme.example/1",
		 "posted_at": "2025-06-01"},
		{"title": "Data Engineer", "company": "Beta",
		 "posted_at": "2025-06-02T10:30:00Z"},
		{"title": "No Date", "company": "Gamma", "posted_at": "yesterday"}
	]`

	jobs, err := DecodeJobs(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "Backend Engineer", jobs[0].Title)
	assert.True(t, jobs[0].IsRemote)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), jobs[0].PostedAt)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC), jobs[1].PostedAt)
	assert.True(t, jobs[2].PostedAt.IsZero())
}

func TestDecodeJobsMalformed(t *testing.T) {
	_, err := DecodeJobs(strings.NewReader(`{"not": "an array"`))
	assert.ErrorIs(t, err, ErrMalformedFeed)
}
