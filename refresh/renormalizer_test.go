package refresh

import (
	"bytes"
	"context"
	"testing"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/storage"
	"github.com/hirebuddy/scout/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (storage.JobRepository, func()) {
	t.Helper()
	jobRepo, historyRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)

	return jobRepo, func() {
		historyRepo.Close()
		jobRepo.Close()
		backend.Close()
	}
}

func TestJobIterator_Batches(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()

	jobs := make([]*core.JobRecord, 5)
	for i := range jobs {
		jobs[i] = &core.JobRecord{Title: "Job", Company: "Acme", URL: string(rune('a' + i))}
	}
	_, err := repo.AddJobs(ctx, jobs...)
	require.NoError(t, err)

	var batches []int
	it := NewJobIterator(repo, 2)
	err = it.ForEach(ctx, func(batch []*core.JobRecord) error {
		batches = append(batches, len(batch))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, batches)
}

func TestJobIterator_Empty(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	it := NewJobIterator(repo, 10)
	called := false
	err := it.ForEach(context.Background(), func([]*core.JobRecord) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestJobIterator_CancelledContext(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	it := NewJobIterator(repo, 10)
	err := it.ForEach(ctx, func([]*core.JobRecord) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenormalizerRun(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()

	// Raw records as an importer without enrichment would leave them.
	jobs := []*core.JobRecord{
		{Title: "Senior Engineer", Company: "Acme", Location: "Banglore", URL: "u1"},
		{Title: "Engineer", Company: "Beta", Location: "Mumbai", Description: "fully remote", URL: "u2"},
		{Title: "Engineer", Company: "Gamma", Location: "Pune", URL: "u3", Tier: core.TierMid, WorkMode: core.WorkModeOnsite},
	}
	_, err := repo.AddJobs(ctx, jobs...)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := NewRenormalizer(repo, nil, nil, &buf)
	require.NoError(t, r.Run(ctx))

	all, err := repo.AllJobs(ctx)
	require.NoError(t, err)

	byURL := make(map[string]*core.JobRecord, len(all))
	for _, job := range all {
		byURL[job.URL] = job
	}

	assert.Equal(t, "Bangalore", byURL["u1"].Location)
	assert.Equal(t, core.TierSenior, byURL["u1"].Tier)

	assert.Equal(t, core.WorkModeRemote, byURL["u2"].WorkMode)
	assert.True(t, byURL["u2"].IsRemote)

	// Already classified record is untouched.
	assert.Equal(t, core.TierMid, byURL["u3"].Tier)
	assert.Equal(t, core.WorkModeOnsite, byURL["u3"].WorkMode)

	assert.Contains(t, buf.String(), "Renormalization complete")
}

func TestRenormalizerRun_EmptyDatabase(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	var buf bytes.Buffer
	r := NewRenormalizer(repo, nil, nil, &buf)
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, buf.String(), "No records found")
}
