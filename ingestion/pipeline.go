package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/location"
	"github.com/hirebuddy/scout/storage"
)

// Pipeline orchestrates the import and enrichment of job postings.
type Pipeline struct {
	jobRepository storage.JobRepository
	aliases       *location.Table
	enrichPool    *ants.Pool
	enrichProc    processor
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent enrichment.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.enrichPool != nil {
			p.enrichPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.enrichPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithAliases sets the location alias table used for enrichment.
// Default is location.Default().
func WithAliases(table *location.Table) Option {
	return func(p *Pipeline) error {
		if table == nil {
			return ErrAliasTableRequired
		}
		p.aliases = table
		return nil
	}
}

// NewPipeline creates a new import pipeline.
func NewPipeline(jobRepository storage.JobRepository, opts ...Option) (*Pipeline, error) {
	if jobRepository == nil {
		return nil, ErrJobRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		jobRepository: jobRepository,
		aliases:       location.Default(),
		enrichPool:    pool,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create the processor after options are applied so it gets final config.
	enrichProc, err := newEnrichProcessor(jobRepository, p.aliases, p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.enrichProc = enrichProc

	return p, nil
}

// ImportResult summarizes one import batch.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Ingest validates and stores job postings, then enriches them
// asynchronously. Invalid records are logged and skipped rather than failing
// the batch. The source tag is applied to all records that don't carry one.
func (p *Pipeline) Ingest(ctx context.Context, jobs []*core.JobRecord, source string) (*ImportResult, error) {
	result := &ImportResult{}

	valid := make([]*core.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		if job == nil {
			result.Skipped++
			continue
		}
		if err := core.ValidateJobRecord(job); err != nil {
			p.logger.Warn("skipping invalid job record", "title", job.Title, "company", job.Company, "err", err)
			result.Skipped++
			continue
		}
		if job.Source == "" {
			job.Source = source
		}
		if job.PostedAt.IsZero() {
			job.PostedAt = time.Now().UTC()
		}
		valid = append(valid, job)
	}

	if len(valid) == 0 {
		return result, nil
	}

	added, err := p.jobRepository.AddJobs(ctx, valid...)
	if err != nil {
		return result, err
	}
	result.Imported = len(added)

	ids := make([]core.ID, len(added))
	for i, job := range added {
		ids[i] = job.Id
	}

	// Submit for async enrichment
	submitErr := p.enrichPool.Submit(func() {
		if err := p.enrichProc.process(context.Background(), ids...); err != nil {
			p.logger.Error("error enriching job records", "err", err)
		}
	})
	if submitErr != nil && !errors.Is(submitErr, ants.ErrPoolClosed) {
		p.logger.Error("error submitting enrichment task", "err", submitErr)
	}

	return result, nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.enrichPool != nil {
		p.enrichPool.Release()
	}
}
