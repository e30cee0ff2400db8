package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/location"
	"github.com/hirebuddy/scout/storage"
)

// enrichProcessor fills in inferred fields on freshly imported job records:
// experience tier, work mode, the remote flag, and canonical location.
type enrichProcessor struct {
	jobRepository storage.JobRepository
	aliases       *location.Table
	logger        *slog.Logger
}

var _ processor = (*enrichProcessor)(nil)

// newEnrichProcessor creates a new enrichment processor.
func newEnrichProcessor(jobRepository storage.JobRepository, aliases *location.Table, logger *slog.Logger) (processor, error) {
	if jobRepository == nil {
		return nil, fmt.Errorf("job repository required")
	}
	if aliases == nil {
		return nil, fmt.Errorf("alias table required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &enrichProcessor{
		jobRepository: jobRepository,
		aliases:       aliases,
		logger:        logger.With("processor", "enrichment"),
	}, nil
}

// process enriches the specified job records in place.
func (ep *enrichProcessor) process(ctx context.Context, ids ...core.ID) error {
	ep.logger.Info("enriching job records", "records", len(ids))

	slices.Sort(ids)

	jobs, err := ep.jobRepository.GetJobs(ctx, ids...)
	if err != nil {
		ep.logger.Error("error retrieving job records", "err", err)
		return err
	}
	if len(jobs) == 0 {
		return nil
	}

	for _, job := range jobs {
		enrichJob(job, ep.aliases)
	}

	if _, err := ep.jobRepository.UpdateJobs(ctx, jobs...); err != nil {
		return err
	}
	return nil
}

// enrichJob infers missing classification fields. Already-set fields are
// left alone so manual corrections survive a re-run.
func enrichJob(job *core.JobRecord, aliases *location.Table) {
	if job.Tier == core.TierUnknown {
		job.Tier = core.InferTier(job.Title, job.Description)
	}
	if job.WorkMode == core.WorkModeUnknown {
		job.WorkMode = core.InferWorkMode(job.Location, job.Title, job.Description)
	}
	if !job.IsRemote && job.WorkMode == core.WorkModeRemote {
		job.IsRemote = true
	}
	job.Location = aliases.Normalize(job.Location)
}
