package search

import (
	"strings"

	"github.com/hirebuddy/scout/core"
)

// passesFilters applies every provided filter with AND semantics. Absent or
// unparseable filter values impose no constraint.
func (r *Ranker) passesFilters(job *core.JobRecord, f core.Filters) bool {
	if f.Location != "" && !r.locationMatches(job.Location, f.Location) {
		return false
	}

	if min := core.ParseTier(f.Tier); min != core.TierUnknown {
		if !effectiveTier(job).AtLeast(min) {
			return false
		}
	}

	if f.Remote != nil && isProbablyRemote(job) != *f.Remote {
		return false
	}

	if f.Company != "" {
		if !strings.Contains(strings.ToLower(job.Company), strings.ToLower(f.Company)) {
			return false
		}
	}

	return true
}

// locationMatches compares two free-text locations through the alias table
// using symmetric substring containment, so "Bangalore, India" matches a
// "Bengaluru" filter and vice versa.
func (r *Ranker) locationMatches(jobLocation, filterLocation string) bool {
	jl := strings.ToLower(r.aliases.Normalize(jobLocation))
	fl := strings.ToLower(r.aliases.Normalize(filterLocation))
	if jl == "" || fl == "" {
		return false
	}
	return strings.Contains(jl, fl) || strings.Contains(fl, jl)
}

// effectiveTier returns the cached tier when enrichment has run, otherwise
// infers one on the spot.
func effectiveTier(job *core.JobRecord) core.Tier {
	if job.Tier != core.TierUnknown {
		return job.Tier
	}
	return core.InferTier(job.Title, job.Description)
}

// isProbablyRemote combines the explicit flag with work-mode inference.
func isProbablyRemote(job *core.JobRecord) bool {
	if job.IsRemote {
		return true
	}
	mode := job.WorkMode
	if mode == core.WorkModeUnknown {
		mode = core.InferWorkMode(job.Location, job.Title, job.Description)
	}
	return mode == core.WorkModeRemote
}
