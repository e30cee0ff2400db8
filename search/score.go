package search

import (
	"strings"
	"time"

	"github.com/hirebuddy/scout/core"
)

// popularCompanies is the static allow-list that earns a small scoring boost.
var popularCompanies = map[string]bool{
	"google":    true,
	"microsoft": true,
	"amazon":    true,
	"flipkart":  true,
	"swiggy":    true,
	"zomato":    true,
	"razorpay":  true,
	"zerodha":   true,
	"infosys":   true,
	"tcs":       true,
	"wipro":     true,
	"freshworks": true,
}

// score computes the additive relevance score and its match reasons.
func (r *Ranker) score(job *core.JobRecord, q core.SearchQuery) *core.ScoredResult {
	w := r.weights
	score := w.Base
	var reasons []string

	add := func(points int, reason string) {
		if points <= 0 {
			return
		}
		score += points
		reasons = append(reasons, reason)
	}

	// Recency.
	if !job.PostedAt.IsZero() {
		age := time.Since(job.PostedAt)
		switch {
		case age <= 7*24*time.Hour:
			add(w.RecentWeek, "posted this week")
		case age <= 30*24*time.Hour:
			add(w.RecentMonth, "posted this month")
		}
	}

	// Remote preference.
	if q.Filters.Remote != nil && *q.Filters.Remote && isProbablyRemote(job) {
		add(w.RemoteMatch, "remote")
	}

	// Exact tier match. The filter only guarantees "at least".
	if min := core.ParseTier(q.Filters.Tier); min != core.TierUnknown && effectiveTier(job) == min {
		add(w.TierMatch, "tier match")
	}

	// Title and company hits from the free-text query.
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text != "" {
		if strings.Contains(strings.ToLower(job.Title), text) {
			add(w.TitleMatch, "title match")
		}
		if strings.Contains(strings.ToLower(job.Company), text) {
			add(w.CompanyMatch, "company match")
		}
	} else if q.Filters.Company != "" {
		add(w.CompanyMatch, "company match")
	}

	// Location: exact canonical equality beats partial overlap.
	if q.Filters.Location != "" {
		jl := strings.ToLower(r.aliases.Normalize(job.Location))
		fl := strings.ToLower(r.aliases.Normalize(q.Filters.Location))
		if jl == fl {
			add(w.LocationExact, "location match")
		} else {
			add(w.LocationPartial, "location partial")
		}
	}

	if popularCompanies[strings.ToLower(strings.TrimSpace(job.Company))] {
		add(w.PopularCompany, "popular company")
	}

	if score > w.MaxScore {
		score = w.MaxScore
	}

	return &core.ScoredResult{
		Job:          job,
		Score:        score,
		MatchReasons: reasons,
	}
}
