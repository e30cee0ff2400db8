package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/location"
)

// Ranker filters and ranks in-memory job lists. The zero configuration uses
// the built-in alias table and default weights; construct via NewRanker.
type Ranker struct {
	aliases *location.Table
	weights Weights
	monitor Monitor
	logger  *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithAliases sets the location alias table used for filtering and
// suggestions. Default is location.Default().
func WithAliases(table *location.Table) Option {
	return func(r *Ranker) error {
		if table == nil {
			return ErrAliasTableRequired
		}
		r.aliases = table
		return nil
	}
}

// WithWeights sets the scoring weights.
func WithWeights(w Weights) Option {
	return func(r *Ranker) error {
		if err := w.Validate(); err != nil {
			return err
		}
		r.weights = w
		return nil
	}
}

// WithMonitor sets a monitor receiving callbacks at each ranking stage.
func WithMonitor(m Monitor) Option {
	return func(r *Ranker) error {
		if m == nil {
			m = &noopMonitor{}
		}
		r.monitor = m
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(opts ...Option) (*Ranker, error) {
	r := &Ranker{
		aliases: location.Default(),
		weights: DefaultWeights(),
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Search filters, scores, sorts, and paginates jobs against the query.
// It never returns an error: malformed filters act as no constraint, and an
// unexpected panic during ranking is logged and converted into an empty
// response so the caller's render never fails.
func (r *Ranker) Search(jobs []*core.JobRecord, q core.SearchQuery) (resp *core.SearchResponse) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("ranking failed, returning empty result set", "panic", p, "query", q.Text)
			resp = &core.SearchResponse{Results: []*core.ScoredResult{}}
		}
	}()

	r.monitor.Start(q)

	// 1. Hard filters, AND semantics.
	kept := make([]*core.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		if job == nil {
			continue
		}
		if r.passesFilters(job, q.Filters) {
			kept = append(kept, job)
		}
	}
	r.monitor.AfterFilter(kept)

	// 2. Free-text pass.
	terms := strings.Fields(strings.ToLower(q.Text))
	if len(terms) > 0 {
		matched := kept[:0]
		for _, job := range kept {
			if matchesAllTerms(job, terms) {
				matched = append(matched, job)
			}
		}
		kept = matched
	}
	r.monitor.AfterTextMatch(kept)

	// 3. Scoring pass.
	results := make([]*core.ScoredResult, 0, len(kept))
	for _, job := range kept {
		result := r.score(job, q)
		results = append(results, result)
		r.monitor.Scored(result)
	}

	// 4. Sort: relevance first, explicit tiebreak second, insertion order
	// last (the sort is stable).
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return tieLess(results[i].Job, results[j].Job, q.Sort)
	})

	total := len(results)

	// 5. Paginate.
	results = paginate(results, q.Page)

	resp = &core.SearchResponse{Results: results, Total: total}
	r.monitor.Finish(resp)
	return resp
}

// Suggestions ranks location names for autocomplete.
func (r *Ranker) Suggestions(query string, limit int) []string {
	return r.aliases.Search(query, limit)
}

// Aliases returns the table this ranker normalizes locations with.
func (r *Ranker) Aliases() *location.Table {
	return r.aliases
}

// tieLess compares two jobs by the explicit sort field. An unknown field or
// order means no constraint, preserving insertion order under stable sort.
func tieLess(a, b *core.JobRecord, s core.Sort) bool {
	var less, equal bool
	switch s.Field {
	case core.SortByPostedAt:
		less = a.PostedAt.Before(b.PostedAt)
		equal = a.PostedAt.Equal(b.PostedAt)
	case core.SortByTitle:
		less = strings.ToLower(a.Title) < strings.ToLower(b.Title)
		equal = strings.EqualFold(a.Title, b.Title)
	case core.SortByCompany:
		less = strings.ToLower(a.Company) < strings.ToLower(b.Company)
		equal = strings.EqualFold(a.Company, b.Company)
	default:
		return false
	}

	if equal {
		return false
	}
	if s.Order == core.SortDesc {
		return !less
	}
	return less
}

func paginate(results []*core.ScoredResult, page core.Page) []*core.ScoredResult {
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(results) {
		return []*core.ScoredResult{}
	}
	results = results[offset:]

	if page.Limit > 0 && len(results) > page.Limit {
		results = results[:page.Limit]
	}
	return results
}
