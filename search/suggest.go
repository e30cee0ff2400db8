package search

import (
	"sort"

	"github.com/hirebuddy/scout/core"
)

// TrendingTerms counts word frequency over titles, companies, and tags,
// stop words excluded, and returns the top terms. Ties break alphabetically
// so the output is deterministic for a fixed job list.
func TrendingTerms(jobs []*core.JobRecord, limit int) []string {
	counts := make(map[string]int)
	for _, job := range jobs {
		if job == nil {
			continue
		}
		for _, w := range tokenizeAndFilter(job.Title) {
			counts[w]++
		}
		for _, w := range tokenizeAndFilter(job.Company) {
			counts[w]++
		}
		for _, tag := range job.Tags {
			for _, w := range tokenizeAndFilter(tag) {
				counts[w]++
			}
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
