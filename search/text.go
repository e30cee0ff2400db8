package search

import (
	"strings"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/match"
)

// Stop words excluded from trending-term counts and fuzzy word matching
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "we": true, "our": true, "your": true,
}

// tokenizeAndFilter splits text into words, lowercases, trims punctuation, and removes stop words
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}/"))

		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// matchesAllTerms reports whether every query term hits the job, either as a
// plain substring of the searchable text or as a fuzzy word match above
// match.WordThreshold. Terms are already lowercased.
func matchesAllTerms(job *core.JobRecord, terms []string) bool {
	blob := strings.ToLower(job.SearchableText())
	words := tokenizeAndFilter(blob)

	for _, term := range terms {
		if strings.Contains(blob, term) {
			continue
		}
		if !fuzzyWordHit(words, term) {
			return false
		}
	}
	return true
}

// fuzzyWordHit reports whether any word clears the fuzzy threshold for term.
func fuzzyWordHit(words []string, term string) bool {
	for _, w := range words {
		if match.Similarity(w, term) > match.WordThreshold {
			return true
		}
	}
	return false
}
