// Package match provides edit-distance string similarity used for
// typo-tolerant search and location aliasing.
package match

// Similarity thresholds used across the module. Call sites reference these
// constants instead of inlining magic numbers so the accept bar can be tuned
// in one place.
const (
	// LocationThreshold is the minimum similarity for a fuzzy location hit.
	LocationThreshold = 0.6

	// WordThreshold is the minimum similarity for a fuzzy free-text word hit.
	WordThreshold = 0.7
)

// LevenshteinDistance computes the edit distance between a and b with unit
// costs for insertion, deletion, and substitution. It is symmetric and zero
// for identical strings.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two-row DP; prev[j] is the distance between ra[:i] and rb[:j].
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d := prev[j] + 1 // deletion
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			if sub := prev[j-1] + cost; sub < d {
				d = sub
			}
			curr[j] = d
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity scores how alike two strings are on a [0,1] scale:
// (maxLen - distance) / maxLen. Identical strings score 1.0, including the
// empty/empty case; if exactly one string is empty the score is 0.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}

	return float64(maxLen-LevenshteinDistance(a, b)) / float64(maxLen)
}
