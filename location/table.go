package location

import (
	"sort"
	"strings"

	"github.com/hirebuddy/scout/match"
)

// Alias binds one canonical place name to its known spelling variants.
type Alias struct {
	Canonical string
	Variants  []string
}

// Table maps free-text location strings to one canonical form so that
// filtering is alias-insensitive. A Table is built once and immutable
// afterwards, so it is safe for concurrent readers without locking.
type Table struct {
	canonicals []string            // sorted for deterministic ranking
	variants   map[string][]string // canonical -> registered variants
	reverse    map[string]string   // lowercased variant -> canonical
	popular    []string
}

// NewTable builds a table from the given aliases. Canonical names are
// self-referential lookup keys. The popular list is returned verbatim for
// empty search queries.
func NewTable(aliases []Alias, popular []string) *Table {
	t := &Table{
		variants: make(map[string][]string, len(aliases)),
		reverse:  make(map[string]string, len(aliases)*3),
		popular:  popular,
	}

	for _, a := range aliases {
		canonical := strings.TrimSpace(a.Canonical)
		if canonical == "" {
			continue
		}
		if _, dup := t.variants[canonical]; dup {
			continue
		}

		t.canonicals = append(t.canonicals, canonical)
		t.variants[canonical] = a.Variants
		t.reverse[strings.ToLower(canonical)] = canonical
		for _, v := range a.Variants {
			key := strings.ToLower(strings.TrimSpace(v))
			if key == "" {
				continue
			}
			if _, taken := t.reverse[key]; !taken {
				t.reverse[key] = canonical
			}
		}
	}

	sort.Strings(t.canonicals)
	return t
}

// Default returns the table for the built-in city alias set.
func Default() *Table {
	return NewTable(defaultAliases, popularLocations)
}

// Normalize maps input to its canonical location name. Lookup is
// case-insensitive on the trimmed input; unknown locations pass through
// trimmed but otherwise unchanged. Normalize never fails.
func (t *Table) Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if canonical, ok := t.reverse[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// VariantsOf returns the canonical name followed by all registered variants.
// Unknown names return just the input.
func (t *Table) VariantsOf(canonical string) []string {
	name := t.Normalize(canonical)
	variants, ok := t.variants[name]
	if !ok {
		return []string{canonical}
	}

	out := make([]string, 0, len(variants)+1)
	out = append(out, name)
	out = append(out, variants...)
	return out
}

// Popular returns the curated popular-locations list.
func (t *Table) Popular() []string {
	out := make([]string, len(t.popular))
	copy(out, t.popular)
	return out
}

// Match tiers used by Search, best first.
const (
	tierExact = iota
	tierPrefix
	tierSubstring
	tierFuzzy
)

// Search ranks canonical names against the query: exact match, then prefix,
// then substring, then fuzzy similarity above match.LocationThreshold.
// Ties within a tier break alphabetically. An empty query returns the
// popular-locations list instead.
func (t *Table) Search(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		results := t.Popular()
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}
		return results
	}

	type ranked struct {
		name string
		tier int
	}
	var hits []ranked

	for _, canonical := range t.canonicals {
		c := strings.ToLower(canonical)
		switch {
		case c == q:
			hits = append(hits, ranked{canonical, tierExact})
		case strings.HasPrefix(c, q):
			hits = append(hits, ranked{canonical, tierPrefix})
		case strings.Contains(c, q):
			hits = append(hits, ranked{canonical, tierSubstring})
		case match.Similarity(c, q) >= match.LocationThreshold:
			hits = append(hits, ranked{canonical, tierFuzzy})
		}
	}

	// canonicals are pre-sorted, so a stable sort on tier keeps
	// alphabetical order within each tier.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].tier < hits[j].tier
	})

	results := make([]string, 0, len(hits))
	for _, h := range hits {
		results = append(results, h.name)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
