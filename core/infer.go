package core

import (
	"regexp"
	"strings"
)

// Keyword tables for tier inference, checked from most to least specific.
// A lead match must win over "senior" appearing in the same posting
// ("Senior Staff Engineer"), so order matters.
var (
	internKeywords = []string{"intern", "internship", "trainee", "apprentice"}
	leadKeywords   = []string{"lead", "staff engineer", "principal", "architect", "engineering manager", "head of"}
	seniorKeywords = []string{"senior", "sr.", "sr ", "5+ years", "6+ years", "7+ years", "8+ years", "10+ years"}
	midKeywords    = []string{"mid-level", "mid level", "2+ years", "3+ years", "4+ years", "2-4 years", "3-5 years"}
	entryKeywords  = []string{"fresher", "entry-level", "entry level", "junior", "graduate", "0-1 years", "0-2 years", "1-2 years", "new grad"}
)

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years?|yrs?)`)

// InferTier classifies a posting into a coarse experience tier using
// keyword heuristics over the title and description. Title signals are
// checked first since they are the stronger indicator.
func InferTier(title, description string) Tier {
	titleLower := strings.ToLower(title)
	blob := titleLower + " " + strings.ToLower(description)

	for _, kw := range internKeywords {
		if strings.Contains(titleLower, kw) {
			return TierIntern
		}
	}
	for _, kw := range leadKeywords {
		if strings.Contains(titleLower, kw) {
			return TierLead
		}
	}
	if strings.Contains(titleLower, "senior") || strings.Contains(titleLower, "sr.") {
		return TierSenior
	}

	for _, kw := range internKeywords {
		if strings.Contains(blob, kw) {
			return TierIntern
		}
	}
	for _, kw := range entryKeywords {
		if strings.Contains(blob, kw) {
			return TierEntry
		}
	}
	for _, kw := range seniorKeywords {
		if strings.Contains(blob, kw) {
			return TierSenior
		}
	}
	for _, kw := range midKeywords {
		if strings.Contains(blob, kw) {
			return TierMid
		}
	}

	// Fall back to the largest explicit year figure mentioned anywhere.
	if m := yearsPattern.FindAllStringSubmatch(blob, -1); m != nil {
		max := 0
		for _, g := range m {
			n := 0
			for _, c := range g[1] {
				n = n*10 + int(c-'0')
			}
			if n > max {
				max = n
			}
		}
		switch {
		case max >= 5:
			return TierSenior
		case max >= 2:
			return TierMid
		case max >= 0 && max <= 1:
			return TierEntry
		}
	}

	return TierUnknown
}

// InferWorkMode decides remote/hybrid/onsite from free text.
// Any mention of "remote" wins, then "hybrid", then onsite spellings.
func InferWorkMode(location, title, description string) WorkMode {
	blob := strings.ToLower(strings.Join([]string{location, title, description}, " "))

	switch {
	case strings.Contains(blob, "remote") || strings.Contains(blob, "work from home") || strings.Contains(blob, "wfh"):
		return WorkModeRemote
	case strings.Contains(blob, "hybrid"):
		return WorkModeHybrid
	case strings.Contains(blob, "on-site") || strings.Contains(blob, "onsite") || strings.Contains(blob, "on site") || strings.Contains(blob, "in office") || strings.Contains(blob, "in-office"):
		return WorkModeOnsite
	default:
		return WorkModeUnknown
	}
}
