package core

import "strings"

// Tier is a coarse ordinal experience level inferred from free-text job
// descriptions. The ordering is fixed: intern < entry < mid < senior < lead.
// TierUnknown sits outside the ordering and never constrains a filter.
type Tier int

const (
	// TierUnknown means no tier could be inferred.
	TierUnknown Tier = iota
	// TierIntern covers internships and trainee roles.
	TierIntern
	// TierEntry covers fresher and 0-2 year roles.
	TierEntry
	// TierMid covers 2-5 year roles.
	TierMid
	// TierSenior covers 5+ year and senior-titled roles.
	TierSenior
	// TierLead covers lead, staff, principal, and management roles.
	TierLead
)

// String returns the lowercase name of the tier.
func (t Tier) String() string {
	switch t {
	case TierIntern:
		return "intern"
	case TierEntry:
		return "entry"
	case TierMid:
		return "mid"
	case TierSenior:
		return "senior"
	case TierLead:
		return "lead"
	default:
		return "unknown"
	}
}

// AtLeast reports whether t satisfies a filter requesting min.
// Unknown on either side imposes no constraint.
func (t Tier) AtLeast(min Tier) bool {
	if t == TierUnknown || min == TierUnknown {
		return true
	}
	return t >= min
}

// ParseTier maps a free-text tier name to a Tier.
// Unrecognized values map to TierUnknown, which filters treat as
// "no constraint" rather than an error.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intern", "internship", "trainee":
		return TierIntern
	case "entry", "entry-level", "entry level", "fresher", "junior", "graduate":
		return TierEntry
	case "mid", "mid-level", "mid level", "intermediate":
		return TierMid
	case "senior", "sr":
		return TierSenior
	case "lead", "staff", "principal", "manager":
		return TierLead
	default:
		return TierUnknown
	}
}
