package core

import "testing"

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"intern", TierIntern},
		{"Internship", TierIntern},
		{"entry", TierEntry},
		{"fresher", TierEntry},
		{"  Junior ", TierEntry},
		{"mid", TierMid},
		{"intermediate", TierMid},
		{"senior", TierSenior},
		{"SR", TierSenior},
		{"lead", TierLead},
		{"principal", TierLead},
		{"", TierUnknown},
		{"wizard", TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseTier(tt.in); got != tt.want {
				t.Errorf("ParseTier(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTier_AtLeast(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		min  Tier
		want bool
	}{
		{"senior satisfies mid", TierSenior, TierMid, true},
		{"entry fails senior", TierEntry, TierSenior, false},
		{"equal tiers match", TierMid, TierMid, true},
		{"intern below entry", TierIntern, TierEntry, false},
		{"entry satisfies intern", TierEntry, TierIntern, true},
		{"unknown job passes any filter", TierUnknown, TierSenior, true},
		{"unknown filter passes any job", TierIntern, TierUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.AtLeast(tt.min); got != tt.want {
				t.Errorf("%v.AtLeast(%v) = %v, want %v", tt.tier, tt.min, got, tt.want)
			}
		})
	}
}

func TestInferTier(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        Tier
	}{
		{"intern title", "Software Engineering Intern", "", TierIntern},
		{"lead title", "Staff Engineer", "", TierLead},
		{"lead beats senior in title", "Senior Staff Engineer", "", TierLead},
		{"senior title", "Senior React Developer", "", TierSenior},
		{"fresher description", "Developer", "Great role for a fresher", TierEntry},
		{"zero to one years", "Developer", "0-1 years of experience required", TierEntry},
		{"five plus years", "Developer", "5+ years building distributed systems", TierSenior},
		{"three plus years", "Developer", "3+ years with Go", TierMid},
		{"bare year figure", "Developer", "requires 7 years of experience", TierSenior},
		{"no signal", "Developer", "Build things with us", TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferTier(tt.title, tt.description); got != tt.want {
				t.Errorf("InferTier(%q, %q) = %v, want %v", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestInferWorkMode(t *testing.T) {
	tests := []struct {
		name     string
		location string
		title    string
		desc     string
		want     WorkMode
	}{
		{"remote location", "Remote", "", "", WorkModeRemote},
		{"remote in description", "Bangalore", "Engineer", "fully remote team", WorkModeRemote},
		{"hybrid", "Pune", "Engineer", "hybrid 3 days a week", WorkModeHybrid},
		{"onsite", "Mumbai", "Engineer", "on-site only", WorkModeOnsite},
		{"no signal", "Chennai", "Engineer", "build things", WorkModeUnknown},
		{"remote wins over hybrid", "Remote", "Engineer", "hybrid optional", WorkModeRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferWorkMode(tt.location, tt.title, tt.desc); got != tt.want {
				t.Errorf("InferWorkMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
