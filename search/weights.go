package search

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights is the single scoring scheme applied by the ranker. Increments are
// additive on top of Base and the final score is capped at MaxScore.
type Weights struct {
	Base            int `yaml:"base"`
	RecentWeek      int `yaml:"recent_week"`      // posted within the last 7 days
	RecentMonth     int `yaml:"recent_month"`     // posted within the last 30 days
	RemoteMatch     int `yaml:"remote_match"`     // job satisfies a remote preference
	TierMatch       int `yaml:"tier_match"`       // job tier equals the requested tier
	TitleMatch      int `yaml:"title_match"`      // query text appears in the title
	CompanyMatch    int `yaml:"company_match"`    // company filter or query hits the company
	LocationExact   int `yaml:"location_exact"`   // normalized locations are equal
	LocationPartial int `yaml:"location_partial"` // normalized locations only overlap
	PopularCompany  int `yaml:"popular_company"`  // company is on the curated allow-list
	MaxScore        int `yaml:"max_score"`
}

// DefaultWeights returns the documented default scheme.
func DefaultWeights() Weights {
	return Weights{
		Base:            0,
		RecentWeek:      20,
		RecentMonth:     10,
		RemoteMatch:     15,
		TierMatch:       15,
		TitleMatch:      25,
		CompanyMatch:    15,
		LocationExact:   20,
		LocationPartial: 10,
		PopularCompany:  10,
		MaxScore:        100,
	}
}

// Validate rejects schemes that cannot produce a meaningful ranking.
func (w Weights) Validate() error {
	if w.MaxScore <= 0 {
		return fmt.Errorf("%w: max_score must be positive, got %d", ErrInvalidWeights, w.MaxScore)
	}
	if w.Base < 0 || w.Base > w.MaxScore {
		return fmt.Errorf("%w: base %d outside [0, %d]", ErrInvalidWeights, w.Base, w.MaxScore)
	}
	for name, v := range map[string]int{
		"recent_week":      w.RecentWeek,
		"recent_month":     w.RecentMonth,
		"remote_match":     w.RemoteMatch,
		"tier_match":       w.TierMatch,
		"title_match":      w.TitleMatch,
		"company_match":    w.CompanyMatch,
		"location_exact":   w.LocationExact,
		"location_partial": w.LocationPartial,
		"popular_company":  w.PopularCompany,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidWeights, name, v)
		}
	}
	return nil
}

// LoadWeights reads a YAML weights file, applying values over the defaults
// so a partial file only overrides the listed increments.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()

	b, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := yaml.Unmarshal(b, &w); err != nil {
		return w, err
	}
	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}
