package search

import (
	"testing"

	"github.com/hirebuddy/scout/core"
	"github.com/stretchr/testify/assert"
)

func TestTokenizeAndFilter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases and trims punctuation", "Senior Developer, (Remote)", []string{"senior", "developer", "remote"}},
		{"drops stop words", "We are looking for a developer", []string{"looking", "developer"}},
		{"slash separated stays whole", "frontend/backend", []string{"frontend/backend"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenizeAndFilter(tt.text))
		})
	}
}

func TestMatchesAllTerms(t *testing.T) {
	job := &core.JobRecord{
		Title:       "Senior Go Developer",
		Company:     "Acme",
		Location:    "Pune",
		Description: "Building distributed systems",
		Tags:        []string{"golang", "kubernetes"},
	}

	tests := []struct {
		name  string
		terms []string
		want  bool
	}{
		{"single substring", []string{"distributed"}, true},
		{"term from tags", []string{"kubernetes"}, true},
		{"all terms must hit", []string{"go", "systems"}, true},
		{"one miss fails", []string{"go", "blockchain"}, false},
		{"fuzzy typo hits", []string{"kubernates"}, true},
		{"no terms", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesAllTerms(job, tt.terms))
		})
	}
}

func TestFuzzyWordHit(t *testing.T) {
	words := []string{"developer", "engineer"}

	assert.True(t, fuzzyWordHit(words, "developr"))
	assert.True(t, fuzzyWordHit(words, "enginer"))
	assert.False(t, fuzzyWordHit(words, "designer"))
	assert.False(t, fuzzyWordHit(nil, "anything"))
}
