package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hirebuddy/scout/core"
)

// feedItem is the wire shape of one posting in a JSON job feed.
type feedItem struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	PostedAt    string   `json:"posted_at"` // RFC 3339 or YYYY-MM-DD
}

// DecodeJobs reads a JSON array of postings from r and converts them to job
// records. Decode failures cover the whole feed; per-record validation
// happens later in the pipeline.
func DecodeJobs(r io.Reader) ([]*core.JobRecord, error) {
	var items []feedItem
	dec := json.NewDecoder(r)
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFeed, err)
	}

	jobs := make([]*core.JobRecord, 0, len(items))
	for _, item := range items {
		job := &core.JobRecord{
			Title:       strings.TrimSpace(item.Title),
			Company:     strings.TrimSpace(item.Company),
			Location:    strings.TrimSpace(item.Location),
			Description: item.Description,
			Tags:        item.Tags,
			IsRemote:    item.Remote,
			URL:         strings.TrimSpace(item.URL),
			PostedAt:    parseFeedTime(item.PostedAt),
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// parseFeedTime accepts the timestamp formats seen in the wild.
// Unparseable values come back zero and get defaulted at import time.
func parseFeedTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
