package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// WorkMode classifies where a job is performed.
type WorkMode int

const (
	// WorkModeUnknown means the posting gave no usable signal.
	WorkModeUnknown WorkMode = iota
	// WorkModeRemote is fully remote.
	WorkModeRemote
	// WorkModeHybrid mixes remote and office days.
	WorkModeHybrid
	// WorkModeOnsite is office only.
	WorkModeOnsite
)

// String returns the lowercase name of the work mode.
func (m WorkMode) String() string {
	switch m {
	case WorkModeRemote:
		return "remote"
	case WorkModeHybrid:
		return "hybrid"
	case WorkModeOnsite:
		return "onsite"
	default:
		return "unknown"
	}
}

// JobRecord represents a single job posting.
// It may be enriched with an inferred tier, work mode, and canonical
// location during processing; the ranking layer only ever reads it.
type JobRecord struct {
	Id          ID
	Title       string
	Company     string
	Location    string // free text as published
	Description string
	Tags        []string
	WorkMode    WorkMode // inferred by enrichment, WorkModeUnknown until then
	Tier        Tier     // inferred by enrichment, TierUnknown until then
	IsRemote    bool
	URL         string
	Source      string    // where the posting came from (import file, board name)
	PostedAt    time.Time // when the job was originally published
	InsertedAt  time.Time // when the record was inserted into the database
	UpdatedAt   time.Time // when the record was last updated
}

// ContentKey returns the string this record's identity hash is computed from.
// Two imports of the same posting collapse to the same ID.
func (j *JobRecord) ContentKey() string {
	return j.Company + "|" + j.Title + "|" + j.URL
}

// SearchableText concatenates every field free-text matching runs against.
func (j *JobRecord) SearchableText() string {
	parts := make([]string, 0, 4+len(j.Tags))
	parts = append(parts, j.Title, j.Company, j.Location, j.Description)
	parts = append(parts, j.Tags...)
	return strings.Join(parts, " ")
}

// RemoteFriendly reports whether the job should be treated as remote.
// The explicit flag wins; otherwise the inferred work mode decides.
func (j *JobRecord) RemoteFriendly() bool {
	return j.IsRemote || j.WorkMode == WorkModeRemote
}

// SortField selects the tiebreak ordering applied after relevance.
type SortField string

const (
	// SortByPostedAt orders ties by publication date.
	SortByPostedAt SortField = "posted_at"
	// SortByTitle orders ties by job title.
	SortByTitle SortField = "title"
	// SortByCompany orders ties by company name.
	SortByCompany SortField = "company"
)

// SortOrder is the direction of the tiebreak ordering.
type SortOrder string

const (
	// SortAsc sorts ascending.
	SortAsc SortOrder = "asc"
	// SortDesc sorts descending.
	SortDesc SortOrder = "desc"
)

// Filters narrows a search. Zero-valued fields impose no constraint, and
// unparseable values degrade to no constraint rather than failing the call.
type Filters struct {
	Location string // matched through the alias table
	Tier     string // minimum experience tier, parsed leniently
	Remote   *bool  // nil means either
	Company  string // case-insensitive substring
}

// Summary renders the filters as a short human-readable string for history.
func (f Filters) Summary() string {
	var parts []string
	if f.Location != "" {
		parts = append(parts, "location="+f.Location)
	}
	if f.Tier != "" {
		parts = append(parts, "tier="+f.Tier)
	}
	if f.Remote != nil {
		if *f.Remote {
			parts = append(parts, "remote=yes")
		} else {
			parts = append(parts, "remote=no")
		}
	}
	if f.Company != "" {
		parts = append(parts, "company="+f.Company)
	}
	return strings.Join(parts, " ")
}

// Sort is the optional explicit tiebreak applied after relevance score.
type Sort struct {
	Field SortField
	Order SortOrder
}

// Page slices the sorted result list.
type Page struct {
	Offset int
	Limit  int // <= 0 means no limit
}

// SearchQuery is a single ranking request. It is transient, constructed per
// call, and never stored by the ranking layer.
type SearchQuery struct {
	Text    string
	Filters Filters
	Sort    Sort
	Page    Page
}

// ScoredResult pairs a job with its relevance score and the reasons it
// earned it. Created fresh per query.
type ScoredResult struct {
	Job          *JobRecord
	Score        int // additive, capped at 100
	MatchReasons []string
}

// SearchResponse is the paginated outcome of a ranking call.
// Total counts matches before pagination.
type SearchResponse struct {
	Results []*ScoredResult
	Total   int
}

// SearchEntry is a persisted record of a past search.
type SearchEntry struct {
	Id        ID
	Query     string
	Filters   string // human-readable summary of the applied filters
	Hits      int
	Timestamp time.Time
}
