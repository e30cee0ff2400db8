package badger

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/hirebuddy/scout/core"
)

// Key prefixes for different data types
const (
	jobRecordPrefix     = "jobrec"
	jobDatePrefix       = "jobrecd"
	jobCompanyPrefix    = "jobrecc"
	historyRecordPrefix = "hisrec"
	historyIDSeq        = "hisrecseq"
)

// makeJobKey generates a key for a job record by ID.
func makeJobKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", jobRecordPrefix, id))
}

// makeJobDateKey generates a composite key for the posted-date index.
// Format: prefix:timestamp:id
func makeJobDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := []byte(jobDatePrefix + ":")
	buf := make([]byte, len(prefix)+16) // 8 bytes timestamp + 8 bytes ID
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialJobDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialJobDateKey(timestamp time.Time) []byte {
	prefix := []byte(jobDatePrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeJobCompanyKey generates a composite key for the company index.
// Format: prefix:company:id
// The company segment is lowercased, so lookups are case-insensitive.
func makeJobCompanyKey(company string, id core.ID) []byte {
	prefix := jobCompanyPrefix + ":" + strings.ToLower(company) + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialJobCompanyKey generates a partial key for company queries.
func makePartialJobCompanyKey(company string) []byte {
	return []byte(jobCompanyPrefix + ":" + strings.ToLower(company) + ":")
}

// makeHistoryKey generates a key for a history entry by ID.
// IDs come from a sequence, so a BigEndian encoding keeps the log in
// insertion order under lexicographic iteration.
func makeHistoryKey(id core.ID) []byte {
	prefix := []byte(historyRecordPrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
