// Copyright 2025 Hirebuddy
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/hirebuddy/scout/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalJobRecord serializes a JobRecord to bytes.
func MarshalJobRecord(job *core.JobRecord) []byte {
	buf := make([]byte, core.JobRecordMUS.Size(*job))
	core.JobRecordMUS.Marshal(*job, buf)
	return buf
}

// UnmarshalJobRecord deserializes a JobRecord from bytes.
func UnmarshalJobRecord(data []byte) (*core.JobRecord, error) {
	job, _, err := core.JobRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// MarshalSearchEntry serializes a SearchEntry to bytes.
func MarshalSearchEntry(entry *core.SearchEntry) []byte {
	buf := make([]byte, core.SearchEntryMUS.Size(*entry))
	core.SearchEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalSearchEntry deserializes a SearchEntry from bytes.
func UnmarshalSearchEntry(data []byte) (*core.SearchEntry, error) {
	entry, _, err := core.SearchEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
