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


// Package search filters and ranks job postings against a query.
//
// The Ranker type implements a multi-stage algorithm:
//   - Hard filters with AND semantics (location, tier, remote, company)
//   - Typo-tolerant free-text matching with edit-distance similarity
//   - Additive relevance scoring, capped, with per-result match reasons
//
// Ranking is a pure in-memory function per call: it performs no I/O, keeps
// no state between calls, and is safe to invoke from concurrent requests.
// Malformed filter values degrade to "no constraint", and any unexpected
// failure during ranking degrades to an empty result set rather than an
// error to the caller.
package search
