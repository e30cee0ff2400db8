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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidJobRecord indicates a JobRecord failed validation.
	ErrInvalidJobRecord = errors.New("invalid job record")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyCompany indicates the Company field is empty.
	ErrEmptyCompany = errors.New("company cannot be empty")

	// ErrInvalidPostedAt indicates a publication date in the future.
	ErrInvalidPostedAt = errors.New("posted date cannot be in the future")

	// ErrInvalidSearchEntry indicates a SearchEntry failed validation.
	ErrInvalidSearchEntry = errors.New("invalid search entry")

	// ErrEmptyQuery indicates a search entry with neither text nor filters.
	ErrEmptyQuery = errors.New("search entry must record a query or filters")
)
