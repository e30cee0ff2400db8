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


// Package outreach defines the interfaces for LLM-backed outreach drafting.
//
// Job seekers use outreach to turn a posting plus their own profile into a
// first-contact email draft. The package defines provider-neutral interfaces;
// the openai subpackage implements them against OpenAI-compatible chat APIs
// and the mock subpackage provides test doubles.
//
// # Usage
//
//	cfg := outreach.NewConfig(outreach.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	draft, err := provider.EmailWriter().DraftEmail(ctx, profile, job)
package outreach
