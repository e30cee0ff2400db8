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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/outreach"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// EmailWriter implements outreach.EmailWriter using OpenAI-compatible chat APIs.
type EmailWriter struct {
	client       llms.Model
	maxBodyWords int
	logger       *slog.Logger
}

// draft is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// newEmailWriter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmailWriter(config *outreach.Config) (*EmailWriter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &EmailWriter{
		client:       client,
		maxBodyWords: config.MaxBodyWords,
		logger:       slog.Default().With("component", "openai-writer"),
	}, nil
}

// NewEmailWriter creates a new email writer using the provided configuration.
//
// Returns outreach.EmailWriter interface to enforce abstraction.
func NewEmailWriter(config *outreach.Config) (outreach.EmailWriter, error) {
	return newEmailWriter(config)
}

// DraftEmail writes a first-contact email for the posting using an LLM.
func (w *EmailWriter) DraftEmail(ctx context.Context, sender outreach.SenderProfile, job *core.JobRecord) (*outreach.Draft, error) {
	if job == nil {
		return nil, fmt.Errorf("job record required")
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt(w.maxBodyWords)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildUserPrompt(sender, job)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result draft
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := w.client.GenerateContent(ctx, content, llms.WithTemperature(0.4), llms.WithJSONMode())
		if err != nil {
			w.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			lastErr = fmt.Errorf("no choices returned from model")
			continue
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			w.logger.Warn("error parsing draft response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		if strings.TrimSpace(result.Subject) == "" || strings.TrimSpace(result.Body) == "" {
			lastErr = fmt.Errorf("draft missing subject or body")
			continue
		}

		w.logger.Debug("drafted outreach email",
			"company", job.Company,
			"subject", result.Subject,
			"body_words", len(strings.Fields(result.Body)))

		return &outreach.Draft{
			Subject: strings.TrimSpace(result.Subject),
			Body:    strings.TrimSpace(result.Body),
		}, nil
	}

	w.logger.Error("failed to obtain a usable draft after retries", "err", lastErr)
	return nil, lastErr
}
