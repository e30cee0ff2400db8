package openai

import (
	"fmt"
	"strings"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/outreach"
)

const draftResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "subject": {
      "type": "string"
    },
    "body": {
      "type": "string"
    }
  },
  "required": ["subject", "body"],
  "additionalProperties": false
}`

const draftPromptTemplate = `Write a first-contact job application email and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The subject line names the role and stays under 70 characters.
- The body runs greeting through signoff, plain text, at most %d words.
- Ground every claim in the sender profile given by the user. Do not invent experience, employers, or numbers.
- Mention one or two specifics from the job posting so the mail reads as written for it, not mass-sent.
- Plain, direct tone. No flattery, no buzzwords, no emoji.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildSystemPrompt renders the drafting instructions with the body cap.
func buildSystemPrompt(maxBodyWords int) string {
	return fmt.Sprintf(draftPromptTemplate, draftResponseSchema, maxBodyWords)
}

// buildUserPrompt renders the posting and sender profile the draft must be
// grounded in.
func buildUserPrompt(sender outreach.SenderProfile, job *core.JobRecord) string {
	var b strings.Builder

	b.WriteString("Job posting:\n")
	fmt.Fprintf(&b, "  Title: %s\n", job.Title)
	fmt.Fprintf(&b, "  Company: %s\n", job.Company)
	if job.Location != "" {
		fmt.Fprintf(&b, "  Location: %s\n", job.Location)
	}
	if job.Description != "" {
		fmt.Fprintf(&b, "  Description: %s\n", job.Description)
	}
	if len(job.Tags) > 0 {
		fmt.Fprintf(&b, "  Tags: %s\n", strings.Join(job.Tags, ", "))
	}

	b.WriteString("\nSender profile:\n")
	fmt.Fprintf(&b, "  Name: %s\n", sender.Name)
	if sender.Headline != "" {
		fmt.Fprintf(&b, "  Headline: %s\n", sender.Headline)
	}
	if len(sender.Skills) > 0 {
		fmt.Fprintf(&b, "  Skills: %s\n", strings.Join(sender.Skills, ", "))
	}
	for _, h := range sender.Highlights {
		fmt.Fprintf(&b, "  - %s\n", h)
	}

	return b.String()
}
