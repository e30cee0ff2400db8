// Package openai implements outreach interfaces against OpenAI-compatible
// chat completion APIs.
//
// The implementation works with any service exposing the OpenAI chat API,
// including local runtimes like Ollama, LocalAI, and vLLM. Responses are
// requested in JSON mode; markdown fences and common JSON defects are
// stripped or repaired before parsing, with up to three attempts per draft.
package openai
