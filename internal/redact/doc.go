// Package redact removes secrets from source code before it is sent to any
// LLM provider.
//
// Detection uses named regex heuristics covering common secret shapes: API
// keys, JWTs, private key blocks, AWS access key IDs and secret access keys,
// bearer tokens, and provider-specific tokens (Anthropic, OpenAI, Google,
// GitHub, Slack). [Apply] reports which rules fired so callers can tell the
// user what was withheld.
package redact
