// Critic is a CLI for reviewing code with LLM providers.
//
// It classifies the language of each input locally, redacts secrets, asks
// the configured provider for a review and renders the feedback with syntax
// highlighted code blocks.
//
// Usage:
//
//	critic review main.go util.py     # review files in parallel
//	cat snippet.js | critic review    # review code from stdin
//	critic detect src/*               # guess languages without a provider
//	critic highlight --format html x.rs
//	critic render review.md           # format saved review text
package main
