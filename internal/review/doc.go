// Package review contains the types and engine for LLM-based code review.
//
// A [Submission] is a piece of source code with an optional declared
// language. The engine resolves the language (falling back to heuristic
// detection), redacts secrets, builds the "senior developer" prompt, and asks
// a provider for a markdown review. Responses are cached by provider, model,
// language and code, and parsed into a [feedback.Document] for rendering.
//
// [Engine.RunBatch] reviews several submissions with bounded concurrency and
// returns results in input order.
package review
