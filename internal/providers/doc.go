// Package providers implements the Reviewer interface for each supported LLM
// provider.
//
// Supported providers: Google (Gemini, the default), Anthropic (Claude),
// OpenAI (GPT), and Ollama / LM Studio for local models.
//
// All providers share one JSON transport helper that maps HTTP status codes to
// typed errors, and a retry helper with exponential back-off for rate limits
// and server errors. HTTP clients are struct fields so that tests can redirect
// calls to local httptest servers without making live API requests.
//
// Use [New] to obtain a Reviewer by provider name and model string.
package providers
