package providers

import (
	"context"
	"fmt"
	"strings"
)

// defaultMaxTokens caps a response when the request leaves MaxTokens unset.
const defaultMaxTokens = 4096

// ReviewRequest contains the data sent to an LLM for review.
type ReviewRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

func (r ReviewRequest) maxTokens() int {
	if r.MaxTokens > 0 {
		return r.MaxTokens
	}
	return defaultMaxTokens
}

// ReviewResponse contains the raw response from an LLM.
type ReviewResponse struct {
	Content    string
	TokensUsed int
}

// Reviewer is the provider abstraction interface.
type Reviewer interface {
	Review(ctx context.Context, req ReviewRequest) (ReviewResponse, error)
	Name() string
}

// New creates a provider by name.
func New(provider, model string) (Reviewer, error) {
	switch strings.ToLower(provider) {
	case "gemini", "google":
		return NewGemini(model)
	case "anthropic", "claude":
		return NewAnthropic(model)
	case "openai":
		return NewOpenAI(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// Names lists the canonical provider names accepted by New.
func Names() []string {
	return []string{"gemini", "anthropic", "openai", "ollama"}
}

// DefaultModel returns the model used for a provider when none is configured.
func DefaultModel(provider string) string {
	switch strings.ToLower(provider) {
	case "anthropic", "claude":
		return "claude-sonnet-4-6"
	case "openai":
		return "gpt-4.1-mini"
	case "ollama", "lmstudio":
		return "qwen2.5-coder"
	default:
		return "gemini-2.5-flash"
	}
}
