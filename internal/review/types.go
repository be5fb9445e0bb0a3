package review

import (
	"github.com/dshills/critic/internal/feedback"
	"github.com/dshills/critic/internal/redact"
)

// Tool and Version identify the producer in every Result.
const (
	Tool    = "critic"
	Version = "1.0"
)

// LanguageDeclared is the LanguageReason of a submission whose language was
// supplied by the caller rather than detected.
const LanguageDeclared = "declared"

// Submission is one piece of code to review.
type Submission struct {
	Code     string `json:"code"`
	Filename string `json:"filename,omitempty"`
	// Language is the declared language. Empty means detect it.
	Language string `json:"language,omitempty"`
}

// Timing contains performance metrics.
type Timing struct {
	LLMMs   int64 `json:"llmMs"`
	TotalMs int64 `json:"totalMs"`
}

// Result is the outcome of reviewing one Submission.
type Result struct {
	Tool           string            `json:"tool"`
	Version        string            `json:"version"`
	RunID          string            `json:"runId"`
	Filename       string            `json:"filename,omitempty"`
	Language       string            `json:"language"`
	LanguageReason string            `json:"languageReason"`
	Provider       string            `json:"provider"`
	Model          string            `json:"model"`
	Feedback       string            `json:"feedback"`
	Document       feedback.Document `json:"document"`
	Redactions     []redact.Hit      `json:"redactions,omitempty"`
	Cached         bool              `json:"cached"`
	TokensUsed     int               `json:"tokensUsed,omitempty"`
	Timing         Timing            `json:"timing"`
}
