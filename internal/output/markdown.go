package output

import (
	"io"
	"strings"

	"github.com/dshills/critic/internal/feedback"
	"github.com/dshills/critic/internal/redact"
	"github.com/dshills/critic/internal/review"
)

// MarkdownWriter outputs a PR-comment-friendly markdown review.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, result *review.Result) error {
	ew := &errWriter{w: w}

	ew.printf("## Critic Code Review: `%s`\n\n", displayName(result.Filename))
	if result.Provider != "" {
		ew.printf("**Language:** %s (%s) | **Provider:** %s / %s", result.Language, result.LanguageReason, result.Provider, result.Model)
		if result.Cached {
			ew.print(" | cached")
		}
		ew.print("\n\n")
	}
	if n := redact.Total(result.Redactions); n > 0 {
		ew.printf("> Redacted %d secret(s) before review: %s\n\n", n, hitSummary(result.Redactions))
	}

	if len(result.Document.Sections) == 0 {
		ew.println("The review is empty.")
		return ew.err
	}

	for _, sec := range result.Document.Sections {
		if sec.Title != "" {
			ew.printf("### %s\n\n", sec.Title)
		}
		for _, p := range sec.Paragraphs {
			if p.Kind == feedback.BlockCode && p.Code != nil {
				ew.printf("%s%s\n%s\n%s\n\n", fence(p.Code.Code), fenceLanguage(p.Code.Language), p.Code.Code, fence(p.Code.Code))
				continue
			}
			if icon := mdBlockIcon(p.Kind); icon != "" {
				ew.printf("%s %s\n\n", icon, p.Text)
			} else {
				ew.printf("%s\n\n", p.Text)
			}
		}
	}

	if result.Provider != "" {
		ew.printf("*Reviewed in %dms (LLM: %dms)*\n", result.Timing.TotalMs, result.Timing.LLMMs)
	}
	return ew.err
}

func mdBlockIcon(kind feedback.BlockKind) string {
	switch kind {
	case feedback.BlockError:
		return ":rotating_light:"
	case feedback.BlockWarning:
		return ":warning:"
	case feedback.BlockSuccess, feedback.BlockGeneral:
		return ":white_check_mark:"
	default:
		return ""
	}
}

// fence returns a backtick fence longer than any backtick run inside code.
func fence(code string) string {
	longest, run := 0, 0
	for _, r := range code {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}

// fenceLanguage maps a catalog label onto a common fence info string.
func fenceLanguage(label string) string {
	switch l := strings.ToLower(label); l {
	case "c++":
		return "cpp"
	case "text", "":
		return ""
	default:
		return strings.ReplaceAll(l, " ", "")
	}
}

