package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/critic/internal/feedback"
	"github.com/dshills/critic/internal/highlight"
	"github.com/dshills/critic/internal/redact"
	"github.com/dshills/critic/internal/review"
)

// wrapWidth is the display width of wrapped prose, excluding the left bar.
const wrapWidth = 76

// TextWriter outputs a human-readable terminal review.
type TextWriter struct {
	// NoColor disables all colours and styling except the left bars. The
	// color.NoColor global (NO_COLOR, non-terminal stdout) has the same effect.
	NoColor bool
}

func (t *TextWriter) Write(w io.Writer, result *review.Result) error {
	th := newTheme(t.NoColor || color.NoColor)
	ew := &errWriter{w: w}

	if result.Provider != "" {
		ew.println(th.header.Render("Critic Code Review: " + displayName(result.Filename)))
		ew.printf("Language: %s (%s) | Provider: %s / %s", result.Language, result.LanguageReason, result.Provider, result.Model)
		if result.Cached {
			ew.print(" | cached")
		}
		ew.println("")
		if n := redact.Total(result.Redactions); n > 0 {
			ew.printf("Redacted %d secret(s) before review: %s\n", n, hitSummary(result.Redactions))
		}
		ew.println(strings.Repeat("─", 60))
	}

	if len(result.Document.Sections) == 0 {
		ew.println("\nThe review is empty.")
		return ew.err
	}

	for _, sec := range result.Document.Sections {
		ew.println("")
		if sec.Title != "" {
			ew.println(th.title.Render(sec.Title))
			ew.println("")
		}
		for _, p := range sec.Paragraphs {
			if p.Kind == feedback.BlockCode && p.Code != nil {
				writeTextCode(ew, th, p.Code.Language, p.Code.Tokens)
				continue
			}
			text := blockIcon(p.Kind) + " " + p.Text
			ew.println(th.block(p.Kind).Render(strings.Join(wrapText(text, wrapWidth), "\n")))
		}
	}

	if result.Provider != "" {
		ew.printf("\n%s\n", strings.Repeat("─", 60))
		if result.Cached {
			ew.printf("Served from cache in %dms\n", result.Timing.TotalMs)
		} else {
			ew.printf("Completed in %dms (LLM: %dms)\n", result.Timing.TotalMs, result.Timing.LLMMs)
		}
	}
	return ew.err
}

// WriteTokens writes colourised code to w.
func (t *TextWriter) WriteTokens(w io.Writer, language string, tokens []highlight.Token) error {
	th := newTheme(t.NoColor || color.NoColor)
	ew := &errWriter{w: w}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(th.paint(tok))
	}
	out := b.String()
	ew.print(out)
	if out != "" && !strings.HasSuffix(out, "\n") {
		ew.println("")
	}
	return ew.err
}

func writeTextCode(ew *errWriter, th theme, language string, tokens []highlight.Token) {
	ew.println(th.code.Render("── " + language + " ──"))
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(th.paint(tok))
	}
	for _, line := range strings.Split(b.String(), "\n") {
		ew.printf("    %s\n", line)
	}
	ew.println("")
}

func hitSummary(hits []redact.Hit) string {
	parts := make([]string, len(hits))
	for i, h := range hits {
		parts[i] = fmt.Sprintf("%s×%d", h.Rule, h.Count)
	}
	return strings.Join(parts, ", ")
}

// wrapText breaks text into lines no wider than width display cells.
// Existing line breaks are kept; words wider than width get a line of their own.
func wrapText(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if runewidth.StringWidth(para) <= width {
			lines = append(lines, para)
			continue
		}
		var cur strings.Builder
		curWidth := 0
		for _, word := range strings.Fields(para) {
			ww := runewidth.StringWidth(word)
			if curWidth > 0 && curWidth+1+ww > width {
				lines = append(lines, cur.String())
				cur.Reset()
				curWidth = 0
			}
			if curWidth > 0 {
				cur.WriteByte(' ')
				curWidth++
			}
			cur.WriteString(word)
			curWidth += ww
		}
		if curWidth > 0 {
			lines = append(lines, cur.String())
		}
	}
	return lines
}
