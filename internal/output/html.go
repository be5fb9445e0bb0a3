package output

import (
	"html"
	"io"

	"github.com/dshills/critic/internal/feedback"
	"github.com/dshills/critic/internal/highlight"
	"github.com/dshills/critic/internal/redact"
	"github.com/dshills/critic/internal/review"
)

// HTMLWriter outputs an HTML fragment. Every token becomes one
// <span class="tok-KIND">; all text is HTML-escaped.
type HTMLWriter struct{}

func (h *HTMLWriter) Write(w io.Writer, result *review.Result) error {
	ew := &errWriter{w: w}
	esc := html.EscapeString

	ew.println(`<article class="critic-review">`)
	ew.printf("<header><h1>Code Review: %s</h1>", esc(displayName(result.Filename)))
	if result.Provider != "" {
		ew.printf(`<p class="meta">%s (%s) &middot; %s / %s</p>`,
			esc(result.Language), esc(result.LanguageReason), esc(result.Provider), esc(result.Model))
	}
	if n := redact.Total(result.Redactions); n > 0 {
		ew.printf(`<p class="redactions">Redacted %d secret(s) before review: %s</p>`, n, esc(hitSummary(result.Redactions)))
	}
	ew.println("</header>")

	for _, sec := range result.Document.Sections {
		ew.println(`<section>`)
		if sec.Title != "" {
			ew.printf("<h2>%s</h2>\n", esc(sec.Title))
		}
		for _, p := range sec.Paragraphs {
			if p.Kind == feedback.BlockCode && p.Code != nil {
				writeHTMLCode(ew, p.Code.Language, p.Code.Tokens)
				continue
			}
			ew.printf(`<div class="block block-%s"><p>%s</p></div>`+"\n", p.Kind, esc(p.Text))
		}
		ew.println(`</section>`)
	}

	ew.println(`</article>`)
	return ew.err
}

// WriteTokens writes tokens as a <pre><code> block.
func (h *HTMLWriter) WriteTokens(w io.Writer, language string, tokens []highlight.Token) error {
	ew := &errWriter{w: w}
	writeHTMLCode(ew, language, tokens)
	return ew.err
}

func writeHTMLCode(ew *errWriter, language string, tokens []highlight.Token) {
	ew.printf(`<pre class="code" data-language="%s"><code>`, html.EscapeString(language))
	for _, tok := range tokens {
		ew.printf(`<span class="tok-%s">%s</span>`, tok.Kind, html.EscapeString(tok.Value))
	}
	ew.println("</code></pre>")
}
