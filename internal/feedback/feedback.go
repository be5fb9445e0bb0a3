package feedback

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/critic/internal/highlight"
	"github.com/dshills/critic/internal/langdetect"
)

// DefaultTitle names the single section of a review that has no headings.
const DefaultTitle = "Code Review"

// BlockKind is the display category of a paragraph.
type BlockKind string

const (
	BlockGeneral BlockKind = "general"
	BlockError   BlockKind = "error"
	BlockWarning BlockKind = "warning"
	BlockSuccess BlockKind = "success"
	BlockDefault BlockKind = "default"
	BlockCode    BlockKind = "code"
)

// CodeBlock is a fenced code block lifted out of the review text.
type CodeBlock struct {
	Language string            `json:"language"`
	Declared bool              `json:"declared"`
	Code     string            `json:"code"`
	Tokens   []highlight.Token `json:"tokens"`
}

// Paragraph is either prose (Text) or a code block (Code).
type Paragraph struct {
	Kind BlockKind  `json:"kind"`
	Text string     `json:"text,omitempty"`
	Code *CodeBlock `json:"code,omitempty"`
}

// Section is a run of paragraphs under one heading.
type Section struct {
	Title      string      `json:"title"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Document is a parsed review.
type Document struct {
	Sections []Section  `json:"sections"`
	Blocks   []CodeBlock `json:"blocks,omitempty"`
}

var (
	fencePattern       = regexp.MustCompile("```([\\w+#.-]+)?[^\\n]*\\n([\\s\\S]*?)```")
	placeholderPattern = regexp.MustCompile(`^\{\{CODE_BLOCK_(\d+)\}\}$`)
	headingPattern     = regexp.MustCompile(`(?m)^#{2,}[ \t]*(.+?)[ \t]*$`)

	boldStars       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicStar      = regexp.MustCompile(`\*(.+?)\*`)
	boldUnderscore  = regexp.MustCompile(`\b__([^_\n]+)__\b`)
	italicUnderline = regexp.MustCompile(`\b_([^_\n]+)_\b`)
	separatorLine   = regexp.MustCompile(`(?m)^[ \t]*---+[ \t]*$`)
	listMarker      = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]*`)
	extraNewlines   = regexp.MustCompile(`\n{3,}`)
	horizontalSpace = regexp.MustCompile(`[ \t]+`)

	numberedItem = regexp.MustCompile(`(?m)^\d+\.\s*`)
	strayMarkup  = regexp.MustCompile("[*#`]")
)

// Parse turns a free-form markdown review into sections of classified
// paragraphs. Fenced code blocks are extracted first, labelled (by their
// fence or by langdetect) and tokenized; the rest of the text is cleaned of
// markdown decoration.
func Parse(review string) Document {
	text, blocks := ExtractCodeBlocks(strings.ReplaceAll(review, "\r\n", "\n"))
	text = Clean(text)

	doc := Document{Blocks: blocks}
	for _, s := range splitSections(text) {
		sec := Section{Title: s.title}
		for _, raw := range strings.Split(s.body, "\n\n") {
			if p, ok := buildParagraph(strings.TrimSpace(raw), blocks); ok {
				sec.Paragraphs = append(sec.Paragraphs, p)
			}
		}
		if len(sec.Paragraphs) > 0 {
			doc.Sections = append(doc.Sections, sec)
		}
	}
	return doc
}

// ExtractCodeBlocks replaces every fenced block with a placeholder paragraph
// and returns the blocks in order of appearance.
func ExtractCodeBlocks(text string) (string, []CodeBlock) {
	var blocks []CodeBlock
	out := fencePattern.ReplaceAllStringFunc(text, func(match string) string {
		m := fencePattern.FindStringSubmatch(match)
		code := strings.TrimSpace(m[2])
		block := CodeBlock{Language: m[1], Declared: m[1] != "", Code: code}
		if !block.Declared {
			block.Language = langdetect.Classify(code)
		}
		block.Tokens = highlight.Tokenize(code, block.Language)
		blocks = append(blocks, block)
		return fmt.Sprintf("\n\n{{CODE_BLOCK_%d}}\n\n", len(blocks)-1)
	})
	return out, blocks
}

// Clean strips emphasis markers, list bullets and separator lines, and
// collapses blank lines and horizontal whitespace.
func Clean(text string) string {
	text = boldStars.ReplaceAllString(text, "$1")
	text = italicStar.ReplaceAllString(text, "$1")
	text = boldUnderscore.ReplaceAllString(text, "$1")
	text = italicUnderline.ReplaceAllString(text, "$1")
	text = separatorLine.ReplaceAllString(text, "")
	text = listMarker.ReplaceAllString(text, "")
	text = extraNewlines.ReplaceAllString(text, "\n\n")
	text = horizontalSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

type rawSection struct {
	title string
	body  string
}

// splitSections cuts text at "##" headings. Text before the first heading is
// kept as an untitled section; without headings the whole text is one
// section named DefaultTitle.
func splitSections(text string) []rawSection {
	locs := headingPattern.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return []rawSection{{title: DefaultTitle, body: text}}
	}

	var out []rawSection
	if pre := strings.TrimSpace(text[:locs[0][0]]); pre != "" {
		out = append(out, rawSection{body: pre})
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out = append(out, rawSection{
			title: strings.TrimSpace(text[loc[2]:loc[3]]),
			body:  strings.TrimSpace(text[loc[1]:end]),
		})
	}
	return out
}

func buildParagraph(raw string, blocks []CodeBlock) (Paragraph, bool) {
	if raw == "" {
		return Paragraph{}, false
	}
	if m := placeholderPattern.FindStringSubmatch(raw); m != nil {
		idx, err := strconv.Atoi(m[1])
		if err != nil || idx >= len(blocks) {
			return Paragraph{}, false
		}
		return Paragraph{Kind: BlockCode, Code: &blocks[idx]}, true
	}

	text := numberedItem.ReplaceAllString(raw, "• ")
	text = strings.TrimSpace(strayMarkup.ReplaceAllString(text, ""))
	if text == "" {
		return Paragraph{}, false
	}
	return Paragraph{Kind: ClassifyParagraph(text), Text: text}, true
}
