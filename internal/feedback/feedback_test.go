package feedback

import (
	"strings"
	"testing"

	"github.com/dshills/critic/internal/highlight"
)

const sampleReview = "## General Impression\n\n" +
	"The code is **readable** and mostly correct.\n\n" +
	"## Bugs\n\n" +
	"- There is a critical bug when `n` is zero.\n\n" +
	"```python\ndef div(a, n):\n    return a / n\n```\n\n" +
	"## Suggestions\n\n" +
	"1. Add a guard clause as a fix.\n\n" +
	"```\nconst total = items.reduce((a, b) => a + b, 0);\nconsole.log(total);\n```\n\n" +
	"---\n\n" +
	"Nothing else to note.\n"

func TestParse_Sections(t *testing.T) {
	doc := Parse(sampleReview)
	titles := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		titles[i] = s.Title
	}
	want := []string{"General Impression", "Bugs", "Suggestions"}
	if strings.Join(titles, "|") != strings.Join(want, "|") {
		t.Fatalf("section titles = %v, want %v", titles, want)
	}
}

func TestParse_ParagraphKinds(t *testing.T) {
	doc := Parse(sampleReview)

	general := doc.Sections[0].Paragraphs
	if len(general) != 1 || general[0].Text != "The code is readable and mostly correct." {
		t.Errorf("general paragraphs = %+v", general)
	}

	bugs := doc.Sections[1].Paragraphs
	if len(bugs) != 2 {
		t.Fatalf("bugs section has %d paragraphs, want 2: %+v", len(bugs), bugs)
	}
	if bugs[0].Kind != BlockError {
		t.Errorf("bug paragraph kind = %q, want %q", bugs[0].Kind, BlockError)
	}
	if bugs[0].Text != "There is a critical bug when n is zero." {
		t.Errorf("bug paragraph text = %q", bugs[0].Text)
	}
	if bugs[1].Kind != BlockCode || bugs[1].Code == nil {
		t.Fatalf("second paragraph should be code, got %+v", bugs[1])
	}

	sugg := doc.Sections[2].Paragraphs
	if sugg[0].Text != "• Add a guard clause as a fix." {
		t.Errorf("numbered item = %q", sugg[0].Text)
	}
	if sugg[0].Kind != BlockSuccess {
		t.Errorf("suggestion kind = %q, want %q", sugg[0].Kind, BlockSuccess)
	}
	last := sugg[len(sugg)-1]
	if last.Text != "Nothing else to note." || last.Kind != BlockDefault {
		t.Errorf("last paragraph = %+v", last)
	}
}

func TestParse_CodeBlocks(t *testing.T) {
	doc := Parse(sampleReview)
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Blocks))
	}

	py := doc.Blocks[0]
	if py.Language != "python" || !py.Declared {
		t.Errorf("first block language = %q declared=%v, want declared python", py.Language, py.Declared)
	}
	if py.Code != "def div(a, n):\n    return a / n" {
		t.Errorf("first block code = %q", py.Code)
	}
	if highlight.Join(py.Tokens) != py.Code {
		t.Error("block tokens do not reproduce the code")
	}

	js := doc.Blocks[1]
	if js.Declared {
		t.Error("second block has no fence language and should not be declared")
	}
	if js.Language != "JavaScript" {
		t.Errorf("second block detected language = %q, want JavaScript", js.Language)
	}
}

func TestParse_NoHeadings(t *testing.T) {
	doc := Parse("Looks fine.\n\nConsider a performance tweak.")
	if len(doc.Sections) != 1 || doc.Sections[0].Title != DefaultTitle {
		t.Fatalf("sections = %+v, want one %q section", doc.Sections, DefaultTitle)
	}
	ps := doc.Sections[0].Paragraphs
	if len(ps) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(ps))
	}
	if ps[1].Kind != BlockWarning {
		t.Errorf("kind = %q, want %q", ps[1].Kind, BlockWarning)
	}
}

func TestParse_Preamble(t *testing.T) {
	doc := Parse("Intro text.\n\n## Details\n\nMore.")
	if len(doc.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(doc.Sections))
	}
	if doc.Sections[0].Title != "" || doc.Sections[0].Paragraphs[0].Text != "Intro text." {
		t.Errorf("preamble section = %+v", doc.Sections[0])
	}
}

func TestParse_Empty(t *testing.T) {
	doc := Parse("   \n\n ")
	if len(doc.Sections) != 0 {
		t.Errorf("sections = %+v, want none", doc.Sections)
	}
}

func TestParse_CodeKeepsMarkdownCharacters(t *testing.T) {
	doc := Parse("```go\nx := a * b * c // __init__\n```")
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks", len(doc.Blocks))
	}
	if got := doc.Blocks[0].Code; got != "x := a * b * c // __init__" {
		t.Errorf("code altered by cleanup: %q", got)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"bold", "a **b** c", "a b c"},
		{"italic", "a *b* c", "a b c"},
		{"underscore emphasis", "a __b__ and _c_", "a b and c"},
		{"snake case kept", "call my_func_name now", "call my_func_name now"},
		{"bullets", "- one\n* two", "one\ntwo"},
		{"separator", "a\n---\nb", "a\n\nb"},
		{"blank lines", "a\n\n\n\nb", "a\n\nb"},
		{"spaces", "a  \t b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyParagraph(t *testing.T) {
	tests := map[string]BlockKind{
		"General impression: solid work.":        BlockGeneral,
		"SQL injection is a security risk.":      BlockError,
		"This loop is a performance bottleneck.": BlockWarning,
		"Best practice: close the file.":         BlockSuccess,
		"The function returns early.":            BlockDefault,
		"This bug has an easy fix.":              BlockError,
	}
	for in, want := range tests {
		if got := ClassifyParagraph(in); got != want {
			t.Errorf("ClassifyParagraph(%q) = %q, want %q", in, got, want)
		}
	}
}
