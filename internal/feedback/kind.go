package feedback

import "strings"

var kindKeywords = []struct {
	kind  BlockKind
	words []string
}{
	{BlockGeneral, []string{"general impression"}},
	{BlockError, []string{"critical", "security", "vulnerability", "danger", "error", "bug"}},
	{BlockWarning, []string{"warning", "caution", "problem:", "issue", "performance", "bottleneck"}},
	{BlockSuccess, []string{"recommendation:", "good practice", "best practice", "improvement", "solution", "fix"}},
}

// ClassifyParagraph picks a display kind from keywords in the paragraph.
// Earlier kinds win, so a paragraph mentioning both a bug and a fix is an
// error.
func ClassifyParagraph(text string) BlockKind {
	lower := strings.ToLower(text)
	for _, k := range kindKeywords {
		for _, w := range k.words {
			if strings.Contains(lower, w) {
				return k.kind
			}
		}
	}
	return BlockDefault
}
