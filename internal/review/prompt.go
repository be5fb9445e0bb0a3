package review

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a careful, experienced code reviewer.

Format your answer as markdown:
- Group feedback under "##" headings such as General Impression, Bugs, Performance, Security and Best Practices.
- Separate paragraphs with blank lines.
- Put every code example in a fenced code block that names its language.
- Be concise and actionable. Say plainly when a section has nothing to report.`

// SystemPrompt returns the system prompt for the LLM.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt constructs the review request for code written in language.
func BuildUserPrompt(code, filename, language string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a senior %s developer. Review the following code for:\n", language)
	b.WriteString("1. Bugs\n")
	b.WriteString("2. Performance issues\n")
	b.WriteString("3. Security issues\n")
	b.WriteString("4. Best practices\n")

	if filename != "" {
		fmt.Fprintf(&b, "\nFile: %s\n", filename)
	}

	b.WriteString("\nCode:\n")
	b.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}
