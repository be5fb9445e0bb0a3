package review

import (
	"strings"
	"testing"
)

func TestBuildUserPrompt(t *testing.T) {
	code := "def div(a, b):\n    return a / b"
	prompt := BuildUserPrompt(code, "div.py", "Python")

	for _, want := range []string{
		"You are a senior Python developer. Review the following code for:",
		"1. Bugs",
		"2. Performance issues",
		"3. Security issues",
		"4. Best practices",
		"File: div.py",
		"Code:\n" + code + "\n",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildUserPrompt_NoFilename(t *testing.T) {
	prompt := BuildUserPrompt("x := 1\n", "", "Go")
	if strings.Contains(prompt, "File:") {
		t.Error("prompt should not mention a file when none was given")
	}
	if !strings.HasSuffix(prompt, "x := 1\n") {
		t.Errorf("code should end the prompt exactly once-terminated: %q", prompt)
	}
}

func TestSystemPrompt(t *testing.T) {
	sp := SystemPrompt()
	if !strings.Contains(sp, "##") {
		t.Error("system prompt should ask for ## headings")
	}
	if !strings.Contains(sp, "fenced code block") {
		t.Error("system prompt should ask for fenced code examples")
	}
}
