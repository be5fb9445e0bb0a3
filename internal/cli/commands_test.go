package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- detect command tests ---

func TestDetectCmd_Text(t *testing.T) {
	resetFlags()
	saveExitCode(t)
	dir := t.TempDir()
	sh := writeFile(t, dir, "run", "#!/bin/sh\necho hi\n")
	page := writeFile(t, dir, "page", "<!DOCTYPE html>\n<html></html>\n")

	var buf bytes.Buffer
	detectCmd.SetOut(&buf)
	t.Cleanup(func() { detectCmd.SetOut(nil) })
	detectCmd.SetArgs([]string{sh, page})
	if err := detectCmd.Execute(); err != nil {
		t.Fatalf("detect returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != sh+"\tShell\tsignature\t0.0" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != page+"\tHTML\tsignature\t0.0" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if exitCode != ExitSuccess {
		t.Errorf("exitCode = %d", exitCode)
	}
}

func TestDetectCmd_JSONFromStdin(t *testing.T) {
	resetFlags()
	saveExitCode(t)

	var buf bytes.Buffer
	detectCmd.SetOut(&buf)
	detectCmd.SetIn(strings.NewReader("   \n\t"))
	t.Cleanup(func() {
		detectCmd.SetOut(nil)
		detectCmd.SetIn(nil)
	})
	detectCmd.SetArgs([]string{"--json"})
	if err := detectCmd.Execute(); err != nil {
		t.Fatalf("detect returned error: %v", err)
	}

	var got []struct {
		File   string `json:"file"`
		Label  string `json:"label"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 1 || got[0].File != "<stdin>" || got[0].Label != "Text" || got[0].Reason != "empty" {
		t.Errorf("detect JSON = %+v", got)
	}
}

func TestDetectCmd_MissingFile(t *testing.T) {
	resetFlags()
	saveExitCode(t)

	detectCmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing")})
	if err := detectCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exitCode != ExitRuntimeError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitRuntimeError)
	}
}

// --- highlight command tests ---

func TestHighlightCmd_JSON(t *testing.T) {
	resetFlags()
	saveExitCode(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "main.py", "def f():\n    return 1\n")
	out := filepath.Join(dir, "tokens.json")

	highlightCmd.SetArgs([]string{"--format", "json", "--out", out, src})
	if err := highlightCmd.Execute(); err != nil {
		t.Fatalf("highlight returned error: %v", err)
	}

	var got struct {
		Language string `json:"language"`
		Tokens   []struct {
			Kind  string `json:"kind"`
			Value string `json:"value"`
		} `json:"tokens"`
	}
	decodeJSONFile(t, out, &got)
	if got.Language != "Python" {
		t.Errorf("language = %q, want Python from the extension", got.Language)
	}
	if len(got.Tokens) == 0 || got.Tokens[0].Kind != "keyword" || got.Tokens[0].Value != "def" {
		t.Errorf("first token = %+v, want keyword def", got.Tokens)
	}
	var joined strings.Builder
	for _, tok := range got.Tokens {
		joined.WriteString(tok.Value)
	}
	if joined.String() != "def f():\n    return 1\n" {
		t.Errorf("tokens do not reproduce the input: %q", joined.String())
	}
}

func TestHighlightCmd_HTMLWithLang(t *testing.T) {
	resetFlags()
	saveExitCode(t)
	out := filepath.Join(t.TempDir(), "code.html")

	highlightCmd.SetIn(strings.NewReader("let x = \"<b>\";"))
	t.Cleanup(func() { highlightCmd.SetIn(nil) })
	highlightCmd.SetArgs([]string{"--lang", "JavaScript", "--format", "html", "--out", out})
	if err := highlightCmd.Execute(); err != nil {
		t.Fatalf("highlight returned error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	if !strings.Contains(html, `data-language="JavaScript"`) {
		t.Errorf("missing language attribute:\n%s", html)
	}
	if !strings.Contains(html, `<span class="tok-keyword">let</span>`) {
		t.Errorf("missing keyword span:\n%s", html)
	}
	if strings.Contains(html, "<b>") {
		t.Errorf("string token not escaped:\n%s", html)
	}
}

func TestHighlightCmd_BadFormat(t *testing.T) {
	resetFlags()
	saveExitCode(t)

	highlightCmd.SetIn(strings.NewReader("x"))
	t.Cleanup(func() { highlightCmd.SetIn(nil) })
	highlightCmd.SetArgs([]string{"--format", "markdown"})
	if err := highlightCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exitCode != ExitRuntimeError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitRuntimeError)
	}
}

func TestHighlightCmd_TooManyArgs(t *testing.T) {
	resetFlags()

	highlightCmd.SetArgs([]string{"a.go", "b.go"})
	if err := highlightCmd.Execute(); err == nil {
		t.Error("highlight with two files should return error")
	}
}

// --- render command tests ---

func TestRenderCmd_Markdown(t *testing.T) {
	resetFlags()
	saveExitCode(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "review.txt", fakeReview)
	out := filepath.Join(dir, "review.md")

	renderCmd.SetArgs([]string{"--format", "markdown", "--out", out, src})
	if err := renderCmd.Execute(); err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	md := string(data)
	if !strings.Contains(md, "### Bugs") {
		t.Errorf("missing section heading:\n%s", md)
	}
	if strings.Contains(md, "Provider") {
		t.Errorf("rendered text should carry no run metadata:\n%s", md)
	}
}

func TestRenderResult(t *testing.T) {
	res := renderResult(input{name: "r.txt", content: fakeReview})
	if res.Provider != "" || res.Filename != "r.txt" || res.Feedback != fakeReview {
		t.Errorf("renderResult = %+v", res)
	}
	if len(res.Document.Blocks) != 1 {
		t.Errorf("got %d code blocks, want 1", len(res.Document.Blocks))
	}
}
