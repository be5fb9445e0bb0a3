package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"

	"github.com/dshills/critic/internal/langdetect"
)

// input is one file (or stdin, with an empty name) read from the command line.
type input struct {
	name    string
	content string
}

func (in input) displayName() string {
	if in.name == "" {
		return "<stdin>"
	}
	return in.name
}

// readInputs reads every named file, or stdin when no files are given.
func readInputs(stdin io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []input{{content: string(data)}}, nil
	}

	inputs := make([]input, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		inputs = append(inputs, input{name: path, content: string(data)})
	}
	return inputs, nil
}

// enryLabels maps go-enry language names onto classifier labels.
var enryLabels = map[string]string{
	"TypeScript": "TypeScript",
	"TSX":        "TypeScript",
	"JavaScript": langdetect.LabelJavaScript,
	"JSX":        langdetect.LabelJavaScript,
	"Python":     langdetect.LabelPython,
	"Java":       "Java",
	"C++":        "C++",
	"C":          "C++",
	"HTML":       langdetect.LabelHTML,
	"CSS":        "CSS",
	"SCSS":       "CSS",
	"Less":       "CSS",
	"Rust":       "Rust",
	"Solidity":   "Solidity",
	"Go":         "Go",
	"Ruby":       langdetect.LabelRuby,
	"PHP":        "PHP",
	"Shell":      langdetect.LabelShell,
	"Perl":       langdetect.LabelPerl,
	"XML":        langdetect.LabelXML,
}

// languageFromFilename returns the classifier label implied by a file name,
// or "" when the name is unknown or ambiguous. Ambiguous extensions are
// settled by go-enry's content heuristics when they give a single answer.
func languageFromFilename(path, content string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)

	lang, safe := enry.GetLanguageByExtension(base)
	if !safe {
		lang, safe = enry.GetLanguageByFilename(base)
	}
	if !safe {
		lang, safe = enry.GetLanguageByContent(base, []byte(content))
	}
	if !safe {
		return ""
	}
	return enryLabels[lang]
}

// declaredLanguage applies the language precedence: explicit flag, then the
// file name. An empty result leaves detection to the classifier.
func declaredLanguage(flag string, in input) string {
	if flag != "" {
		return flag
	}
	return languageFromFilename(in.name, in.content)
}
