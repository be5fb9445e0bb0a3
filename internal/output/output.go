package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/critic/internal/highlight"
	"github.com/dshills/critic/internal/review"
)

// Formats lists the result formats accepted by GetWriter.
var Formats = []string{"text", "json", "markdown", "html"}

// Writer writes a review result in a specific format.
type Writer interface {
	Write(w io.Writer, result *review.Result) error
}

// BatchWriter is implemented by writers that encode several results as one
// document instead of one after another.
type BatchWriter interface {
	WriteBatch(w io.Writer, results []*review.Result) error
}

// TokenWriter writes a tokenized code snippet.
type TokenWriter interface {
	WriteTokens(w io.Writer, language string, tokens []highlight.Token) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	case "html":
		return &HTMLWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// GetTokenWriter returns a token writer for text, json or html.
func GetTokenWriter(format string) (TokenWriter, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "html":
		return &HTMLWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported highlight format: %s", format)
	}
}

// WriteResult writes one result to the specified output (file path or stdout).
func WriteResult(result *review.Result, format, outPath string) error {
	return WriteResults([]*review.Result{result}, format, outPath)
}

// WriteResults writes results to the specified output (file path or stdout).
func WriteResults(results []*review.Result, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	return withOutput(outPath, func(w io.Writer) error {
		return writeAll(w, writer, results)
	})
}

// WriteTokens writes a tokenized snippet to the specified output (file path or stdout).
func WriteTokens(language string, tokens []highlight.Token, format, outPath string) error {
	writer, err := GetTokenWriter(format)
	if err != nil {
		return err
	}
	return withOutput(outPath, func(w io.Writer) error {
		return writer.WriteTokens(w, language, tokens)
	})
}

func writeAll(w io.Writer, writer Writer, results []*review.Result) error {
	if bw, ok := writer.(BatchWriter); ok && len(results) != 1 {
		return bw.WriteBatch(w, results)
	}
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writer.Write(w, r); err != nil {
			return err
		}
	}
	return nil
}

// withOutput calls fn with a file at outPath, or stdout when outPath is empty.
func withOutput(outPath string, fn func(io.Writer) error) error {
	if outPath == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func displayName(filename string) string {
	if filename == "" {
		return "<stdin>"
	}
	return filename
}
