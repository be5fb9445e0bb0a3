package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/critic/internal/highlight"
	"github.com/dshills/critic/internal/review"
)

// JSONWriter outputs the full result as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, result *review.Result) error {
	return writeJSON(w, result)
}

// WriteBatch writes results as a single JSON array.
func (j *JSONWriter) WriteBatch(w io.Writer, results []*review.Result) error {
	if results == nil {
		results = []*review.Result{}
	}
	return writeJSON(w, results)
}

// WriteTokens writes the language and token stream as a JSON object.
func (j *JSONWriter) WriteTokens(w io.Writer, language string, tokens []highlight.Token) error {
	return writeJSON(w, struct {
		Language string            `json:"language"`
		Tokens   []highlight.Token `json:"tokens"`
	}{language, tokens})
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
