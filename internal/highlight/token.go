package highlight

import "strings"

// Kind classifies a lexical fragment.
type Kind string

const (
	KindKeyword  Kind = "keyword"
	KindString   Kind = "string"
	KindComment  Kind = "comment"
	KindNumber   Kind = "number"
	KindFunction Kind = "function"
	KindOperator Kind = "operator"
	KindBracket  Kind = "bracket"
	KindText     Kind = "text"
)

// Kinds lists every token kind, scan-priority categories first.
var Kinds = []Kind{
	KindKeyword,
	KindString,
	KindComment,
	KindNumber,
	KindFunction,
	KindOperator,
	KindBracket,
	KindText,
}

// Token is one classified fragment of the input.
type Token struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

// Join concatenates token values. For any tokens produced by [Tokenize] the
// result equals the tokenized input.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Value)
	}
	return b.String()
}

// Coalesce merges runs of adjacent text tokens into one token. Other kinds
// are left untouched, so the result still joins back to the same string.
func Coalesce(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if n := len(out); n > 0 && t.Kind == KindText && out[n-1].Kind == KindText {
			out[n-1].Value += t.Value
			continue
		}
		out = append(out, t)
	}
	return out
}
