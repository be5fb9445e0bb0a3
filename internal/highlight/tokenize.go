package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/critic/internal/langdetect"
)

// Tokenize splits code into classified tokens for display. At every cursor
// position the categories are tried in the order keyword, string, comment,
// number, function, operator, bracket; the first one anchored at the cursor
// wins. When none matches, a single-character text token is emitted.
//
// Concatenating the values of the result always reproduces code exactly.
func Tokenize(code, language string) []Token {
	rules := rulesFor(language)
	tokens := make([]Token, 0, len(code)/2)

	for pos := 0; pos < len(code); {
		kind, n := matchAt(rules, code, pos)
		if n == 0 {
			_, size := utf8.DecodeRuneInString(code[pos:])
			kind, n = KindText, size
		}
		tokens = append(tokens, Token{Kind: kind, Value: code[pos : pos+n]})
		pos += n
	}
	return tokens
}

// TokenizeAuto tokenizes code, classifying it first when no language is given.
func TokenizeAuto(code, language string) (string, []Token) {
	if strings.TrimSpace(language) == "" {
		language = langdetect.Classify(code)
	}
	return language, Tokenize(code, language)
}

// matchAt returns the first rule matching at pos and the byte length it
// consumes. Empty matches do not count.
func matchAt(rules []rule, code string, pos int) (Kind, int) {
	rest := code[pos:]
	midWord := pos > 0 && isWordByte(code[pos-1])
	for _, r := range rules {
		if r.wordStart && midWord {
			continue
		}
		loc := r.re.FindStringSubmatchIndex(rest)
		if loc == nil {
			continue
		}
		end := loc[2*r.group+1]
		if end > 0 {
			return r.kind, end
		}
	}
	return KindText, 0
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}
