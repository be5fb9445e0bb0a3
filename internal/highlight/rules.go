package highlight

import (
	"regexp"
	"strings"
)

// rule is one scan category. Patterns are anchored at the start of the
// remaining input.
type rule struct {
	kind Kind
	re   *regexp.Regexp
	// group selects the submatch that is consumed; 0 means the whole match.
	group int
	// wordStart rules cannot begin inside a word, so "elif" never yields an
	// "if" keyword.
	wordStart bool
}

const defaultLanguage = "javascript"

var keywordSets = map[string][]string{
	"javascript": {"function", "const", "let", "var", "if", "else", "for", "while", "return", "import", "export", "class", "extends", "async", "await", "try", "catch", "finally", "typeof", "instanceof"},
	"typescript": {"function", "const", "let", "var", "if", "else", "for", "while", "return", "import", "export", "class", "extends", "async", "await", "try", "catch", "finally", "typeof", "instanceof", "interface", "type", "enum", "public", "private", "protected"},
	"python":     {"def", "class", "if", "elif", "else", "for", "while", "return", "import", "from", "try", "except", "finally", "with", "as", "lambda", "yield", "global", "nonlocal"},
	"java":       {"public", "private", "protected", "static", "final", "class", "interface", "extends", "implements", "if", "else", "for", "while", "return", "try", "catch", "finally", "new", "this", "super"},
	"cpp":        {"int", "float", "double", "char", "bool", "void", "if", "else", "for", "while", "return", "class", "struct", "public", "private", "protected", "virtual", "static", "const", "namespace", "using"},
	"go":         {"package", "import", "func", "var", "const", "type", "struct", "interface", "map", "chan", "if", "else", "for", "range", "switch", "case", "default", "return", "defer", "go", "select", "break", "continue"},
	"rust":       {"fn", "let", "mut", "struct", "enum", "impl", "trait", "match", "pub", "crate", "super", "use", "mod", "if", "else", "for", "while", "loop", "return", "self", "Self"},
	"ruby":       {"def", "class", "module", "end", "if", "elsif", "else", "unless", "while", "until", "do", "return", "require", "include", "begin", "rescue", "ensure", "yield"},
	"php":        {"function", "class", "public", "private", "protected", "static", "echo", "print", "require", "include", "namespace", "use", "if", "else", "elseif", "foreach", "while", "return", "new"},
	"solidity":   {"contract", "pragma", "import", "function", "returns", "return", "event", "emit", "mapping", "address", "modifier", "require", "memory", "storage", "calldata", "public", "private", "external", "internal", "view", "payable", "constructor", "if", "else", "for"},
	"shell":      {"if", "then", "else", "elif", "fi", "for", "while", "do", "done", "case", "esac", "function", "return", "export", "local"},
}

// aliases maps lower-cased labels and short names to keyword-set keys.
var aliases = map[string]string{
	"c++":        "cpp",
	"c":          "cpp",
	"js":         "javascript",
	"jsx":        "javascript",
	"node":       "javascript",
	"ts":         "typescript",
	"tsx":        "typescript",
	"py":         "python",
	"golang":     "go",
	"rs":         "rust",
	"rb":         "ruby",
	"sol":        "solidity",
	"sh":         "shell",
	"bash":       "shell",
	"zsh":        "shell",
	"fish":       "shell",
	"perl":       "perl",
	"pl":         "perl",
	"html":       "html",
	"xml":        "xml",
	"javascript": "javascript",
}

// hashComment lists languages whose line comments start with '#'.
var hashComment = map[string]bool{
	"python": true,
	"ruby":   true,
	"shell":  true,
	"perl":   true,
}

var markupComment = map[string]bool{
	"html": true,
	"xml":  true,
}

const (
	stringPattern = `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'|` + "`(?:\\\\.|[^`\\\\])*`"
	numberPattern = `\b\d+\.?\d*\b`
	// Only the identifier is consumed; the parenthesis is left for the
	// bracket rule.
	functionPattern = `\b(\w+)\s*\(`
	operatorPattern = `[+\-*/%=<>!&|]+`
	bracketPattern  = `[(){}\[\]]`

	hashCommentPattern   = `#[^\r\n]*`
	cCommentPattern      = `//[^\r\n]*|/\*[\s\S]*?\*/`
	markupCommentPattern = `<!--[\s\S]*?-->`
)

var (
	sharedString   = anchored(stringPattern)
	sharedNumber   = anchored(numberPattern)
	sharedFunction = anchored(functionPattern)
	sharedOperator = anchored(operatorPattern)
	sharedBracket  = anchored(bracketPattern)

	hashCommentRe   = anchored(hashCommentPattern)
	cCommentRe      = anchored(cCommentPattern)
	markupCommentRe = anchored(markupCommentPattern)

	keywordRes = compileKeywords()
	ruleCache  = buildRuleSets()
)

func anchored(p string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)\A(?:` + p + `)`)
}

func compileKeywords() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(keywordSets))
	for lang, words := range keywordSets {
		out[lang] = anchored(`\b(?:` + strings.Join(words, "|") + `)\b`)
	}
	return out
}

func buildRuleSets() map[string][]rule {
	langs := map[string]bool{}
	for lang := range keywordSets {
		langs[lang] = true
	}
	for _, lang := range aliases {
		langs[lang] = true
	}
	out := make(map[string][]rule, len(langs))
	for lang := range langs {
		out[lang] = newRules(lang)
	}
	return out
}

// newRules assembles the category list in scan priority order.
func newRules(lang string) []rule {
	kw, ok := keywordRes[lang]
	if !ok {
		kw = keywordRes[defaultLanguage]
	}
	comment := cCommentRe
	switch {
	case hashComment[lang]:
		comment = hashCommentRe
	case markupComment[lang]:
		comment = markupCommentRe
	}
	return []rule{
		{kind: KindKeyword, re: kw, wordStart: true},
		{kind: KindString, re: sharedString},
		{kind: KindComment, re: comment},
		{kind: KindNumber, re: sharedNumber, wordStart: true},
		{kind: KindFunction, re: sharedFunction, group: 1, wordStart: true},
		{kind: KindOperator, re: sharedOperator},
		{kind: KindBracket, re: sharedBracket},
	}
}

// Normalize maps a language label ("C++", "Python", "ts") onto the key used
// to select highlighting rules. Unknown labels come back lower-cased.
func Normalize(language string) string {
	l := strings.ToLower(strings.TrimSpace(language))
	if a, ok := aliases[l]; ok {
		return a
	}
	return l
}

// rulesFor returns the rule list for a language, falling back to JavaScript.
func rulesFor(language string) []rule {
	if rs, ok := ruleCache[Normalize(language)]; ok {
		return rs
	}
	return ruleCache[defaultLanguage]
}

// HasKeywords reports whether language has its own keyword set rather than
// the JavaScript fallback.
func HasKeywords(language string) bool {
	_, ok := keywordSets[Normalize(language)]
	return ok
}
