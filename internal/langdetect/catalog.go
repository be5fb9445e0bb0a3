package langdetect

import "regexp"

// Signature identifies one candidate language: an ordered list of detectors
// and a weight applied to every detector match.
type Signature struct {
	Name      string
	Detectors []*regexp.Regexp
	Weight    float64
}

// Labels returned outside the scored catalog.
const (
	LabelText       = "Text"
	LabelXML        = "XML"
	LabelHTML       = "HTML"
	LabelJavaScript = "JavaScript"
	LabelPython     = "Python"
	LabelRuby       = "Ruby"
	LabelPerl       = "Perl"
	LabelShell      = "Shell"
)

// catalog is the scored signature table. Order matters: ties on score go to
// the earlier entry.
var catalog = []Signature{
	{
		Name: "TypeScript",
		Detectors: compile(
			`\binterface\s+\w+`,
			`\btype\s+\w+\s*=`,
			`\benum\s+\w+`,
			`:\s*(string|number|boolean|any|void|unknown|undefined|null)\b`,
			`\b(?:const|let|var)\s+\w+\s*:\s*\w+`,
			`<[\w\s,]+>\s*[\w\[\]{}:;=<>]*(?:\s*\w+\s*:)`,
			`\bPromise<[^>]+>`,
		),
		Weight: 2,
	},
	{
		Name: LabelJavaScript,
		Detectors: compile(
			`\b(function|const|let|var|=>)\s*[\w$]*\s*[=:]`,
			`\b(console\.log|document\.|window\.|module\.exports|require\()`,
			`\b(import|export)\s+[\w{*][\s\S]*?\s+from\s+['"].*['"]`,
			`\b(?:async\s+)?function[\s*]\s*[\w$]*\s*\([^)]*\)`,
			`\bclass\s+\w+\s*\{`,
		),
		Weight: 1.5,
	},
	{
		Name: LabelPython,
		Detectors: compile(
			`(?m)^\s*(?:def|class)\s+\w+\s*[(:]`,
			`(?m)^\s*(?:from|import)\s+[\w.]+\s+(?:import\s+[\w*,\s]+)?`,
			`\b(?:print|input|def|class|if\s+__name__\s*==\s*['"]__main__['"])\b`,
			`\b(?:elif|lambda|yield|with\s+as|try|except|finally|raise)\b`,
			`\b(?:True|False|None)\b`,
		),
		Weight: 2,
	},
	{
		Name: "Java",
		Detectors: compile(
			`\b(?:public|private|protected|static|final|native|synchronized|abstract|transient)\b`,
			`\b(?:class|interface|enum|extends|implements|throws|new)\s+\w+`,
			`\b(?:int|long|char|byte|boolean|float|double|void|String)\s+\w+\s*[;=]`,
			`\bSystem\.(?:out|err)\.(?:print(?:ln)?|printf?)\s*\(`,
			`\b(?:try\s*\{|catch\s*\(|finally\s*\{|throw\s+\w+;)`,
		),
		Weight: 2,
	},
	{
		Name: "C++",
		Detectors: compile(
			`#include\s*[<"]\w+(\.h(pp)?)?[>"]`,
			`using\s+namespace\s+\w+\s*;`,
			`\b(?:int|void|double|float|char|bool|auto)\s+[\w:]+\s*[;=(]`,
			`\b(?:std::|#include\s*<\w+>)`,
			`\b(?:cout|cin|endl|new|delete)\b`,
			`\b(?:class|struct|namespace|template\s*<[^>]*>)\s+\w+`,
		),
		Weight: 2,
	},
	{
		Name: LabelHTML,
		Detectors: compile(
			`(?i)</?[a-z][^>]*>`,
			`(?i)<(!doctype|html|head|title|body|div|span|p|a|img|script|style|link|meta|form|input|button|ul|ol|li|table|tr|td|th|thead|tbody|tfoot)>`,
			`(?i)<\w+[^>]*\s+[a-z-]+=("[^"]*"|'[^']*')`,
			`(?i)&[a-z]+;`,
		),
		Weight: 3,
	},
	{
		Name: "CSS",
		Detectors: compile(
			`\.[\w-]+\s*\{`,
			`#[a-fA-F0-9]{3,6}\b`,
			`\b(margin|padding|color|background|font|border|width|height):[^;\n]+;`,
			`@(media|keyframes|import|font-face|supports)\b`,
			`\b(?:px|em|rem|vh|vw|%|!important)\b`,
		),
		Weight: 2,
	},
	{
		Name: "Rust",
		Detectors: compile(
			`\b(fn|let|mut|struct|enum|impl|trait|match|pub|crate|super)\b`,
			`\buse\s+[\w:]+;`,
			`::\w+\s*\(`,
			`#\(`,
			`\bSelf\b`,
		),
		Weight: 2,
	},
	{
		Name: "Solidity",
		Detectors: compile(
			`\b(contract|pragma|import|function|returns|event|emit|mapping|address|msg\.sender|require|modifier)\b`,
			`\b(uint|int|string|address|bool)(\d{0,3})?\b`,
			`\bmemory|storage|calldata\b`,
			`// SPDX-License-Identifier:`,
			`\bconstructor\s*\(`,
		),
		Weight: 2,
	},
	{
		Name: "Go",
		Detectors: compile(
			`\bfunc\s+\w+\s*\(`,
			`\bpackage\s+\w+`,
			`\bimport\s+\(`,
			`\bdefer|go\s+\w+\(`,
			`\bchan|map|interface|struct\b`,
		),
		Weight: 2,
	},
	{
		Name: LabelRuby,
		Detectors: compile(
			`\b(def|class|module|end|puts|require|include|unless|elsif|begin|rescue|ensure)\b`,
			`@[a-z_]\w*`,
			`\b[a-z_]\w*(!|\?)\b`,
			`:\w+\s*=>`,
		),
		Weight: 2,
	},
	{
		Name: "PHP",
		Detectors: compile(
			`<\?php`,
			`\bfunction\s+\w+\(`,
			`\$\w+`,
			`\b(?:echo|print|require|include|namespace|use)\b`,
			`\bclass\s+\w+\s*\{`,
		),
		Weight: 2,
	},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// Catalog returns a copy of the signature table in declaration order.
func Catalog() []Signature {
	out := make([]Signature, len(catalog))
	copy(out, catalog)
	return out
}

// Languages returns the names of all scored languages in declaration order.
func Languages() []string {
	names := make([]string, len(catalog))
	for i, sig := range catalog {
		names[i] = sig.Name
	}
	return names
}
