package langdetect

import (
	"path"
	"regexp"
	"strings"
)

var (
	xmlDeclPattern  = regexp.MustCompile(`^<\?xml\s+version=`)
	doctypePattern  = regexp.MustCompile(`(?i)^<!doctype\s+html\s*>`)
	shebangPattern  = regexp.MustCompile(`^\s*#!\s*(\S+)(.*)$`)
	trailingVersion = regexp.MustCompile(`[\d.]+$`)
)

// interpreters maps a shebang interpreter name (version suffix removed) to a label.
var interpreters = map[string]string{
	"node":   LabelJavaScript,
	"nodejs": LabelJavaScript,
	"python": LabelPython,
	"ruby":   LabelRuby,
	"perl":   LabelPerl,
	"bash":   LabelShell,
	"sh":     LabelShell,
	"zsh":    LabelShell,
	"fish":   LabelShell,
}

// sniff runs the whole-document checks. It reports ok=false when none fired
// and scoring should proceed.
func sniff(text string) (label string, reason Reason, ok bool) {
	first, found := firstNonBlankLine(text)
	if !found {
		return LabelText, ReasonEmpty, true
	}

	trimmed := strings.TrimSpace(text)
	if xmlDeclPattern.MatchString(trimmed) {
		return LabelXML, ReasonSignature, true
	}
	if doctypePattern.MatchString(trimmed) {
		return LabelHTML, ReasonSignature, true
	}
	if lang := shebangLanguage(first); lang != "" {
		return lang, ReasonSignature, true
	}
	return "", "", false
}

func firstNonBlankLine(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}

// shebangLanguage returns the label for a "#!" line, or "" when the line is
// not a shebang or names an unknown interpreter. Both "#!/bin/bash" and
// "#!/usr/bin/env -S python3 -u" forms are accepted.
func shebangLanguage(line string) string {
	m := shebangPattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	name := path.Base(m[1])
	if name == "env" {
		name = ""
		for _, arg := range strings.Fields(m[2]) {
			if strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
				continue
			}
			name = path.Base(arg)
			break
		}
	}
	name = strings.ToLower(trailingVersion.ReplaceAllString(name, ""))
	return interpreters[name]
}
