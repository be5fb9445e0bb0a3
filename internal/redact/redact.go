package redact

import (
	"regexp"
	"sort"
)

// Placeholder replaces every redacted secret.
const Placeholder = "[REDACTED]"

// Rule is a named secret heuristic.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Hit counts the redactions made by one rule.
type Hit struct {
	Rule  string `json:"rule"`
	Count int    `json:"count"`
}

// Rules are applied in order; earlier rules see the text first.
var Rules = []Rule{
	{"private-key", regexp.MustCompile(`-----BEGIN\s+(?:RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----(?:[\s\S]*?-----END\s+(?:RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----)?`)},
	{"aws-access-key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"aws-secret-key", regexp.MustCompile(`(?i)aws[_-]?secret[_-]?access[_-]?key\s*[:=]\s*["']?[A-Za-z0-9/+=]{40}["']?`)},
	{"github-token", regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`)},
	{"slack-token", regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`)},
	{"anthropic-key", regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`)},
	{"openai-key", regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`)},
	{"google-api-key", regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`)},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)},
	{"bearer-token", regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`)},
	{"api-key-assignment", regexp.MustCompile(`(?i)(?:api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?[A-Za-z0-9/+=_-]{20,}["']?`)},
	{"secret-assignment", regexp.MustCompile(`(?i)(?:secret|token|password|passwd|credential)\s*[:=]\s*["'][^"'\n]{8,}["']`)},
	{"hex-secret", regexp.MustCompile(`(?i)(?:key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`)},
}

// Apply replaces detected secrets in text with Placeholder and reports how
// many matches each rule removed. Hits are sorted by rule name.
func Apply(text string) (string, []Hit) {
	counts := map[string]int{}
	for _, r := range Rules {
		n := 0
		text = r.Pattern.ReplaceAllStringFunc(text, func(string) string {
			n++
			return Placeholder
		})
		if n > 0 {
			counts[r.Name] += n
		}
	}

	hits := make([]Hit, 0, len(counts))
	for name, n := range counts {
		hits = append(hits, Hit{Rule: name, Count: n})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Rule < hits[j].Rule })
	return text, hits
}

// Secrets replaces detected secrets in text with Placeholder.
func Secrets(text string) string {
	out, _ := Apply(text)
	return out
}

// Total sums the counts of hits.
func Total(hits []Hit) int {
	n := 0
	for _, h := range hits {
		n += h.Count
	}
	return n
}
