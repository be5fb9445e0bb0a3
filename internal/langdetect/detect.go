package langdetect

import "unicode/utf8"

const (
	// ConfidentScore is the score at or above which a winner is returned
	// without further qualification.
	ConfidentScore = 3.0
	// ShortSnippetRunes is the length below which any positive score is accepted.
	ShortSnippetRunes = 100
)

// Reason records which rule of the pipeline produced a label.
type Reason string

const (
	ReasonEmpty     Reason = "empty"
	ReasonSignature Reason = "signature"
	ReasonConfident Reason = "confident"
	ReasonShort     Reason = "short-snippet"
	ReasonWeak      Reason = "weak-match"
	ReasonDefault   Reason = "default"
)

// Score is one ScoreBoard entry.
type Score struct {
	Language string  `json:"language"`
	Score    float64 `json:"score"`
	Matches  int     `json:"matches"`
}

// Result is the outcome of a classification.
type Result struct {
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Reason Reason  `json:"reason"`
	// Scores holds every language with at least one match, in catalog order.
	// It is empty when a signature check short-circuited scoring.
	Scores []Score `json:"scores,omitempty"`
}

// Classify returns the best-guess language label for text. It never fails;
// empty or blank input yields "Text" and unrecognised input "JavaScript".
func Classify(text string) string {
	return Detect(text).Label
}

// Detect classifies text and reports how the label was reached.
func Detect(text string) Result {
	if label, reason, ok := sniff(text); ok {
		return Result{Label: label, Reason: reason}
	}

	scores := ScoreBoard(text)
	best, ok := winner(scores)
	if !ok {
		return Result{Label: LabelJavaScript, Reason: ReasonDefault}
	}

	res := Result{Label: best.Language, Score: best.Score, Scores: scores}
	switch {
	case best.Score >= ConfidentScore:
		res.Reason = ReasonConfident
	case utf8.RuneCountInString(text) < ShortSnippetRunes:
		res.Reason = ReasonShort
	default:
		res.Reason = ReasonWeak
	}
	return res
}

// ScoreBoard evaluates every signature against text. Each detector adds
// (non-overlapping match count) x weight to its language; languages with no
// match are left out.
func ScoreBoard(text string) []Score {
	var board []Score
	for _, sig := range catalog {
		matches := 0
		for _, d := range sig.Detectors {
			matches += len(d.FindAllStringIndex(text, -1))
		}
		if matches == 0 {
			continue
		}
		board = append(board, Score{
			Language: sig.Name,
			Score:    float64(matches) * sig.Weight,
			Matches:  matches,
		})
	}
	return board
}

// winner picks the strictly highest score; equal scores keep the earlier entry.
func winner(board []Score) (Score, bool) {
	var best Score
	found := false
	for _, s := range board {
		if !found || s.Score > best.Score {
			best = s
			found = true
		}
	}
	return best, found && best.Score > 0
}
