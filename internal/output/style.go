package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/dshills/critic/internal/feedback"
	"github.com/dshills/critic/internal/highlight"
)

// theme holds the terminal styles of the text renderer.
type theme struct {
	title  lipgloss.Style
	header lipgloss.Style
	blocks map[feedback.BlockKind]lipgloss.Style
	code   lipgloss.Style
	tokens map[highlight.Kind]*color.Color
}

var blockColors = map[feedback.BlockKind]lipgloss.Color{
	feedback.BlockGeneral: lipgloss.Color("2"),
	feedback.BlockError:   lipgloss.Color("1"),
	feedback.BlockWarning: lipgloss.Color("3"),
	feedback.BlockSuccess: lipgloss.Color("10"),
	feedback.BlockDefault: lipgloss.Color("8"),
}

var tokenColors = map[highlight.Kind]*color.Color{
	highlight.KindKeyword:  color.New(color.FgMagenta, color.Bold),
	highlight.KindString:   color.New(color.FgGreen),
	highlight.KindComment:  color.New(color.FgHiBlack, color.Italic),
	highlight.KindNumber:   color.New(color.FgBlue),
	highlight.KindFunction: color.New(color.FgYellow),
	highlight.KindOperator: color.New(color.FgHiGreen),
	highlight.KindBracket:  color.New(color.FgWhite),
}

func newTheme(noColor bool) theme {
	leftBar := func() lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			PaddingLeft(1)
	}

	t := theme{
		title:  leftBar(),
		header: lipgloss.NewStyle(),
		blocks: make(map[feedback.BlockKind]lipgloss.Style, len(blockColors)),
		code:   lipgloss.NewStyle().PaddingLeft(4),
	}
	for kind, c := range blockColors {
		s := leftBar()
		if !noColor {
			s = s.BorderForeground(c)
		}
		t.blocks[kind] = s
	}
	if noColor {
		return t
	}

	t.title = t.title.Bold(true).Foreground(lipgloss.Color("12")).BorderForeground(lipgloss.Color("12"))
	t.header = t.header.Bold(true).Foreground(lipgloss.Color("14"))
	t.tokens = tokenColors
	return t
}

func (t theme) block(kind feedback.BlockKind) lipgloss.Style {
	if s, ok := t.blocks[kind]; ok {
		return s
	}
	return t.blocks[feedback.BlockDefault]
}

// paint colours a token value. Values are painted line by line so that
// escape sequences never span a newline.
func (t theme) paint(tok highlight.Token) string {
	c := t.tokens[tok.Kind]
	if c == nil || tok.Kind == highlight.KindText {
		return tok.Value
	}
	lines := strings.Split(tok.Value, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = c.Sprint(l)
		}
	}
	return strings.Join(lines, "\n")
}

func blockIcon(kind feedback.BlockKind) string {
	switch kind {
	case feedback.BlockError:
		return "[!!]"
	case feedback.BlockWarning:
		return "[!]"
	case feedback.BlockSuccess:
		return "[+]"
	case feedback.BlockGeneral:
		return "[*]"
	default:
		return "[-]"
	}
}
