// Package output formats review results for display or machine consumption.
//
// Four formats are supported:
//   - text     - terminal output; section titles and paragraph blocks are
//     styled with lipgloss, code tokens are coloured with fatih/color (default)
//   - json     - the full structured result (an array for several results)
//   - markdown - PR-comment-friendly sections with fenced code
//   - html     - an escaped HTML fragment with one span per code token
//
// Use [GetWriter] to obtain a [Writer] for a given format string, or
// [WriteResult] / [WriteResults] to write to a file or stdout. The text, json
// and html writers also implement [TokenWriter] for bare highlighted code.
package output
