// Package feedback parses the markdown review text returned by an LLM into a
// display-ready [Document].
//
// Fenced code blocks are lifted out before any cleanup so their contents are
// preserved; blocks without a declared language are labelled with
// langdetect and every block is tokenized with highlight. The remaining prose
// is stripped of emphasis and list markup, split into sections at "##"
// headings and into paragraphs at blank lines, and each paragraph is given a
// [BlockKind] (error, warning, success, ...) from the words it contains.
package feedback
