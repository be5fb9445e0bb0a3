// Package highlight splits source code into typed lexical tokens for
// syntax-coloured display.
//
// It is a small first-match lexer, not a parser: a per-language keyword
// pattern and comment pattern plus shared string, number, function-call,
// operator and bracket patterns are tried in a fixed priority order at each
// position. The output is a lossless partition of the input. Rendering the
// tokens (and escaping them for the target medium) is left to the caller;
// see package output.
package highlight
