// Package langdetect guesses the programming or markup language of an
// unlabelled blob of text.
//
// Classification runs a short pipeline. Whole-document signatures (an XML
// declaration, an HTML doctype, a shebang line) are checked first. Otherwise
// every entry of a fixed, ordered catalog of language signatures is scored:
// each regular-expression detector contributes its match count times the
// signature's weight. The highest score wins, ties going to the signature
// declared first, and a confidence threshold decides between the winner and
// the JavaScript fallback.
//
// [Classify] and [Detect] are pure: no I/O, no shared mutable state, safe for
// concurrent use. They never fail.
package langdetect
