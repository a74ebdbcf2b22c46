// Package token defines the token stream produced by lexing textmation
// scene sources.
//
// [Token] values carry their kind, the verbatim source text they were
// scanned from, and a [Span] locating that text for diagnostics.
package token
