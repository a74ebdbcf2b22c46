package token

import (
	"fmt"
)

type TokenType int

const (
	TEndOfStream TokenType = iota
	TNewline
	TIndent
	TDedent
	TComment
	TIdentifier
	TInteger
	TString
	TSymbol
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEndOfStream: "TEndOfStream",
		TNewline:     "TNewline",
		TIndent:      "TIndent",
		TDedent:      "TDedent",
		TComment:     "TComment",
		TIdentifier:  "TIdentifier",
		TInteger:     "TInteger",
		TString:      "TString",
		TSymbol:      "TSymbol",
	}[t]
}

// Token is one lexed unit of a textmation source. Text holds the source
// bytes exactly as they appeared, delimiters and markers included, except
// for TIndent and TDedent whose Text is the indentation prefix they
// establish. Tokens are never modified after being returned.
type Token struct {
	Type TokenType
	Text string
	Span Span
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Text, t.Span)
}
