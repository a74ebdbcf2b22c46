package main

import (
	"strings"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/sameersemna/textmation/token"
)

var semanticTokenLegend = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenVariable,
	protocol.SemanticTokenOperator,
}

// legend indices
const (
	semComment = iota
	semString
	semNumber
	semVariable
	semOperator
)

func semanticClass(t token.TokenType) (uint32, bool) {
	switch t {
	case token.TComment:
		return semComment, true
	case token.TString:
		return semString, true
	case token.TInteger:
		return semNumber, true
	case token.TIdentifier:
		return semVariable, true
	case token.TSymbol:
		return semOperator, true
	}
	return 0, false
}

// semanticTokens encodes the lexer's classification of the document in
// the LSP delta format. A source that fails to tokenize highlights
// nothing; the diagnostic covers it.
func (s *Server) semanticTokens(u uri.URI) *protocol.SemanticTokens {
	res := &protocol.SemanticTokens{Data: []uint32{}}
	text, ok := s.docs.get(u)
	if !ok {
		return res
	}
	toks, err := safeTokenize(text)
	if err != nil {
		return res
	}
	prevLine, prevCol := uint32(0), uint32(0)
	for i := range toks {
		t := &toks[i]
		class, ok := semanticClass(t.Type)
		if !ok {
			continue
		}
		// semantic tokens are single-line; a string with an escaped
		// terminator is skipped rather than truncated
		if strings.Contains(t.Text, "\n") {
			continue
		}
		line := uint32(t.Span.Start.Line - 1)
		col := uint32(t.Span.Start.Col)
		dLine := line - prevLine
		dCol := col
		if dLine == 0 {
			dCol = col - prevCol
		}
		res.Data = append(res.Data, dLine, dCol, uint32(len(t.Text)), class, 0)
		prevLine, prevCol = line, col
	}
	return res
}
