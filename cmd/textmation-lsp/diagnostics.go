package main

import (
	"context"
	"errors"
	"fmt"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/sameersemna/textmation/lexer"
	"github.com/sameersemna/textmation/token"
)

func (s *Server) publishDiagnostics(ctx context.Context, u uri.URI) {
	text, ok := s.docs.get(u)
	if !ok {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics,
		&protocol.PublishDiagnosticsParams{
			URI:         u,
			Diagnostics: lexDiagnostics(text),
		})
}

// lexDiagnostics reports at most one diagnostic: lexical errors are
// fatal to the tokenization pass, so there is nothing to resume after
// the first.
func lexDiagnostics(text string) []protocol.Diagnostic {
	_, err := safeTokenize(text)
	if err == nil {
		return []protocol.Diagnostic{}
	}
	rng := protocol.Range{}
	var lerr *token.LexError
	if errors.As(err, &lerr) {
		rng = spanRange(lerr.Span)
	}
	return []protocol.Diagnostic{{
		Range:    rng,
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  err.Error(),
	}}
}

// safeTokenize converts input-contract panics (e.g. a bare carriage
// return from an editor buffer) into errors; an editor is not a trusted
// caller.
func safeTokenize(text string) (toks []token.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return lexer.Tokenize(nil, text)
}

func spanRange(span token.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(span.Start.Line - 1),
			Character: uint32(span.Start.Col),
		},
		End: protocol.Position{
			Line:      uint32(span.End.Line - 1),
			Character: uint32(span.End.Col),
		},
	}
}
