package main

import (
	"context"
	"encoding/json"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/sameersemna/textmation/debug"
)

type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore
}

func newServer(conn jsonrpc2.Conn) *Server {
	return &Server{
		conn: conn,
		docs: newDocumentStore(),
	}
}

// handle dispatches the subset of the protocol this server implements;
// everything it does is derived from the lexer's token stream.
func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.LSP() {
		debug.Logf("lsp <- %s", req.Method())
	}
	switch req.Method() {
	case protocol.MethodInitialize:
		return reply(ctx, s.initialize(), nil)
	case protocol.MethodInitialized, protocol.MethodShutdown, protocol.MethodExit:
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidOpen:
		var params protocol.DidOpenTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.docs.set(params.TextDocument.URI, params.TextDocument.Text)
		s.publishDiagnostics(ctx, params.TextDocument.URI)
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidChange:
		var params protocol.DidChangeTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		// full sync: the last change carries the whole document
		if n := len(params.ContentChanges); n > 0 {
			s.docs.set(params.TextDocument.URI, params.ContentChanges[n-1].Text)
			s.publishDiagnostics(ctx, params.TextDocument.URI)
		}
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidClose:
		var params protocol.DidCloseTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.docs.del(params.TextDocument.URI)
		return reply(ctx, nil, nil)
	case protocol.MethodSemanticTokensFull:
		var params protocol.SemanticTokensParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, s.semanticTokens(params.TextDocument.URI), nil)
	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (s *Server) initialize() *protocol.InitializeResult {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				Change:    protocol.TextDocumentSyncKindFull,
				OpenClose: true,
			},
			SemanticTokensProvider: map[string]interface{}{
				"full": true,
				"legend": protocol.SemanticTokensLegend{
					TokenTypes:     semanticTokenLegend,
					TokenModifiers: []protocol.SemanticTokenModifiers{},
				},
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}
}
