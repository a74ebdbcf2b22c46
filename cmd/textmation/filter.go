package main

import (
	"github.com/expr-lang/expr"

	"github.com/sameersemna/textmation/token"
)

type filterFunc func(token.Token) (bool, error)

type filterEnv struct {
	Type string
	Text string
	Line int
	Col  int
}

// compileFilter builds a predicate over one token from an expr program,
// e.g. `Type == "TIdentifier" && Line > 3`.
func compileFilter(src string) (filterFunc, error) {
	prg, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(t token.Token) (bool, error) {
		res, err := expr.Run(prg, filterEnv{
			Type: t.Type.String(),
			Text: t.Text,
			Line: t.Span.Start.Line,
			Col:  t.Span.Start.Col,
		})
		if err != nil {
			return false, err
		}
		return res.(bool), nil
	}, nil
}

func applyFilter(toks []token.Token, filter filterFunc) ([]token.Token, error) {
	res := toks[:0]
	for _, tok := range toks {
		keep, err := filter(tok)
		if err != nil {
			return nil, err
		}
		if keep {
			res = append(res, tok)
		}
	}
	return res, nil
}
