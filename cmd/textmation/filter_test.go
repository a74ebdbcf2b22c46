package main

import (
	"testing"

	"github.com/sameersemna/textmation/lexer"
	"github.com/sameersemna/textmation/token"
)

func TestCompileFilter(t *testing.T) {
	toks, err := lexer.Tokenize(nil, "x = 1 # note\n")
	if err != nil {
		t.Fatal(err)
	}
	filter, err := compileFilter(`Type == "TIdentifier"`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := applyFilter(toks, filter)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Type != token.TIdentifier || got[0].Text != "x" {
		t.Errorf("got %v", got)
	}
}

func TestCompileFilterBadExpr(t *testing.T) {
	if _, err := compileFilter(`Type +`); err == nil {
		t.Error("expected a compile error")
	}
	// non-boolean results are rejected at compile time
	if _, err := compileFilter(`Line + Col`); err == nil {
		t.Error("expected a compile error for a non-bool predicate")
	}
}
