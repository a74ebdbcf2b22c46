package token

import (
	"errors"
	"testing"
)

func TestLexErrorWrapping(t *testing.T) {
	span := Span{Start: Pos{Line: 3, Col: 2}, End: Pos{Line: 3, Col: 7}}
	err := NewLexError(ErrUnterminated, span)
	if !errors.Is(err, ErrUnterminated) {
		t.Error("LexError should unwrap to its sentinel")
	}
	want := "unexpected end of line while scanning string literal (3:2, 3:7)"
	if err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
}

func TestTokenInfo(t *testing.T) {
	tok := Token{
		Type: TIdentifier,
		Text: "scene",
		Span: Span{Start: Pos{Line: 1, Col: 0}, End: Pos{Line: 1, Col: 5}},
	}
	want := `TIdentifier "scene" (1:0, 1:5)`
	if tok.Info() != want {
		t.Errorf("got %q want %q", tok.Info(), want)
	}
}
