package lexer

import (
	"errors"
	"testing"

	"github.com/sameersemna/textmation/token"
)

func TestPeekIsStable(t *testing.T) {
	lx := New("a = 1\n")
	p0, err := lx.Peek(0)
	if err != nil {
		t.Fatal(err)
	}
	p1, err := lx.Peek(0)
	if err != nil {
		t.Fatal(err)
	}
	if p0 != p1 {
		t.Errorf("got %s then %s", p0.Info(), p1.Info())
	}
	next, err := lx.Next()
	if err != nil {
		t.Fatal(err)
	}
	if next != p0 {
		t.Errorf("Next returned %s, Peek promised %s", next.Info(), p0.Info())
	}
}

func TestPeekOffset(t *testing.T) {
	lx := New("a b c\n")
	want := []string{"a", "b", "c"}
	for i, w := range want {
		tok, err := lx.Peek(i)
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type != token.TIdentifier || tok.Text != w {
			t.Errorf("Peek(%d): got %s want identifier %q", i, tok.Info(), w)
		}
	}
	// peeking must not advance the stream
	tok, err := lx.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Text != "a" {
		t.Errorf("after peeks, Next returned %s", tok.Info())
	}
}

func TestPeekPastEnd(t *testing.T) {
	lx := New("a")
	tok, err := lx.Peek(10)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Type != token.TEndOfStream {
		t.Errorf("got %s want TEndOfStream", tok.Info())
	}
}

// Peeking across structural tokens must leave the indentation stack as
// it was: the Indent/Dedent produced under the snapshot are discarded
// along with the cursor movement.
func TestPeekRestoresIndents(t *testing.T) {
	lx := New("a\n  b\nc\n")
	if _, err := lx.Peek(6); err != nil {
		t.Fatal(err)
	}
	var got []string
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, tok.Type.String())
		if tok.Type == token.TEndOfStream {
			break
		}
	}
	want := []string{
		"TIdentifier", "TNewline", "TIndent", "TIdentifier",
		"TNewline", "TDedent", "TIdentifier", "TNewline", "TEndOfStream",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestPeekError(t *testing.T) {
	lx := New("\"abc\n")
	if _, err := lx.Peek(0); !errors.Is(err, token.ErrUnterminated) {
		t.Errorf("got %v want %v", err, token.ErrUnterminated)
	}
	// the failure is positional, so it repeats on the real call
	if _, err := lx.Next(); !errors.Is(err, token.ErrUnterminated) {
		t.Errorf("got %v want %v", err, token.ErrUnterminated)
	}
}
