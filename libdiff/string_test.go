package libdiff

import (
	"strings"
	"testing"

	"github.com/sameersemna/textmation/lexer"
)

func TestDiffStringEqual(t *testing.T) {
	if d := DiffString("a b c", "a b c"); d != "" {
		t.Errorf("got %q want empty", d)
	}
}

func TestDiffString(t *testing.T) {
	d := DiffString("a b c", "a x c")
	if d == "" {
		t.Fatal("expected a non-empty diff")
	}
	if !strings.Contains(d, "{+x+}") || !strings.Contains(d, "[-b-]") {
		t.Errorf("got %q", d)
	}
}

func TestDiffTokens(t *testing.T) {
	from, err := lexer.Tokenize(nil, "a = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	to, err := lexer.Tokenize(nil, "a = 2\n")
	if err != nil {
		t.Fatal(err)
	}
	d := DiffTokens(from, to)
	if d == "" {
		t.Fatal("expected a non-empty diff")
	}
	if !strings.Contains(d, "{+2+}") {
		t.Errorf("got %q", d)
	}
	if d := DiffTokens(from, from); d != "" {
		t.Errorf("got %q want empty", d)
	}
}
