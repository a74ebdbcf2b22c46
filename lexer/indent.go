package lexer

import (
	"fmt"
	"strings"

	"github.com/sameersemna/textmation/token"
)

// lineStart handles indentation bookkeeping at column 0. It emits at
// most one structural token per call; ok reports whether a token was
// produced. When ok is false the caller proceeds with ordinary token
// scanning on the same line.
func (lx *Lexer) lineStart() (tok token.Token, ok bool, err error) {
	c := lx.peekByte()

	// A line holding only whitespace is a single newline token and
	// carries no indentation information. Look ahead under a
	// snapshot; commit the consumed input only if the line turns out
	// blank.
	save := lx.mark()
	start := lx.pos
	begin := lx.off
	blank := false
	for {
		c2, err := lx.advance()
		if err != nil {
			lx.reset(save)
			return token.Token{}, false, err
		}
		if c2 == '\n' {
			blank = true
			break
		}
		if !isSpace(c2) {
			break
		}
	}
	if blank {
		span := token.Span{Start: start, End: lx.pos}
		text := lx.src[begin:lx.off]
		save.off, save.pos = lx.off, lx.pos
		lx.reset(save)
		return token.Token{Type: token.TNewline, Text: text, Span: span}, true, nil
	}
	lx.reset(save)

	if !isHSpace(c) {
		// Back at column 0: close one open block per call, leaving
		// the cursor in place so the next call sees the same line.
		if len(lx.indents) > 1 {
			lx.indents = lx.indents[:len(lx.indents)-1]
			here := token.Span{Start: lx.pos, End: lx.pos}
			return token.Token{Type: token.TDedent, Text: lx.indents[len(lx.indents)-1], Span: here}, true, nil
		}
		return token.Token{}, false, nil
	}

	start = lx.pos
	begin = lx.off
	for !lx.atEnd() && isHSpace(lx.peekByte()) {
		lx.advance()
	}
	run := lx.src[begin:lx.off]
	span := token.Span{Start: start, End: lx.pos}

	if lx.peekByte() == '#' {
		// Comment-only lines never touch the indentation stack.
		return token.Token{}, false, nil
	}

	top := lx.indents[len(lx.indents)-1]
	switch {
	case run == top:
		return token.Token{}, false, nil
	case strings.HasPrefix(run, top):
		lx.indents = append(lx.indents, run)
		return token.Token{Type: token.TIndent, Text: run, Span: span}, true, nil
	case strings.HasPrefix(top, run):
		lx.indents = lx.indents[:len(lx.indents)-1]
		return token.Token{Type: token.TDedent, Text: lx.indents[len(lx.indents)-1], Span: span}, true, nil
	default:
		return token.Token{}, false, token.NewLexError(
			fmt.Errorf("%w: differs at column %d", token.ErrIndent, divergence(top, run)), span)
	}
}

// divergence returns the column of the first character at which two
// indentation runs disagree.
func divergence(old, new string) int {
	n := min(len(old), len(new))
	for i := 0; i < n; i++ {
		if old[i] != new[i] {
			return i
		}
	}
	return n
}
