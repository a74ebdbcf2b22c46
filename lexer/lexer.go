// Package lexer turns textmation scene sources into a stream of
// [token.Token] values.
//
// The lexer is line oriented: it tracks a stack of indentation prefixes
// and emits TIndent/TDedent tokens as block structure markers when the
// leading whitespace of a line grows or shrinks. Lookahead is explicit,
// via position snapshots that restore the scanner without consuming
// input.
package lexer

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/sameersemna/textmation/debug"
	"github.com/sameersemna/textmation/token"
)

// Lexer scans one in-memory source text. It is stateful and not safe
// for concurrent use.
type Lexer struct {
	src string
	off int
	pos token.Pos

	// stack of indentation prefixes, each entry a strict prefix of
	// the next; indents[0] is always "".
	indents []string

	marks int
}

func New(src string) *Lexer {
	return &Lexer{
		src:     src,
		pos:     token.Pos{Line: 1},
		indents: []string{""},
	}
}

// state is a restorable snapshot of the scanner position.
type state struct {
	off   int
	pos   token.Pos
	marks int
}

// mark captures the scanner position. Snapshots nest in strict LIFO
// order: each mark must be released by exactly one reset before any
// outer snapshot is restored.
func (lx *Lexer) mark() state {
	lx.marks++
	return state{off: lx.off, pos: lx.pos, marks: lx.marks}
}

func (lx *Lexer) reset(s state) {
	if s.marks != lx.marks {
		panic("lexer: snapshot restored out of order")
	}
	lx.marks--
	lx.off = s.off
	lx.pos = s.pos
}

func (lx *Lexer) atEnd() bool {
	return lx.off >= len(lx.src)
}

func (lx *Lexer) peekByte() byte {
	return lx.src[lx.off]
}

// advance consumes and returns the rune at the cursor, updating the
// line/column position. Columns count characters, not bytes.
func (lx *Lexer) advance() (rune, error) {
	if lx.off >= len(lx.src) {
		return 0, token.NewLexError(token.ErrUnexpectedEOF, token.Span{Start: lx.pos, End: lx.pos})
	}
	c, sz := utf8.DecodeRuneInString(lx.src[lx.off:])
	lx.off += sz
	if c == '\n' {
		lx.pos.Line++
		lx.pos.Col = 0
	} else {
		lx.pos.Col++
	}
	return c, nil
}

// Next returns the next token. After the input is exhausted it emits
// one TDedent per remaining indentation level and then TEndOfStream on
// every subsequent call.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.atEnd() {
		return lx.drain(), nil
	}
	if lx.pos.Col == 0 {
		tok, ok, err := lx.lineStart()
		if err != nil {
			return token.Token{}, err
		}
		if ok {
			return tok, nil
		}
	}
	return lx.scan()
}

// Peek returns the token offset calls ahead without advancing the
// stream; Peek(0) is the token the next call to Next will return.
// Unlike the raw position snapshot, Peek also restores the indentation
// stack, which Next may push or pop while producing the peeked tokens.
func (lx *Lexer) Peek(offset int) (tok token.Token, err error) {
	save := lx.mark()
	indents := slices.Clone(lx.indents)
	defer func() {
		lx.indents = indents
		lx.reset(save)
	}()
	for i := 0; i <= offset; i++ {
		tok, err = lx.Next()
		if err != nil {
			return token.Token{}, err
		}
	}
	return tok, nil
}

// drain pops indentation levels one per call once the input is
// exhausted, then settles on TEndOfStream. All spans are zero-width at
// the terminal position.
func (lx *Lexer) drain() token.Token {
	here := token.Span{Start: lx.pos, End: lx.pos}
	if len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		return token.Token{Type: token.TDedent, Text: lx.indents[len(lx.indents)-1], Span: here}
	}
	return token.Token{Type: token.TEndOfStream, Span: here}
}

// Tokenize appends the full token stream of src to dst, through the
// first TEndOfStream. On a lexical error it returns nil and the error.
func Tokenize(dst []token.Token, src string) ([]token.Token, error) {
	lx := New(src)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if debug.Lex() {
			debug.Logf("%s", tok.Info())
		}
		dst = append(dst, tok)
		if tok.Type == token.TEndOfStream {
			return dst, nil
		}
	}
}

func isHSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isSpace(c rune) bool {
	return unicode.IsSpace(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
