package lexer

import (
	"unicode/utf8"

	"github.com/sameersemna/textmation/token"
)

// scan produces one ordinary token at the cursor. Horizontal whitespace
// between tokens is skipped, never tokenized.
func (lx *Lexer) scan() (token.Token, error) {
	for !lx.atEnd() && isHSpace(lx.peekByte()) {
		lx.advance()
	}
	if lx.atEnd() {
		return lx.drain(), nil
	}

	c := lx.peekByte()
	switch {
	case c == '#':
		return lx.scanComment(), nil
	case isDigit(c):
		return lx.scanInteger(), nil
	case isIdentStart(c):
		return lx.scanIdentifier(), nil
	case c == '"' || c == '\'':
		return lx.scanString()
	case c == '\n' || c == '\r':
		return lx.scanNewline(), nil
	}

	r, _ := utf8.DecodeRuneInString(lx.src[lx.off:])
	if isSpace(r) {
		// Only \n, \r\n, space and tab are whitespace here. Anything
		// else is a violation of the input contract.
		panic("lexer: unsupported whitespace in input")
	}
	start := lx.pos
	begin := lx.off
	lx.advance()
	return token.Token{
		Type: token.TSymbol,
		Text: lx.src[begin:lx.off],
		Span: token.Span{Start: start, End: lx.pos},
	}, nil
}

// scanComment consumes from the marker up to, not including, the line
// terminator.
func (lx *Lexer) scanComment() token.Token {
	start := lx.pos
	begin := lx.off
	for !lx.atEnd() {
		if c := lx.peekByte(); c == '\n' || c == '\r' {
			break
		}
		lx.advance()
	}
	return token.Token{
		Type: token.TComment,
		Text: lx.src[begin:lx.off],
		Span: token.Span{Start: start, End: lx.pos},
	}
}

func (lx *Lexer) scanInteger() token.Token {
	start := lx.pos
	begin := lx.off
	for !lx.atEnd() && isDigit(lx.peekByte()) {
		lx.advance()
	}
	return token.Token{
		Type: token.TInteger,
		Text: lx.src[begin:lx.off],
		Span: token.Span{Start: start, End: lx.pos},
	}
}

func (lx *Lexer) scanIdentifier() token.Token {
	start := lx.pos
	begin := lx.off
	for !lx.atEnd() && isIdent(lx.peekByte()) {
		lx.advance()
	}
	return token.Token{
		Type: token.TIdentifier,
		Text: lx.src[begin:lx.off],
		Span: token.Span{Start: start, End: lx.pos},
	}
}

// scanString consumes a single- or double-quoted literal. A backslash
// unconditionally escapes the following character, line terminators
// included. Text keeps both delimiters.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.pos
	begin := lx.off
	quote, _ := lx.advance()
	for {
		c, err := lx.advance()
		if err != nil {
			return token.Token{}, token.NewLexError(token.ErrUnexpectedEOF, token.Span{Start: start, End: lx.pos})
		}
		if c == '\\' {
			if _, err := lx.advance(); err != nil {
				return token.Token{}, token.NewLexError(token.ErrUnexpectedEOF, token.Span{Start: start, End: lx.pos})
			}
			continue
		}
		if c == quote {
			break
		}
		if c == '\n' {
			return token.Token{}, token.NewLexError(token.ErrUnterminated, token.Span{Start: start, End: lx.pos})
		}
	}
	return token.Token{
		Type: token.TString,
		Text: lx.src[begin:lx.off],
		Span: token.Span{Start: start, End: lx.pos},
	}, nil
}

// scanNewline consumes "\n" or "\r\n". A bare carriage return is a
// violation of the input contract, not a lexical error.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.pos
	begin := lx.off
	c, _ := lx.advance()
	if c == '\r' {
		c2, err := lx.advance()
		if err != nil || c2 != '\n' {
			panic("lexer: bare carriage return in input")
		}
	}
	return token.Token{
		Type: token.TNewline,
		Text: lx.src[begin:lx.off],
		Span: token.Span{Start: start, End: lx.pos},
	}
}
