package token

import (
	"errors"
	"fmt"
)

var (
	ErrIndent        = errors.New("inconsistent use of tabs and spaces in indentation")
	ErrUnterminated  = errors.New("unexpected end of line while scanning string literal")
	ErrUnexpectedEOF = errors.New("unexpected end of stream")
)

// LexError is the one error kind the lexer reports: a message and the
// span it applies to. It is fatal to the tokenization pass; recovery is
// the consumer's business.
type LexError struct {
	Err  error
	Span Span
}

func NewLexError(err error, span Span) *LexError {
	return &LexError{Err: err, Span: span}
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Span)
}
