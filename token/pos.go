package token

import (
	"fmt"
)

// Pos is a source position. Line is 1-based, Col is 0-based; Col resets
// to 0 when a line terminator is consumed.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is the half-open source region consumed by one token. Structural
// tokens at terminal positions carry a zero-width span.
type Span struct {
	Start, End Pos
}

func (s Span) String() string {
	return fmt.Sprintf("(%s, %s)", s.Start, s.End)
}

func (s Span) IsZero() bool {
	return s.Start == s.End
}
