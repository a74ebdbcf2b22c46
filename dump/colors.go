package dump

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/sameersemna/textmation/token"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[token.TokenType]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: fmt.Sprintf,
		Map:     map[token.TokenType]func(string, ...any) string{},
	}
	colors.Map[token.TComment] = color.BlueString
	colors.Map[token.TString] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[token.TInteger] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[token.TIdentifier] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[token.TSymbol] = color.RGB(255, 0, 196).SprintfFunc()
	grey := color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[token.TNewline] = grey
	colors.Map[token.TIndent] = grey
	colors.Map[token.TDedent] = grey
	colors.Map[token.TEndOfStream] = grey
	return colors
}

func (c *Colors) Sprintf(t token.TokenType, format string, args ...any) string {
	fn := c.Map[t]
	if fn == nil {
		fn = c.Default
	}
	return fn(format, args...)
}
