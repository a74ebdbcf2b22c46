// Package libdiff renders the differences between two token streams or
// two pieces of text.
package libdiff

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sameersemna/textmation/dump"
	"github.com/sameersemna/textmation/token"
)

// DiffString returns a readable rendering of the differences between
// from and to, or "" when they are equal. Inserted text is wrapped in
// {+...+}, deleted text in [-...-].
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	var (
		sb       strings.Builder
		diffSize int
	)
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(diff.Text)
			sb.WriteString("+}")
			diffSize += len(diff.Text)
		case diffpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(diff.Text)
			sb.WriteString("-]")
			diffSize += len(diff.Text)
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		}
	}
	if diffSize == 0 {
		return ""
	}
	return sb.String()
}

// DiffTokens diffs the dump renderings of two token streams.
func DiffTokens(from, to []token.Token) string {
	var fb, tb bytes.Buffer
	dump.Dump(&fb, from)
	dump.Dump(&tb, to)
	return DiffString(fb.String(), tb.String())
}
