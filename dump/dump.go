// Package dump renders token streams for humans and tools.
package dump

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/sameersemna/textmation/token"
)

type DumpOption func(*dumpOpts)

type dumpOpts struct {
	colors *Colors
	yaml   bool
}

// DumpColors renders each token line with the given color table.
func DumpColors(colors *Colors) DumpOption {
	return func(o *dumpOpts) {
		o.colors = colors
	}
}

// DumpYAML renders the stream as a YAML document instead of one line
// per token.
func DumpYAML(on bool) DumpOption {
	return func(o *dumpOpts) {
		o.yaml = on
	}
}

type record struct {
	Type    string `yaml:"type"`
	Text    string `yaml:"text"`
	Line    int    `yaml:"line"`
	Col     int    `yaml:"col"`
	EndLine int    `yaml:"endLine"`
	EndCol  int    `yaml:"endCol"`
}

// Dump writes one line per token: kind, quoted text, span. With
// DumpYAML it writes a YAML sequence of records instead.
func Dump(w io.Writer, toks []token.Token, opts ...DumpOption) error {
	o := &dumpOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.yaml {
		return dumpYAML(w, toks)
	}
	for i := range toks {
		t := &toks[i]
		line := fmt.Sprintf("%-12s %-24q %s", t.Type, t.Text, t.Span)
		if o.colors != nil {
			line = o.colors.Sprintf(t.Type, "%s", line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func dumpYAML(w io.Writer, toks []token.Token) error {
	recs := make([]record, len(toks))
	for i := range toks {
		t := &toks[i]
		recs[i] = record{
			Type:    t.Type.String(),
			Text:    t.Text,
			Line:    t.Span.Start.Line,
			Col:     t.Span.Start.Col,
			EndLine: t.Span.End.Line,
			EndCol:  t.Span.End.Col,
		}
	}
	d, err := yaml.Marshal(recs)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	_, err = w.Write(d)
	return err
}
