package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/sameersemna/textmation/dump"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	Main *cli.Command
}

// dumpOpts decides color handling: explicit -color wins, an explicit
// -color=false suppresses, and otherwise color follows whether w is a
// terminal.
func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.DumpOption {
	var res []dump.DumpOption
	if cfg.Color {
		return append(res, dump.DumpColors(dump.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, dump.DumpColors(dump.NewColors()))
	}
	return res
}

type TokensConfig struct {
	*MainConfig

	YAML   bool   `cli:"name=yaml aliases=y desc='dump tokens as yaml'"`
	Filter string `cli:"name=filter desc='keep tokens matching an expr predicate over Type, Text, Line, Col'"`

	Tokens *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
