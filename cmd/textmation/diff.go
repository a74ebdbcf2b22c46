package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sameersemna/textmation/lexer"
	"github.com/sameersemna/textmation/libdiff"
	"github.com/sameersemna/textmation/token"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments, <from> and <to>", cli.ErrUsage)
	}
	from, err := diffToks(cc, args[0])
	if err != nil {
		return err
	}
	to, err := diffToks(cc, args[1])
	if err != nil {
		return err
	}
	res := libdiff.DiffTokens(from, to)
	if res == "" {
		return nil
	}
	fmt.Fprint(cc.Out, res)
	return cli.ExitCodeErr(1)
}

func diffToks(cc *cli.Context, file string) ([]token.Token, error) {
	src, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.Tokenize(nil, src)
	if err != nil {
		return nil, fmt.Errorf("error tokenizing %s: %w", file, err)
	}
	return toks, nil
}
