package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sameersemna/textmation/lexer"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, file := range args {
		src, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if _, err := lexer.Tokenize(nil, src); err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			failed = true
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", file)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
