package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sameersemna/textmation/dump"
	"github.com/sameersemna/textmation/lexer"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	var filter filterFunc
	if cfg.Filter != "" {
		filter, err = compileFilter(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: bad -filter: %w", cli.ErrUsage, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := tokensFile(cfg, cc, filter, file); err != nil {
			return err
		}
	}
	return nil
}

func tokensFile(cfg *TokensConfig, cc *cli.Context, filter filterFunc, file string) error {
	src, err := readInput(cc, file)
	if err != nil {
		return err
	}
	toks, err := lexer.Tokenize(nil, src)
	if err != nil {
		return fmt.Errorf("error tokenizing %s: %w", file, err)
	}
	if filter != nil {
		toks, err = applyFilter(toks, filter)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", file, err)
		}
	}
	opts := cfg.dumpOpts(cc.Out)
	if cfg.YAML {
		opts = append(opts, dump.DumpYAML(true))
	}
	return dump.Dump(cc.Out, toks, opts...)
}
