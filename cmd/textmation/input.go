package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, file string) (string, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", file, err)
	}
	return string(d), nil
}
