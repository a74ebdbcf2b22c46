package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex bool
	LSP bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("TEXTMATION_DEBUG_LEX")
	d.LSP = boolEnv("TEXTMATION_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func LSP() bool {
	return d.LSP
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
