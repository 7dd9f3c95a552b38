package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/HicaroD/kvikk/internal/ast"
	"github.com/HicaroD/kvikk/internal/config"
	"github.com/HicaroD/kvikk/internal/lexer"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func printFunctions(cfg *config.Config, out io.Writer, functions []*ast.Function) {
	for _, fn := range functions {
		switch cfg.Format {
		case config.DUMP:
			dumpConfig.Fdump(out, fn)
		default:
			fmt.Fprintln(out, fn)
		}
	}
}

func printTokens(out io.Writer, line string) {
	if !tokens {
		return
	}
	for _, tok := range lexer.NewFromInput(line).Tokenize() {
		fmt.Fprintf(out, "  %s\n", tok)
	}
}
