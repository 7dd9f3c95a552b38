package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/HicaroD/kvikk/internal/config"
)

// runREPL parses every line read from in until it is exhausted or the user
// types :q. Commands start with ':', which no expression can, so every
// identifier stays parseable. Diagnostics and results are written to out.
func runREPL(cfg *config.Config, in io.Reader, out io.Writer) error {
	p, collector := newSession(cfg, "<stdin>", out)

	scanner := bufio.NewScanner(in)
	lineNo := 0

	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		lineNo++

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":q", ":quit":
			return nil
		}

		collector.Reset()
		p.SetLine(lineNo)
		printTokens(out, line)
		printFunctions(cfg, out, p.Parse(line))
	}

	return scanner.Err()
}
