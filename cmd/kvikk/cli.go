package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HicaroD/kvikk/internal/config"
	"github.com/HicaroD/kvikk/internal/diagnostics"
	"github.com/HicaroD/kvikk/internal/parser"
)

var (
	cfgFile  string
	verbose  bool
	dump     bool
	tokens   bool
	noColor  bool
	maxDepth int
)

var rootCmd = &cobra.Command{
	Use:   "kvikk",
	Short: "kvikk - parse function definitions and arithmetic expressions",
	Long: `kvikk reads one line at a time and prints the syntax tree of every
function definition and top-level expression on it.

Examples:
  kvikk                              Start the interactive prompt
  kvikk parse "def f(a, b) a + b"    Parse the given lines
  echo "1 + 2 * 3" | kvikk parse     Parse lines from standard input
  kvikk env                          Show the active configuration`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runREPL(cfg, os.Stdin, os.Stdout)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [line...]",
	Short: "Parse the given lines, or standard input, and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		lines := args
		if len(lines) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}

		filename := "<args>"
		if len(args) == 0 {
			filename = "<stdin>"
		}
		return parseLines(cfg, filename, lines, os.Stdout)
	},
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg.ShowAll(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/kvikk/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dump, "dump", false, "print every node with its Go type")
	rootCmd.PersistentFlags().BoolVar(&tokens, "tokens", false, "print the tokens of every line before parsing it")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum expression nesting depth")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(envCmd)
}

// loadConfig reads the config file and applies the flags the user set on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		var path string
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
		if verbose {
			log.Printf("using config file %s", path)
		}
		cfg, err = config.LoadOrCreate(path)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dump") && dump {
		cfg.Format = config.DUMP
	}
	if flags.Changed("no-color") && noColor {
		cfg.Color = false
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	if cfg.MaxDepth <= 0 {
		return nil, fmt.Errorf("max depth must be positive, got %d", cfg.MaxDepth)
	}

	if verbose {
		log.Printf("format=%s max_depth=%d color=%t", cfg.Format, cfg.MaxDepth, cfg.Color)
	}
	return cfg, nil
}

func newSession(cfg *config.Config, filename string, out io.Writer) (*parser.Parser, *diagnostics.Collector) {
	collector := diagnostics.NewWithWriter(out)
	collector.SetColored(cfg.Color && isTerminal(out))
	p := parser.New(collector, parser.WithMaxDepth(cfg.MaxDepth), parser.WithFilename(filename))
	return p, collector
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func parseLines(cfg *config.Config, filename string, lines []string, out io.Writer) error {
	p, collector := newSession(cfg, filename, out)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.SetLine(i + 1)
		printTokens(out, line)
		printFunctions(cfg, out, p.Parse(line))
	}
	return collector.Err()
}
