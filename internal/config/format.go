package config

import "fmt"

// OutputFormat selects how parsed functions are printed.
type OutputFormat int

const (
	SEXPR OutputFormat = iota
	DUMP
)

func (f OutputFormat) String() string {
	switch f {
	case SEXPR:
		return "sexpr"
	case DUMP:
		return "dump"
	}
	return "unknown"
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "sexpr":
		return SEXPR, nil
	case "dump":
		return DUMP, nil
	}
	return SEXPR, fmt.Errorf("unknown output format %q, expected \"sexpr\" or \"dump\"", s)
}

func (f OutputFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *OutputFormat) UnmarshalText(text []byte) error {
	format, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = format
	return nil
}
