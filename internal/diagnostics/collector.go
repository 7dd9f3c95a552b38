package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"

	multierror "github.com/hashicorp/go-multierror"
)

var (
	ERROR_FOUND = errors.New("parse error found")
)

// Collector is where the parser sends every diagnostic. Each diagnostic is
// written to the collector's output as soon as it is reported and kept for
// later inspection.
type Collector struct {
	Diags []Diag

	out     io.Writer
	colored bool
}

func New() *Collector {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter returns a collector that writes to out. A nil out keeps the
// diagnostics without printing them.
func NewWithWriter(out io.Writer) *Collector {
	return &Collector{
		Diags: nil,
		out:   out,
	}
}

func (collector *Collector) SetColored(colored bool) {
	collector.colored = colored
}

func (collector *Collector) ReportAndSave(diag Diag) {
	if collector.out != nil {
		fmt.Fprintln(collector.out, collector.render(diag))
	}
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) render(diag Diag) string {
	if !collector.colored {
		return diag.String()
	}
	return render(diag)
}

func (collector *Collector) Errors() []Diag {
	var errs []Diag
	for _, diag := range collector.Diags {
		if diag.IsError() {
			errs = append(errs, diag)
		}
	}
	return errs
}

func (collector *Collector) HasErrors() bool {
	for _, diag := range collector.Diags {
		if diag.IsError() {
			return true
		}
	}
	return false
}

// Err folds every error diagnostic into a single error wrapping ERROR_FOUND,
// or returns nil if none was reported.
func (collector *Collector) Err() error {
	var result *multierror.Error
	for _, diag := range collector.Errors() {
		result = multierror.Append(result, diag)
	}
	if result == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ERROR_FOUND, result.ErrorOrNil())
}

// Reset drops every saved diagnostic.
func (collector *Collector) Reset() {
	collector.Diags = nil
}
