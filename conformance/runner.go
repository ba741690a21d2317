package conformance

import (
	"fmt"
	"io"
	"strings"

	"lispi/config"
	"lispi/driver"
	"lispi/interp"
	"lispi/parser"
)

// Runner executes Scenarios against fresh interpreter contexts.
type Runner struct{}

// NewRunner builds a Runner. It holds no state; every Run call gets its
// own interp.Context so scenarios never interfere with one another.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes every statement in s in order against one fresh
// interp.Context, returning an error describing the first statement whose
// actual output didn't match its Expect.
func (r *Runner) Run(s Scenario) error {
	maxWorkers := config.DefaultMaxWorkers
	if s.MaxWorkers != nil {
		maxWorkers = *s.MaxWorkers
	}
	ctx := interp.New(maxWorkers, nil)

	for i, stmt := range s.Statements {
		got, err := runOne(ctx, stmt.Source)
		if err != nil {
			return fmt.Errorf("scenario %q statement %d (%q): parse error: %w", s.Name, i, stmt.Source, err)
		}
		if got != stmt.Expect {
			return fmt.Errorf("scenario %q statement %d (%q): got %q, want %q", s.Name, i, stmt.Source, got, stmt.Expect)
		}
	}
	return nil
}

// runOne parses and runs a single top-level form, returning the one line
// the driver printed (without its trailing newline).
func runOne(ctx *interp.Context, source string) (string, error) {
	var buf strings.Builder
	d := driver.New(ctx, io.Writer(&buf))

	p := parser.NewParser(source)
	form, err := p.ParseForm()
	if err != nil {
		return "", err
	}
	d.RunForm(form)
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
