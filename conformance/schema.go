// Package conformance runs YAML-encoded end-to-end scenarios against a
// fresh interpreter context per file, grounded on the teacher's
// YAML-driven fixture schema/loader/runner split (conformance/schema.go,
// conformance/loader.go, conformance/runner.go), adapted from per-suite
// database setup to per-file interp.Context setup since this language has
// no persistent object store to load.
package conformance

// Statement is one top-level form submitted to the driver, and the single
// line of output expected back (a printed value, a "Defined ..." message,
// or a one-line error diagnostic).
type Statement struct {
	Source string `yaml:"source"`
	Expect string `yaml:"expect"`
}

// Scenario is one YAML fixture file: a named, ordered sequence of
// statements run against one fresh interp.Context, plus an optional
// worker-count override used to exercise the same scenario serially and
// in parallel (spec §8's determinism invariant).
type Scenario struct {
	Name       string      `yaml:"name"`
	MaxWorkers *int        `yaml:"max_workers"`
	Statements []Statement `yaml:"statements"`
}
