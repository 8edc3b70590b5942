// Package checker implements the operation consistency checker: it
// cross-validates every optional representation an operation defines
// against every other, and grades findings on the error/hint/comment/
// pass scale.
package checker

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/report"
)

// ErrUsage is returned for malformed checker input: mismatched broadcast
// lengths or targets that cannot be resolved to a definition. This is a
// hard failure, distinct from graded diagnostics.
var ErrUsage = errors.New("checker: invalid usage")

// Checker validates operation definitions for self-consistency.
type Checker struct {
	// Verbosity is the least severe grade still printed. Error lines
	// are always printed regardless.
	Verbosity report.Severity
	// MaxNumParams bounds the probed parameter counts for operations
	// without a declared count.
	MaxNumParams int
	// Color enables ANSI coloring of diagnostic lines.
	Color bool
	// Tol is the absolute tolerance for matrix comparisons.
	Tol float64
	// Out receives the mirrored terminal output. Defaults to stdout.
	Out io.Writer
}

// New returns a checker with the standard settings.
func New() *Checker {
	return &Checker{
		Verbosity:    report.SevPass,
		MaxNumParams: 10,
		Color:        true,
		Tol:          1e-5,
		Out:          os.Stdout,
	}
}

// Target is one operation to check: a definition, optionally paired
// with a constructed instance whose stored parameters and wires are
// used verbatim.
type Target struct {
	Def  op.Definition
	Inst op.Operator
}

// ForDef targets a definition; example parameters and wires are either
// supplied through Options or synthesized.
func ForDef(def op.Definition) Target {
	return Target{Def: def}
}

// ForOp targets a constructed instance. The instance must expose the
// definition it was built from.
func ForOp(inst op.Operator) (Target, error) {
	d, ok := inst.(op.Definitioner)
	if !ok {
		return Target{}, fmt.Errorf("checker.ForOp: %s does not expose its definition: %w", inst.Name(), ErrUsage)
	}
	return Target{Def: d.Definition(), Inst: inst}, nil
}

// Options carries per-invocation inputs for Check. A single parameter
// or wire set is broadcast across all targets; otherwise counts must
// match the target count exactly.
type Options struct {
	Params [][]float64
	Wires  [][]int
	Seed   *int64
}

// Check runs the full pipeline for every target and returns the graded
// report. Diagnostics accumulate per operation; a fatal condition in
// one operation aborts only that operation's remaining checks.
func (c *Checker) Check(targets []Target, opts Options) (*report.Report, error) {
	params, err := broadcast(opts.Params, len(targets), "parameter")
	if err != nil {
		return nil, err
	}
	wires, err := broadcast(opts.Wires, len(targets), "wire")
	if err != nil {
		return nil, err
	}
	if opts.Seed != nil {
		seedSource(*opts.Seed)
	}

	rep := report.New()
	for i, tgt := range targets {
		s := &session{
			c:    c,
			def:  tgt.Def,
			inst: tgt.Inst,
			name: tgt.Def.Name,
			res:  report.SevPass,
		}
		if tgt.Inst != nil {
			s.name = tgt.Inst.Name()
		}

		if err := s.run(params[i], wires[i]); err != nil && !errors.Is(err, errAbort) {
			rep.Record(s.name, s.res, s.buf.String())
			return rep, err
		}

		if s.res == report.SevPass {
			s.emit(report.SevPass, "No problems have been found with the operation %s.", s.name)
		}
		rep.Record(s.name, s.res, s.buf.String())
	}
	return rep, nil
}

// broadcast expands a single entry to n copies, keeps nil as n nils, and
// rejects any other length mismatch.
func broadcast[T any](in []T, n int, what string) ([]T, error) {
	switch {
	case in == nil:
		return make([]T, n), nil
	case len(in) == 1 && n > 1:
		out := make([]T, n)
		for i := range out {
			out[i] = in[0]
		}
		return out, nil
	case len(in) == n:
		return in, nil
	}
	return nil, fmt.Errorf("checker.Check: %d %s set(s) for %d operation(s): %w", len(in), what, n, ErrUsage)
}
