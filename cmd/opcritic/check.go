package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/opcritic/internal/checker"
	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/profile"
	"github.com/dshills/opcritic/internal/render"
	"github.com/dshills/opcritic/internal/report"
)

type checkFlags struct {
	profileName string
	verbosity   string
	tol         float64
	maxParams   int
	seed        int64
	hasSeed     bool
	color       bool
	out         string
	failOn      string
	verbose     bool
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [gate...]",
		Short: "Run the consistency checks over named gates, or the whole registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasSeed = cmd.Flags().Changed("seed")
			// Explicit flags win over profile values.
			overridden := func(name string) bool { return cmd.Flags().Changed(name) }
			return runCheck(args, f, overridden)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.profileName, "profile", "default", "Profile name")
	flags.StringVar(&f.verbosity, "verbosity", "", "Least severe grade printed: error, hint, comment, or pass")
	flags.Float64Var(&f.tol, "tol", 0, "Absolute tolerance for matrix comparisons")
	flags.IntVar(&f.maxParams, "max-params", 0, "Max probed parameter count for gates without a declared count")
	flags.Int64Var(&f.seed, "seed", 0, "Random seed for example parameters")
	flags.BoolVar(&f.color, "color", true, "Color diagnostic lines")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "error", "Exit non-zero when a gate grades at or below this severity")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runCheck(gates []string, f *checkFlags, overridden func(string) bool) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	verbose("Loading profile: %s", f.profileName)
	prof, err := profile.LoadBuiltin(f.profileName)
	if err != nil {
		return exitError(3, "failed to load profile: %v", err)
	}

	c := checker.New()
	sev, _ := prof.VerbositySeverity()
	c.Verbosity = sev
	c.Tol = prof.Tolerance
	c.MaxNumParams = prof.MaxNumParams
	c.Color = prof.Color

	if overridden("verbosity") {
		sev, err := report.ParseSeverity(f.verbosity)
		if err != nil {
			return exitError(3, "invalid verbosity: %v", err)
		}
		c.Verbosity = sev
	}
	if overridden("tol") {
		c.Tol = f.tol
	}
	if overridden("max-params") {
		c.MaxNumParams = f.maxParams
	}
	if overridden("color") {
		c.Color = f.color
	}

	var out io.Writer = os.Stdout
	if f.out != "" {
		verbose("Writing output to %s", f.out)
		file, err := os.Create(f.out)
		if err != nil {
			return exitError(3, "failed to open output: %v", err)
		}
		defer file.Close()
		out = file
		// File output carries no terminal escapes unless forced.
		if !overridden("color") {
			c.Color = false
		}
	}
	c.Out = out

	if len(gates) == 0 {
		gates = prof.Gates
	}
	defs, err := resolveGates(gates)
	if err != nil {
		return exitError(3, "%v", err)
	}
	verbose("Checking %d gate(s)", len(defs))

	targets := make([]checker.Target, len(defs))
	opts := checker.Options{}
	for i, def := range defs {
		targets[i] = checker.ForDef(def)
		if fix, ok := prof.Fixtures[def.Name]; ok {
			opts.Params = growTo(opts.Params, len(defs))
			opts.Wires = growTo(opts.Wires, len(defs))
			opts.Params[i] = fix.Params
			opts.Wires[i] = fix.Wires
		}
	}
	if opts.Params != nil {
		opts.Params = growTo(opts.Params, len(defs))
	}
	if opts.Wires != nil {
		opts.Wires = growTo(opts.Wires, len(defs))
	}
	if f.hasSeed {
		opts.Seed = &f.seed
	}

	rep, err := c.Check(targets, opts)
	if err != nil {
		return exitError(3, "check failed: %v", err)
	}

	fmt.Fprint(out, render.Summary(rep, c.Color))

	failSev, err := report.ParseSeverity(f.failOn)
	if err != nil {
		return exitError(3, "invalid fail-on severity: %v", err)
	}
	if rep.HasSeverity(failSev) {
		return exitError(2, "")
	}
	return nil
}

// resolveGates maps gate names to definitions, defaulting to the full
// registry for an empty list.
func resolveGates(names []string) ([]op.Definition, error) {
	if len(names) == 0 {
		return op.Builtin(), nil
	}
	defs := make([]op.Definition, 0, len(names))
	for _, name := range names {
		def, ok := op.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown gate: %s", name)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// growTo pads a broadcast slice with nils up to n entries.
func growTo[T any](in []T, n int) []T {
	if in == nil {
		in = make([]T, n)
	}
	for len(in) < n {
		var zero T
		in = append(in, zero)
	}
	return in
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
