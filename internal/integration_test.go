package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/opcritic/internal/checker"
	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/profile"
	"github.com/dshills/opcritic/internal/render"
	"github.com/dshills/opcritic/internal/report"
)

// TestFullRegistry runs the checker end to end over every shipped gate
// with profile settings, the way the CLI does.
func TestFullRegistry(t *testing.T) {
	prof, err := profile.LoadBuiltin("default")
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	sev, err := prof.VerbositySeverity()
	if err != nil {
		t.Fatalf("profile verbosity: %v", err)
	}

	var buf bytes.Buffer
	c := checker.New()
	c.Verbosity = sev
	c.Tol = prof.Tolerance
	c.MaxNumParams = prof.MaxNumParams
	c.Color = false
	c.Out = &buf

	defs := op.Builtin()
	if errs := op.Validate(defs); len(errs) != 0 {
		t.Fatalf("registry validation: %v", errs)
	}

	targets := make([]checker.Target, len(defs))
	params := make([][]float64, len(defs))
	wires := make([][]int, len(defs))
	for i, def := range defs {
		targets[i] = checker.ForDef(def)
		if fix, ok := prof.Fixtures[def.Name]; ok {
			params[i] = fix.Params
			wires[i] = fix.Wires
		}
	}

	var s int64 = 42
	rep, err := c.Check(targets, checker.Options{Params: params, Wires: wires, Seed: &s})
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	if len(rep.Results) != len(defs) {
		t.Fatalf("checked %d of %d gates", len(rep.Results), len(defs))
	}
	for name, sev := range rep.Results {
		want := report.SevPass
		if name == "MultiRZ" {
			want = report.SevComment
		}
		if sev != want {
			t.Errorf("%s graded %s, want %s\n%s", name, sev, want, rep.Output[name])
		}
	}

	summary := render.Summary(rep, false)
	if !strings.Contains(summary, "1 comment") {
		t.Errorf("summary should tally the MultiRZ comment:\n%s", summary)
	}
}

// TestPassingGateOutput pins the exact text for a deterministic gate.
func TestPassingGateOutput(t *testing.T) {
	var buf bytes.Buffer
	c := checker.New()
	c.Color = false
	c.Out = &buf

	rep, err := c.Check([]checker.Target{checker.ForDef(op.PauliXDef)}, checker.Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if rep.Results["PauliX"] != report.SevPass {
		t.Fatalf("PauliX graded %s:\n%s", rep.Results["PauliX"], rep.Output["PauliX"])
	}

	want := "Checking operation PauliX for consistency.\n" +
		strings.Repeat("= ", 40) + "\n" +
		"No problems have been found with the operation PauliX.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
