package checker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/render"
	"github.com/dshills/opcritic/internal/report"
)

// errAbort stops the remaining checks of the current operation only. It
// never escapes the per-operation loop in Check.
var errAbort = errors.New("checker: remaining checks aborted for this operation")

// session is the ephemeral state for checking a single operation.
type session struct {
	c           *Checker
	def         op.Definition
	inst        op.Operator
	name        string
	res         report.Severity
	headerDone  bool
	paramsKnown bool
	goodLens    []int
	buf         strings.Builder
}

// emit records a diagnostic: it worsens the session grade, and prints
// the line when the verbosity threshold allows it. Error lines are
// always printed. The operation header precedes the first printed line.
func (s *session) emit(level report.Severity, format string, args ...any) {
	s.res = report.Min(s.res, level)

	if level != report.SevError && level > s.c.Verbosity {
		return
	}
	if !s.headerDone {
		s.writeLine(render.Header(s.name))
		s.headerDone = true
	}
	s.writeLine(render.Line(level, fmt.Sprintf(format, args...), s.c.Color))
}

func (s *session) writeLine(line string) {
	s.buf.WriteString(line)
	s.buf.WriteString("\n")
	fmt.Fprintln(s.out(), line)
}

func (s *session) out() io.Writer {
	if s.c.Out == nil {
		return os.Stdout
	}
	return s.c.Out
}

// run executes the pipeline steps in fixed order for one operation.
func (s *session) run(params []float64, wires []int) error {
	if s.inst != nil {
		// Stored parameters and wires are authoritative for instances.
		params = s.inst.Params()
		wires = s.inst.Wires()
	}

	wires, err := s.checkWires(wires)
	if err != nil {
		return err
	}
	candidates, err := s.checkParams(params)
	if err != nil {
		return err
	}
	if err := s.checkInstantiation(candidates, wires); err != nil {
		return err
	}
	for _, mp := range methodProbes {
		s.checkMethod(mp, candidates, wires)
	}
	s.checkReconstructions(candidates, wires)
	s.checkProperties(candidates, wires)
	return nil
}

// checkWires validates the declared arity and resolves the example wire
// set: sequential wires for a concrete arity, two wires for "any".
func (s *session) checkWires(wires []int) ([]int, error) {
	arity := s.def.NumWires
	if arity != op.WiresAny && arity < 1 {
		s.emit(report.SevError, "The operation %s does not define the number of wires it acts on.", s.name)
		return nil, errAbort
	}

	if wires == nil {
		if arity == op.WiresAny {
			return []int{0, 1}, nil
		}
		out := make([]int, arity)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	if s.inst == nil && arity != op.WiresAny && len(wires) != arity {
		s.emit(report.SevError,
			"The number of provided wires (%d) does not match the expected number (%d) for operation %s.",
			len(wires), arity, s.name)
		return nil, errAbort
	}
	return wires, nil
}

// checkParams validates a supplied parameter set against the declared
// count, or synthesizes candidates: one random vector for a known
// count, one per length up to MaxNumParams otherwise.
func (s *session) checkParams(params []float64) ([][]float64, error) {
	s.paramsKnown = s.def.NumParams != op.ParamsUnknown

	if params == nil {
		if s.paramsKnown {
			return [][]float64{randomVec(s.def.NumParams)}, nil
		}
		candidates := make([][]float64, 0, s.c.MaxNumParams+1)
		for n := 0; n <= s.c.MaxNumParams; n++ {
			candidates = append(candidates, randomVec(n))
		}
		return candidates, nil
	}

	if s.inst == nil && s.paramsKnown && len(params) != s.def.NumParams {
		s.emit(report.SevError,
			"The number of provided parameters (%d) does not match the expected number (%d) for operation %s.",
			len(params), s.def.NumParams, s.name)
		return nil, errAbort
	}
	return [][]float64{params}, nil
}

// checkInstantiation probes construction. With a known parameter count
// a failure is fatal for the whole invocation; otherwise the set of
// succeeding lengths is recorded for the later cross-references.
func (s *session) checkInstantiation(candidates [][]float64, wires []int) error {
	if s.paramsKnown {
		if _, err := s.def.New(candidates[0], wires); err != nil {
			return fmt.Errorf("checker: instantiating %s: %w", s.name, err)
		}
		s.goodLens = []int{len(candidates[0])}
		return nil
	}

	var good []int
	for _, par := range candidates {
		if _, err := s.def.New(par, wires); err == nil {
			good = append(good, len(par))
		}
	}
	s.goodLens = good

	switch len(good) {
	case 0:
		lens := make([]int, len(candidates))
		for i, par := range candidates {
			lens[i] = len(par)
		}
		msg := fmt.Sprintf("Instantiating %s did not succeed with any of\n%v parameters.", s.name, lens)
		if len(candidates) == 1 {
			msg += "\nIt seems the provided parameters have the wrong length for this operation;\ncheck the input to Check."
		}
		s.emit(report.SevError, "%s", msg)
		return errAbort
	case 1:
		s.emit(report.SevHint,
			"Instantiating %s only succeeded when using %d parameter(s).\nConsider declaring the number of parameters in the operation definition.",
			s.name, good[0])
	}
	return nil
}

// goodCandidates filters the candidate parameter sets to lengths that
// constructed successfully.
func (s *session) goodCandidates(candidates [][]float64) [][]float64 {
	if s.paramsKnown {
		return candidates
	}
	var out [][]float64
	for _, par := range candidates {
		if containsInt(s.goodLens, len(par)) {
			out = append(out, par)
		}
	}
	return out
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
