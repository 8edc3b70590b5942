package checker

import (
	"errors"

	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/report"
)

// methodProbe describes one optional representation method: its
// capability-absent sentinel, its static access point taking direct
// parameters, and its auxiliary instance access point.
type methodProbe struct {
	name      string
	undefined error
	// static calls the definition-level computation. The bool reports
	// whether the representation has a static form at all.
	static func(st op.Static, params []float64, wires []int) (bool, error)
	// instance calls the method on a constructed instance. The bool
	// reports whether the instance implements the capability.
	instance func(inst op.Operator) (bool, error)
}

// methodProbes is the closed, ordered set of representation methods the
// pipeline probes.
var methodProbes = []methodProbe{
	{
		name:      "Eigvals",
		undefined: op.ErrEigvalsUndefined,
		static: func(st op.Static, params []float64, _ []int) (bool, error) {
			if st.Eigvals == nil {
				return false, nil
			}
			_, err := st.Eigvals(params)
			return true, err
		},
		instance: func(inst op.Operator) (bool, error) {
			cap, ok := inst.(op.Eigvalser)
			if !ok {
				return false, nil
			}
			_, err := cap.Eigvals()
			return true, err
		},
	},
	{
		name:      "Matrix",
		undefined: op.ErrMatrixUndefined,
		static: func(st op.Static, params []float64, _ []int) (bool, error) {
			if st.Matrix == nil {
				return false, nil
			}
			_, err := st.Matrix(params)
			return true, err
		},
		instance: func(inst op.Operator) (bool, error) {
			_, err := inst.Matrix()
			return true, err
		},
	},
	{
		name:      "SparseMatrix",
		undefined: op.ErrSparseMatrixUndefined,
		static: func(st op.Static, params []float64, _ []int) (bool, error) {
			if st.SparseMatrix == nil {
				return false, nil
			}
			_, err := st.SparseMatrix(params)
			return true, err
		},
		instance: func(inst op.Operator) (bool, error) {
			cap, ok := inst.(op.SparseMatrixer)
			if !ok {
				return false, nil
			}
			_, err := cap.SparseMatrix()
			return true, err
		},
	},
	{
		name:      "Terms",
		undefined: op.ErrTermsUndefined,
		static: func(st op.Static, params []float64, wires []int) (bool, error) {
			if st.Terms == nil {
				return false, nil
			}
			_, err := st.Terms(params, wires)
			return true, err
		},
		instance: func(inst op.Operator) (bool, error) {
			cap, ok := inst.(op.Termser)
			if !ok {
				return false, nil
			}
			_, err := cap.Terms()
			return true, err
		},
	},
	{
		name:      "Decomposition",
		undefined: op.ErrDecompositionUndefined,
		static: func(st op.Static, params []float64, wires []int) (bool, error) {
			if st.Decomposition == nil {
				return false, nil
			}
			_, err := st.Decomposition(params, wires)
			return true, err
		},
		instance: func(inst op.Operator) (bool, error) {
			cap, ok := inst.(op.Decomposer)
			if !ok {
				return false, nil
			}
			_, err := cap.Decomposition()
			return true, err
		},
	},
	{
		name:      "DiagonalizingGates",
		undefined: op.ErrDiagGatesUndefined,
		static: func(st op.Static, params []float64, wires []int) (bool, error) {
			if st.DiagonalizingGates == nil {
				return false, nil
			}
			_, err := st.DiagonalizingGates(params, wires)
			return true, err
		},
		instance: func(inst op.Operator) (bool, error) {
			cap, ok := inst.(op.DiagGateser)
			if !ok {
				return false, nil
			}
			_, err := cap.DiagonalizingGates()
			return true, err
		},
	},
}

// checkMethod probes one representation method. With a known parameter
// count an unexpected failure is re-probed through the instance access
// point, which may rely on configuration stored on the instance; with
// an unknown count the per-length outcomes are cross-referenced with
// the lengths that constructed successfully.
func (s *session) checkMethod(mp methodProbe, candidates [][]float64, wires []int) {
	if s.paramsKnown {
		defined, err := mp.static(s.def.Static, candidates[0], wires)
		if !defined || err == nil || errors.Is(err, mp.undefined) {
			return
		}

		if inst, cerr := s.def.New(candidates[0], wires); cerr == nil {
			if impl, ierr := mp.instance(inst); impl && ierr == nil {
				s.emit(report.SevComment, "%v", err)
				s.emit(report.SevComment,
					"Operation method %s.%s does not work\nwith the declared %d parameter(s) (see above) but works through instance configuration.",
					s.name, mp.name, s.def.NumParams)
				return
			} else if ierr != nil {
				s.emit(report.SevError, "%v", err)
				s.emit(report.SevError, "%v", ierr)
			} else {
				s.emit(report.SevError, "%v", err)
			}
		} else {
			s.emit(report.SevError, "%v", err)
		}
		s.emit(report.SevError,
			"Operation method %s.%s does not work\nwith the declared %d parameter(s).",
			s.name, mp.name, s.def.NumParams)
		return
	}

	var failing, succeeding []int
	for _, par := range candidates {
		defined, err := mp.static(s.def.Static, par, wires)
		if !defined {
			return
		}
		num := len(par)
		constructed := containsInt(s.goodLens, num)
		switch {
		case err == nil && !constructed:
			succeeding = append(succeeding, num)
		case err != nil && !errors.Is(err, mp.undefined) && constructed:
			failing = append(failing, num)
		}
	}

	if len(failing) > 0 {
		s.emit(report.SevError,
			"Operation method %s.%s does not work\nwith number(s) of parameters %v\nbut instantiation works with these.",
			s.name, mp.name, failing)
	}
	if len(succeeding) > 0 {
		s.emit(report.SevComment,
			"Operation method %s.%s works\nwith number(s) of parameters %v\nbut instantiation does not work with these.",
			s.name, mp.name, succeeding)
	}
}
