package checker

import (
	"errors"

	"github.com/dshills/opcritic/internal/linalg"
	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/report"
	"github.com/dshills/opcritic/internal/tape"
)

// probeValue is the outcome of one matrix reconstruction: a matrix, a
// capability-absent marker, or a failure.
type probeValue struct {
	name   string
	mat    linalg.Matrix
	absent bool
	err    error
}

// reconstructor derives the operation matrix from one representation.
type reconstructor struct {
	name string
	via  func(inst op.Operator, wires []int) probeValue
}

// Order matters: the first defined result becomes the comparison
// baseline for the rest.
var reconstructors = []reconstructor{
	{"the single-qubit rotation angles", fromRotAngles},
	{"the matrix method", fromMatrix},
	{"the sparse matrix", fromSparse},
	{"the terms", fromTerms},
	{"the decomposition", fromDecomposition},
	{"the generator", fromGenerator},
}

func fromMatrix(inst op.Operator, _ []int) probeValue {
	m, err := inst.Matrix()
	if errors.Is(err, op.ErrMatrixUndefined) {
		return probeValue{absent: true}
	}
	return probeValue{mat: m, err: err}
}

func fromSparse(inst op.Operator, _ []int) probeValue {
	cap, ok := inst.(op.SparseMatrixer)
	if !ok {
		return probeValue{absent: true}
	}
	sp, err := cap.SparseMatrix()
	if errors.Is(err, op.ErrSparseMatrixUndefined) {
		return probeValue{absent: true}
	}
	if err != nil {
		return probeValue{err: err}
	}
	return probeValue{mat: sp.Dense()}
}

func fromTerms(inst op.Operator, wires []int) probeValue {
	cap, ok := inst.(op.Termser)
	if !ok {
		return probeValue{absent: true}
	}
	terms, err := cap.Terms()
	if errors.Is(err, op.ErrTermsUndefined) {
		return probeValue{absent: true}
	}
	if err != nil {
		return probeValue{err: err}
	}
	sum := linalg.New(1<<len(wires), 1<<len(wires))
	for _, t := range terms {
		m, err := t.Op.Matrix()
		if err != nil {
			return probeValue{err: err}
		}
		em, err := tape.Expand(m, t.Op.Wires(), wires)
		if err != nil {
			return probeValue{err: err}
		}
		sum, err = sum.Add(em.Scale(t.Coeff))
		if err != nil {
			return probeValue{err: err}
		}
	}
	return probeValue{mat: sum}
}

func fromDecomposition(inst op.Operator, wires []int) probeValue {
	cap, ok := inst.(op.Decomposer)
	if !ok {
		return probeValue{absent: true}
	}
	ops, err := cap.Decomposition()
	if errors.Is(err, op.ErrDecompositionUndefined) {
		return probeValue{absent: true}
	}
	if err != nil {
		return probeValue{err: err}
	}
	m, err := tape.New(ops...).Matrix(wires)
	return probeValue{mat: m, err: err}
}

func fromRotAngles(inst op.Operator, wires []int) probeValue {
	cap, ok := inst.(op.RotAngleser)
	if !ok || len(wires) != 1 {
		return probeValue{absent: true}
	}
	angles, err := cap.SingleQubitRotAngles()
	if errors.Is(err, op.ErrRotAnglesUndefined) {
		return probeValue{absent: true}
	}
	if err != nil {
		return probeValue{err: err}
	}
	rz1, err := op.NewRZ([]float64{angles[0]}, wires)
	if err != nil {
		return probeValue{err: err}
	}
	ry, err := op.NewRY([]float64{angles[1]}, wires)
	if err != nil {
		return probeValue{err: err}
	}
	rz2, err := op.NewRZ([]float64{angles[2]}, wires)
	if err != nil {
		return probeValue{err: err}
	}
	m, err := tape.New(rz1, ry, rz2).Matrix(wires)
	return probeValue{mat: m, err: err}
}

func fromGenerator(inst op.Operator, wires []int) probeValue {
	cap, ok := inst.(op.Generatorer)
	if !ok || len(inst.Params()) != 1 {
		return probeValue{absent: true}
	}
	gen, err := cap.Generator()
	if errors.Is(err, op.ErrGeneratorUndefined) {
		return probeValue{absent: true}
	}
	if err != nil {
		return probeValue{err: err}
	}
	gm, err := gen.Matrix()
	if err != nil {
		return probeValue{err: err}
	}
	egm, err := tape.Expand(gm, gen.Wires(), wires)
	if err != nil {
		return probeValue{err: err}
	}
	theta := complex(inst.Params()[0], 0)
	m, err := linalg.Expm(egm.Scale(1i * theta))
	return probeValue{mat: m, err: err}
}

// checkReconstructions derives the matrix from every defined
// representation and compares each reconstruction against the first,
// modulo a global phase.
func (s *session) checkReconstructions(candidates [][]float64, wires []int) {
	for _, par := range s.goodCandidates(candidates) {
		inst := s.inst
		if inst == nil {
			var err error
			inst, err = s.def.New(par, wires)
			if err != nil {
				continue
			}
		}

		var base probeValue
		for _, rc := range reconstructors {
			pv := rc.via(inst, wires)
			pv.name = rc.name
			if pv.absent {
				continue
			}
			if pv.err != nil {
				s.emit(report.SevError, "%v", pv.err)
				s.emit(report.SevError,
					"Reconstructing the matrix of operation %s via %s failed\nwith %d parameter(s).",
					s.name, rc.name, len(par))
				continue
			}
			if base.mat == nil {
				base = pv
				continue
			}
			if !EqualUpToPhase(base.mat, pv.mat, s.c.Tol) {
				s.emit(report.SevError,
					"The matrices of operation %s obtained via %s and via %s\ndo not coincide (with %d parameter(s)).",
					s.name, base.name, pv.name, len(par))
			}
		}
	}
}
