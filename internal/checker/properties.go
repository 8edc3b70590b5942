package checker

import (
	"errors"

	"github.com/dshills/opcritic/internal/linalg"
	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/report"
	"github.com/dshills/opcritic/internal/tape"
)

// checkProperties verifies structural properties of the matrix and the
// representations that constrain it: shape, declared eigenvalues,
// diagonalizing gates and the declared basis. Operations without a
// matrix skip these checks.
func (s *session) checkProperties(candidates [][]float64, wires []int) {
	for _, par := range s.goodCandidates(candidates) {
		inst := s.inst
		if inst == nil {
			var err error
			inst, err = s.def.New(par, wires)
			if err != nil {
				continue
			}
		}

		mat, err := inst.Matrix()
		if err != nil {
			// Undefined or broken matrices were handled by the
			// reconstruction checks already.
			continue
		}

		if !s.checkShape(mat, wires) {
			continue
		}
		s.checkEigvals(inst, mat)
		s.checkDiagGates(inst, mat, wires)
		s.checkBasis(inst, mat, wires)
	}
}

// checkShape verifies that the matrix is square with dimension 2^n for
// the n wires the instance acts on.
func (s *session) checkShape(mat linalg.Matrix, wires []int) bool {
	if !mat.IsSquare() {
		s.emit(report.SevError,
			"The matrix of operation %s is not square (%dx%d).",
			s.name, mat.Rows(), mat.Cols())
		return false
	}
	if mat.Rows() != 1<<len(wires) {
		s.emit(report.SevError,
			"The matrix of operation %s has dimension %d\nbut the operation acts on %d wire(s).",
			s.name, mat.Rows(), len(wires))
		return false
	}
	return true
}

// checkEigvals compares declared eigenvalues against the spectrum of
// the matrix.
func (s *session) checkEigvals(inst op.Operator, mat linalg.Matrix) {
	declared, ok := declaredEigvals(inst)
	if !ok {
		return
	}
	computed, err := linalg.Eigvals(mat)
	if err != nil {
		s.emit(report.SevComment,
			"The eigenvalue computation for the matrix of operation %s did not converge.",
			s.name)
		return
	}
	if !linalg.CloseMultiset(declared, computed, s.c.Tol) {
		s.emit(report.SevError,
			"The declared eigenvalues of operation %s\ndo not match the eigenvalues of its matrix.",
			s.name)
	}
}

// declaredEigvals fetches the instance's declared eigenvalues; false
// when the capability is absent or undefined.
func declaredEigvals(inst op.Operator) ([]complex128, bool) {
	cap, ok := inst.(op.Eigvalser)
	if !ok {
		return nil, false
	}
	declared, err := cap.Eigvals()
	if err != nil {
		return nil, false
	}
	return declared, true
}

// checkDiagGates conjugates the matrix with the diagonalizing gate
// sequence and verifies the result is diagonal, with the declared
// eigenvalues on the diagonal when the operation declares any.
func (s *session) checkDiagGates(inst op.Operator, mat linalg.Matrix, wires []int) {
	cap, ok := inst.(op.DiagGateser)
	if !ok {
		return
	}
	gates, err := cap.DiagonalizingGates()
	if errors.Is(err, op.ErrDiagGatesUndefined) {
		return
	}
	if err != nil {
		s.emit(report.SevError, "%v", err)
		s.emit(report.SevError,
			"Obtaining the diagonalizing gates of operation %s failed.", s.name)
		return
	}

	diag, ok := s.conjugate(mat, gates, wires)
	if !ok {
		return
	}
	if !IsDiagonal(diag, s.c.Tol) {
		s.emit(report.SevError,
			"The diagonalizing gates of operation %s do not diagonalize its matrix.",
			s.name)
		return
	}
	declared, ok := declaredEigvals(inst)
	if ok && !linalg.CloseMultiset(diag.Diag(), declared, s.c.Tol) {
		s.emit(report.SevError,
			"The diagonal obtained via the diagonalizing gates of operation %s\ndoes not match its declared eigenvalues.",
			s.name)
	}
}

// checkBasis verifies that an operation declaring a basis is diagonal
// in that basis on its non-control wires.
func (s *session) checkBasis(inst op.Operator, mat linalg.Matrix, wires []int) {
	cap, ok := inst.(op.Basiser)
	if !ok {
		return
	}
	basis := cap.Basis()

	controlled := make(map[int]bool)
	if cw, ok := inst.(op.ControlWireser); ok {
		for _, w := range cw.ControlWires() {
			controlled[w] = true
		}
	}

	var gates []op.Operator
	for _, w := range wires {
		if controlled[w] {
			continue
		}
		gs, err := basisDiagGates(basis, w)
		if err != nil {
			s.emit(report.SevError,
				"Operation %s declares the unknown basis %q.", s.name, basis)
			return
		}
		gates = append(gates, gs...)
	}

	diag, ok := s.conjugate(mat, gates, wires)
	if !ok {
		return
	}
	if !IsDiagonal(diag, s.c.Tol) {
		s.emit(report.SevError,
			"Operation %s declares the basis %s but is not diagonal in it.",
			s.name, basis)
	}
}

// conjugate computes V * mat * V^dagger for the unitary V of the given
// gate sequence over the wire order.
func (s *session) conjugate(mat linalg.Matrix, gates []op.Operator, wires []int) (linalg.Matrix, bool) {
	v := linalg.Identity(mat.Rows())
	if len(gates) > 0 {
		var err error
		v, err = tape.New(gates...).Matrix(wires)
		if err != nil {
			s.emit(report.SevError, "%v", err)
			return nil, false
		}
	}
	vm, err := v.Mul(mat)
	if err != nil {
		s.emit(report.SevError, "%v", err)
		return nil, false
	}
	out, err := vm.Mul(v.Dagger())
	if err != nil {
		s.emit(report.SevError, "%v", err)
		return nil, false
	}
	return out, true
}

// basisDiagGates returns the gate sequence rotating the given basis to
// the computational basis on one wire.
func basisDiagGates(b op.Basis, wire int) ([]op.Operator, error) {
	wires := []int{wire}
	switch b {
	case op.BasisX:
		h, err := op.NewHadamard(nil, wires)
		if err != nil {
			return nil, err
		}
		return []op.Operator{h}, nil
	case op.BasisY:
		z, err := op.NewPauliZ(nil, wires)
		if err != nil {
			return nil, err
		}
		sg, err := op.NewS(nil, wires)
		if err != nil {
			return nil, err
		}
		h, err := op.NewHadamard(nil, wires)
		if err != nil {
			return nil, err
		}
		return []op.Operator{z, sg, h}, nil
	case op.BasisZ:
		return nil, nil
	}
	return nil, errors.New("checker: unknown basis")
}
