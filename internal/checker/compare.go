package checker

import (
	"math/cmplx"

	"github.com/dshills/opcritic/internal/linalg"
)

// phaseFloor is the smallest magnitude accepted when extracting the
// relative phase between two matrices.
const phaseFloor = 1e-10

// EqualUpToPhase reports whether a and b agree elementwise after
// removing a global phase. The relative phase is read off the first
// entry of b with magnitude above phaseFloor.
func EqualUpToPhase(a, b linalg.Matrix, tol float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var phase complex128 = 1
	for i := 0; i < b.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			if cmplx.Abs(b[i][j]) > phaseFloor {
				phase = a[i][j] / b[i][j]
				i = b.Rows()
				break
			}
		}
	}
	if cmplx.Abs(phase) < 1-tol || cmplx.Abs(phase) > 1+tol {
		return false
	}
	return linalg.AllClose(a, b.Scale(phase), tol)
}

// IsDiagonal reports whether every off-diagonal entry of m is below tol
// in magnitude.
func IsDiagonal(m linalg.Matrix, tol float64) bool {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if i != j && cmplx.Abs(m[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
