// Package linalg provides the dense complex linear algebra used by the
// operation checker: matrix products, conjugate transposes, eigenvalues,
// matrix exponentials, and tolerance-based comparisons.
package linalg

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sort"
)

// ErrDimensionMismatch is returned when matrix shapes are incompatible.
var ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

// Matrix is a dense row-major complex matrix.
type Matrix [][]complex128

// New allocates a zero matrix with the given shape.
func New(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Identity returns the n-by-n identity matrix.
func Identity(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// FromRows builds a matrix from literal rows. All rows must share a length.
func FromRows(rows ...[]complex128) Matrix {
	return Matrix(rows)
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns, 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsSquare reports whether the matrix is square and non-empty.
func (m Matrix) IsSquare() bool {
	return m.Rows() > 0 && m.Rows() == m.Cols()
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]complex128, len(row))
		copy(out[i], row)
	}
	return out
}

// Mul returns the matrix product m*other.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("linalg.Mul: %dx%d by %dx%d: %w",
			m.Rows(), m.Cols(), other.Rows(), other.Cols(), ErrDimensionMismatch)
	}
	out := New(m.Rows(), other.Cols())
	for i := 0; i < m.Rows(); i++ {
		for k := 0; k < m.Cols(); k++ {
			a := m[i][k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.Cols(); j++ {
				out[i][j] += a * other[k][j]
			}
		}
	}
	return out, nil
}

// Add returns the elementwise sum m+other.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return nil, fmt.Errorf("linalg.Add: %dx%d and %dx%d: %w",
			m.Rows(), m.Cols(), other.Rows(), other.Cols(), ErrDimensionMismatch)
	}
	out := New(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] + other[i][j]
		}
	}
	return out, nil
}

// Scale returns the matrix scaled by a complex factor.
func (m Matrix) Scale(c complex128) Matrix {
	out := New(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = c * m[i][j]
		}
	}
	return out
}

// Dagger returns the conjugate transpose of the matrix.
func (m Matrix) Dagger() Matrix {
	out := New(m.Cols(), m.Rows())
	for i := range m {
		for j := range m[i] {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

// Kron returns the Kronecker product m⊗other.
func (m Matrix) Kron(other Matrix) Matrix {
	or, oc := other.Rows(), other.Cols()
	out := New(m.Rows()*or, m.Cols()*oc)
	for i := range m {
		for j := range m[i] {
			if m[i][j] == 0 {
				continue
			}
			for k := 0; k < or; k++ {
				for l := 0; l < oc; l++ {
					out[i*or+k][j*oc+l] = m[i][j] * other[k][l]
				}
			}
		}
	}
	return out
}

// Diag returns the diagonal entries of a square matrix.
func (m Matrix) Diag() []complex128 {
	d := make([]complex128, m.Rows())
	for i := range d {
		d[i] = m[i][i]
	}
	return d
}

// MaxAbs returns the largest entry magnitude.
func (m Matrix) MaxAbs() float64 {
	max := 0.0
	for i := range m {
		for j := range m[i] {
			if a := cmplx.Abs(m[i][j]); a > max {
				max = a
			}
		}
	}
	return max
}

// AllClose reports whether two matrices agree elementwise within an
// absolute tolerance. Mismatched shapes are never close.
func AllClose(a, b Matrix, atol float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := range a {
		for j := range a[i] {
			if cmplx.Abs(a[i][j]-b[i][j]) > atol {
				return false
			}
		}
	}
	return true
}

// VecAllClose reports whether two complex vectors agree elementwise
// within an absolute tolerance.
func VecAllClose(a, b []complex128, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmplx.Abs(a[i]-b[i]) > atol {
			return false
		}
	}
	return true
}

// SortComplex returns a copy of vals sorted by real part, then imaginary part.
func SortComplex(vals []complex128) []complex128 {
	out := make([]complex128, len(vals))
	copy(out, vals)
	sort.Slice(out, func(i, j int) bool {
		if real(out[i]) != real(out[j]) {
			return real(out[i]) < real(out[j])
		}
		return imag(out[i]) < imag(out[j])
	})
	return out
}

// CloseMultiset reports whether two complex value collections match as
// unordered multisets within an absolute tolerance.
func CloseMultiset(a, b []complex128, atol float64) bool {
	return VecAllClose(SortComplex(a), SortComplex(b), atol)
}
