package linalg

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrEigenFailed is returned when the QR iteration does not converge.
var ErrEigenFailed = errors.New("linalg: eigenvalue iteration did not converge")

const (
	eigenTol     = 1e-12
	eigenMaxIter = 200
)

// QR computes a QR decomposition of a square complex matrix using
// Householder reflections, returning unitary Q and upper-triangular R
// with m = Q*R.
func QR(m Matrix) (Matrix, Matrix, error) {
	if !m.IsSquare() {
		return nil, nil, fmt.Errorf("linalg.QR: non-square %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	n := m.Rows()
	r := m.Clone()
	q := Identity(n)
	v := make([]complex128, n)

	for k := 0; k < n-1; k++ {
		// Norm of the k-th column below the diagonal.
		norm := 0.0
		for i := k; i < n; i++ {
			norm += real(r[i][k])*real(r[i][k]) + imag(r[i][k])*imag(r[i][k])
		}
		norm = math.Sqrt(norm)
		if norm < eigenTol {
			continue
		}

		// Complex Householder: alpha = -e^{i arg(x0)} * norm.
		alpha := complex(-norm, 0)
		if r[k][k] != 0 {
			alpha = -r[k][k] / complex(cmplx.Abs(r[k][k]), 0) * complex(norm, 0)
		}

		for i := 0; i < n; i++ {
			v[i] = 0
		}
		for i := k; i < n; i++ {
			v[i] = r[i][k]
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < n; i++ {
			beta += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		if beta < eigenTol*eigenTol {
			continue
		}
		tau := complex(2.0/beta, 0)

		// Apply the reflection to R.
		for j := k; j < n; j++ {
			var sum complex128
			for i := k; i < n; i++ {
				sum += cmplx.Conj(v[i]) * r[i][j]
			}
			for i := k; i < n; i++ {
				r[i][j] -= tau * v[i] * sum
			}
		}
		// Accumulate the reflection into Q (Q = Q * H).
		for i := 0; i < n; i++ {
			var sum complex128
			for j := k; j < n; j++ {
				sum += q[i][j] * v[j]
			}
			for j := k; j < n; j++ {
				q[i][j] -= tau * sum * cmplx.Conj(v[j])
			}
		}
	}
	return q, r, nil
}

// Eigvals computes all eigenvalues of a square complex matrix using the
// shifted QR iteration with deflation. The result order is unspecified.
func Eigvals(m Matrix) ([]complex128, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("linalg.Eigvals: non-square %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	n := m.Rows()
	a := m.Clone()
	vals := make([]complex128, 0, n)

	// Deflate from the bottom-right corner of the active block.
	for k := n - 1; k > 0; {
		converged := false
		for iter := 0; iter < eigenMaxIter; iter++ {
			scale := cmplx.Abs(a[k-1][k-1]) + cmplx.Abs(a[k][k])
			if scale == 0 {
				scale = 1
			}
			if cmplx.Abs(a[k][k-1]) < eigenTol*scale {
				converged = true
				break
			}

			shift := wilkinsonShift(a, k)
			for i := 0; i <= k; i++ {
				a[i][i] -= shift
			}
			q, r, err := QR(sub(a, k+1))
			if err != nil {
				return nil, err
			}
			rq, err := r.Mul(q)
			if err != nil {
				return nil, err
			}
			for i := 0; i <= k; i++ {
				for j := 0; j <= k; j++ {
					a[i][j] = rq[i][j]
				}
				a[i][i] += shift
			}
		}
		if !converged {
			return nil, ErrEigenFailed
		}
		vals = append(vals, a[k][k])
		k--
	}
	vals = append(vals, a[0][0])
	return vals, nil
}

// wilkinsonShift picks the eigenvalue of the trailing 2x2 block of the
// active region closest to its bottom-right entry.
func wilkinsonShift(a Matrix, k int) complex128 {
	d := a[k][k]
	if k == 0 {
		return d
	}
	p := a[k-1][k-1]
	b := a[k-1][k]
	c := a[k][k-1]
	tr2 := (p + d) / 2
	disc := cmplx.Sqrt((p-d)*(p-d)/4 + b*c)
	l1 := tr2 + disc
	l2 := tr2 - disc
	if cmplx.Abs(l1-d) < cmplx.Abs(l2-d) {
		return l1
	}
	return l2
}

// sub returns the leading k-by-k block as a copy.
func sub(a Matrix, k int) Matrix {
	out := New(k, k)
	for i := 0; i < k; i++ {
		copy(out[i], a[i][:k])
	}
	return out
}
