package linalg

import (
	"fmt"
	"math"
)

const (
	expmTol     = 1e-15
	expmMaxTerm = 64
)

// Expm computes the matrix exponential of a square complex matrix by
// scaling and squaring with a Taylor series on the scaled matrix.
func Expm(m Matrix) (Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("linalg.Expm: non-square %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	n := m.Rows()

	// Scale so the series converges quickly.
	s := 0
	if norm := m.MaxAbs() * float64(n); norm > 0.5 {
		s = int(math.Ceil(math.Log2(norm))) + 1
	}
	scaled := m.Scale(complex(1/math.Pow(2, float64(s)), 0))

	sum := Identity(n)
	term := Identity(n)
	for k := 1; k <= expmMaxTerm; k++ {
		next, err := term.Mul(scaled)
		if err != nil {
			return nil, err
		}
		term = next.Scale(complex(1/float64(k), 0))
		var aerr error
		sum, aerr = sum.Add(term)
		if aerr != nil {
			return nil, aerr
		}
		if term.MaxAbs() < expmTol {
			break
		}
	}

	// Undo the scaling by repeated squaring.
	for i := 0; i < s; i++ {
		sq, err := sum.Mul(sum)
		if err != nil {
			return nil, err
		}
		sum = sq
	}
	return sum, nil
}
