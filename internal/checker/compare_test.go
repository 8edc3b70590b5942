package checker

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/opcritic/internal/linalg"
)

func TestEqualUpToPhaseSelf(t *testing.T) {
	m := linalg.FromRows(
		[]complex128{0.3 + 0.1i, 1},
		[]complex128{-2i, 0.5},
	)
	assert.True(t, EqualUpToPhase(m, m, 1e-9))
}

func TestEqualUpToPhaseGlobalPhase(t *testing.T) {
	m := linalg.FromRows(
		[]complex128{0, 1},
		[]complex128{1, 0},
	)
	for _, theta := range []float64{0.0, 0.1, 1.7, -2.9} {
		phase := cmplx.Exp(complex(0, theta))
		assert.True(t, EqualUpToPhase(m, m.Scale(phase), 1e-9), "theta=%v", theta)
	}
}

func TestEqualUpToPhaseRejects(t *testing.T) {
	x := linalg.FromRows(
		[]complex128{0, 1},
		[]complex128{1, 0},
	)
	z := linalg.FromRows(
		[]complex128{1, 0},
		[]complex128{0, -1},
	)
	assert.False(t, EqualUpToPhase(x, z, 1e-9))
	assert.False(t, EqualUpToPhase(x, linalg.Identity(4), 1e-9))
	// A nonuniform phase is not a global phase.
	y := linalg.FromRows(
		[]complex128{0, 1i},
		[]complex128{1, 0},
	)
	assert.False(t, EqualUpToPhase(x, y, 1e-9))
}

func TestIsDiagonal(t *testing.T) {
	d := linalg.FromRows(
		[]complex128{2, 0},
		[]complex128{0, -1i},
	)
	assert.True(t, IsDiagonal(d, 1e-9))

	nd := linalg.FromRows(
		[]complex128{2, 1e-3},
		[]complex128{0, -1i},
	)
	assert.False(t, IsDiagonal(nd, 1e-9))
	assert.True(t, IsDiagonal(nd, 1e-2), "entries below tolerance are ignored")
}
