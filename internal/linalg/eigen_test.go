package linalg

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRReconstructs(t *testing.T) {
	m := FromRows(
		[]complex128{1, 2i, 0},
		[]complex128{-1, 0.5, 3},
		[]complex128{0, 1, 1i},
	)
	q, r, err := QR(m)
	require.NoError(t, err)

	qr, err := q.Mul(r)
	require.NoError(t, err)
	assert.True(t, AllClose(m, qr, 1e-10), "Q*R must reproduce the input")

	qq, err := q.Dagger().Mul(q)
	require.NoError(t, err)
	assert.True(t, AllClose(Identity(3), qq, 1e-10), "Q must be unitary")
}

func TestEigvalsDiagonal(t *testing.T) {
	m := FromRows(
		[]complex128{2, 0},
		[]complex128{0, -3i},
	)
	got, err := Eigvals(m)
	require.NoError(t, err)
	assert.True(t, CloseMultiset([]complex128{2, -3i}, got, 1e-9))
}

func TestEigvalsPauli(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want []complex128
	}{
		{"X", FromRows([]complex128{0, 1}, []complex128{1, 0}), []complex128{1, -1}},
		{"Y", FromRows([]complex128{0, -1i}, []complex128{1i, 0}), []complex128{1, -1}},
		{"Z", FromRows([]complex128{1, 0}, []complex128{0, -1}), []complex128{1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eigvals(tt.m)
			require.NoError(t, err)
			assert.True(t, CloseMultiset(tt.want, got, 1e-9), "got %v", got)
		})
	}
}

func TestEigvalsHadamard(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	h := FromRows(
		[]complex128{s, s},
		[]complex128{s, -s},
	)
	got, err := Eigvals(h)
	require.NoError(t, err)
	assert.True(t, CloseMultiset([]complex128{1, -1}, got, 1e-9), "got %v", got)
}

func TestEigvalsPhaseShift(t *testing.T) {
	phi := 0.731
	m := FromRows(
		[]complex128{1, 0},
		[]complex128{0, cmplx.Exp(complex(0, phi))},
	)
	got, err := Eigvals(m)
	require.NoError(t, err)
	assert.True(t, CloseMultiset([]complex128{1, cmplx.Exp(complex(0, phi))}, got, 1e-9))
}

func TestEigvalsTwoQubit(t *testing.T) {
	// CNOT has eigenvalues {1, 1, 1, -1}.
	cnot := FromRows(
		[]complex128{1, 0, 0, 0},
		[]complex128{0, 1, 0, 0},
		[]complex128{0, 0, 0, 1},
		[]complex128{0, 0, 1, 0},
	)
	got, err := Eigvals(cnot)
	require.NoError(t, err)
	assert.True(t, CloseMultiset([]complex128{1, 1, 1, -1}, got, 1e-9), "got %v", got)
}

func TestExpmZero(t *testing.T) {
	got, err := Expm(New(3, 3))
	require.NoError(t, err)
	assert.True(t, AllClose(Identity(3), got, 1e-12))
}

func TestExpmRotation(t *testing.T) {
	// exp(-i*theta/2*Z) is the RZ matrix.
	theta := 1.234
	z := FromRows([]complex128{1, 0}, []complex128{0, -1})
	got, err := Expm(z.Scale(complex(0, -theta/2)))
	require.NoError(t, err)

	want := FromRows(
		[]complex128{cmplx.Exp(complex(0, -theta/2)), 0},
		[]complex128{0, cmplx.Exp(complex(0, theta/2))},
	)
	assert.True(t, AllClose(want, got, 1e-10))
}

func TestExpmPauliX(t *testing.T) {
	// exp(-i*theta/2*X) = cos(theta/2) I - i sin(theta/2) X.
	theta := 0.57
	x := FromRows([]complex128{0, 1}, []complex128{1, 0})
	got, err := Expm(x.Scale(complex(0, -theta/2)))
	require.NoError(t, err)

	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	want := FromRows(
		[]complex128{c, s},
		[]complex128{s, c},
	)
	assert.True(t, AllClose(want, got, 1e-10))
}
