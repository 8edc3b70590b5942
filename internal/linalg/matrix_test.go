package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulIdentity(t *testing.T) {
	m := FromRows(
		[]complex128{1, 2},
		[]complex128{3i, 4},
	)
	got, err := m.Mul(Identity(2))
	require.NoError(t, err)
	assert.True(t, AllClose(m, got, 1e-12))

	got, err = Identity(2).Mul(m)
	require.NoError(t, err)
	assert.True(t, AllClose(m, got, 1e-12))
}

func TestMulDimensionMismatch(t *testing.T) {
	m := FromRows([]complex128{1, 2})
	_, err := m.Mul(Identity(3))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDagger(t *testing.T) {
	m := FromRows(
		[]complex128{1, 2i},
		[]complex128{3, 4},
	)
	want := FromRows(
		[]complex128{1, 3},
		[]complex128{-2i, 4},
	)
	assert.True(t, AllClose(want, m.Dagger(), 1e-12))
}

func TestKron(t *testing.T) {
	x := FromRows(
		[]complex128{0, 1},
		[]complex128{1, 0},
	)
	got := Identity(2).Kron(x)
	want := FromRows(
		[]complex128{0, 1, 0, 0},
		[]complex128{1, 0, 0, 0},
		[]complex128{0, 0, 0, 1},
		[]complex128{0, 0, 1, 0},
	)
	require.Equal(t, 4, got.Rows())
	assert.True(t, AllClose(want, got, 1e-12))
}

func TestDiagAndScale(t *testing.T) {
	m := FromRows(
		[]complex128{2, 0},
		[]complex128{0, 3},
	).Scale(2i)
	assert.Equal(t, []complex128{4i, 6i}, m.Diag())
}

func TestAllClose(t *testing.T) {
	a := FromRows([]complex128{1, 0}, []complex128{0, 1})
	b := FromRows([]complex128{1 + 1e-9, 0}, []complex128{0, 1})
	c := FromRows([]complex128{1.1, 0}, []complex128{0, 1})

	assert.True(t, AllClose(a, b, 1e-6))
	assert.False(t, AllClose(a, c, 1e-6))
	assert.False(t, AllClose(a, Identity(3), 1e-6))
}

func TestSortComplex(t *testing.T) {
	got := SortComplex([]complex128{1 + 1i, -1, 1, 1 - 1i})
	want := []complex128{-1, 1 - 1i, 1, 1 + 1i}
	assert.Equal(t, want, got)
}

func TestCloseMultiset(t *testing.T) {
	a := []complex128{1, -1, 1i}
	b := []complex128{1i, 1, -1}
	assert.True(t, CloseMultiset(a, b, 1e-9))
	assert.False(t, CloseMultiset(a, []complex128{1, 1, 1i}, 1e-9))
	assert.False(t, CloseMultiset(a, []complex128{1, -1}, 1e-9))
}

func TestSparseDense(t *testing.T) {
	s := NewSparse(2, 2)
	s.Set(0, 1, 1)
	s.Set(1, 0, 1)
	s.Set(0, 1, 2) // duplicates accumulate
	m := s.Dense()
	assert.Equal(t, complex128(3), m[0][1])
	assert.Equal(t, complex128(1), m[1][0])
	assert.Equal(t, complex128(0), m[0][0])
}

func TestSparseDiag(t *testing.T) {
	s := SparseDiag([]complex128{1, 0, -1i})
	m := s.Dense()
	assert.Equal(t, complex128(1), m[0][0])
	assert.Equal(t, complex128(0), m[1][1])
	assert.Equal(t, complex128(-1i), m[2][2])
	assert.Len(t, s.Entries, 2)
}
