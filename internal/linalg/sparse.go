package linalg

// Sparse is a coordinate-list complex matrix, used by operations whose
// matrix is mostly zero.
type Sparse struct {
	NumRows int
	NumCols int
	Entries []SparseEntry
}

// SparseEntry is one stored matrix element.
type SparseEntry struct {
	Row int
	Col int
	Val complex128
}

// NewSparse allocates an empty sparse matrix with the given shape.
func NewSparse(rows, cols int) *Sparse {
	return &Sparse{NumRows: rows, NumCols: cols}
}

// Set appends an entry. Duplicate coordinates accumulate in Dense.
func (s *Sparse) Set(row, col int, val complex128) {
	s.Entries = append(s.Entries, SparseEntry{Row: row, Col: col, Val: val})
}

// Dense materializes the matrix.
func (s *Sparse) Dense() Matrix {
	m := New(s.NumRows, s.NumCols)
	for _, e := range s.Entries {
		m[e.Row][e.Col] += e.Val
	}
	return m
}

// SparseDiag builds a sparse diagonal matrix from its diagonal entries.
func SparseDiag(diag []complex128) *Sparse {
	s := NewSparse(len(diag), len(diag))
	for i, v := range diag {
		if v != 0 {
			s.Set(i, i, v)
		}
	}
	return s
}
