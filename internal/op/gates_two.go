package op

import (
	"github.com/dshills/opcritic/internal/linalg"
)

// CNOT flips the target wire conditioned on the control wire. The
// control is the first wire.
type CNOT struct{ base }

// NewCNOT constructs CNOT on (control, target) wires.
func NewCNOT(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("CNOT", params, wires, 0, 2); err != nil {
		return nil, err
	}
	return &CNOT{base{params, wires}}, nil
}

func (g *CNOT) Name() string                   { return "CNOT" }
func (g *CNOT) NumWires() int                  { return 2 }
func (g *CNOT) Matrix() (linalg.Matrix, error) { return cnotMatrix(g.params) }
func (g *CNOT) SparseMatrix() (*linalg.Sparse, error) {
	return cnotSparse(g.params)
}
func (g *CNOT) Eigvals() ([]complex128, error) { return twoQubitSymEigvals(g.params) }
func (g *CNOT) Basis() Basis                   { return BasisX }
func (g *CNOT) ControlWires() []int            { return g.wires[:1] }
func (g *CNOT) Definition() Definition         { return CNOTDef }

// CNOTDef describes the CNOT gate.
var CNOTDef = Definition{
	Name:      "CNOT",
	NumWires:  2,
	NumParams: 0,
	New:       NewCNOT,
	Static: Static{
		Matrix:       cnotMatrix,
		SparseMatrix: cnotSparse,
		Eigvals:      twoQubitSymEigvals,
	},
}

func cnotMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{1, 0, 0, 0},
		[]complex128{0, 1, 0, 0},
		[]complex128{0, 0, 0, 1},
		[]complex128{0, 0, 1, 0},
	), nil
}

func cnotSparse([]float64) (*linalg.Sparse, error) {
	s := linalg.NewSparse(4, 4)
	s.Set(0, 0, 1)
	s.Set(1, 1, 1)
	s.Set(2, 3, 1)
	s.Set(3, 2, 1)
	return s, nil
}

// twoQubitSymEigvals holds for CNOT, CZ and SWAP alike.
func twoQubitSymEigvals([]float64) ([]complex128, error) {
	return []complex128{1, 1, 1, -1}, nil
}

// CZ applies a phase flip when both wires are |1>. The control is the
// first wire.
type CZ struct{ base }

// NewCZ constructs CZ on two wires.
func NewCZ(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("CZ", params, wires, 0, 2); err != nil {
		return nil, err
	}
	return &CZ{base{params, wires}}, nil
}

func (g *CZ) Name() string                   { return "CZ" }
func (g *CZ) NumWires() int                  { return 2 }
func (g *CZ) Matrix() (linalg.Matrix, error) { return czMatrix(g.params) }
func (g *CZ) SparseMatrix() (*linalg.Sparse, error) {
	return czSparse(g.params)
}
func (g *CZ) Eigvals() ([]complex128, error) { return twoQubitSymEigvals(g.params) }
func (g *CZ) DiagonalizingGates() ([]Operator, error) {
	return noDiagGates(g.params, g.wires)
}
func (g *CZ) Basis() Basis           { return BasisZ }
func (g *CZ) ControlWires() []int    { return g.wires[:1] }
func (g *CZ) Definition() Definition { return CZDef }

// CZDef describes the CZ gate.
var CZDef = Definition{
	Name:      "CZ",
	NumWires:  2,
	NumParams: 0,
	New:       NewCZ,
	Static: Static{
		Matrix:             czMatrix,
		SparseMatrix:       czSparse,
		Eigvals:            twoQubitSymEigvals,
		DiagonalizingGates: noDiagGates,
	},
}

func czMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{1, 0, 0, 0},
		[]complex128{0, 1, 0, 0},
		[]complex128{0, 0, 1, 0},
		[]complex128{0, 0, 0, -1},
	), nil
}

func czSparse([]float64) (*linalg.Sparse, error) {
	return linalg.SparseDiag([]complex128{1, 1, 1, -1}), nil
}

// SWAP exchanges the states of two wires.
type SWAP struct{ base }

// NewSWAP constructs SWAP on two wires.
func NewSWAP(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("SWAP", params, wires, 0, 2); err != nil {
		return nil, err
	}
	return &SWAP{base{params, wires}}, nil
}

func (g *SWAP) Name() string                   { return "SWAP" }
func (g *SWAP) NumWires() int                  { return 2 }
func (g *SWAP) Matrix() (linalg.Matrix, error) { return swapMatrix(g.params) }
func (g *SWAP) Eigvals() ([]complex128, error) { return twoQubitSymEigvals(g.params) }
func (g *SWAP) Decomposition() ([]Operator, error) {
	return swapDecomposition(g.params, g.wires)
}
func (g *SWAP) Definition() Definition { return SWAPDef }

// SWAPDef describes the SWAP gate.
var SWAPDef = Definition{
	Name:      "SWAP",
	NumWires:  2,
	NumParams: 0,
	New:       NewSWAP,
	Static: Static{
		Matrix:        swapMatrix,
		Eigvals:       twoQubitSymEigvals,
		Decomposition: swapDecomposition,
	},
}

func swapMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{1, 0, 0, 0},
		[]complex128{0, 0, 1, 0},
		[]complex128{0, 1, 0, 0},
		[]complex128{0, 0, 0, 1},
	), nil
}

// swapDecomposition: three alternating CNOTs.
func swapDecomposition(_ []float64, wires []int) ([]Operator, error) {
	forward := []int{wires[0], wires[1]}
	backward := []int{wires[1], wires[0]}
	first, err := NewCNOT(nil, forward)
	if err != nil {
		return nil, err
	}
	mid, err := NewCNOT(nil, backward)
	if err != nil {
		return nil, err
	}
	last, err := NewCNOT(nil, forward)
	if err != nil {
		return nil, err
	}
	return []Operator{first, mid, last}, nil
}
