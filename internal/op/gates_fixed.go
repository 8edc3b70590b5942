package op

import (
	"math"

	"github.com/dshills/opcritic/internal/linalg"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// Identity is the single-qubit no-op gate.
type Identity struct{ base }

// NewIdentity constructs Identity on one wire.
func NewIdentity(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("Identity", params, wires, 0, 1); err != nil {
		return nil, err
	}
	return &Identity{base{params, wires}}, nil
}

func (g *Identity) Name() string                     { return "Identity" }
func (g *Identity) NumWires() int                    { return 1 }
func (g *Identity) Matrix() (linalg.Matrix, error)   { return identityMatrix(g.params) }
func (g *Identity) SparseMatrix() (*linalg.Sparse, error) {
	return identitySparse(g.params)
}
func (g *Identity) Eigvals() ([]complex128, error) { return identityEigvals(g.params) }
func (g *Identity) DiagonalizingGates() ([]Operator, error) {
	return noDiagGates(g.params, g.wires)
}
func (g *Identity) Basis() Basis           { return BasisZ }
func (g *Identity) Definition() Definition { return IdentityDef }

// IdentityDef describes the Identity gate.
var IdentityDef = Definition{
	Name:      "Identity",
	NumWires:  1,
	NumParams: 0,
	New:       NewIdentity,
	Static: Static{
		Matrix:             identityMatrix,
		SparseMatrix:       identitySparse,
		Eigvals:            identityEigvals,
		DiagonalizingGates: noDiagGates,
	},
}

func identityMatrix([]float64) (linalg.Matrix, error) { return linalg.Identity(2), nil }
func identitySparse([]float64) (*linalg.Sparse, error) {
	return linalg.SparseDiag([]complex128{1, 1}), nil
}
func identityEigvals([]float64) ([]complex128, error) { return []complex128{1, 1}, nil }

// noDiagGates is the empty diagonalizing sequence shared by gates that
// are already diagonal.
func noDiagGates([]float64, []int) ([]Operator, error) { return []Operator{}, nil }

// PauliX is the single-qubit bit-flip gate.
type PauliX struct{ base }

// NewPauliX constructs PauliX on one wire.
func NewPauliX(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("PauliX", params, wires, 0, 1); err != nil {
		return nil, err
	}
	return &PauliX{base{params, wires}}, nil
}

func (g *PauliX) Name() string                   { return "PauliX" }
func (g *PauliX) NumWires() int                  { return 1 }
func (g *PauliX) Matrix() (linalg.Matrix, error) { return pauliXMatrix(g.params) }
func (g *PauliX) SparseMatrix() (*linalg.Sparse, error) {
	return pauliXSparse(g.params)
}
func (g *PauliX) Eigvals() ([]complex128, error) { return pauliEigvals(g.params) }
func (g *PauliX) DiagonalizingGates() ([]Operator, error) {
	return pauliXDiagGates(g.params, g.wires)
}
func (g *PauliX) Basis() Basis           { return BasisX }
func (g *PauliX) Definition() Definition { return PauliXDef }

// PauliXDef describes the PauliX gate.
var PauliXDef = Definition{
	Name:      "PauliX",
	NumWires:  1,
	NumParams: 0,
	New:       NewPauliX,
	Static: Static{
		Matrix:             pauliXMatrix,
		SparseMatrix:       pauliXSparse,
		Eigvals:            pauliEigvals,
		DiagonalizingGates: pauliXDiagGates,
	},
}

func pauliXMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{0, 1},
		[]complex128{1, 0},
	), nil
}

func pauliXSparse([]float64) (*linalg.Sparse, error) {
	s := linalg.NewSparse(2, 2)
	s.Set(0, 1, 1)
	s.Set(1, 0, 1)
	return s, nil
}

func pauliEigvals([]float64) ([]complex128, error) { return []complex128{1, -1}, nil }

func pauliXDiagGates(_ []float64, wires []int) ([]Operator, error) {
	h, err := NewHadamard(nil, wires)
	if err != nil {
		return nil, err
	}
	return []Operator{h}, nil
}

// PauliY is the single-qubit Y gate.
type PauliY struct{ base }

// NewPauliY constructs PauliY on one wire.
func NewPauliY(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("PauliY", params, wires, 0, 1); err != nil {
		return nil, err
	}
	return &PauliY{base{params, wires}}, nil
}

func (g *PauliY) Name() string                   { return "PauliY" }
func (g *PauliY) NumWires() int                  { return 1 }
func (g *PauliY) Matrix() (linalg.Matrix, error) { return pauliYMatrix(g.params) }
func (g *PauliY) Eigvals() ([]complex128, error) { return pauliEigvals(g.params) }
func (g *PauliY) DiagonalizingGates() ([]Operator, error) {
	return pauliYDiagGates(g.params, g.wires)
}
func (g *PauliY) Basis() Basis           { return BasisY }
func (g *PauliY) Definition() Definition { return PauliYDef }

// PauliYDef describes the PauliY gate.
var PauliYDef = Definition{
	Name:      "PauliY",
	NumWires:  1,
	NumParams: 0,
	New:       NewPauliY,
	Static: Static{
		Matrix:             pauliYMatrix,
		Eigvals:            pauliEigvals,
		DiagonalizingGates: pauliYDiagGates,
	},
}

func pauliYMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{0, -1i},
		[]complex128{1i, 0},
	), nil
}

// pauliYDiagGates rotates the Y eigenbasis onto the computational basis:
// applied in circuit order PauliZ, S, Hadamard.
func pauliYDiagGates(_ []float64, wires []int) ([]Operator, error) {
	z, err := NewPauliZ(nil, wires)
	if err != nil {
		return nil, err
	}
	s, err := NewS(nil, wires)
	if err != nil {
		return nil, err
	}
	h, err := NewHadamard(nil, wires)
	if err != nil {
		return nil, err
	}
	return []Operator{z, s, h}, nil
}

// PauliZ is the single-qubit phase-flip gate.
type PauliZ struct{ base }

// NewPauliZ constructs PauliZ on one wire.
func NewPauliZ(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("PauliZ", params, wires, 0, 1); err != nil {
		return nil, err
	}
	return &PauliZ{base{params, wires}}, nil
}

func (g *PauliZ) Name() string                   { return "PauliZ" }
func (g *PauliZ) NumWires() int                  { return 1 }
func (g *PauliZ) Matrix() (linalg.Matrix, error) { return pauliZMatrix(g.params) }
func (g *PauliZ) SparseMatrix() (*linalg.Sparse, error) {
	return pauliZSparse(g.params)
}
func (g *PauliZ) Eigvals() ([]complex128, error) { return pauliEigvals(g.params) }
func (g *PauliZ) DiagonalizingGates() ([]Operator, error) {
	return noDiagGates(g.params, g.wires)
}
func (g *PauliZ) Basis() Basis           { return BasisZ }
func (g *PauliZ) Definition() Definition { return PauliZDef }

// PauliZDef describes the PauliZ gate.
var PauliZDef = Definition{
	Name:      "PauliZ",
	NumWires:  1,
	NumParams: 0,
	New:       NewPauliZ,
	Static: Static{
		Matrix:             pauliZMatrix,
		SparseMatrix:       pauliZSparse,
		Eigvals:            pauliEigvals,
		DiagonalizingGates: noDiagGates,
	},
}

func pauliZMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{1, 0},
		[]complex128{0, -1},
	), nil
}

func pauliZSparse([]float64) (*linalg.Sparse, error) {
	return linalg.SparseDiag([]complex128{1, -1}), nil
}

// Hadamard is the single-qubit basis-mixing gate.
type Hadamard struct{ base }

// NewHadamard constructs Hadamard on one wire.
func NewHadamard(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("Hadamard", params, wires, 0, 1); err != nil {
		return nil, err
	}
	return &Hadamard{base{params, wires}}, nil
}

func (g *Hadamard) Name() string                   { return "Hadamard" }
func (g *Hadamard) NumWires() int                  { return 1 }
func (g *Hadamard) Matrix() (linalg.Matrix, error) { return hadamardMatrix(g.params) }
func (g *Hadamard) Eigvals() ([]complex128, error) { return pauliEigvals(g.params) }
func (g *Hadamard) DiagonalizingGates() ([]Operator, error) {
	return hadamardDiagGates(g.params, g.wires)
}
func (g *Hadamard) Definition() Definition { return HadamardDef }

// HadamardDef describes the Hadamard gate.
var HadamardDef = Definition{
	Name:      "Hadamard",
	NumWires:  1,
	NumParams: 0,
	New:       NewHadamard,
	Static: Static{
		Matrix:             hadamardMatrix,
		Eigvals:            pauliEigvals,
		DiagonalizingGates: hadamardDiagGates,
	},
}

func hadamardMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{invSqrt2, invSqrt2},
		[]complex128{invSqrt2, -invSqrt2},
	), nil
}

// hadamardDiagGates: RY(-pi/4) rotates the Hadamard eigenbasis onto Z.
func hadamardDiagGates(_ []float64, wires []int) ([]Operator, error) {
	ry, err := NewRY([]float64{-math.Pi / 4}, wires)
	if err != nil {
		return nil, err
	}
	return []Operator{ry}, nil
}

// S is the single-qubit quarter-turn phase gate.
type S struct{ base }

// NewS constructs S on one wire.
func NewS(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("S", params, wires, 0, 1); err != nil {
		return nil, err
	}
	return &S{base{params, wires}}, nil
}

func (g *S) Name() string                   { return "S" }
func (g *S) NumWires() int                  { return 1 }
func (g *S) Matrix() (linalg.Matrix, error) { return sMatrix(g.params) }
func (g *S) SparseMatrix() (*linalg.Sparse, error) {
	return sSparse(g.params)
}
func (g *S) Eigvals() ([]complex128, error) { return sEigvals(g.params) }
func (g *S) DiagonalizingGates() ([]Operator, error) {
	return noDiagGates(g.params, g.wires)
}
func (g *S) Basis() Basis           { return BasisZ }
func (g *S) Definition() Definition { return SDef }

// SDef describes the S gate.
var SDef = Definition{
	Name:      "S",
	NumWires:  1,
	NumParams: 0,
	New:       NewS,
	Static: Static{
		Matrix:             sMatrix,
		SparseMatrix:       sSparse,
		Eigvals:            sEigvals,
		DiagonalizingGates: noDiagGates,
	},
}

func sMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{1, 0},
		[]complex128{0, 1i},
	), nil
}

func sSparse([]float64) (*linalg.Sparse, error) {
	return linalg.SparseDiag([]complex128{1, 1i}), nil
}

func sEigvals([]float64) ([]complex128, error) { return []complex128{1, 1i}, nil }

// T is the single-qubit eighth-turn phase gate.
type T struct{ base }

// NewT constructs T on one wire.
func NewT(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("T", params, wires, 0, 1); err != nil {
		return nil, err
	}
	return &T{base{params, wires}}, nil
}

func (g *T) Name() string                   { return "T" }
func (g *T) NumWires() int                  { return 1 }
func (g *T) Matrix() (linalg.Matrix, error) { return tMatrix(g.params) }
func (g *T) SparseMatrix() (*linalg.Sparse, error) {
	return tSparse(g.params)
}
func (g *T) Eigvals() ([]complex128, error) { return tEigvals(g.params) }
func (g *T) DiagonalizingGates() ([]Operator, error) {
	return noDiagGates(g.params, g.wires)
}
func (g *T) Basis() Basis           { return BasisZ }
func (g *T) Definition() Definition { return TDef }

// TDef describes the T gate.
var TDef = Definition{
	Name:      "T",
	NumWires:  1,
	NumParams: 0,
	New:       NewT,
	Static: Static{
		Matrix:             tMatrix,
		SparseMatrix:       tSparse,
		Eigvals:            tEigvals,
		DiagonalizingGates: noDiagGates,
	},
}

func tPhase() complex128 {
	return complex(math.Cos(math.Pi/4), math.Sin(math.Pi/4))
}

func tMatrix([]float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{1, 0},
		[]complex128{0, tPhase()},
	), nil
}

func tSparse([]float64) (*linalg.Sparse, error) {
	return linalg.SparseDiag([]complex128{1, tPhase()}), nil
}

func tEigvals([]float64) ([]complex128, error) {
	return []complex128{1, tPhase()}, nil
}
