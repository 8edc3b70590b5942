package op

import (
	"math"
	"math/cmplx"

	"github.com/dshills/opcritic/internal/linalg"
)

// PhaseShift applies a relative phase e^{i*phi} to the |1> state.
type PhaseShift struct{ base }

// NewPhaseShift constructs PhaseShift(phi) on one wire.
func NewPhaseShift(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("PhaseShift", params, wires, 1, 1); err != nil {
		return nil, err
	}
	return &PhaseShift{base{params, wires}}, nil
}

func (g *PhaseShift) Name() string                   { return "PhaseShift" }
func (g *PhaseShift) NumWires() int                  { return 1 }
func (g *PhaseShift) Matrix() (linalg.Matrix, error) { return phaseShiftMatrix(g.params) }
func (g *PhaseShift) SparseMatrix() (*linalg.Sparse, error) {
	return phaseShiftSparse(g.params)
}
func (g *PhaseShift) Eigvals() ([]complex128, error) { return phaseShiftEigvals(g.params) }
func (g *PhaseShift) Terms() ([]Term, error)         { return phaseShiftTerms(g.params, g.wires) }
func (g *PhaseShift) DiagonalizingGates() ([]Operator, error) {
	return noDiagGates(g.params, g.wires)
}
func (g *PhaseShift) Basis() Basis           { return BasisZ }
func (g *PhaseShift) Definition() Definition { return PhaseShiftDef }

// PhaseShiftDef describes the PhaseShift gate.
var PhaseShiftDef = Definition{
	Name:      "PhaseShift",
	NumWires:  1,
	NumParams: 1,
	New:       NewPhaseShift,
	Static: Static{
		Matrix:             phaseShiftMatrix,
		SparseMatrix:       phaseShiftSparse,
		Eigvals:            phaseShiftEigvals,
		Terms:              phaseShiftTerms,
		DiagonalizingGates: noDiagGates,
	},
}

func phaseShiftMatrix(params []float64) (linalg.Matrix, error) {
	e := cmplx.Exp(complex(0, params[0]))
	return linalg.FromRows(
		[]complex128{1, 0},
		[]complex128{0, e},
	), nil
}

func phaseShiftSparse(params []float64) (*linalg.Sparse, error) {
	e := cmplx.Exp(complex(0, params[0]))
	return linalg.SparseDiag([]complex128{1, e}), nil
}

func phaseShiftEigvals(params []float64) ([]complex128, error) {
	return []complex128{1, cmplx.Exp(complex(0, params[0]))}, nil
}

// phaseShiftTerms: diag(1, e^{i*phi}) = (1+e)/2 * I + (1-e)/2 * Z.
func phaseShiftTerms(params []float64, wires []int) ([]Term, error) {
	e := cmplx.Exp(complex(0, params[0]))
	id, err := NewIdentity(nil, wires)
	if err != nil {
		return nil, err
	}
	z, err := NewPauliZ(nil, wires)
	if err != nil {
		return nil, err
	}
	return []Term{
		{Coeff: (1 + e) / 2, Op: id},
		{Coeff: (1 - e) / 2, Op: z},
	}, nil
}

// RX rotates a qubit about the X axis.
type RX struct{ base }

// NewRX constructs RX(theta) on one wire.
func NewRX(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("RX", params, wires, 1, 1); err != nil {
		return nil, err
	}
	return &RX{base{params, wires}}, nil
}

func (g *RX) Name() string                   { return "RX" }
func (g *RX) NumWires() int                  { return 1 }
func (g *RX) Matrix() (linalg.Matrix, error) { return rxMatrix(g.params) }
func (g *RX) Eigvals() ([]complex128, error) { return rotationEigvals(g.params) }
func (g *RX) Terms() ([]Term, error)         { return rxTerms(g.params, g.wires) }
func (g *RX) DiagonalizingGates() ([]Operator, error) {
	return pauliXDiagGates(g.params, g.wires)
}
func (g *RX) SingleQubitRotAngles() ([3]float64, error) {
	return [3]float64{math.Pi / 2, g.params[0], -math.Pi / 2}, nil
}
func (g *RX) Generator() (Operator, error) {
	x, err := NewPauliX(nil, g.wires)
	if err != nil {
		return nil, err
	}
	return &Scaled{Coeff: -0.5, Op: x}, nil
}
func (g *RX) Basis() Basis           { return BasisX }
func (g *RX) Definition() Definition { return RXDef }

// RXDef describes the RX gate.
var RXDef = Definition{
	Name:      "RX",
	NumWires:  1,
	NumParams: 1,
	New:       NewRX,
	Static: Static{
		Matrix:             rxMatrix,
		Eigvals:            rotationEigvals,
		Terms:              rxTerms,
		DiagonalizingGates: pauliXDiagGates,
	},
}

func rxMatrix(params []float64) (linalg.Matrix, error) {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(0, -math.Sin(params[0]/2))
	return linalg.FromRows(
		[]complex128{c, s},
		[]complex128{s, c},
	), nil
}

// rotationEigvals holds for any rotation exp(-i*theta*P/2) with P a Pauli.
func rotationEigvals(params []float64) ([]complex128, error) {
	return []complex128{
		cmplx.Exp(complex(0, -params[0]/2)),
		cmplx.Exp(complex(0, params[0]/2)),
	}, nil
}

// rxTerms: RX(theta) = cos(theta/2) I - i sin(theta/2) X.
func rxTerms(params []float64, wires []int) ([]Term, error) {
	id, err := NewIdentity(nil, wires)
	if err != nil {
		return nil, err
	}
	x, err := NewPauliX(nil, wires)
	if err != nil {
		return nil, err
	}
	return []Term{
		{Coeff: complex(math.Cos(params[0]/2), 0), Op: id},
		{Coeff: complex(0, -math.Sin(params[0]/2)), Op: x},
	}, nil
}

// RY rotates a qubit about the Y axis.
type RY struct{ base }

// NewRY constructs RY(theta) on one wire.
func NewRY(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("RY", params, wires, 1, 1); err != nil {
		return nil, err
	}
	return &RY{base{params, wires}}, nil
}

func (g *RY) Name() string                   { return "RY" }
func (g *RY) NumWires() int                  { return 1 }
func (g *RY) Matrix() (linalg.Matrix, error) { return ryMatrix(g.params) }
func (g *RY) Eigvals() ([]complex128, error) { return rotationEigvals(g.params) }
func (g *RY) DiagonalizingGates() ([]Operator, error) {
	return pauliYDiagGates(g.params, g.wires)
}
func (g *RY) SingleQubitRotAngles() ([3]float64, error) {
	return [3]float64{0, g.params[0], 0}, nil
}
func (g *RY) Generator() (Operator, error) {
	y, err := NewPauliY(nil, g.wires)
	if err != nil {
		return nil, err
	}
	return &Scaled{Coeff: -0.5, Op: y}, nil
}
func (g *RY) Basis() Basis           { return BasisY }
func (g *RY) Definition() Definition { return RYDef }

// RYDef describes the RY gate.
var RYDef = Definition{
	Name:      "RY",
	NumWires:  1,
	NumParams: 1,
	New:       NewRY,
	Static: Static{
		Matrix:             ryMatrix,
		Eigvals:            rotationEigvals,
		DiagonalizingGates: pauliYDiagGates,
	},
}

func ryMatrix(params []float64) (linalg.Matrix, error) {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)
	return linalg.FromRows(
		[]complex128{c, -s},
		[]complex128{s, c},
	), nil
}

// RZ rotates a qubit about the Z axis.
type RZ struct{ base }

// NewRZ constructs RZ(theta) on one wire.
func NewRZ(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("RZ", params, wires, 1, 1); err != nil {
		return nil, err
	}
	return &RZ{base{params, wires}}, nil
}

func (g *RZ) Name() string                   { return "RZ" }
func (g *RZ) NumWires() int                  { return 1 }
func (g *RZ) Matrix() (linalg.Matrix, error) { return rzMatrix(g.params) }
func (g *RZ) SparseMatrix() (*linalg.Sparse, error) {
	return rzSparse(g.params)
}
func (g *RZ) Eigvals() ([]complex128, error) { return rotationEigvals(g.params) }
func (g *RZ) DiagonalizingGates() ([]Operator, error) {
	return noDiagGates(g.params, g.wires)
}
func (g *RZ) SingleQubitRotAngles() ([3]float64, error) {
	return [3]float64{g.params[0], 0, 0}, nil
}
func (g *RZ) Generator() (Operator, error) {
	z, err := NewPauliZ(nil, g.wires)
	if err != nil {
		return nil, err
	}
	return &Scaled{Coeff: -0.5, Op: z}, nil
}
func (g *RZ) Basis() Basis           { return BasisZ }
func (g *RZ) Definition() Definition { return RZDef }

// RZDef describes the RZ gate.
var RZDef = Definition{
	Name:      "RZ",
	NumWires:  1,
	NumParams: 1,
	New:       NewRZ,
	Static: Static{
		Matrix:             rzMatrix,
		SparseMatrix:       rzSparse,
		Eigvals:            rotationEigvals,
		DiagonalizingGates: noDiagGates,
	},
}

func rzMatrix(params []float64) (linalg.Matrix, error) {
	return linalg.FromRows(
		[]complex128{cmplx.Exp(complex(0, -params[0]/2)), 0},
		[]complex128{0, cmplx.Exp(complex(0, params[0]/2))},
	), nil
}

func rzSparse(params []float64) (*linalg.Sparse, error) {
	return linalg.SparseDiag([]complex128{
		cmplx.Exp(complex(0, -params[0]/2)),
		cmplx.Exp(complex(0, params[0]/2)),
	}), nil
}

// Rot is the general single-qubit rotation RZ(omega)RY(theta)RZ(phi).
type Rot struct{ base }

// NewRot constructs Rot(phi, theta, omega) on one wire.
func NewRot(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("Rot", params, wires, 3, 1); err != nil {
		return nil, err
	}
	return &Rot{base{params, wires}}, nil
}

func (g *Rot) Name() string                   { return "Rot" }
func (g *Rot) NumWires() int                  { return 1 }
func (g *Rot) Matrix() (linalg.Matrix, error) { return rotMatrix(g.params) }
func (g *Rot) Decomposition() ([]Operator, error) {
	return rotDecomposition(g.params, g.wires)
}
func (g *Rot) SingleQubitRotAngles() ([3]float64, error) {
	return [3]float64{g.params[0], g.params[1], g.params[2]}, nil
}
func (g *Rot) Definition() Definition { return RotDef }

// RotDef describes the Rot gate.
var RotDef = Definition{
	Name:      "Rot",
	NumWires:  1,
	NumParams: 3,
	New:       NewRot,
	Static: Static{
		Matrix:        rotMatrix,
		Decomposition: rotDecomposition,
	},
}

func rotMatrix(params []float64) (linalg.Matrix, error) {
	first, err := rzMatrix(params[:1])
	if err != nil {
		return nil, err
	}
	mid, err := ryMatrix(params[1:2])
	if err != nil {
		return nil, err
	}
	last, err := rzMatrix(params[2:3])
	if err != nil {
		return nil, err
	}
	m, err := mid.Mul(first)
	if err != nil {
		return nil, err
	}
	return last.Mul(m)
}

// rotDecomposition lists the gates in application order.
func rotDecomposition(params []float64, wires []int) ([]Operator, error) {
	first, err := NewRZ(params[:1], wires)
	if err != nil {
		return nil, err
	}
	mid, err := NewRY(params[1:2], wires)
	if err != nil {
		return nil, err
	}
	last, err := NewRZ(params[2:3], wires)
	if err != nil {
		return nil, err
	}
	return []Operator{first, mid, last}, nil
}
