// Package op defines the quantum operator model consumed by the checker
// and the dispatch transform: the Operator interface, its optional
// representation capabilities, and the built-in gate set.
package op

import (
	"errors"
	"fmt"

	"github.com/dshills/opcritic/internal/linalg"
)

// Declared-arity and parameter-count sentinels.
const (
	// WiresAny marks an operation that acts on any number of wires.
	WiresAny = -1
	// WiresUnset marks an operation that never declared its wire count.
	WiresUnset = -2
	// ParamsUnknown marks an operation without a declared parameter count.
	ParamsUnknown = -1
)

// Capability-absent sentinels. A representation method returning one of
// these signals that the representation is legitimately not defined,
// as opposed to being defined but broken.
var (
	ErrMatrixUndefined        = errors.New("op: matrix undefined")
	ErrSparseMatrixUndefined  = errors.New("op: sparse matrix undefined")
	ErrEigvalsUndefined       = errors.New("op: eigenvalues undefined")
	ErrTermsUndefined         = errors.New("op: terms undefined")
	ErrDecompositionUndefined = errors.New("op: decomposition undefined")
	ErrDiagGatesUndefined     = errors.New("op: diagonalizing gates undefined")
	ErrGeneratorUndefined     = errors.New("op: generator undefined")
	ErrRotAnglesUndefined     = errors.New("op: rotation angles undefined")
)

// ErrInvalidArgs is returned by constructors for mismatched parameter or
// wire counts.
var ErrInvalidArgs = errors.New("op: invalid constructor arguments")

// Operator is a parametrized unit acting on a set of wires. The dense
// matrix is the baseline representation; it may return
// ErrMatrixUndefined when an operation defines no matrix.
type Operator interface {
	Name() string
	NumWires() int
	Wires() []int
	Params() []float64
	Matrix() (linalg.Matrix, error)
}

// Term is one summand of a weighted-sum operator representation.
type Term struct {
	Coeff complex128
	Op    Operator
}

// Basis names the single-qubit basis an operation is diagonal in.
type Basis string

// Recognized basis tags.
const (
	BasisX Basis = "X"
	BasisY Basis = "Y"
	BasisZ Basis = "Z"
)

// Optional capabilities. Each is probed via a type assertion; a missing
// interface or a capability-absent sentinel both mean "not defined".
type (
	// SparseMatrixer exposes a sparse matrix representation.
	SparseMatrixer interface {
		SparseMatrix() (*linalg.Sparse, error)
	}
	// Eigvalser exposes declared eigenvalues.
	Eigvalser interface {
		Eigvals() ([]complex128, error)
	}
	// Termser exposes a weighted-sum decomposition.
	Termser interface {
		Terms() ([]Term, error)
	}
	// Decomposer exposes a gate-sequence decomposition.
	Decomposer interface {
		Decomposition() ([]Operator, error)
	}
	// DiagGateser exposes a diagonalizing gate sequence.
	DiagGateser interface {
		DiagonalizingGates() ([]Operator, error)
	}
	// Generatorer exposes the generator G with U = exp(i*theta*G).
	Generatorer interface {
		Generator() (Operator, error)
	}
	// RotAngleser exposes RZ-RY-RZ rotation angles for single-qubit gates.
	RotAngleser interface {
		SingleQubitRotAngles() ([3]float64, error)
	}
	// Basiser exposes the basis tag the operation is diagonal in.
	Basiser interface {
		Basis() Basis
	}
	// ControlWireser exposes the subset of wires acting as controls.
	ControlWireser interface {
		ControlWires() []int
	}
	// Definitioner recovers the Definition an instance was built from.
	Definitioner interface {
		Definition() Definition
	}
)

// Static holds the direct-parameters access point for each optional
// representation: package-level computations that do not depend on
// instance state. A nil field means the representation has no static
// form; instance methods remain the auxiliary access point and may use
// configuration stored on the instance.
type Static struct {
	Eigvals            func(params []float64) ([]complex128, error)
	Matrix             func(params []float64) (linalg.Matrix, error)
	SparseMatrix       func(params []float64) (*linalg.Sparse, error)
	Terms              func(params []float64, wires []int) ([]Term, error)
	Decomposition      func(params []float64, wires []int) ([]Operator, error)
	DiagonalizingGates func(params []float64, wires []int) ([]Operator, error)
}

// Definition describes an operation type: its declared arity and
// parameter count, its constructor, and its static representations.
type Definition struct {
	Name      string
	NumWires  int
	NumParams int
	New       func(params []float64, wires []int) (Operator, error)
	Static    Static
}

// base carries the state shared by all built-in gates.
type base struct {
	params []float64
	wires  []int
}

func (b base) Params() []float64 { return b.params }
func (b base) Wires() []int      { return b.wires }

// checkArgs validates constructor inputs against declared counts.
func checkArgs(name string, params []float64, wires []int, numParams, numWires int) error {
	if numParams != ParamsUnknown && len(params) != numParams {
		return fmt.Errorf("op.%s: want %d parameter(s), got %d: %w", name, numParams, len(params), ErrInvalidArgs)
	}
	if numWires != WiresAny && len(wires) != numWires {
		return fmt.Errorf("op.%s: want %d wire(s), got %d: %w", name, numWires, len(wires), ErrInvalidArgs)
	}
	if numWires == WiresAny && len(wires) == 0 {
		return fmt.Errorf("op.%s: want at least one wire: %w", name, ErrInvalidArgs)
	}
	seen := make(map[int]bool, len(wires))
	for _, w := range wires {
		if seen[w] {
			return fmt.Errorf("op.%s: duplicate wire %d: %w", name, w, ErrInvalidArgs)
		}
		seen[w] = true
	}
	return nil
}

// Scaled multiplies an operator's matrix by a scalar coefficient. It is
// used to express generators such as -X/2.
type Scaled struct {
	Coeff complex128
	Op    Operator
}

// Name returns the wrapped operator's name with the scaling marker.
func (s *Scaled) Name() string       { return "Scaled(" + s.Op.Name() + ")" }
func (s *Scaled) NumWires() int      { return s.Op.NumWires() }
func (s *Scaled) Wires() []int       { return s.Op.Wires() }
func (s *Scaled) Params() []float64  { return s.Op.Params() }

// Matrix returns the scaled matrix of the wrapped operator.
func (s *Scaled) Matrix() (linalg.Matrix, error) {
	m, err := s.Op.Matrix()
	if err != nil {
		return nil, err
	}
	return m.Scale(s.Coeff), nil
}
