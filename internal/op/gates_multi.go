package op

import (
	"errors"
	"math/bits"
	"math/cmplx"

	"github.com/dshills/opcritic/internal/linalg"
)

// errNeedsWireCount marks static computations that depend on the number
// of wires an instance acts on. It is deliberately not a capability
// sentinel: the representation exists, it just needs instance state.
var errNeedsWireCount = errors.New("op: computation requires the instance wire count")

// MultiRZ rotates any number of wires about their joint Z parity,
// exp(-i*theta/2 * Z⊗...⊗Z).
type MultiRZ struct{ base }

// NewMultiRZ constructs MultiRZ(theta) on one or more wires.
func NewMultiRZ(params []float64, wires []int) (Operator, error) {
	if err := checkArgs("MultiRZ", params, wires, 1, WiresAny); err != nil {
		return nil, err
	}
	return &MultiRZ{base{params, wires}}, nil
}

func (g *MultiRZ) Name() string  { return "MultiRZ" }
func (g *MultiRZ) NumWires() int { return WiresAny }

func (g *MultiRZ) Matrix() (linalg.Matrix, error) {
	diag := multiRZDiag(g.params[0], len(g.wires))
	m := linalg.New(len(diag), len(diag))
	for i, v := range diag {
		m[i][i] = v
	}
	return m, nil
}

func (g *MultiRZ) SparseMatrix() (*linalg.Sparse, error) {
	return linalg.SparseDiag(multiRZDiag(g.params[0], len(g.wires))), nil
}

func (g *MultiRZ) Eigvals() ([]complex128, error) {
	return multiRZDiag(g.params[0], len(g.wires)), nil
}

func (g *MultiRZ) DiagonalizingGates() ([]Operator, error) {
	return noDiagGates(g.params, g.wires)
}

func (g *MultiRZ) Generator() (Operator, error) {
	return &Scaled{Coeff: -0.5, Op: &ZProduct{wires: g.wires}}, nil
}

func (g *MultiRZ) Basis() Basis           { return BasisZ }
func (g *MultiRZ) Definition() Definition { return MultiRZDef }

// MultiRZDef describes the MultiRZ gate. The static matrix cannot be
// computed from parameters alone, so probing it reports the instance
// configuration requirement.
var MultiRZDef = Definition{
	Name:      "MultiRZ",
	NumWires:  WiresAny,
	NumParams: 1,
	New:       NewMultiRZ,
	Static: Static{
		Matrix: func([]float64) (linalg.Matrix, error) {
			return nil, errNeedsWireCount
		},
		DiagonalizingGates: noDiagGates,
	},
}

func multiRZDiag(theta float64, numWires int) []complex128 {
	dim := 1 << numWires
	diag := make([]complex128, dim)
	for i := 0; i < dim; i++ {
		sign := 1.0
		if bits.OnesCount(uint(i))%2 == 1 {
			sign = -1.0
		}
		diag[i] = cmplx.Exp(complex(0, -theta/2*sign))
	}
	return diag
}

// ZProduct is the tensor product Z⊗...⊗Z over a wire set. It serves as
// the MultiRZ generator.
type ZProduct struct {
	wires []int
}

func (g *ZProduct) Name() string      { return "ZProduct" }
func (g *ZProduct) NumWires() int     { return WiresAny }
func (g *ZProduct) Wires() []int      { return g.wires }
func (g *ZProduct) Params() []float64 { return nil }

func (g *ZProduct) Matrix() (linalg.Matrix, error) {
	z, err := pauliZMatrix(nil)
	if err != nil {
		return nil, err
	}
	m := z
	for i := 1; i < len(g.wires); i++ {
		m = m.Kron(z)
	}
	return m, nil
}
