package device

import (
	"fmt"

	"github.com/dshills/opcritic/internal/linalg"
	"github.com/dshills/opcritic/internal/tape"
)

// Simulator is a dense state-vector backend. It starts every execution
// in |0...0> and applies each operation's expanded matrix in turn.
type Simulator struct {
	wires []int
}

// NewSimulator builds a simulator over the given wire register.
func NewSimulator(wires []int) *Simulator {
	return &Simulator{wires: wires}
}

// Name identifies the backend.
func (s *Simulator) Name() string { return "simulator" }

// Wires returns the device register.
func (s *Simulator) Wires() []int { return s.wires }

// Execute evolves |0...0> under the tape and returns the final
// amplitudes.
func (s *Simulator) Execute(t *tape.Tape) ([]complex128, error) {
	if len(s.wires) == 0 {
		return nil, tape.ErrNoWires
	}
	state := make([]complex128, 1<<len(s.wires))
	state[0] = 1
	for _, o := range t.Operations() {
		m, err := o.Matrix()
		if err != nil {
			return nil, fmt.Errorf("device.Execute: %s: %w", o.Name(), err)
		}
		em, err := tape.Expand(m, o.Wires(), s.wires)
		if err != nil {
			return nil, fmt.Errorf("device.Execute: %s: %w", o.Name(), err)
		}
		state = mulVec(em, state)
	}
	return state, nil
}

func mulVec(m linalg.Matrix, v []complex128) []complex128 {
	out := make([]complex128, m.Rows())
	for i := range m {
		var sum complex128
		for j, a := range m[i] {
			if a != 0 {
				sum += a * v[j]
			}
		}
		out[i] = sum
	}
	return out
}
