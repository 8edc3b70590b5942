// Package tape provides the uniform composite-circuit representation: an
// ordered list of operations with a combined matrix over a wire order.
package tape

import (
	"errors"
	"fmt"

	"github.com/dshills/opcritic/internal/linalg"
	"github.com/dshills/opcritic/internal/op"
)

var (
	// ErrNoWires is returned when a matrix is requested over an empty
	// wire order.
	ErrNoWires = errors.New("tape: no wires")
	// ErrWireNotInOrder is returned when an operation references a wire
	// missing from the requested wire order.
	ErrWireNotInOrder = errors.New("tape: operation wire not in wire order")
)

// Tape is an ordered sequence of operations.
type Tape struct {
	ops []op.Operator
}

// New builds a tape from operations in application order.
func New(ops ...op.Operator) *Tape {
	return &Tape{ops: ops}
}

// Append adds an operation to the end of the tape.
func (t *Tape) Append(o op.Operator) {
	t.ops = append(t.ops, o)
}

// Operations returns the tape contents in application order.
func (t *Tape) Operations() []op.Operator { return t.ops }

// Len returns the number of operations on the tape.
func (t *Tape) Len() int { return len(t.ops) }

// Wires returns all wires referenced by the tape in first-seen order.
func (t *Tape) Wires() []int {
	var wires []int
	seen := make(map[int]bool)
	for _, o := range t.ops {
		for _, w := range o.Wires() {
			if !seen[w] {
				seen[w] = true
				wires = append(wires, w)
			}
		}
	}
	return wires
}

// Matrix computes the combined unitary of the tape over the given wire
// order; later operations multiply on the left. A nil wire order
// defaults to the tape's own wires.
func (t *Tape) Matrix(wireOrder []int) (linalg.Matrix, error) {
	if wireOrder == nil {
		wireOrder = t.Wires()
	}
	if len(wireOrder) == 0 {
		return nil, ErrNoWires
	}
	u := linalg.Identity(1 << len(wireOrder))
	for _, o := range t.ops {
		m, err := o.Matrix()
		if err != nil {
			return nil, err
		}
		em, err := Expand(m, o.Wires(), wireOrder)
		if err != nil {
			return nil, err
		}
		u, err = em.Mul(u)
		if err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Builder is a callable that constructs a tape from call-site arguments.
type Builder func(args ...any) (*Tape, error)

// Expand embeds a matrix acting on opWires into the full space spanned
// by wireOrder. The first wire in each list is the most significant bit.
func Expand(m linalg.Matrix, opWires, wireOrder []int) (linalg.Matrix, error) {
	k := len(opWires)
	if m.Rows() != 1<<k || m.Cols() != 1<<k {
		return nil, fmt.Errorf("tape.Expand: %dx%d matrix for %d wire(s): %w",
			m.Rows(), m.Cols(), k, linalg.ErrDimensionMismatch)
	}
	n := len(wireOrder)
	pos := make([]int, k)
	for i, w := range opWires {
		found := false
		for j, ow := range wireOrder {
			if ow == w {
				pos[i] = j
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("tape.Expand: wire %d: %w", w, ErrWireNotInOrder)
		}
	}

	onOp := make([]bool, n)
	for _, p := range pos {
		onOp[p] = true
	}

	bit := func(idx, wirePos int) int {
		return (idx >> (n - 1 - wirePos)) & 1
	}
	subIdx := func(idx int) int {
		sub := 0
		for _, p := range pos {
			sub = sub<<1 | bit(idx, p)
		}
		return sub
	}
	restIdx := func(idx int) int {
		rest := 0
		for j := 0; j < n; j++ {
			if !onOp[j] {
				rest = rest<<1 | bit(idx, j)
			}
		}
		return rest
	}

	dim := 1 << n
	out := linalg.New(dim, dim)
	for i := 0; i < dim; i++ {
		ri := restIdx(i)
		si := subIdx(i)
		for j := 0; j < dim; j++ {
			if restIdx(j) != ri {
				continue
			}
			out[i][j] = m[si][subIdx(j)]
		}
	}
	return out, nil
}
