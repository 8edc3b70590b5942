// Package transform implements the generic dispatch wrapper: a single
// operator-level function lifted to apply uniformly to operators,
// definitions, tapes, circuit builders and builder-device nodes.
package transform

import (
	"errors"
	"fmt"

	"github.com/dshills/opcritic/internal/device"
	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/tape"
)

// Hard-failure sentinels. These are usage errors, distinct from the
// graded diagnostics of the checker and from errors the wrapped
// functions return.
var (
	// ErrInvalidInput marks an object Apply cannot dispatch on.
	ErrInvalidInput = errors.New("transform: invalid input")
	// ErrWireOrder marks a wire order that does not cover the object.
	ErrWireOrder = errors.New("transform: wire not contained in wire order")
	// ErrNoTapeFn marks an aggregate call without a registered tape
	// function.
	ErrNoTapeFn = errors.New("transform: no tape function registered")
)

// OpFunc is the direct evaluator over a single operator.
type OpFunc func(o op.Operator, wireOrder []int) (any, error)

// TapeFunc is the aggregate evaluator over a composite circuit.
type TapeFunc func(t *tape.Tape, wireOrder []int) (any, error)

// Node pairs a circuit builder with the backend it runs on. Apply
// normalizes a node to the tape its builder produces.
type Node struct {
	Build tape.Builder
	Dev   device.Device
}

// Transform lifts an operator-level function to composite inputs.
type Transform struct {
	name   string
	opFn   OpFunc
	tapeFn TapeFunc
}

// New wraps the direct evaluator. The aggregate evaluator is attached
// separately with RegisterTapeFn.
func New(name string, fn OpFunc) *Transform {
	return &Transform{name: name, opFn: fn}
}

// Name returns the transform's registered name.
func (tr *Transform) Name() string { return tr.name }

// RegisterTapeFn attaches the aggregate evaluator. It replaces any
// previously registered one.
func (tr *Transform) RegisterTapeFn(fn TapeFunc) {
	tr.tapeFn = fn
}

// Option configures a single Apply invocation.
type Option func(*applyConfig)

type applyConfig struct {
	wireOrder []int
}

// WithWireOrder fixes the wire ordering used for matrix embeddings.
// Every wire the object references must appear in it.
func WithWireOrder(wires []int) Option {
	return func(c *applyConfig) {
		c.wireOrder = wires
	}
}

// Apply dispatches on the dynamic type of obj:
//
//   - op.Operator: direct evaluation with the two-tier fallback.
//   - *tape.Tape: aggregate evaluation.
//   - tape.Builder: the builder is invoked with args and the resulting
//     tape is evaluated.
//   - *Node: as Builder, using the node's builder.
//
// Definitions are handled by FromDef, which defers construction.
func (tr *Transform) Apply(obj any, args []any, opts ...Option) (any, error) {
	var cfg applyConfig
	for _, o := range opts {
		o(&cfg)
	}

	switch v := obj.(type) {
	case op.Operator:
		return tr.applyOp(v, cfg)
	case *tape.Tape:
		return tr.applyTape(v, cfg)
	case tape.Builder:
		return tr.applyBuilder(v, args, cfg)
	case *Node:
		return tr.applyBuilder(v.Build, args, cfg)
	}
	return nil, fmt.Errorf("transform.Apply: %T: %w", obj, ErrInvalidInput)
}

// FromDef returns a constructor-style callable: invoking it builds the
// operation from the definition and evaluates it.
func (tr *Transform) FromDef(def op.Definition, opts ...Option) func(params []float64, wires []int) (any, error) {
	return func(params []float64, wires []int) (any, error) {
		inst, err := def.New(params, wires)
		if err != nil {
			return nil, err
		}
		return tr.Apply(inst, nil, opts...)
	}
}

// applyOp runs the direct evaluator, falling back to the operator's
// decomposition and the aggregate evaluator when the direct call fails.
// Absent fallbacks re-surface the direct error untouched.
func (tr *Transform) applyOp(o op.Operator, cfg applyConfig) (any, error) {
	order, err := resolveWireOrder(cfg.wireOrder, o.Wires())
	if err != nil {
		return nil, err
	}

	out, direct := tr.opFn(o, order)
	if direct == nil {
		return out, nil
	}

	dec, ok := o.(op.Decomposer)
	if !ok || tr.tapeFn == nil {
		return nil, direct
	}
	ops, err := dec.Decomposition()
	if err != nil {
		return nil, direct
	}
	return tr.tapeFn(tape.New(ops...), order)
}

func (tr *Transform) applyTape(t *tape.Tape, cfg applyConfig) (any, error) {
	if tr.tapeFn == nil {
		return nil, fmt.Errorf("transform.Apply: %s: %w", tr.name, ErrNoTapeFn)
	}
	order, err := resolveWireOrder(cfg.wireOrder, t.Wires())
	if err != nil {
		return nil, err
	}
	return tr.tapeFn(t, order)
}

func (tr *Transform) applyBuilder(b tape.Builder, args []any, cfg applyConfig) (any, error) {
	t, err := b(args...)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Len() == 0 {
		return nil, fmt.Errorf("transform.Apply: %s: builder produced an empty tape: %w", tr.name, ErrInvalidInput)
	}
	return tr.applyTape(t, cfg)
}

// resolveWireOrder defaults to the object's own wires and verifies
// containment when an explicit order is given.
func resolveWireOrder(order, objWires []int) ([]int, error) {
	if order == nil {
		return objWires, nil
	}
	for _, w := range objWires {
		found := false
		for _, ow := range order {
			if ow == w {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("transform: wire %d: %w", w, ErrWireOrder)
		}
	}
	return order, nil
}
