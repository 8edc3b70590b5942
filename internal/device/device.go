// Package device defines the execution backend interface used when a
// circuit-building callable is paired with a concrete backend, plus the
// default state-vector simulator.
package device

import (
	"errors"
	"fmt"

	"github.com/dshills/opcritic/internal/tape"
)

// ErrUnknownDevice is returned when no backend matches a requested name.
var ErrUnknownDevice = errors.New("device: unknown device")

// Device executes tapes on a fixed wire register.
type Device interface {
	Name() string
	Wires() []int
	Execute(t *tape.Tape) ([]complex128, error)
}

// Resolve returns the backend registered under name, defaulting to the
// state-vector simulator when name is empty.
func Resolve(name string, wires []int) (Device, error) {
	switch name {
	case "", "simulator":
		return NewSimulator(wires), nil
	default:
		return nil, fmt.Errorf("device.Resolve: %q: %w", name, ErrUnknownDevice)
	}
}
