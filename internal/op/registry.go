package op

import "sort"

// builtin is the registry of shipped gate definitions.
var builtin = map[string]Definition{
	"Identity":   IdentityDef,
	"PauliX":     PauliXDef,
	"PauliY":     PauliYDef,
	"PauliZ":     PauliZDef,
	"Hadamard":   HadamardDef,
	"S":          SDef,
	"T":          TDef,
	"PhaseShift": PhaseShiftDef,
	"RX":         RXDef,
	"RY":         RYDef,
	"RZ":         RZDef,
	"Rot":        RotDef,
	"CNOT":       CNOTDef,
	"CZ":         CZDef,
	"SWAP":       SWAPDef,
	"MultiRZ":    MultiRZDef,
}

// Builtin returns all shipped definitions sorted by name.
func Builtin() []Definition {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, builtin[name])
	}
	return defs
}

// Lookup finds a shipped definition by name.
func Lookup(name string) (Definition, bool) {
	def, ok := builtin[name]
	return def, ok
}
