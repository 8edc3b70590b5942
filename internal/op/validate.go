package op

import "fmt"

// ValidationError describes a single structural problem with a
// Definition.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks definitions for structural validity before they are
// handed to the checker: a usable name, a constructor, and sane declared
// counts. It reports all problems rather than stopping at the first.
func Validate(defs []Definition) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(defs))

	for i, def := range defs {
		path := fmt.Sprintf("defs[%d]", i)
		if def.Name == "" {
			errs = append(errs, ValidationError{path + ".name", "required"})
		} else {
			path = def.Name
			if seen[def.Name] {
				errs = append(errs, ValidationError{path, "duplicate definition name"})
			}
			seen[def.Name] = true
		}
		if def.New == nil {
			errs = append(errs, ValidationError{path + ".new", "constructor required"})
		}
		if def.NumWires < 1 && def.NumWires != WiresAny && def.NumWires != WiresUnset {
			errs = append(errs, ValidationError{path + ".num_wires", fmt.Sprintf("invalid wire count %d", def.NumWires)})
		}
		if def.NumParams < 0 && def.NumParams != ParamsUnknown {
			errs = append(errs, ValidationError{path + ".num_params", fmt.Sprintf("invalid parameter count %d", def.NumParams)})
		}
	}
	return errs
}
