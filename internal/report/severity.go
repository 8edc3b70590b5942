// Package report defines the core types for checker output: the graded
// severity scale and the per-operation result report.
package report

import "fmt"

// Severity grades a diagnostic. Lower values are more severe.
type Severity int

// The four grades, from most to least severe.
const (
	SevError Severity = iota
	SevHint
	SevComment
	SevPass
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevHint:
		return "hint"
	case SevComment:
		return "comment"
	case SevPass:
		return "pass"
	}
	return "unknown"
}

// Valid reports whether s is one of the four grades.
func (s Severity) Valid() bool {
	return s >= SevError && s <= SevPass
}

// ParseSeverity maps a severity name to its grade.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "error":
		return SevError, nil
	case "hint":
		return SevHint, nil
	case "comment":
		return SevComment, nil
	case "pass":
		return SevPass, nil
	}
	return SevError, fmt.Errorf("report.ParseSeverity: unknown severity %q", name)
}

// Min returns the more severe of two grades.
func Min(a, b Severity) Severity {
	if b < a {
		return b
	}
	return a
}
