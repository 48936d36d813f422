package beam

import "fmt"

// InvalidSectionError reports a section that violates a construction
// constraint. It is the only error kind the engine raises: construction
// rejects bad inputs up front, and the solver re-raises it defensively
// for a degenerate neutral axis.
type InvalidSectionError struct {
	Field  string // offending input, e.g. "width", "effective depth"
	Reason string // violated constraint
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("invalid section: %s %s", e.Field, e.Reason)
}

func errNonPositive(field string, v float64) *InvalidSectionError {
	return &InvalidSectionError{Field: field, Reason: fmt.Sprintf("must be positive, got %g", v)}
}
