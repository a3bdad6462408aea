package primitive

import (
	"errors"
	"fmt"
)

// Kind classifies a failed edit sub-operation (spec §7).
type Kind int

const (
	// BadArity: wrong number of scalar parameters.
	BadArity Kind = iota
	// OutOfRange: non-positive scale, negative radius, degenerate geometry.
	OutOfRange
	// GeometryRejected: the operation would violate a type invariant.
	GeometryRejected
	// MissingSelection: the operation needs a selected edge/point/face/curve.
	MissingSelection
	// MissingResource: a referenced file is absent or too small.
	MissingResource
	// InternalInvariant: a should-never-happen condition; aborts editing.
	InternalInvariant
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case BadArity:
		return "BadArity"
	case OutOfRange:
		return "OutOfRange"
	case GeometryRejected:
		return "GeometryRejected"
	case MissingSelection:
		return "MissingSelection"
	case MissingResource:
		return "MissingResource"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// EditError reports why a sub-operation failed. Every EditError leaves
// the primitive unchanged except InternalInvariant, which additionally
// signals the session should stop accepting further edits.
type EditError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EditError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap supports errors.Is/As against a wrapped cause.
func (e *EditError) Unwrap() error { return e.Err }

// Newf builds an EditError of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *EditError {
	return &EditError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an EditError of the given kind wrapping an underlying cause.
func Wrap(kind Kind, err error, format string, args ...any) *EditError {
	return &EditError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsFatal reports whether err is an InternalInvariant failure, the
// only error kind that terminates editing rather than being reported
// locally (spec §7).
func IsFatal(err error) bool {
	var ee *EditError
	if errors.As(err, &ee) {
		return ee.Kind == InternalInvariant
	}
	return false
}
