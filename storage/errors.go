package storage

import "fmt"

// ErrorKind classifies storage and capacity failures.
// ErrorKind implements the error interface, which lets clients match a failure class
// with errors.Is(err, InvalidIndex).
type ErrorKind int

const (
	// InvalidCapacity is reported for negative capacity arguments.
	InvalidCapacity ErrorKind = iota + 1
	// InvalidIndex is reported for an index outside the range valid for the current
	// capacity or content bounds.
	InvalidIndex
	// InconsistentDescriptor is reported for a range operation with end before begin.
	InconsistentDescriptor
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidCapacity:
		return "invalid capacity"
	case InvalidIndex:
		return "invalid index"
	case InconsistentDescriptor:
		return "inconsistent descriptor"
	default:
		return "unknown storage error"
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error represents a rejected storage or capacity operation.
// The operation did not mutate any state.
type Error struct {
	Kind  ErrorKind // Failure class
	Op    string    // Operation which has been rejected, e.g. "get item"
	Value int       // The offending index or capacity argument
	Low   int       // Lower bound of the valid range (inclusive)
	High  int       // Upper bound of the valid range (inclusive); -1 if there is none
	Issue string    // Optional human-readable detail
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case InvalidCapacity:
		msg = fmt.Sprintf("%s: %s %d, must be >= %d", e.Op, e.Kind, e.Value, e.Low)
	case InconsistentDescriptor:
		msg = fmt.Sprintf("%s: %s, end index %d before begin index %d", e.Op, e.Kind, e.Value, e.Low)
	default:
		if e.High < e.Low {
			msg = fmt.Sprintf("%s: %s %d, no valid index", e.Op, e.Kind, e.Value)
		} else {
			msg = fmt.Sprintf("%s: %s %d, valid range [%d,%d]", e.Op, e.Kind, e.Value, e.Low, e.High)
		}
	}
	if e.Issue != "" {
		msg += " (" + e.Issue + ")"
	}
	return "linear storage: " + msg
}

// Unwrap returns the error kind, making the kind visible to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// IndexError creates an InvalidIndex error for index, with valid range [low,high].
func IndexError(op string, index, low, high int) *Error {
	return &Error{Kind: InvalidIndex, Op: op, Value: index, Low: low, High: high}
}

// CapacityError creates an InvalidCapacity error for a negative capacity argument.
func CapacityError(op string, capacity int) *Error {
	return &Error{Kind: InvalidCapacity, Op: op, Value: capacity, Low: 0, High: -1}
}

func errDescriptor(op string, r RangeOp) *Error {
	return &Error{
		Kind:  InconsistentDescriptor,
		Op:    op,
		Value: r.SourceEnd,
		Low:   r.SourceBegin,
		High:  -1,
		Issue: r.String(),
	}
}
