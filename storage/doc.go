/*
Package storage provides linear indexed storage for sequence- and matrix-like containers.

A [Linear] storage is a fixed-capacity, random-access buffer of items addressed by
indices 0…capacity-1. Besides reading and overwriting single items, it knows two bulk
operations, both driven by [RangeOp] descriptors:

  - ShiftItems relocates ranges of items within the existing buffer (like memmove);
  - AddCapacityAndShiftItems allocates a larger buffer and copies ranges from the old
    buffer into the new one.

Storage never decides on its own when or how much to grow. That is the job of a
capacity strategy (see package capacity), which computes the descriptors and calls into
storage.

[Array] is the default implementation, backed by a single Go slice.

# Errors

All failures are reported as *[Error] values. Every error carries an [ErrorKind], which
is itself an error, so clients may test for a failure class with errors.Is:

	if errors.Is(err, storage.InvalidIndex) { … }

Storage is not safe for concurrent use.
*/
package storage

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linstore.storage'
func tracer() tracing.Trace {
	return tracing.Select("linstore.storage")
}
