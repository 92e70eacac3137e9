/*
Package capacity decides when and how a linear storage has to grow.

A [Registry] records which sub-range of a storage currently holds content. A
[Strategy] guarantees free slots before the content (head capacity), after it (tail
capacity), or at a split point inside it (middle capacity). To do so it computes range
operations and either shifts items in place, if the existing slack suffices, or lets
the storage grow and relocate its items in one pass.

Clients (sequence or matrix types) call one of the Ensure… operations before inserting
items, then write items into the guaranteed free slots:

	strategy.EnsureMiddleCapacity(split, 2)   // opens slots split and split+1
	store.ReplaceItem(split, x)
	store.ReplaceItem(split+1, y)

All operations validate their arguments before mutating anything. Errors carry a
[storage.ErrorKind] and may be matched with errors.Is.
*/
package capacity

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linstore.capacity'
func tracer() tracing.Trace {
	return tracing.Select("linstore.capacity")
}
