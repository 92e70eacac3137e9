package storage

// Array is the default Linear implementation, backed by a slice of length capacity.
type Array[T any] struct {
	items []T
	stats Stats
}

var _ Cloneable[int] = (*Array[int])(nil)

// Stats counts the work an Array has performed.
type Stats struct {
	Allocations int // number of buffers allocated by AddCapacityAndShiftItems
	Shifts      int // number of in-place ShiftItems calls
	Copied      int // number of items copied by range operations
}

// NewArray creates an array storage with the given capacity.
func NewArray[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, CapacityError("new array", capacity)
	}
	return &Array[T]{items: make([]T, capacity)}, nil
}

// NewArrayFrom creates an array storage holding a copy of items. Its capacity is
// len(items).
func NewArrayFrom[T any](items []T) *Array[T] {
	a := &Array[T]{items: make([]T, len(items))}
	copy(a.items, items)
	return a
}

// Capacity returns the number of addressable slots.
func (a *Array[T]) Capacity() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Item returns the item at index.
func (a *Array[T]) Item(index int) (T, error) {
	if err := CheckIndex("get item", a.Capacity(), index); err != nil {
		var zero T
		return zero, err
	}
	return a.items[index], nil
}

// ReplaceItem overwrites the item at index.
func (a *Array[T]) ReplaceItem(index int, item T) error {
	if err := CheckIndex("replace item", a.Capacity(), index); err != nil {
		return err
	}
	a.items[index] = item
	return nil
}

// ShiftItems relocates ranges of items within the current buffer. Ranges are
// applied in order; each one sees the result of its predecessors.
func (a *Array[T]) ShiftItems(ops ...RangeOp) error {
	if err := CheckShift(a.Capacity(), ops...); err != nil {
		return err
	}
	for _, r := range ops {
		// copy has memmove semantics for overlapping slices
		n := copy(a.items[r.Target:r.TargetEnd()+1], a.items[r.SourceBegin:r.SourceEnd+1])
		a.stats.Copied += n
	}
	a.stats.Shifts++
	tracer().Debugf("array: shifted %d range(s) in place, capacity %d", len(ops), len(a.items))
	return nil
}

// AddCapacityAndShiftItems allocates a new buffer with additional slots and copies
// the ranges from the old buffer into it. The new buffer replaces the old one
// after all ranges have been copied.
func (a *Array[T]) AddCapacityAndShiftItems(additional int, ops ...RangeOp) error {
	if err := CheckGrow(a.Capacity(), additional, ops...); err != nil {
		return err
	}
	buf := make([]T, len(a.items)+additional)
	for _, r := range ops {
		n := copy(buf[r.Target:r.TargetEnd()+1], a.items[r.SourceBegin:r.SourceEnd+1])
		a.stats.Copied += n
	}
	tracer().Debugf("array: grown from %d to %d with %d range(s)", len(a.items), len(buf), len(ops))
	a.items = buf
	a.stats.Allocations++
	return nil
}

// Clone returns a deep copy of a. Items are copied by assignment.
func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}
	c := &Array[T]{items: make([]T, len(a.items)), stats: a.stats}
	copy(c.items, a.items)
	return c
}

// CloneStorage is Clone for clients which know a only as Linear storage.
func (a *Array[T]) CloneStorage() Linear[T] {
	return a.Clone()
}

// Stats returns the work counters of a.
func (a *Array[T]) Stats() Stats {
	if a == nil {
		return Stats{}
	}
	return a.stats
}
