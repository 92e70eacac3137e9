package storage

// Linear is random-access storage of items indexed 0…Capacity()-1.
//
// Contract:
//   - Every index in [0, Capacity()) is a valid read/write target, indices outside
//     fail with InvalidIndex.
//   - ShiftItems applies range operations in order, in place and overlap-safe.
//     Capacity is unchanged.
//   - AddCapacityAndShiftItems allocates a buffer of Capacity()+additional slots and
//     copies each range from the old buffer into the new one. Sources refer to the old
//     capacity, targets to the new one. Slots not covered by any range are unspecified.
//   - Capacity never shrinks.
//   - Arguments are validated completely before anything is mutated. A rejected
//     operation leaves the storage untouched.
//
// Implementations should use CheckIndex, CheckShift and CheckGrow to validate
// arguments, to make sure all of them report identical errors.
type Linear[T any] interface {
	// Capacity returns the number of addressable slots.
	Capacity() int
	// Item returns the item at index.
	Item(index int) (T, error)
	// ReplaceItem overwrites the item at index.
	ReplaceItem(index int, item T) error
	// ShiftItems relocates ranges of items within the current buffer.
	ShiftItems(ops ...RangeOp) error
	// AddCapacityAndShiftItems grows the buffer and relocates ranges into the new buffer.
	AddCapacityAndShiftItems(additional int, ops ...RangeOp) error
}

// CheckIndex validates index against capacity.
func CheckIndex(op string, capacity, index int) error {
	if index < 0 || index >= capacity {
		return IndexError(op, index, 0, capacity-1)
	}
	return nil
}

// CheckShift validates range operations for an in-place shift within a buffer of
// the given capacity.
func CheckShift(capacity int, ops ...RangeOp) error {
	const op = "shift items"
	return checkRanges(op, capacity, capacity, ops)
}

// CheckGrow validates the arguments of a grow-and-relocate operation on a buffer
// of the given capacity.
func CheckGrow(capacity, additional int, ops ...RangeOp) error {
	const op = "add capacity"
	if additional < 0 {
		return CapacityError(op, additional)
	}
	return checkRanges(op, capacity, capacity+additional, ops)
}

func checkRanges(op string, srcCapacity, dstCapacity int, ops []RangeOp) error {
	for _, r := range ops {
		if r.SourceEnd < r.SourceBegin {
			return errDescriptor(op, r)
		}
		if r.SourceBegin < 0 || r.SourceBegin >= srcCapacity {
			return withIssue(IndexError(op, r.SourceBegin, 0, srcCapacity-1), "source begin of "+r.String())
		}
		if r.SourceEnd >= srcCapacity {
			return withIssue(IndexError(op, r.SourceEnd, 0, srcCapacity-1), "source end of "+r.String())
		}
		if r.Target < 0 || r.Target >= dstCapacity {
			return withIssue(IndexError(op, r.Target, 0, dstCapacity-1), "target of "+r.String())
		}
		if end := r.TargetEnd(); end >= dstCapacity {
			return withIssue(IndexError(op, end, 0, dstCapacity-1), "target end of "+r.String())
		}
	}
	return nil
}

func withIssue(e *Error, issue string) *Error {
	e.Issue = issue
	return e
}

// Cloneable is a Linear storage which is able to produce a deep copy of itself.
type Cloneable[T any] interface {
	Linear[T]
	CloneStorage() Linear[T]
}
