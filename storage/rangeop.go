package storage

import "fmt"

// RangeOp describes a copy of the items [SourceBegin…SourceEnd] (inclusive) of the
// current buffer layout to a contiguous region starting at Target.
//
// Source and target may overlap; storage implementations apply range operations
// with memmove semantics.
type RangeOp struct {
	SourceBegin int
	SourceEnd   int
	Target      int
}

// MoveRange creates a range operation for [begin,end] -> target.
func MoveRange(begin, end, target int) RangeOp {
	return RangeOp{SourceBegin: begin, SourceEnd: end, Target: target}
}

// Len returns the number of items covered by r. It is 0 or negative for an
// inconsistent descriptor.
func (r RangeOp) Len() int {
	return r.SourceEnd - r.SourceBegin + 1
}

// TargetEnd returns the last index written by r.
func (r RangeOp) TargetEnd() int {
	return r.Target + r.Len() - 1
}

// Distance returns how far r moves items; negative values move to the left.
func (r RangeOp) Distance() int {
	return r.Target - r.SourceBegin
}

func (r RangeOp) String() string {
	return fmt.Sprintf("[%d,%d]->%d", r.SourceBegin, r.SourceEnd, r.Target)
}
