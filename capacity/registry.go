package capacity

import (
	"fmt"

	"github.com/npillmayer/linstore/storage"
)

// Capacitor is anything which reports a capacity, usually a storage.Linear.
type Capacitor interface {
	Capacity() int
}

// Extent is the occupied range [First,Last] of a storage, both inclusive.
type Extent struct {
	First int
	Last  int
}

// Count returns the number of items in e.
func (e Extent) Count() int {
	return e.Last - e.First + 1
}

func (e Extent) String() string {
	return fmt.Sprintf("[%d,%d]", e.First, e.Last)
}

// Registry tracks which sub-range of a storage's capacity holds content.
//
// A registry is pure bookkeeping and never touches the buffer. It validates
// non-negativity of indices only; keeping the extent consistent with the storage
// capacity is the job of the capacity strategy.
type Registry struct {
	content Option[Extent]
	store   Capacitor
}

// NewRegistry creates a registry with content [first,last]. If last == first-1
// the registry is empty.
func NewRegistry(store Capacitor, first, last int) (*Registry, error) {
	r := &Registry{store: store}
	if err := r.SetContent(first, last); err != nil {
		return nil, err
	}
	return r, nil
}

// NewEmptyRegistry creates a registry without content.
func NewEmptyRegistry(store Capacitor) *Registry {
	return &Registry{store: store}
}

// Content returns the occupied extent, or None for an empty registry.
func (r *Registry) Content() Option[Extent] {
	return r.content
}

// IsEmpty is true if the registry tracks no content.
func (r *Registry) IsEmpty() bool {
	return r.content.IsNone()
}

// FirstItemIndex returns the index of the first occupied slot.
func (r *Registry) FirstItemIndex() (int, bool) {
	e, ok := r.content.Unwrap()
	return e.First, ok
}

// LastItemIndex returns the index of the last occupied slot.
func (r *Registry) LastItemIndex() (int, bool) {
	e, ok := r.content.Unwrap()
	return e.Last, ok
}

// ItemsCount returns the number of occupied slots.
func (r *Registry) ItemsCount() int {
	if e, ok := r.content.Unwrap(); ok {
		return e.Count()
	}
	return 0
}

// HeadCapacity returns the number of free slots before the first item.
func (r *Registry) HeadCapacity() int {
	return r.content.Or(Extent{}).First
}

// TailCapacity returns the number of free slots after the last item.
// For an empty registry this is the whole capacity of the storage.
func (r *Registry) TailCapacity() int {
	c := r.store.Capacity()
	if e, ok := r.content.Unwrap(); ok {
		return c - e.Last - 1
	}
	return c
}

// SetContent sets the occupied extent to [first,last]. last == first-1 clears
// the registry.
func (r *Registry) SetContent(first, last int) error {
	const op = "set content"
	if first < 0 {
		e := storage.IndexError(op, first, 0, -1)
		e.Issue = "index must be >= 0"
		return e
	}
	if last < first-1 {
		e := storage.IndexError(op, last, first-1, -1)
		e.Issue = "last item index before first item index"
		return e
	}
	if last == first-1 {
		r.content = None[Extent]()
		return nil
	}
	r.content = Some(Extent{First: first, Last: last})
	return nil
}

// Clear removes all content from the registry.
func (r *Registry) Clear() {
	r.content = None[Extent]()
}

// SetFirstItemIndex moves the start of the content to index.
func (r *Registry) SetFirstItemIndex(index int) error {
	e, ok := r.content.Unwrap()
	if !ok {
		return errNoContent("set first item index", index)
	}
	return r.SetContent(index, e.Last)
}

// SetLastItemIndex moves the end of the content to index.
func (r *Registry) SetLastItemIndex(index int) error {
	e, ok := r.content.Unwrap()
	if !ok {
		return errNoContent("set last item index", index)
	}
	return r.SetContent(e.First, index)
}

// IncrementFirstItemIndex adds delta to the first item index.
func (r *Registry) IncrementFirstItemIndex(delta int) error {
	e, ok := r.content.Unwrap()
	if !ok {
		return errNoContent("increment first item index", delta)
	}
	return r.SetContent(e.First+delta, e.Last)
}

// IncrementLastItemIndex adds delta to the last item index.
func (r *Registry) IncrementLastItemIndex(delta int) error {
	e, ok := r.content.Unwrap()
	if !ok {
		return errNoContent("increment last item index", delta)
	}
	return r.SetContent(e.First, e.Last+delta)
}

// shift moves the whole extent by delta. The strategy has validated delta.
func (r *Registry) shift(delta int) {
	if e, ok := r.content.Unwrap(); ok {
		r.content = Some(Extent{First: e.First + delta, Last: e.Last + delta})
	}
}

// Clone copies r, attaching the copy to store.
func (r *Registry) Clone(store Capacitor) *Registry {
	return &Registry{
		content: r.content,
		store:   store,
	}
}

func (r *Registry) String() string {
	if e, ok := r.content.Unwrap(); ok {
		return fmt.Sprintf("content%s of %d", e, r.store.Capacity())
	}
	return fmt.Sprintf("content[] of %d", r.store.Capacity())
}

func errNoContent(op string, value int) error {
	e := storage.IndexError(op, value, 0, -1)
	e.Issue = "registry has no content"
	return e
}
