package capacity

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/npillmayer/linstore/storage"
)

// Strategy guarantees free slots in a linear storage.
type Strategy interface {
	// Initialize sets up content [first,last], growing the storage if necessary.
	Initialize(first, last int) error
	// EnsureHeadCapacity guarantees n free slots before the first item.
	EnsureHeadCapacity(n int) error
	// EnsureTailCapacity guarantees n free slots after the last item.
	EnsureTailCapacity(n int) error
	// EnsureMiddleCapacity opens n free slots at split, moving the items
	// [split,last] n slots to the right.
	EnsureMiddleCapacity(split, n int) error
}

// Linear is the capacity strategy for a storage.Linear and its content registry.
// It holds no state of its own besides its growth policy.
type Linear[T any] struct {
	store  storage.Linear[T]
	reg    *Registry
	growth Growth
}

var _ Strategy = (*Linear[int])(nil)

// NewLinear creates a strategy for store and reg. reg has to be a registry of
// store, i.e. created with store as its Capacitor, and its content has to fit into
// the storage capacity.
func NewLinear[T any](store storage.Linear[T], reg *Registry, opts ...StrategyOption) (*Linear[T], error) {
	if store == nil || reg == nil {
		return nil, errors.New("capacity strategy needs storage and registry")
	}
	if reg.store != Capacitor(store) {
		return nil, errors.Newf("registry of %T does not track storage %T", reg.store, store)
	}
	if last, ok := reg.LastItemIndex(); ok && last >= store.Capacity() {
		e := storage.IndexError("new capacity strategy", last, 0, store.Capacity()-1)
		e.Issue = "registry content exceeds storage"
		return nil, e
	}
	conf := strategyConfig{growth: ExactGrowth}
	for _, opt := range opts {
		opt(&conf)
	}
	return &Linear[T]{store: store, reg: reg, growth: conf.growth}, nil
}

// Storage returns the storage managed by l.
func (l *Linear[T]) Storage() storage.Linear[T] {
	return l.store
}

// Registry returns the content registry managed by l.
func (l *Linear[T]) Registry() *Registry {
	return l.reg
}

// Initialize sets the content to [first,last] and makes sure the storage is large
// enough to address it. Items already in the storage keep their indices.
func (l *Linear[T]) Initialize(first, last int) error {
	const op = "initialize"
	if last < first-1 {
		e := storage.CapacityError(op, last-first+1)
		e.Issue = "last item index before first item index"
		return e
	}
	if first < 0 {
		return negativeIndex(op, first)
	}
	required, err := requiredCapacity(op, last, 1)
	if err != nil {
		return err
	}
	if required > l.store.Capacity() {
		if err := l.grow(required); err != nil {
			return errors.Wrapf(err, "initialize [%d,%d]", first, last)
		}
	}
	tracer().Debugf("initialized content [%d,%d] in capacity %d", first, last, l.store.Capacity())
	return l.reg.SetContent(first, last)
}

// EnsureHeadCapacity guarantees at least n free slots before the first item.
// If the storage has to grow, content is moved to the right by the missing
// amount of head room; tail room is preserved.
func (l *Linear[T]) EnsureHeadCapacity(n int) error {
	const op = "ensure head capacity"
	if n < 0 {
		return storage.CapacityError(op, n)
	}
	e, ok := l.reg.Content().Unwrap()
	if !ok {
		return l.ensureCapacity(n)
	}
	if n <= e.First {
		tracer().Debugf("head capacity %d suffices for %d", e.First, n)
		return nil
	}
	capacity := l.store.Capacity()
	required, err := requiredCapacity(op, n, capacity-e.First)
	if err != nil {
		return err
	}
	newCapacity := l.newCapacity(required)
	target := n + (newCapacity - required) // slack goes to the head
	r := storage.MoveRange(e.First, e.Last, target)
	if err := l.store.AddCapacityAndShiftItems(newCapacity-capacity, r); err != nil {
		return errors.Wrapf(err, "ensure head capacity %d", n)
	}
	tracer().Debugf("head capacity %d: grown %d -> %d, moved %s", n, capacity, newCapacity, r)
	l.reg.shift(target - e.First)
	return nil
}

// EnsureTailCapacity guarantees at least n free slots after the last item.
// Content does not move.
func (l *Linear[T]) EnsureTailCapacity(n int) error {
	const op = "ensure tail capacity"
	if n < 0 {
		return storage.CapacityError(op, n)
	}
	e, ok := l.reg.Content().Unwrap()
	if !ok {
		return l.ensureCapacity(n)
	}
	if tail := l.reg.TailCapacity(); n <= tail {
		tracer().Debugf("tail capacity %d suffices for %d", tail, n)
		return nil
	}
	capacity := l.store.Capacity()
	required, err := requiredCapacity(op, n, e.Last+1)
	if err != nil {
		return err
	}
	newCapacity := l.newCapacity(required)
	r := storage.MoveRange(e.First, e.Last, e.First)
	if err := l.store.AddCapacityAndShiftItems(newCapacity-capacity, r); err != nil {
		return errors.Wrapf(err, "ensure tail capacity %d", n)
	}
	tracer().Debugf("tail capacity %d: grown %d -> %d", n, capacity, newCapacity)
	return nil
}

// EnsureMiddleCapacity opens n free slots at split. Items [first,split-1] keep
// their indices, items [split,last] are moved to split+n, and the last item index
// grows by n.
//
// split has to lie within the content. Opening zero slots is a no-op for every
// split in [first,last+1].
//
// If the tail room suffices, items are shifted in place. Otherwise the storage grows
// by n slots, preserving head and tail room, and items are copied into the new
// buffer by at most two range operations.
func (l *Linear[T]) EnsureMiddleCapacity(split, n int) error {
	const op = "ensure middle capacity"
	if n < 0 {
		return storage.CapacityError(op, n)
	}
	e, ok := l.reg.Content().Unwrap()
	if !ok {
		if n == 0 {
			return nil
		}
		err := storage.IndexError(op, split, 0, -1)
		err.Issue = "registry has no content"
		return err
	}
	if split < e.First {
		err := storage.IndexError(op, split, e.First, e.Last)
		err.Issue = "split index below first"
		return err
	}
	if split > e.Last+1 || (split == e.Last+1 && n > 0) {
		err := storage.IndexError(op, split, e.First, e.Last)
		err.Issue = "split index above last"
		return err
	}
	if n == 0 {
		return nil
	}
	required, err := requiredCapacity(op, n, l.store.Capacity())
	if err != nil {
		return err
	}
	right := storage.MoveRange(split, e.Last, split+n)
	if tail := l.reg.TailCapacity(); tail >= n {
		if err := l.store.ShiftItems(right); err != nil {
			return errors.Wrapf(err, "ensure middle capacity %d at %d", n, split)
		}
		tracer().Debugf("middle capacity %d at %d: shifted %s in place", n, split, right)
		l.reg.content = Some(Extent{First: e.First, Last: e.Last + n})
		return nil
	}
	capacity := l.store.Capacity()
	newCapacity := l.newCapacity(required)
	ops := make([]storage.RangeOp, 0, 2)
	if split > e.First {
		ops = append(ops, storage.MoveRange(e.First, split-1, e.First))
	}
	ops = append(ops, right)
	if err := l.store.AddCapacityAndShiftItems(newCapacity-capacity, ops...); err != nil {
		return errors.Wrapf(err, "ensure middle capacity %d at %d", n, split)
	}
	tracer().Debugf("middle capacity %d at %d: grown %d -> %d with %v", n, split, capacity, newCapacity, ops)
	l.reg.content = Some(Extent{First: e.First, Last: e.Last + n})
	return nil
}

// Clone returns a deep copy of l, including storage and registry. The storage
// has to be storage.Cloneable.
func (l *Linear[T]) Clone() (*Linear[T], error) {
	c, ok := l.store.(storage.Cloneable[T])
	if !ok {
		return nil, errors.Newf("storage of type %T cannot be cloned", l.store)
	}
	store := c.CloneStorage()
	return &Linear[T]{
		store:  store,
		reg:    l.reg.Clone(store),
		growth: l.growth,
	}, nil
}

// ensureCapacity grows an empty storage to hold at least n items.
func (l *Linear[T]) ensureCapacity(n int) error {
	if n <= l.store.Capacity() {
		return nil
	}
	if err := l.grow(n); err != nil {
		return errors.Wrapf(err, "ensure capacity %d", n)
	}
	return nil
}

// grow adds capacity at the end of the storage. Every slot keeps its index.
func (l *Linear[T]) grow(required int) error {
	capacity := l.store.Capacity()
	newCapacity := l.newCapacity(required)
	tracer().Debugf("growing storage %d -> %d", capacity, newCapacity)
	if capacity == 0 {
		return l.store.AddCapacityAndShiftItems(newCapacity)
	}
	return l.store.AddCapacityAndShiftItems(newCapacity-capacity, storage.MoveRange(0, capacity-1, 0))
}

// requiredCapacity returns base+n, rejecting n if the sum is not representable.
func requiredCapacity(op string, n, base int) (int, error) {
	if n > math.MaxInt-base {
		e := storage.CapacityError(op, n)
		e.Issue = "requested capacity overflows int"
		return 0, e
	}
	return base + n, nil
}

func negativeIndex(op string, index int) *storage.Error {
	e := storage.IndexError(op, index, 0, -1)
	e.Issue = "index must be >= 0"
	return e
}

func (l *Linear[T]) newCapacity(required int) int {
	return max(l.growth(l.store.Capacity(), required), required)
}
