/*
Package linstore is the storage engine behind sequence- and matrix-like containers.

It consists of two packages:

  - storage: random-access buffers of items, which relocate ranges of items in place
    or while growing;
  - capacity: bookkeeping of the occupied range of a buffer, and the strategy deciding
    when a buffer has to grow, by how much, and how items are moved.

Container types insert items by first asking the capacity strategy for free slots at
the head, at the tail or at a split point in the middle, and then writing items into
these slots.

	engine, _ := linstore.New[string](16)
	_ = engine.Initialize(0, 2)           // content [0,2]
	_ = engine.EnsureMiddleCapacity(1, 1) // slot 1 is free now, content [0,3]
	_ = engine.Storage().ReplaceItem(1, "x")

The engine is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package linstore

import (
	"github.com/npillmayer/linstore/capacity"
	"github.com/npillmayer/linstore/storage"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linstore'
func tracer() tracing.Trace {
	return tracing.Select("linstore")
}

// Engine is a capacity strategy over an array storage.
type Engine[T any] = capacity.Linear[T]

// New creates an engine with an array storage of the given initial capacity and
// without content.
func New[T any](initialCapacity int, opts ...capacity.StrategyOption) (*Engine[T], error) {
	store, err := storage.NewArray[T](initialCapacity)
	if err != nil {
		return nil, err
	}
	reg := capacity.NewEmptyRegistry(store)
	engine, err := capacity.NewLinear[T](store, reg, opts...)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("new engine with capacity %d", initialCapacity)
	return engine, nil
}

// FromItems creates an engine holding items as its content, occupying the whole
// storage capacity.
func FromItems[T any](items []T, opts ...capacity.StrategyOption) (*Engine[T], error) {
	store := storage.NewArrayFrom(items)
	reg, err := capacity.NewRegistry(store, 0, len(items)-1)
	if err != nil {
		return nil, err
	}
	return capacity.NewLinear[T](store, reg, opts...)
}
