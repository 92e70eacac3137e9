/*
Package lixtest provides fixtures for tests of linear storage.

Storage layouts are written as strings, one character per slot, with '_' denoting a
free slot. Layout "__abc" is a storage of capacity 5 with content [2,4].
*/
package lixtest

import (
	"strings"
	"testing"

	"github.com/npillmayer/linstore/capacity"
	"github.com/npillmayer/linstore/storage"
)

// Free is the character for a free slot in a layout string.
const Free = '_'

// Layout creates an array storage and a registry from a layout string.
// Content spans from the first to the last non-free slot; free slots in between
// are content as well.
func Layout(t testing.TB, layout string) (*storage.Array[string], *capacity.Registry) {
	t.Helper()
	items := make([]string, len(layout))
	first, last := -1, -2
	for i, ch := range layout {
		if ch == Free {
			continue
		}
		items[i] = string(ch)
		if first < 0 {
			first = i
		}
		last = i
	}
	store := storage.NewArrayFrom(items)
	if first < 0 {
		return store, capacity.NewEmptyRegistry(store)
	}
	reg, err := capacity.NewRegistry(store, first, last)
	if err != nil {
		t.Fatalf("cannot create registry for layout %q: %v", layout, err)
	}
	return store, reg
}

// Strategy creates a capacity strategy for a layout string.
func Strategy(t testing.TB, layout string, opts ...capacity.StrategyOption) (*capacity.Linear[string], *storage.Array[string]) {
	t.Helper()
	store, reg := Layout(t, layout)
	strategy, err := capacity.NewLinear[string](store, reg, opts...)
	if err != nil {
		t.Fatalf("cannot create strategy for layout %q: %v", layout, err)
	}
	return strategy, store
}

// Dump renders a storage as a layout string. Zero-valued slots are rendered as free.
func Dump(store storage.Linear[string]) string {
	var sb strings.Builder
	for i := 0; i < store.Capacity(); i++ {
		item, _ := store.Item(i)
		if item == "" {
			sb.WriteRune(Free)
			continue
		}
		sb.WriteString(item)
	}
	return sb.String()
}

// Read returns the items [from,to] of a storage, concatenated.
func Read(t testing.TB, store storage.Linear[string], from, to int) string {
	t.Helper()
	var sb strings.Builder
	for i := from; i <= to; i++ {
		item, err := store.Item(i)
		if err != nil {
			t.Fatalf("cannot read item %d: %v", i, err)
		}
		sb.WriteString(item)
	}
	return sb.String()
}
