// Package sortedmap adapts emirpasic/gods' red-black tree map to a generic,
// comparator-driven map of NodeID to arbitrary values, giving the core state
// machine a deterministic sorted-iteration order over per-peer state. Kept
// side-effect free: every method is a thin, type-asserting pass-through to
// the underlying treemap.Map.
package sortedmap

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Map is a sorted map keyed by K, ordered by the comparator supplied to New.
type Map[K comparable, V any] struct {
	t *treemap.Map
}

// New returns an empty Map ordered by cmp(a, b): negative if a < b, zero if
// equal, positive if a > b.
func New[K comparable, V any](cmp func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{
		t: treemap.NewWith(func(a, b interface{}) int {
			return cmp(a.(K), b.(K))
		}),
	}
}

// Put stores v under k, overwriting any previous value.
func (m *Map[K, V]) Put(k K, v V) {
	m.t.Put(k, v)
}

// Get returns the value stored under k, or the zero value and false.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, found := m.t.Get(k)
	if !found {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Contains reports whether k has an entry.
func (m *Map[K, V]) Contains(k K) bool {
	_, found := m.t.Get(k)
	return found
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.t.Size()
}

// Clear removes all entries, keeping the comparator.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

// Each calls f for every entry in ascending key order.
func (m *Map[K, V]) Each(f func(K, V)) {
	it := m.t.Iterator()
	for it.Next() {
		f(it.Key().(K), it.Value().(V))
	}
}

// Count returns the number of entries for which pred holds.
func (m *Map[K, V]) Count(pred func(K, V) bool) int {
	n := 0
	m.Each(func(k K, v V) {
		if pred(k, v) {
			n++
		}
	})
	return n
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	raw := m.t.Keys()
	out := make([]K, len(raw))
	for i, k := range raw {
		out[i] = k.(K)
	}
	return out
}
