package containers

import (
	"cmp"
	"io"
	"iter"

	"github.com/Azenizzka/cpp-containers/avl"
)

// MapIterator is a cursor over a Map, yielding entries in ascending key
// order.
type MapIterator[K, V any] = avl.Iterator[K, V]

// MapEntry is one key/value pair of a Map, used for bulk construction.
type MapEntry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered collection of key/value pairs with unique keys.
//
// A Map must be created with NewMap, NewMapOf or NewMapFunc; the zero value
// has no ordering and is not usable.
type Map[K, V any] struct {
	tree *avl.Tree[K, V]
}

// NewMap creates an empty map ordered by the standard Go ordering of K.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return NewMapFunc[K, V](cmp.Compare[K])
}

// NewMapOf creates a map holding the given entries, ordered by the standard
// Go ordering of K. A later entry with a duplicate key is dropped.
func NewMapOf[K cmp.Ordered, V any](entries ...MapEntry[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
	return m
}

// NewMapFunc creates an empty map ordered by an arbitrary comparison
// function over K.
func NewMapFunc[K, V any](cmp func(a, b K) int) *Map[K, V] {
	tree, err := avl.New[K, V](cmp)
	assert(err == nil, "NewMapFunc requires a non-nil comparison function")
	return &Map[K, V]{tree: tree}
}

// Insert stores the pair (key, value). It reports false, changing nothing,
// if key is already present.
func (m *Map[K, V]) Insert(key K, value V) bool {
	_, inserted := m.tree.Insert(key, value, false)
	return inserted
}

// InsertOrAssign stores the pair (key, value), overwriting the value of an
// already present key. Reports whether a new element was inserted (false
// means an existing value was overwritten).
func (m *Map[K, V]) InsertOrAssign(key K, value V) bool {
	it, inserted := m.tree.Insert(key, value, false)
	if !inserted {
		ref, err := it.Ref()
		assert(err == nil, "InsertOrAssign: blocking element not dereferenceable")
		*ref = value
	}
	return inserted
}

// Entry returns a pointer to the value stored under key, inserting a
// zero-valued entry first if key is absent. The pointer refers to the live
// value inside the map and stays valid until the entry is erased.
func (m *Map[K, V]) Entry(key K) *V {
	var zero V
	it, _ := m.tree.Insert(key, zero, false)
	ref, err := it.Ref()
	assert(err == nil, "Entry: element not dereferenceable")
	return ref
}

// Get returns the value stored under key, and whether key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it, ok := m.tree.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	v, err := it.Value()
	assert(err == nil, "Get: found element not dereferenceable")
	return v, true
}

// At returns the value stored under key, or ErrKeyNotFound. Unlike Entry it
// never inserts.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, ErrKeyNotFound
	}
	return v, nil
}

// Find returns an iterator on the entry with the given key, and whether one
// exists.
func (m *Map[K, V]) Find(key K) (MapIterator[K, V], bool) {
	return m.tree.Find(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.tree.Find(key)
	return ok
}

// Remove erases the entry with the given key, reporting whether one was
// present.
func (m *Map[K, V]) Remove(key K) bool {
	it, ok := m.tree.Find(key)
	if !ok {
		return false
	}
	err := m.tree.Erase(it)
	assert(err == nil, "Remove: erase of freshly found entry failed")
	return true
}

// Erase removes the entry the iterator denotes. End, stale and foreign
// iterators yield avl.ErrInvalidIterator.
func (m *Map[K, V]) Erase(it MapIterator[K, V]) error {
	return m.tree.Erase(it)
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// First returns an iterator on the entry with the smallest key (the end
// iterator for an empty map).
func (m *Map[K, V]) First() MapIterator[K, V] {
	return m.tree.Min()
}

// Last returns an iterator on the entry with the largest key (the end
// iterator for an empty map).
func (m *Map[K, V]) Last() MapIterator[K, V] {
	return m.tree.Max()
}

// Clone returns a deep copy sharing no state with m; mutating one leaves the
// other untouched.
func (m *Map[K, V]) Clone() *Map[K, V] {
	T().Debugf("cloning map of %d entries", m.Len())
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Move transfers the contents to a new map without copying entries, leaving
// m empty but usable.
func (m *Map[K, V]) Move() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Move()}
}

// Merge moves every entry of other whose key is not yet present into m;
// entries blocked by uniqueness stay in other. Returns the number of entries
// moved.
func (m *Map[K, V]) Merge(other *Map[K, V]) int {
	moved := m.tree.Merge(other.tree, false)
	T().Debugf("merged %d entries, %d remain in source", moved, other.Len())
	return moved
}

// All returns an ascending sequence of key/value pairs for use with range.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Keys returns an ascending sequence of the keys for use with range.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Check validates the structural invariants of the underlying tree.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// Dot outputs the underlying node graph in Graphviz DOT format (for
// debugging purposes).
func (m *Map[K, V]) Dot(w io.Writer) {
	m.tree.Dot(w)
}
