package containers

import (
	"cmp"
	"io"
	"iter"

	"github.com/Azenizzka/cpp-containers/avl"
)

// SetIterator is a cursor over a Set, yielding keys in ascending order.
type SetIterator[K any] = avl.Iterator[K, struct{}]

// Set is an ordered collection of unique keys.
//
// A Set must be created with NewSet, NewSetOf or NewSetFunc; the zero value
// has no ordering and is not usable.
type Set[K any] struct {
	tree *avl.Tree[K, struct{}]
}

// NewSet creates an empty set ordered by the standard Go ordering of K.
func NewSet[K cmp.Ordered]() *Set[K] {
	return NewSetFunc[K](cmp.Compare[K])
}

// NewSetOf creates a set holding the given keys, ordered by the standard Go
// ordering of K. Duplicates among the arguments are dropped.
func NewSetOf[K cmp.Ordered](keys ...K) *Set[K] {
	s := NewSet[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// NewSetFunc creates an empty set ordered by an arbitrary comparison
// function (negative for a<b, zero for equal, positive for a>b).
func NewSetFunc[K any](cmp func(a, b K) int) *Set[K] {
	tree, err := avl.New[K, struct{}](cmp)
	assert(err == nil, "NewSetFunc requires a non-nil comparison function")
	return &Set[K]{tree: tree}
}

// Insert adds key to the set. It reports false, changing nothing, if an
// equal key is already stored.
func (s *Set[K]) Insert(key K) bool {
	_, inserted := s.tree.Insert(key, struct{}{}, false)
	return inserted
}

// Contains reports whether key is stored.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.tree.Find(key)
	return ok
}

// Find returns an iterator on the element equal to key, and whether one
// exists.
func (s *Set[K]) Find(key K) (SetIterator[K], bool) {
	return s.tree.Find(key)
}

// Remove erases the element equal to key, reporting whether one was stored.
func (s *Set[K]) Remove(key K) bool {
	it, ok := s.tree.Find(key)
	if !ok {
		return false
	}
	err := s.tree.Erase(it)
	assert(err == nil, "Remove: erase of freshly found element failed")
	return true
}

// Erase removes the element the iterator denotes. End, stale and foreign
// iterators yield avl.ErrInvalidIterator.
func (s *Set[K]) Erase(it SetIterator[K]) error {
	return s.tree.Erase(it)
}

// Len returns the number of stored keys.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the set has no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Clear removes all keys.
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Min returns the smallest key, or false for an empty set.
func (s *Set[K]) Min() (K, bool) {
	k, err := s.tree.Min().Key()
	return k, err == nil
}

// Max returns the largest key, or false for an empty set.
func (s *Set[K]) Max() (K, bool) {
	k, err := s.tree.Max().Key()
	return k, err == nil
}

// First returns an iterator on the smallest key (the end iterator for an
// empty set).
func (s *Set[K]) First() SetIterator[K] {
	return s.tree.Min()
}

// Last returns an iterator on the largest key (the end iterator for an
// empty set).
func (s *Set[K]) Last() SetIterator[K] {
	return s.tree.Max()
}

// Clone returns a deep copy sharing no state with s; mutating one leaves the
// other untouched.
func (s *Set[K]) Clone() *Set[K] {
	T().Debugf("cloning set of %d keys", s.Len())
	return &Set[K]{tree: s.tree.Clone()}
}

// Move transfers the contents to a new set without copying elements, leaving
// s empty but usable.
func (s *Set[K]) Move() *Set[K] {
	return &Set[K]{tree: s.tree.Move()}
}

// Merge moves every key of other not already present into s; keys blocked by
// uniqueness stay in other. Returns the number of keys moved.
func (s *Set[K]) Merge(other *Set[K]) int {
	moved := s.tree.Merge(other.tree, false)
	T().Debugf("merged %d keys, %d remain in source", moved, other.Len())
	return moved
}

// All returns an ascending sequence of the keys for use with range.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Check validates the structural invariants of the underlying tree.
func (s *Set[K]) Check() error {
	return s.tree.Check()
}

// Dot outputs the underlying node graph in Graphviz DOT format (for
// debugging purposes).
func (s *Set[K]) Dot(w io.Writer) {
	s.tree.Dot(w)
}
