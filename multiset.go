package containers

import (
	"cmp"
	"io"
	"iter"

	"github.com/Azenizzka/cpp-containers/avl"
)

// Multiset is an ordered collection of keys in which equal keys may occur
// more than once. Equal keys are kept contiguously, in insertion order.
//
// A Multiset must be created with NewMultiset, NewMultisetOf or
// NewMultisetFunc; the zero value has no ordering and is not usable.
type Multiset[K any] struct {
	tree *avl.Tree[K, struct{}]
}

// NewMultiset creates an empty multiset ordered by the standard Go ordering
// of K.
func NewMultiset[K cmp.Ordered]() *Multiset[K] {
	return NewMultisetFunc[K](cmp.Compare[K])
}

// NewMultisetOf creates a multiset holding the given keys, duplicates
// included, ordered by the standard Go ordering of K.
func NewMultisetOf[K cmp.Ordered](keys ...K) *Multiset[K] {
	s := NewMultiset[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// NewMultisetFunc creates an empty multiset ordered by an arbitrary
// comparison function.
func NewMultisetFunc[K any](cmp func(a, b K) int) *Multiset[K] {
	tree, err := avl.New[K, struct{}](cmp)
	assert(err == nil, "NewMultisetFunc requires a non-nil comparison function")
	return &Multiset[K]{tree: tree}
}

// Insert adds key to the multiset. Insertion always succeeds; an equal key
// already stored is kept and the new key joins its run as the last member.
func (s *Multiset[K]) Insert(key K) {
	_, inserted := s.tree.Insert(key, struct{}{}, true)
	assert(inserted, "multiset insert must always succeed")
}

// Contains reports whether at least one key equal to key is stored.
func (s *Multiset[K]) Contains(key K) bool {
	_, ok := s.tree.Find(key)
	return ok
}

// Count returns the number of stored keys equal to key, i.e. the length of
// the equal run between LowerBound and UpperBound.
func (s *Multiset[K]) Count(key K) int {
	count := 0
	hi := s.tree.UpperBound(key)
	for it := s.tree.LowerBound(key); it != hi; count++ {
		next, err := it.Next()
		assert(err == nil, "Count: equal run ended before its upper bound")
		it = next
	}
	return count
}

// Find returns an iterator on the first element of the equal run of key, and
// whether the run is non-empty.
func (s *Multiset[K]) Find(key K) (SetIterator[K], bool) {
	return s.tree.Find(key)
}

// RemoveOne erases a single element equal to key, reporting whether one was
// stored.
func (s *Multiset[K]) RemoveOne(key K) bool {
	it, ok := s.tree.Find(key)
	if !ok {
		return false
	}
	err := s.tree.Erase(it)
	assert(err == nil, "RemoveOne: erase of freshly found element failed")
	return true
}

// RemoveAll erases every element equal to key and returns how many there
// were.
func (s *Multiset[K]) RemoveAll(key K) int {
	removed := 0
	for s.RemoveOne(key) {
		removed++
	}
	return removed
}

// Erase removes the element the iterator denotes. End, stale and foreign
// iterators yield avl.ErrInvalidIterator.
func (s *Multiset[K]) Erase(it SetIterator[K]) error {
	return s.tree.Erase(it)
}

// Len returns the number of stored keys, duplicates counted.
func (s *Multiset[K]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the multiset has no keys.
func (s *Multiset[K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Clear removes all keys.
func (s *Multiset[K]) Clear() {
	s.tree.Clear()
}

// Min returns the smallest key, or false for an empty multiset.
func (s *Multiset[K]) Min() (K, bool) {
	k, err := s.tree.Min().Key()
	return k, err == nil
}

// Max returns the largest key, or false for an empty multiset.
func (s *Multiset[K]) Max() (K, bool) {
	k, err := s.tree.Max().Key()
	return k, err == nil
}

// First returns an iterator on the smallest key (the end iterator for an
// empty multiset).
func (s *Multiset[K]) First() SetIterator[K] {
	return s.tree.Min()
}

// Clone returns a deep copy sharing no state with s.
func (s *Multiset[K]) Clone() *Multiset[K] {
	T().Debugf("cloning multiset of %d keys", s.Len())
	return &Multiset[K]{tree: s.tree.Clone()}
}

// Move transfers the contents to a new multiset without copying elements,
// leaving s empty but usable.
func (s *Multiset[K]) Move() *Multiset[K] {
	return &Multiset[K]{tree: s.tree.Move()}
}

// Merge moves every key of other into s; since duplicates are allowed,
// other is left empty. Returns the number of keys moved.
func (s *Multiset[K]) Merge(other *Multiset[K]) int {
	moved := s.tree.Merge(other.tree, true)
	T().Debugf("merged %d keys, %d remain in source", moved, other.Len())
	return moved
}

// All returns an ascending sequence of the keys, equal runs contiguous and
// in insertion order, for use with range.
func (s *Multiset[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Check validates the structural invariants of the underlying tree.
func (s *Multiset[K]) Check() error {
	return s.tree.Check()
}

// Dot outputs the underlying node graph in Graphviz DOT format (for
// debugging purposes).
func (s *Multiset[K]) Dot(w io.Writer) {
	s.tree.Dot(w)
}
