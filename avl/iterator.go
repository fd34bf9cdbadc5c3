package avl

import "fmt"

// Iterator is a cursor over the tree, producing elements in ascending key
// order. It holds nothing but the node it denotes, so advancing is a pure
// function of the current tree shape and stays correct across rebalancing.
//
// An iterator with a nil node denotes end-of-sequence. Iterators are value
// types and compare with ==; two iterators are equal exactly when they denote
// the same node (or both the end) of the same tree.
//
// An iterator is valid from its creation until the node it denotes is erased
// or its tree is cleared. Using it afterwards yields ErrInvalidIterator.
type Iterator[K, V any] struct {
	tree *Tree[K, V]
	n    *node[K, V]
}

// AtEnd reports whether the iterator denotes end-of-sequence.
func (it Iterator[K, V]) AtEnd() bool {
	return it.n == nil
}

func (it Iterator[K, V]) check() error {
	if it.tree == nil {
		return fmt.Errorf("%w: zero-value iterator", ErrInvalidIterator)
	}
	if it.n != nil && it.n.dead {
		return fmt.Errorf("%w: element has been erased", ErrInvalidIterator)
	}
	return nil
}

// Key returns the key of the denoted element.
func (it Iterator[K, V]) Key() (K, error) {
	var zero K
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.n == nil {
		return zero, ErrIteratorAtEnd
	}
	return it.n.key, nil
}

// Value returns the value of the denoted element.
func (it Iterator[K, V]) Value() (V, error) {
	var zero V
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.n == nil {
		return zero, ErrIteratorAtEnd
	}
	return it.n.value, nil
}

// Ref returns a pointer to the live value of the denoted element. The
// pointer stays valid as long as the iterator does.
func (it Iterator[K, V]) Ref() (*V, error) {
	if err := it.check(); err != nil {
		return nil, err
	}
	if it.n == nil {
		return nil, ErrIteratorAtEnd
	}
	return &it.n.value, nil
}

// Next returns an iterator on the in-order successor, or the end iterator
// when advancing from the maximum. Advancing the end iterator is a contract
// violation.
func (it Iterator[K, V]) Next() (Iterator[K, V], error) {
	if err := it.check(); err != nil {
		return it, err
	}
	if it.n == nil {
		return it, fmt.Errorf("%w: cannot advance the end iterator", ErrInvalidIterator)
	}
	return Iterator[K, V]{tree: it.tree, n: it.n.successor()}, nil
}

// Prev returns an iterator on the in-order predecessor. Retreating from the
// end iterator yields the maximum; retreating from the minimum yields the
// end iterator.
func (it Iterator[K, V]) Prev() (Iterator[K, V], error) {
	if err := it.check(); err != nil {
		return it, err
	}
	if it.n == nil {
		return it.tree.Max(), nil
	}
	return Iterator[K, V]{tree: it.tree, n: it.n.predecessor()}, nil
}
