package avl

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrInvalidIterator signals use of an iterator whose node has been
	// erased, or that belongs to a different tree.
	ErrInvalidIterator = errors.New("avl: invalid iterator")
	// ErrIteratorAtEnd signals dereferencing the end-of-sequence iterator.
	ErrIteratorAtEnd = errors.New("avl: iterator at end of sequence")
)
