/*
Package avl provides a height-balanced binary search tree with parent links,
the shared engine behind the ordered containers in the root package.

The tree is generic over key and value types and is ordered by a caller
supplied comparison function. Keys may repeat: the duplicate policy is not a
property of the tree but of each insertion (`allowDup`), which lets one engine
back a unique set, a multiset and a map. Equal keys are always placed as the
rightmost member of their run, so repeated keys traverse in insertion order.

Parent links exist for navigation only; ownership of nodes flows strictly from
parent to child. They make iteration independent of tree shape: an Iterator
walks successor/predecessor chains directly on the node graph and never caches
a traversal.

Balancing follows the classic AVL scheme: every node carries a balance factor
(right height minus left height, kept in -1..+1), and after every insertion or
removal the path from the mutation point back to the root is retraced, with a
single or double rotation applied where the bound is exceeded. Rotations are
plain pointer relinks with no fallible call in between, so a failing comparison
can never leave the tree half-rotated.

The base algorithm was described by Niklaus Wirth in
Algorithms + Data Structures = Programs.

A tree is not thread safe; either confine it to a single goroutine or guard it
with a mutex.
*/
package avl

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
