package avl

import "iter"

// Tree is a height-balanced binary search tree ordered by a caller supplied
// comparison function.
//
// K is the key type, V the payload type (facades that store no payload use
// struct{}). Duplicate keys are admitted per insertion, not per tree, so the
// same engine serves unique and non-unique containers.
type Tree[K, V any] struct {
	cmp  func(a, b K) int
	root *node[K, V]
	size int
}

// pair is a detached key/value snapshot, used by Merge.
type pair[K, V any] struct {
	key   K
	value V
}

// cloneFrame is one pending unit of work for the iterative deep copy.
type cloneFrame[K, V any] struct {
	src  *node[K, V]
	dst  *node[K, V] // parent of the copy to create
	left bool        // attach as left child of dst
}

// New creates an empty tree ordered by cmp. cmp must define a strict total
// order over K: negative for a<b, zero for equal, positive for a>b.
func New[K, V any](cmp func(a, b K) int) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, ErrInvalidConfig
	}
	return &Tree[K, V]{cmp: cmp}, nil
}

// Len returns the number of stored elements.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the height of the tree, where 0 means empty and 1 means a
// single node. The balance factors guide the descent along a longest path,
// so this is O(log n).
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	h := 0
	for n := t.root; n != nil; h++ {
		if n.balance < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return h
}

// Min returns an iterator on the smallest key, or the end iterator for an
// empty tree.
func (t *Tree[K, V]) Min() Iterator[K, V] {
	return Iterator[K, V]{tree: t, n: t.root.min()}
}

// Max returns an iterator on the largest key, or the end iterator for an
// empty tree.
func (t *Tree[K, V]) Max() Iterator[K, V] {
	return Iterator[K, V]{tree: t, n: t.root.max()}
}

// End returns the end-of-sequence iterator of this tree.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: t}
}

// Clear releases every node and leaves the tree logically empty.
//
// Teardown is iterative post-order over the parent links; recursion depth
// does not track tree height, and every node is released exactly once.
func (t *Tree[K, V]) Clear() {
	n := t.root
	for n != nil {
		if n.left != nil {
			n = n.left
			continue
		}
		if n.right != nil {
			n = n.right
			continue
		}
		p := n.parent
		if p != nil {
			if p.left == n {
				p.left = nil
			} else {
				p.right = nil
			}
		}
		release(n)
		n = p
	}
	t.root = nil
	t.size = 0
}

// Clone returns a deep copy: structurally equal, sharing no nodes with the
// receiver. The copy is built with an explicit work list instead of recursion.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	clone := &Tree[K, V]{cmp: t.cmp, size: t.size}
	if t.root == nil {
		return clone
	}
	stack := []cloneFrame[K, V]{{src: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cp := newNode(f.src.key, f.src.value)
		cp.balance = f.src.balance
		cp.parent = f.dst
		switch {
		case f.dst == nil:
			clone.root = cp
		case f.left:
			f.dst.left = cp
		default:
			f.dst.right = cp
		}
		if f.src.left != nil {
			stack = append(stack, cloneFrame[K, V]{src: f.src.left, dst: cp, left: true})
		}
		if f.src.right != nil {
			stack = append(stack, cloneFrame[K, V]{src: f.src.right, dst: cp})
		}
	}
	return clone
}

// Move transfers the node graph to a new tree without copying any node. The
// receiver is left empty and remains usable. Iterators obtained before the
// move stay tied to the receiver and must not be used afterwards.
func (t *Tree[K, V]) Move() *Tree[K, V] {
	moved := &Tree[K, V]{cmp: t.cmp, root: t.root, size: t.size}
	t.root = nil
	t.size = 0
	return moved
}

// Merge moves elements of src into t where t's duplicate policy admits them.
// Elements the policy rejects stay in src; across both trees no element is
// lost or duplicated. Returns the number of elements moved.
func (t *Tree[K, V]) Merge(src *Tree[K, V], allowDup bool) int {
	if src == nil || src.root == nil || src == t {
		return 0
	}
	// Snapshot src first; erasing while walking would disturb the walk.
	pending := make([]pair[K, V], 0, src.size)
	for n := src.root.min(); n != nil; n = n.successor() {
		pending = append(pending, pair[K, V]{key: n.key, value: n.value})
	}
	moved := 0
	for _, e := range pending {
		if _, inserted := t.Insert(e.key, e.value, allowDup); inserted {
			n := src.lookup(e.key)
			assert(n != nil, "merge: element vanished from source tree")
			src.remove(n)
			moved++
		}
	}
	return moved
}

// All returns an in-order sequence of key/value pairs for use with range.
// The sequence is lazy and reflects the tree as it is walked; mutating the
// tree during the walk is a contract violation.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.root.min(); n != nil; n = n.successor() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// replaceChild rewires the link that leads from parent to old so that it
// leads to repl instead; a nil parent means old was the root.
func (t *Tree[K, V]) replaceChild(parent, old, repl *node[K, V]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
	if repl != nil {
		repl.parent = parent
	}
}
