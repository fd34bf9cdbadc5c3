package avl

// node is one element of the tree. The parent link is navigational only;
// ownership runs strictly parent → child.
type node[K, V any] struct {
	left    *node[K, V]
	right   *node[K, V]
	parent  *node[K, V]
	key     K
	value   V
	balance int8 // right height − left height, in -1..+1
	dead    bool // set when the node is released from its tree
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

// release severs a node from the graph and marks it dead, so that iterators
// still holding it can be detected. A node is released exactly once.
func release[K, V any](n *node[K, V]) {
	assert(!n.dead, "node released twice")
	n.left = nil
	n.right = nil
	n.parent = nil
	n.dead = true
}

// min returns the leftmost node of the subtree rooted at n.
func (n *node[K, V]) min() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
func (n *node[K, V]) max() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the next node in key order, or nil past the maximum.
// Climbing is by node identity, not by key, so it is stable under duplicates.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

// predecessor returns the previous node in key order, or nil before the minimum.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.max()
	}
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	return n.parent
}
