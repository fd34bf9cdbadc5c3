package avl

// Rotations restore the balance bound at a node whose factor has left the
// -1..+1 range. Each one is a fixed sequence of pointer relinks with no
// fallible call in between, so a mutation is never observable half-applied.
// The caller relinks the returned subtree root to the grandparent.

// rotateLeft handles the right-right case: x has balance +2, its right child
// z is not left-heavy.
func (t *Tree[K, V]) rotateLeft(x, z *node[K, V]) *node[K, V] {
	inner := z.left
	x.right = inner
	if inner != nil {
		inner.parent = x
	}
	z.left = x
	x.parent = z
	if z.balance == 0 { // only possible after a removal
		x.balance = 1
		z.balance = -1
	} else {
		x.balance = 0
		z.balance = 0
	}
	return z
}

// rotateRight handles the left-left case: x has balance -2, its left child
// z is not right-heavy.
func (t *Tree[K, V]) rotateRight(x, z *node[K, V]) *node[K, V] {
	inner := z.right
	x.left = inner
	if inner != nil {
		inner.parent = x
	}
	z.right = x
	x.parent = z
	if z.balance == 0 { // only possible after a removal
		x.balance = -1
		z.balance = 1
	} else {
		x.balance = 0
		z.balance = 0
	}
	return z
}

// rotateRightLeft handles the right-left case: x has balance +2 and its right
// child z is left-heavy. z's left child y becomes the subtree root.
func (t *Tree[K, V]) rotateRightLeft(x, z *node[K, V]) *node[K, V] {
	y := z.left
	outer := y.right
	z.left = outer
	if outer != nil {
		outer.parent = z
	}
	y.right = z
	z.parent = y
	inner := y.left
	x.right = inner
	if inner != nil {
		inner.parent = x
	}
	y.left = x
	x.parent = y
	switch {
	case y.balance > 0:
		x.balance = -1
		z.balance = 0
	case y.balance < 0:
		x.balance = 0
		z.balance = 1
	default:
		x.balance = 0
		z.balance = 0
	}
	y.balance = 0
	return y
}

// rotateLeftRight handles the left-right case: x has balance -2 and its left
// child z is right-heavy. z's right child y becomes the subtree root.
func (t *Tree[K, V]) rotateLeftRight(x, z *node[K, V]) *node[K, V] {
	y := z.right
	outer := y.left
	z.right = outer
	if outer != nil {
		outer.parent = z
	}
	y.left = z
	z.parent = y
	inner := y.right
	x.left = inner
	if inner != nil {
		inner.parent = x
	}
	y.right = x
	x.parent = y
	switch {
	case y.balance < 0:
		x.balance = 1
		z.balance = 0
	case y.balance > 0:
		x.balance = 0
		z.balance = -1
	default:
		x.balance = 0
		z.balance = 0
	}
	y.balance = 0
	return y
}
