package avl

import "fmt"

// Erase removes the element the iterator denotes. An end iterator, an
// iterator of another tree, or an iterator whose node has already been
// erased is a contract violation and yields ErrInvalidIterator.
func (t *Tree[K, V]) Erase(it Iterator[K, V]) error {
	if it.tree != t {
		return fmt.Errorf("%w: iterator belongs to a different tree", ErrInvalidIterator)
	}
	if it.n == nil {
		return fmt.Errorf("%w: cannot erase the end iterator", ErrInvalidIterator)
	}
	if it.n.dead {
		return fmt.Errorf("%w: element already erased", ErrInvalidIterator)
	}
	t.remove(it.n)
	return nil
}

// remove takes n out of the tree and rebalances.
//
// A node with two children is not unlinked itself: its key and value are
// overwritten with those of its in-order successor (the leftmost node of the
// right subtree), and that successor, which has at most one child, is spliced
// out instead. Iterators that referenced the successor's node are thereby
// invalidated.
func (t *Tree[K, V]) remove(n *node[K, V]) {
	if n.left != nil && n.right != nil {
		s := n.right.min()
		n.key = s.key
		n.value = s.value
		n = s
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	p := n.parent
	shrunkLeft := p != nil && p.left == n
	t.replaceChild(p, n, child)
	release(n)
	t.size--
	t.retraceDelete(p, shrunkLeft)
}

// retraceDelete walks upward from the parent of the spliced-out node. At
// each step the subtree on one side of x has become one level shorter;
// unlike insertion the walk cannot stop after the first rotation, because a
// rotation here may shorten the rotated subtree and so shrink the ancestor
// in turn.
func (t *Tree[K, V]) retraceDelete(x *node[K, V], shrunkLeft bool) {
	for x != nil {
		g := x.parent
		nextShrunkLeft := g != nil && g.left == x
		if shrunkLeft {
			switch {
			case x.balance > 0: // +1 → +2, rebalance
				z := x.right
				b := z.balance
				var sub *node[K, V]
				if b < 0 {
					sub = t.rotateRightLeft(x, z)
				} else {
					sub = t.rotateLeft(x, z)
				}
				t.replaceChild(g, x, sub)
				if b == 0 {
					return // subtree height unchanged
				}
			case x.balance == 0:
				x.balance = 1
				return
			default:
				x.balance = 0
			}
		} else {
			switch {
			case x.balance < 0: // -1 → -2, rebalance
				z := x.left
				b := z.balance
				var sub *node[K, V]
				if b > 0 {
					sub = t.rotateLeftRight(x, z)
				} else {
					sub = t.rotateRight(x, z)
				}
				t.replaceChild(g, x, sub)
				if b == 0 {
					return
				}
			case x.balance == 0:
				x.balance = -1
				return
			default:
				x.balance = 0
			}
		}
		x = g
		shrunkLeft = nextShrunkLeft
	}
}
