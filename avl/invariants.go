package avl

import "fmt"

// Check validates the structural invariants of the tree: search order,
// balance bounds, parent back-references and the element count.
//
// The checker is intentionally strict and meant for tests; it visits every
// node.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cmp == nil {
		return fmt.Errorf("%w: nil comparison function", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrInvalidConfig, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvalidConfig)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d but %d live nodes", ErrInvalidConfig, t.size, count)
	}
	var prev *node[K, V]
	for n := t.root.min(); n != nil; n = n.successor() {
		if prev != nil && t.cmp(prev.key, n.key) > 0 {
			return fmt.Errorf("%w: in-order traversal not sorted", ErrInvalidConfig)
		}
		prev = n
	}
	return nil
}

func (t *Tree[K, V]) checkNode(n *node[K, V]) (count int, height int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if n.dead {
		return 0, 0, fmt.Errorf("%w: released node still linked", ErrInvalidConfig)
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("%w: left child has inconsistent parent link", ErrInvalidConfig)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("%w: right child has inconsistent parent link", ErrInvalidConfig)
	}
	lc, lh, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if rh-lh != int(n.balance) {
		return 0, 0, fmt.Errorf("%w: stored balance %d, actual %d", ErrInvalidConfig, n.balance, rh-lh)
	}
	if n.balance < -1 || n.balance > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d out of bounds", ErrInvalidConfig, n.balance)
	}
	height = lh
	if rh > height {
		height = rh
	}
	return lc + rc + 1, height + 1, nil
}
