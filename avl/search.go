package avl

// Find returns an iterator on an element equal to key, and whether one
// exists. Under duplicates the leftmost equal element is returned, so the
// result is deterministic and starts the equal run.
func (t *Tree[K, V]) Find(key K) (Iterator[K, V], bool) {
	n := t.lowerBound(key)
	if n == nil || t.cmp(n.key, key) != 0 {
		return Iterator[K, V]{tree: t}, false
	}
	return Iterator[K, V]{tree: t, n: n}, true
}

// LowerBound returns an iterator on the first element not less than key, or
// the end iterator if every element is smaller.
func (t *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{tree: t, n: t.lowerBound(key)}
}

// UpperBound returns an iterator on the first element greater than key, or
// the end iterator if no such element exists.
func (t *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	var candidate *node[K, V]
	n := t.root
	for n != nil {
		if t.cmp(n.key, key) <= 0 {
			n = n.right
		} else {
			candidate = n
			n = n.left
		}
	}
	return Iterator[K, V]{tree: t, n: candidate}
}

func (t *Tree[K, V]) lowerBound(key K) *node[K, V] {
	var candidate *node[K, V]
	n := t.root
	for n != nil {
		if t.cmp(n.key, key) < 0 {
			n = n.right
		} else {
			candidate = n
			n = n.left
		}
	}
	return candidate
}

// lookup returns some node with a key equal to key, or nil. Cheaper than
// Find when any member of an equal run will do.
func (t *Tree[K, V]) lookup(key K) *node[K, V] {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
