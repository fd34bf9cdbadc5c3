package avl

// Insert adds key (with its value) to the tree. If an equal key is already
// stored and allowDup is false, nothing changes and the returned iterator
// denotes the blocking element with inserted == false. With allowDup true an
// equal key is attached as the rightmost member of its run, so duplicates
// traverse in insertion order.
//
// The new node is fully constructed before any link of the tree is touched;
// a comparison failure therefore leaves the tree exactly as it was.
func (t *Tree[K, V]) Insert(key K, value V, allowDup bool) (Iterator[K, V], bool) {
	var parent *node[K, V]
	goLeft := false
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		if c == 0 && !allowDup {
			return Iterator[K, V]{tree: t, n: n}, false
		}
		parent = n
		goLeft = c < 0
		if goLeft {
			n = n.left
		} else {
			n = n.right
		}
	}
	fresh := newNode(key, value)
	fresh.parent = parent
	switch {
	case parent == nil:
		t.root = fresh
	case goLeft:
		parent.left = fresh
	default:
		parent.right = fresh
	}
	t.size++
	t.retraceInsert(fresh)
	return Iterator[K, V]{tree: t, n: fresh}, true
}

// retraceInsert walks from the freshly attached leaf back towards the root,
// updating balance factors. The walk stops at the first ancestor whose height
// did not grow; at most one (single or double) rotation is needed, after
// which the subtree has its pre-insertion height again.
func (t *Tree[K, V]) retraceInsert(z *node[K, V]) {
	for x := z.parent; x != nil; x = z.parent {
		g := x.parent
		var sub *node[K, V]
		if z == x.right {
			switch {
			case x.balance > 0: // +1 → +2, rebalance
				if z.balance < 0 {
					sub = t.rotateRightLeft(x, z)
				} else {
					sub = t.rotateLeft(x, z)
				}
			case x.balance < 0:
				x.balance = 0
				return
			default:
				x.balance = 1
				z = x
				continue
			}
		} else {
			switch {
			case x.balance < 0: // -1 → -2, rebalance
				if z.balance > 0 {
					sub = t.rotateLeftRight(x, z)
				} else {
					sub = t.rotateRight(x, z)
				}
			case x.balance > 0:
				x.balance = 0
				return
			default:
				x.balance = -1
				z = x
				continue
			}
		}
		t.replaceChild(g, x, sub)
		return
	}
}
