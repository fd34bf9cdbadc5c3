package avl

import (
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes). Solid edges are owning child links, dashed
// edges the navigational parent back-references.
func (t *Tree[K, V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=box];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	for n := t.root.min(); n != nil; n = n.successor() {
		id := ids.alloc(n)
		label := fmt.Sprintf("%v\\n%+d", n.key, n.balance)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"];\n", id, label)
		if n.left != nil {
			edgelist += fmt.Sprintf("%d -> %d [label=L];\n", id, ids.alloc(n.left))
		}
		if n.right != nil {
			edgelist += fmt.Sprintf("%d -> %d [label=R];\n", id, ids.alloc(n.right))
		}
		if n.parent != nil {
			edgelist += fmt.Sprintf("%d -> %d [style=dashed];\n", id, ids.alloc(n.parent))
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
