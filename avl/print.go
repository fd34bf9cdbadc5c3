package avl

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// to control the print routine
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

var (
	keyColor      = color.New(color.FgBlue)
	balancedColor = color.New(color.FgGreen)
	leaningColor  = color.New(color.FgRed)
)

// Fprint writes an ASCII graphic of the tree to w, keys in blue and balance
// factors green when 0, red otherwise. Returns the maximum depth of the tree.
func (t *Tree[K, V]) Fprint(w io.Writer) int {
	return printNode(w, t.root, "", atRoot)
}

func printNode[K, V any](w io.Writer, n *node[K, V], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.right != nil {
		pad := "       "
		if br == atLeft {
			pad = "|      "
		}
		rd = printNode(w, n.right, prefix+pad, atRight)
	}
	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	bc := balancedColor
	if n.balance != 0 {
		bc = leaningColor
	}
	fmt.Fprintf(w, "%s %s\n", keyColor.Sprintf("%v", n.key), bc.Sprintf("%+d", n.balance))
	if n.left != nil {
		pad := "       "
		if br == atRight {
			pad = "|      "
		}
		ld = printNode(w, n.left, prefix+pad, atLeft)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
