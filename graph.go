package calc

import (
	"io"
	"strconv"
	"strings"
)

// Dot renders the expression tree as a Graphviz graph description, suitable
// for piping to the dot tool. Each node becomes one statement declaring its
// label and one edge statement per child. Nodes are numbered in preorder,
// left child before right, so rendering the same expression always produces
// identical output.
func (e *Expr) Dot() string {
	var b strings.Builder
	b.WriteString("strict graph {\n")
	ids := make(map[*node]int)
	number(e.n, ids)
	emit(&b, e.n, ids)
	b.WriteString("}\n")
	return b.String()
}

// WriteDot writes the graph description produced by Dot to w.
func (e *Expr) WriteDot(w io.Writer) error {
	_, err := io.WriteString(w, e.Dot())
	return err
}

// number assigns dense preorder ids to the subtree rooted at n.
func number(n *node, ids map[*node]int) {
	ids[n] = len(ids)
	if n.left != nil {
		number(n.left, ids)
	}
	if n.right != nil {
		number(n.right, ids)
	}
}

// emit writes the declaration for n and the edges to its children, then
// recurses in the same preorder as number.
func emit(b *strings.Builder, n *node, ids map[*node]int) {
	id := strconv.Itoa(ids[n])
	b.WriteString("  " + id + ` [ label = "` + n.label() + `" ]` + "\n")
	if n.left != nil {
		b.WriteString("  " + id + " -- " + strconv.Itoa(ids[n.left]) + "\n")
	}
	if n.right != nil {
		b.WriteString("  " + id + " -- " + strconv.Itoa(ids[n.right]) + "\n")
	}
	if n.left != nil {
		emit(b, n.left, ids)
	}
	if n.right != nil {
		emit(b, n.right, ids)
	}
}
