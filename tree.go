package calc

// Node is a detached, exported copy of a syntax tree node, for debugging and
// programmatic inspection of parse results. Kind is the operator glyph for
// operator nodes or "num" for leaves; Value is meaningful only for leaves.
type Node struct {
	Kind  string
	Value float64
	Left  *Node
	Right *Node
}

// Tree returns a copy of the expression's syntax tree. Modifying the copy
// has no effect on the expression.
func (e *Expr) Tree() *Node {
	return e.n.tree()
}

func (n *node) tree() *Node {
	if n == nil {
		return nil
	}
	t := &Node{Left: n.left.tree(), Right: n.right.tree()}
	if n.kind == nodeNum {
		t.Kind = "num"
		t.Value = n.val
	} else {
		t.Kind = n.label()
	}
	return t
}
