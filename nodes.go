package calc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// val is the numeric value of a nodeNum.
	val float64
	// pos is the rune column of the token that produced the node.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// label is the node's text in rendered output: the operator glyph for
// operator nodes or the formatted value for leaves.
func (n *node) label() string {
	switch n.kind {
	case nodeNum:
		return strconv.FormatFloat(n.val, 'g', -1, 64)
	case nodeNeg:
		return "-"
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	default:
		panic("calc: invalid node kind " + n.kind.String())
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendition of the subtree to b.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.label())
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		n.left.fmt(b)
		b.WriteString(" " + n.label() + " ")
		n.right.fmt(b)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
