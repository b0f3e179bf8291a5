package calc

// Eval evaluates the expression. The only possible error is a DivisionError,
// reported when the right operand of a division evaluates to exactly zero;
// every other arithmetic follows float64 semantics, so overflow saturates to
// an infinity rather than failing.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	e, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// eval computes the value of the subtree rooted at n.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeAdd:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		if r == 0 {
			return 0, &DivisionError{Col: n.pos}
		}
		return l / r, nil
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// operands evaluates both children of a binary node.
func (n *node) operands() (l, r float64, err error) {
	l, err = n.left.eval()
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// DivisionError is an error indicating a division whose right operand
// evaluated to zero. It implements InputError.
type DivisionError struct {
	// Col is the position of the / operator.
	Col int
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}
