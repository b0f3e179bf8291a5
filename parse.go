package calc

import (
	"io"
	"strconv"
	"strings"
)

// Expression = Term { ('+' | '-') Term }
// Term       = Factor { ('*' | '/') Factor }
// Factor     = '-' Factor | Primary
// Primary    = num | '(' Expression ')'

// Expr is a parsed expression that can be evaluated or rendered.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// maxDepth is the recursion limit for the parser. The grammar is parsed on
// the call stack, so a pathological input like a long run of open
// parentheses must fail with a NestingError before the stack runs out.
const maxDepth = 512

// Parse parses an expression from src. If the input is not a single complete
// expression, the returned error is an InputError describing the first
// offending token.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	n, err := parseExpr(scan, 0)
	if err != nil {
		return nil, err
	}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, &TrailingTokenError{Col: tok.pos, Token: tok.text}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseExpr parses a sequence of terms joined by + or -, folding them
// left-associatively so that 1-2-3 parses as (1-2)-3. The token that ends
// the sequence is pushed back for the caller.
func parseExpr(scan *lexer, depth int) (*node, error) {
	n, err := parseTerm(scan, depth)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseTerm(scan, depth)
		if err != nil {
			return nil, err
		}
		kind := nodeAdd
		if tok.text == "-" {
			kind = nodeSub
		}
		n = &node{kind: kind, pos: tok.pos, left: n, right: rhs}
	}
}

// parseTerm parses a sequence of factors joined by * or /, with the same
// left-associative fold as parseExpr.
func parseTerm(scan *lexer, depth int) (*node, error) {
	n, err := parseFactor(scan, depth)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseFactor(scan, depth)
		if err != nil {
			return nil, err
		}
		kind := nodeMul
		if tok.text == "/" {
			kind = nodeDiv
		}
		n = &node{kind: kind, pos: tok.pos, left: n, right: rhs}
	}
}

// parseFactor parses an optionally negated primary. Unary minus binds
// tighter than * and /, so -2*3 parses as (-2)*3.
func parseFactor(scan *lexer, depth int) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if depth >= maxDepth {
		return nil, &NestingError{Col: tok.pos}
	}
	if tok.kind == tokenOp && tok.text == "-" {
		operand, err := parseFactor(scan, depth+1)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, pos: tok.pos, left: operand}, nil
	}
	scan.push(tok)
	return parsePrimary(scan, depth)
}

// parsePrimary parses a number or a parenthesized subexpression.
func parsePrimary(scan *lexer, depth int) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// scanNum accepted the literal, so this is unreachable short of
			// a lexer bug, but report it as the scan error it would be.
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		return &node{kind: nodeNum, val: v, pos: tok.pos}, nil
	case tokenOpen:
		n, err := parseExpr(scan, depth+1)
		if err != nil {
			return nil, err
		}
		end, err := scan.next()
		if err != nil {
			return nil, err
		}
		if end.kind != tokenClose {
			return nil, &BracketError{Col: end.pos, Token: end.text}
		}
		return n, nil
	case tokenEOF:
		return nil, &TokenError{Col: tok.pos}
	default:
		return nil, &TokenError{Col: tok.pos, Token: tok.text}
	}
}

// String creates a fully parenthesized string representation of the parsed
// expression.
func (e *Expr) String() string {
	return e.n.String()
}
