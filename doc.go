// Package calc parses and evaluates arithmetic expressions.
//
// An expression is built from decimal numbers, the binary operators
// + - * /, unary minus, and parentheses. Parsing follows the usual
// precedence rules: * and / bind tighter than + and -, unary minus binds
// tighter still, and the binary operators are left-associative, so
// "8 - 4 - 2" is "(8 - 4) - 2".
//
// Parse produces an immutable syntax tree which can be evaluated to a
// float64 or rendered as a Graphviz graph description for visualization.
//
package calc
