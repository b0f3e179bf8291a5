package calc

import "strconv"

// TokenError is an error indicating a token which cannot begin a factor,
// i.e. anything other than a number, unary minus, or open parenthesis.
// It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the offending token, or the empty string if the
	// input ended where a factor was expected.
	Token string
}

func (err *TokenError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "expected number, -, or ( at end of input")
	}
	return errpos(err.Col, "expected number, -, or (, found "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open parenthesis which is never
// closed. It implements InputError.
type BracketError struct {
	// Col is the position of the token found where ) was required.
	Col int
	// Token is the text of that token, or the empty string if the input
	// ended instead.
	Token string
}

func (err *BracketError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "expected ), found "+strconv.Quote(err.Token))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating input remaining after a complete
// expression, e.g. the second number in "1 2". It implements InputError.
type TrailingTokenError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Token is the text of that token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected input after expression: "+strconv.Quote(err.Token))
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// NestingError is an error indicating an expression nested too deeply to
// parse. It implements InputError.
type NestingError struct {
	// Col is the position at which the parser gave up.
	Col int
}

func (err *NestingError) Error() string {
	return errpos(err.Col, "expression nested too deeply")
}

func (err *NestingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*NestingError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*DivisionError)(nil)
)
