package eval

import (
	"strconv"

	"nickandperla.net/memcalc/internal/scanner"
)

// UnexpectedTokenError indicates a token the grammar cannot use at its
// position, e.g. an operator or closing paren where a primary expression was
// expected.
type UnexpectedTokenError struct {
	// Col is the rune column of the token.
	Col int
	// Text is the token that was not understood.
	Text string
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Text))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// UnexpectedEOFError indicates input that ends mid-expression.
type UnexpectedEOFError struct {
	// Col is the rune column just past the last token.
	Col int
}

func (err *UnexpectedEOFError) Error() string {
	return errpos(err.Col, "unexpected end of input")
}

func (err *UnexpectedEOFError) Pos() int {
	return err.Col
}

// UnbalancedParenError indicates an opened group that never finds its
// matching close paren.
type UnbalancedParenError struct {
	// Col is the rune column of the open paren.
	Col int
}

func (err *UnbalancedParenError) Error() string {
	return errpos(err.Col, "open paren with no close paren")
}

func (err *UnbalancedParenError) Pos() int {
	return err.Col
}

// TrailingTokenError indicates leftover tokens after a complete expression.
// It is distinct from UnexpectedTokenError because the expression up to the
// offending token reduced successfully.
type TrailingTokenError struct {
	// Col is the rune column of the first leftover token.
	Col int
	// Text is the first leftover token.
	Text string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "trailing token "+strconv.Quote(err.Text)+" after complete expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the rune column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*UnexpectedEOFError)(nil)
	_ InputError = (*UnbalancedParenError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*scanner.MalformedNumberError)(nil)
)
