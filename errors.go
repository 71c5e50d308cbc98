package rpn

import (
	"errors"
	"strconv"
)

// Sentinel errors classifying every failure. The concrete error types below
// unwrap to one of these, so callers can use errors.Is to tell parse errors
// from arithmetic errors.
var (
	// ErrMalformed indicates an unrecognized character, an invalid number, or
	// an expression that does not reduce to exactly one value.
	ErrMalformed = errors.New("malformed expression")
	// ErrMismatchedParen indicates unbalanced parentheses.
	ErrMismatchedParen = errors.New("mismatched parenthesis")
	// ErrDivisionByZero indicates a divisor that is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrScale indicates a negative output or working scale.
	ErrScale = errors.New("invalid scale")
)

// LexError indicates an invalid token. It implements InputError and unwraps
// to ErrMalformed.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the position of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrMalformed
}

// NumberError is an error parsing a decimal literal outside of an expression.
// It unwraps to ErrMalformed.
type NumberError struct {
	// Text is the literal that could not be parsed.
	Text string
}

func (err *NumberError) Error() string {
	return "invalid decimal " + strconv.Quote(err.Text)
}

func (err *NumberError) Unwrap() error {
	return ErrMalformed
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError and unwraps to ErrMismatchedParen.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the unclosed open parenthesis, or empty.
	Left string
	// Right is the unopened close parenthesis, or empty.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMismatchedParen
}

// StackError indicates that the operand stack did not hold what the
// expression needed: an operator found fewer than two operands, or the
// expression ended with other than one value. It implements InputError and
// unwraps to ErrMalformed.
type StackError struct {
	// Col is the position of the operator, or of the end of input.
	Col int
	// Op is the operator that lacked operands. It is empty if the error
	// occurred at the end of the expression.
	Op string
	// Len is the number of values on the stack when the error occurred.
	Len int
}

func (err *StackError) Error() string {
	if err.Op != "" {
		return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" with "+strconv.Itoa(err.Len)+" operands")
	}
	if err.Len == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, strconv.Itoa(err.Len)+" values with no operator between them")
}

func (err *StackError) Pos() int {
	return err.Col
}

func (err *StackError) Unwrap() error {
	return ErrMalformed
}

// DivisionError is an error indicating a division by zero. It implements
// InputError and unwraps to ErrDivisionByZero.
type DivisionError struct {
	// Col is the position of the division operator, or 0 when the division
	// did not come from an expression.
	Col int
	// Dividend is the left operand of the division.
	Dividend Decimal
}

func (err *DivisionError) Error() string {
	msg := "division of " + err.Dividend.String() + " by zero"
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *DivisionError) Pos() int {
	return err.Col
}

func (err *DivisionError) Unwrap() error {
	return ErrDivisionByZero
}

// ScaleError indicates a negative scale option. It unwraps to ErrScale.
type ScaleError struct {
	// Name is the option that was set, "scale" or "working scale".
	Name string
	// Scale is the rejected value.
	Scale int
}

func (err *ScaleError) Error() string {
	return err.Name + " must not be negative, got " + strconv.Itoa(err.Scale)
}

func (err *ScaleError) Unwrap() error {
	return ErrScale
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
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*DivisionError)(nil)
)
