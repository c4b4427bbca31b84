package minicalc

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedCharacter  = errors.New("unexpected character")
	ErrUnrecognizedKeyword  = errors.New("unrecognized keyword")
	ErrNumericOverflow      = errors.New("numeric overflow")
	ErrExpectedPrintKeyword = errors.New("expected print keyword")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrExpectedOperator     = errors.New("expected operator")
	ErrExpectedCloseParen   = errors.New("expected close paren")
	ErrArithmeticOverflow   = errors.New("arithmetic overflow")
)

// Error carries one of the sentinel errors above together with the
// offending lexeme and the 1-based line it was found on. Line is 0 for
// errors raised during evaluation.
type Error struct {
	Err    error
	Lexeme string
	Line   int
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %s", e.Err, e.Lexeme)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Lexeme)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, lexeme string, line int) *Error {
	return &Error{Err: err, Lexeme: lexeme, Line: line}
}
