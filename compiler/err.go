package compiler

import (
	"errors"

	"github.com/ezrec/tapevm/translate"
)

var f = translate.From

var (
	ErrUnsupportedOperator = errors.New(f("input operator not supported"))
	ErrBracketUnmatched    = errors.New(f("']' without '['"))
	ErrBracketUnclosed     = errors.New(f("'[' without ']'"))
	ErrInstructionInvalid  = errors.New(f("instruction invalid"))
)

// ErrSyntax locates a compile error in the source.
type ErrSyntax struct {
	LineNo int
	Column int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d column %d '%v' %v", err.LineNo, err.Column, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a string expression", string(err))
}
