package microcode

import (
	"errors"

	"github.com/ezrec/cop2k/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrAddrRange       = errors.New(f("micro address out of range"))
	ErrWordRange       = errors.New(f("word wider than 24 bits"))
	ErrWordSyntax      = errors.New(f("raw word must be the only item"))
)

type ErrUnknownSignal string

func (err ErrUnknownSignal) Error() string {
	return f("'%v' is not a control signal", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
