package monitor

import (
	"github.com/ezrec/cop2k/translate"
)

var f = translate.From

type ErrUnknownCommand string

func (err ErrUnknownCommand) Error() string {
	return f("command '%v' does not exist", string(err))
}

type ErrUnknownFlag string

func (err ErrUnknownFlag) Error() string {
	return f("no such flag: '%v'", string(err))
}

type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("no such register: '%v'", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrNotBool string

func (err ErrNotBool) Error() string {
	return f("'%v' is neither true nor false", string(err))
}

// ErrRange names an argument that must fit its range.
type ErrRange string

func (err ErrRange) Error() string {
	return f("%v out of range", string(err))
}

// ErrArgCount reports an argument count outside a command's arity.
type ErrArgCount struct {
	Min int
	Max int
	Got int
}

func (err ErrArgCount) Error() string {
	return f("wrong argument number. expected %d~%d, got %d", err.Min, err.Max, err.Got)
}
