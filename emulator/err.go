package emulator

import (
	"errors"

	"github.com/ezrec/toy/translate"
)

var f = translate.From

var (
	ErrRunning      = errors.New(f("program is running"))
	ErrInputStarved = errors.New(f("program is waiting for input"))
	ErrNoProgram    = errors.New(f("no program loaded"))
)

// ErrRuntime indicates the address of a runtime error.
type ErrRuntime struct {
	Address uint8
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("Error at line %02X:\n%v", err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatch indicates a failure evaluating the watch expression.
type ErrWatch struct {
	Expr string
	Err  error
}

func (err *ErrWatch) Error() string {
	return f("watch '%v': %v", err.Expr, err.Err)
}

func (err *ErrWatch) Unwrap() error {
	return err.Err
}
