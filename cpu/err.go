package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/toy/translate"
)

var f = translate.From

// ErrKind is the closed set of execution failures.
type ErrKind int

//go:generate go tool stringer -linecomment -type=ErrKind
const (
	ErrRegisterUninitialized     = ErrKind(0) // RegisterUninitialized
	ErrMemoryUninitialized       = ErrKind(1) // MemoryUninitialized
	ErrInstructionUninitialized  = ErrKind(2) // InstructionUninitialized
	ErrRegisterIndexOutOfBounds  = ErrKind(3) // RegisterIndexOutOfBounds
	ErrShiftMagnitudeOutOfBounds = ErrKind(4) // ShiftMagnitudeOutOfBounds
	ErrMemoryAddressOutOfBounds  = ErrKind(5) // MemoryAddressOutOfBounds
	ErrProgramCounterOutOfBounds = ErrKind(6) // ProgramCounterOutOfBounds
	ErrOverflow                  = ErrKind(7) // Overflow
	ErrInputNeeded               = ErrKind(8) // InputNeeded
)

// ErrCategory groups related ErrKind values.
type ErrCategory int

const (
	ErrUninitialized = ErrCategory(0)
	ErrOutOfBounds   = ErrCategory(1)
	ErrArithmetic    = ErrCategory(2)
	ErrStarved       = ErrCategory(3)
)

var errCategoryMessage = [...]string{
	ErrUninitialized: "undefined",
	ErrOutOfBounds:   "out of bounds",
	ErrArithmetic:    "arithmetic",
	ErrStarved:       "input needed",
}

func (ec ErrCategory) Error() string {
	return f(errCategoryMessage[ec])
}

var errKindMessage = [...]string{
	ErrRegisterUninitialized:     "A register referenced is undefined",
	ErrMemoryUninitialized:       "A memory address referenced is undefined",
	ErrInstructionUninitialized:  "Line is undefined",
	ErrRegisterIndexOutOfBounds:  "An instruction attempted to change R[0]",
	ErrShiftMagnitudeOutOfBounds: "An invalid shift magnitude was used; shift magnitudes must be between 0000 and 000F",
	ErrMemoryAddressOutOfBounds:  "An instruction attempted to store to or load from an invalid memory address; must be between 00 and FF",
	ErrProgramCounterOutOfBounds: "An instruction attempted to set an invalid program counter value; must be between 00 and FF",
	ErrOverflow:                  "The result of an operation was not between -32768 and 32767",
	ErrInputNeeded:               "Console input is empty",
}

var errKindCategory = [...]ErrCategory{
	ErrRegisterUninitialized:     ErrUninitialized,
	ErrMemoryUninitialized:       ErrUninitialized,
	ErrInstructionUninitialized:  ErrUninitialized,
	ErrRegisterIndexOutOfBounds:  ErrOutOfBounds,
	ErrShiftMagnitudeOutOfBounds: ErrOutOfBounds,
	ErrMemoryAddressOutOfBounds:  ErrOutOfBounds,
	ErrProgramCounterOutOfBounds: ErrOutOfBounds,
	ErrOverflow:                  ErrArithmetic,
	ErrInputNeeded:               ErrStarved,
}

// Error returns the default message of the kind.
func (ek ErrKind) Error() string {
	return f(errKindMessage[ek])
}

// Category returns the group the kind belongs to.
func (ek ErrKind) Category() ErrCategory {
	return errKindCategory[ek]
}

// Is matches an ErrCategory, so errors.Is(err, ErrOutOfBounds) works.
func (ek ErrKind) Is(target error) bool {
	ec, ok := target.(ErrCategory)
	return ok && ek.Category() == ec
}

var (
	// Decode errors
	ErrLineSyntax = errors.New(f("line is not TOY code"))

	// Program structure errors
	ErrProgramEmpty    = errors.New(f("Program does not contain any valid TOY code"))
	ErrProgramUnsorted = errors.New(f("Program's lines are not in order"))
)

type ErrSyntax struct {
	Line string
}

func (err ErrSyntax) Error() string {
	return f("'%v' %v", err.Line, ErrLineSyntax)
}

func (err ErrSyntax) Unwrap() error {
	return ErrLineSyntax
}

type ErrCode string

func (err ErrCode) Error() string {
	return f("'%v' is not a four digit hex code", string(err))
}

// ErrDuplicateAddress lists every address that appears more than once.
type ErrDuplicateAddress []uint8

func (err ErrDuplicateAddress) Error() string {
	addrs := make([]string, len(err))
	for n, addr := range err {
		addrs[n] = fmt.Sprintf("%02X", addr)
	}

	return f("Program contains duplicate line numbers: %v", strings.Join(addrs, ", "))
}

func (err ErrDuplicateAddress) Is(target error) (ok bool) {
	_, ok = target.(ErrDuplicateAddress)
	return
}
