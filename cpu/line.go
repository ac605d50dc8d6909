// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// lineRegex matches a line of TOY code: address, code, free text.
var lineRegex = regexp.MustCompile(`^([0-9A-Fa-f]{2}): ([0-9A-Fa-f]{4})(.*)`)

// Line is a decoded line of TOY source.
type Line struct {
	Address uint8  // Memory address of the line.
	Code    string // Instruction code, as written.
	Comment string // Any text following the code.
}

// IsWellFormed returns true if the text is a line of TOY code.
func IsWellFormed(text string) bool {
	return lineRegex.MatchString(text)
}

// Decode splits a line of TOY code into its parts.
func Decode(text string) (line Line, err error) {
	match := lineRegex.FindStringSubmatch(text)
	if match == nil {
		err = ErrSyntax{Line: text}
		return
	}

	addr, err := strconv.ParseUint(match[1], 16, 8)
	if err != nil {
		err = ErrSyntax{Line: text}
		return
	}

	line = Line{
		Address: uint8(addr),
		Code:    match[2],
		Comment: match[3],
	}

	return
}

// Instruction converts the code of the line to an instruction.
func (line Line) Instruction() (ins Instruction) {
	ins, err := NewInstruction(line.Code)
	if err != nil {
		// Lines only come from Decode, which has already matched four hex digits.
		panic(err)
	}

	return
}

// IsConstant is true for lines below the start of code.
func (line Line) IsConstant() bool {
	return line.Address < PC_START
}

// Describe returns the generated comment for the line. Lines below the
// start of code are data, and are not disassembled.
func (line Line) Describe() string {
	if line.IsConstant() {
		return "constant 0x" + strings.ToUpper(line.Code)
	}

	return Describe(line.Instruction())
}

// String renders the line in its canonical source form.
func (line Line) String() string {
	return fmt.Sprintf("%02X: %v%v", line.Address, line.Code, line.Comment)
}
