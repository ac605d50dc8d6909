package cpu

import (
	"bufio"
	"io"
	"iter"
	"slices"
)

// Program is the ordered list of code lines of a TOY source file.
type Program struct {
	Lines []Line
}

// Debug locates the source line of an address.
type Debug struct {
	*Line
	Index int // Position of the line in the program.
}

// Parse reads a TOY source file. Text that is not a line of code is a
// comment, and is dropped.
func Parse(in io.Reader) (prog *Program, err error) {
	var texts []string

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = ParseLines(texts)
	return
}

// ParseLines builds a program from lines of source text.
func ParseLines(texts []string) (prog *Program) {
	prog = &Program{}
	for _, text := range texts {
		line, err := Decode(text)
		if err != nil {
			continue
		}
		prog.Lines = append(prog.Lines, line)
	}

	return
}

// Validate checks that the program can be loaded: it must have at least
// one line, no address may repeat, and addresses must ascend.
func (prog *Program) Validate() (err error) {
	if len(prog.Lines) == 0 {
		err = ErrProgramEmpty
		return
	}

	var seen [MEMORY_SIZE]bool
	var dups ErrDuplicateAddress
	var addrs []uint8

	for _, line := range prog.Lines {
		addr := line.Address
		if !seen[addr] {
			seen[addr] = true
			addrs = append(addrs, addr)
		} else if !slices.Contains(dups, addr) {
			dups = append(dups, addr)
		}
	}

	if len(dups) != 0 {
		err = dups
		return
	}

	if !slices.IsSorted(addrs) {
		err = ErrProgramUnsorted
		return
	}

	return
}

// Debug returns the line at an address.
func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n, line := range prog.Lines {
		if line.Address == addr {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: n,
			}
			break
		}
	}

	return
}

// Codes iterates over the address and instruction of each line.
func (prog *Program) Codes() iter.Seq2[uint8, Instruction] {
	return func(yield func(addr uint8, ins Instruction) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Address, line.Instruction()) {
				return
			}
		}
	}
}
