// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"strconv"
)

// Opcode is the first hex digit of an instruction.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HALT  = Opcode(0x0) // halt
	OP_ADD   = Opcode(0x1) // add
	OP_SUB   = Opcode(0x2) // subtract
	OP_AND   = Opcode(0x3) // and
	OP_XOR   = Opcode(0x4) // xor
	OP_SHL   = Opcode(0x5) // left shift
	OP_SHR   = Opcode(0x6) // right shift
	OP_LDA   = Opcode(0x7) // load address
	OP_LOAD  = Opcode(0x8) // load
	OP_STORE = Opcode(0x9) // store
	OP_LDI   = Opcode(0xA) // load indirect
	OP_STI   = Opcode(0xB) // store indirect
	OP_BZ    = Opcode(0xC) // branch zero
	OP_BP    = Opcode(0xD) // branch positive
	OP_JR    = Opcode(0xE) // jump register
	OP_JL    = Opcode(0xF) // jump and link
)

// Format groups opcodes that share an operand layout.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_RR            = Format(1) // rr
	FORMAT_ADDR          = Format(2) // addr
	FORMAT_INDIRECT      = Format(3) // indirect
	FORMAT_JUMP_REGISTER = Format(4) // jump register
	FORMAT_HALT          = Format(5) // halt
)

// NOOP_WORD is the only instruction allowed to name R[0] as its destination.
const NOOP_WORD = uint16(0x1000)

// formatOf classifies an opcode.
func formatOf(op Opcode) Format {
	switch op {
	case OP_ADD, OP_SUB, OP_AND, OP_XOR, OP_SHL, OP_SHR:
		return FORMAT_RR
	case OP_LDI, OP_STI:
		return FORMAT_INDIRECT
	case OP_LDA, OP_LOAD, OP_STORE, OP_BZ, OP_BP, OP_JL:
		return FORMAT_ADDR
	case OP_JR:
		return FORMAT_JUMP_REGISTER
	}

	return FORMAT_HALT
}

// Instruction is a decoded TOY instruction word.
type Instruction struct {
	Format Format
	Opcode Opcode
	D      uint8 // Destination register (digit 1).
	S      uint8 // Source register (digit 2).
	T      uint8 // Source register (digit 3).
	Addr   uint8 // Immediate address (digits 2 and 3).
}

// InstructionOf decodes a 16-bit word.
func InstructionOf(word uint16) Instruction {
	op := Opcode((word >> 12) & 0xf)
	return Instruction{
		Format: formatOf(op),
		Opcode: op,
		D:      uint8((word >> 8) & 0xf),
		S:      uint8((word >> 4) & 0xf),
		T:      uint8((word >> 0) & 0xf),
		Addr:   uint8(word & 0xff),
	}
}

// NewInstruction decodes a four hex digit instruction code.
func NewInstruction(code string) (ins Instruction, err error) {
	if len(code) != 4 {
		err = ErrCode(code)
		return
	}

	word, perr := strconv.ParseUint(code, 16, 16)
	if perr != nil {
		err = ErrCode(code)
		return
	}

	ins = InstructionOf(uint16(word))
	return
}

// Word re-encodes the instruction.
func (ins Instruction) Word() uint16 {
	return (uint16(ins.Opcode) << 12) | (uint16(ins.D) << 8) | (uint16(ins.S) << 4) | uint16(ins.T)
}

// Hex returns the instruction as four upper case hex digits.
func (ins Instruction) Hex() string {
	return fmt.Sprintf("%04X", ins.Word())
}

// String returns a debug rendering of the instruction fields.
func (ins Instruction) String() string {
	return fmt.Sprintf("Instruction %v [format=%v, opcode=%X, d=%X, s=%X, t=%X, addr=%02X]",
		ins.Hex(), ins.Format, uint8(ins.Opcode), ins.D, ins.S, ins.T, ins.Addr)
}

// writesD is true when the instruction assigns R[d].
func (ins Instruction) writesD() bool {
	switch ins.Opcode {
	case OP_ADD, OP_SUB, OP_AND, OP_XOR, OP_SHL, OP_SHR, OP_LDA, OP_LOAD, OP_LDI:
		return true
	case OP_JL:
		// A zero link register makes F an unconditional goto.
		return ins.D != 0
	}

	return false
}

// readsD is true when the instruction needs the value of R[d].
func (ins Instruction) readsD() bool {
	switch ins.Opcode {
	case OP_STORE, OP_STI, OP_BZ, OP_BP, OP_JR:
		return true
	}

	return false
}

// readsS is true when the instruction needs the value of R[s].
func (ins Instruction) readsS() bool {
	return ins.Format == FORMAT_RR
}

// readsT is true when the instruction needs the value of R[t].
func (ins Instruction) readsT() bool {
	return ins.Format == FORMAT_RR || ins.Format == FORMAT_INDIRECT
}
