// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

func reg(n uint8) string {
	return fmt.Sprintf("R[%X]", n)
}

// Describe returns the semantic comment for an instruction.
//
// Degenerate forms collapse: a zero destination is a no-op, zero sources
// read as 0000, equal sources of an and read as one register, and the
// console address FF reads as 'read' or 'write'. For example:
//
//	1200  R[2] <- 0000
//	3344  R[3] <- R[4]
//	5110  no-op
//	82FF  read R[2]
//	C012  goto 12
func Describe(ins Instruction) (comment string) {
	d, s, t := ins.D, ins.S, ins.T
	rd, rs, rt := reg(d), reg(s), reg(t)
	addr := fmt.Sprintf("%02X", ins.Addr)

	switch ins.Opcode {
	case OP_HALT:
		comment = "halt"
	case OP_ADD:
		switch {
		case d == 0:
			comment = "no-op"
		case s == 0 && t == 0:
			comment = rd + " <- 0000"
		case s == 0:
			comment = rd + " <- " + rt
		case t == 0:
			comment = rd + " <- " + rs
		default:
			comment = rd + " <- " + rs + " + " + rt
		}
	case OP_SUB:
		switch {
		case d == 0:
			comment = "no-op"
		case s == 0 && t == 0:
			comment = rd + " <- 0000"
		case s == 0:
			comment = rd + " <- -" + rt
		case t == 0:
			comment = rd + " <- " + rs
		default:
			comment = rd + " <- " + rs + " - " + rt
		}
	case OP_AND:
		switch {
		case d == 0:
			comment = "no-op"
		case s == 0 || t == 0:
			comment = rd + " <- 0000"
		case s == t && d == s:
			comment = "no-op"
		case s == t:
			comment = rd + " <- " + rs
		default:
			comment = rd + " <- " + rs + " & " + rt
		}
	case OP_XOR:
		switch {
		case d == 0:
			comment = "no-op"
		case s == 0 && t == 0:
			comment = rd + " <- 0000"
		case s == 0:
			comment = rd + " <- " + rt
		case t == 0:
			comment = rd + " <- " + rs
		default:
			comment = rd + " <- " + rs + " ^ " + rt
		}
	case OP_SHL, OP_SHR:
		op := " << "
		if ins.Opcode == OP_SHR {
			op = " >> "
		}
		switch {
		case d == 0:
			comment = "no-op"
		case s == 0:
			comment = rd + " <- 0000"
		case t == 0 && d == s:
			comment = "no-op"
		case t == 0:
			comment = rd + " <- " + rs
		default:
			comment = rd + " <- " + rs + op + rt
		}
	case OP_LDA:
		if d == 0 {
			comment = "no-op"
		} else {
			comment = rd + " <- 00" + addr
		}
	case OP_LOAD:
		switch {
		case ins.Addr == IO_ADDRESS:
			comment = "read " + rd
		case d == 0:
			comment = "no-op"
		default:
			comment = rd + " <- M[" + addr + "]"
		}
	case OP_STORE:
		if ins.Addr == IO_ADDRESS {
			comment = "write " + rd
		} else {
			comment = "M[" + addr + "] <- " + rd
		}
	case OP_LDI:
		if d == 0 {
			comment = "no-op"
		} else {
			comment = rd + " <- M[" + rt + "]"
		}
	case OP_STI:
		comment = "M[" + rt + "] <- " + rd
	case OP_BZ:
		// R[0] == 0 always holds.
		if d == 0 {
			comment = "goto " + addr
		} else {
			comment = "if (" + rd + " == 0) goto " + addr
		}
	case OP_BP:
		// R[0] > 0 never holds.
		if d == 0 {
			comment = "no-op"
		} else {
			comment = "if (" + rd + " > 0) goto " + addr
		}
	case OP_JR:
		comment = "goto " + rd
	case OP_JL:
		if d == 0 {
			comment = "goto " + addr
		} else {
			comment = rd + " <- PC; goto " + addr
		}
	}

	return
}
