// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
	"math"

	"github.com/ezrec/toy/io"
)

const (
	REGISTER_COUNT = 0x10 // Number of general registers.
	MEMORY_SIZE    = 0x100
	PC_START       = 0x10 // Entry point; lower addresses hold constants.
	IO_ADDRESS     = 0xFF // Memory mapped console.
)

// Result tells the caller how to advance the program counter.
type Result int

//go:generate go tool stringer -linecomment -type=Result
const (
	RESULT_CONTINUE = Result(0) // continue
	RESULT_JUMPED   = Result(1) // jumped
	RESULT_HALTED   = Result(2) // halted
)

// Word is a register value, which may not have been written yet.
type Word struct {
	Value   uint16
	Defined bool
}

// Int returns the two's complement value of the word.
func (w Word) Int() int16 {
	return int16(w.Value)
}

// String returns four hex digits, or ???? when undefined.
func (w Word) String() string {
	if !w.Defined {
		return "????"
	}

	return fmt.Sprintf("%04X", w.Value)
}

// Cpu is the state of the TOY machine: registers, memory, program counter
// and the console mapped at IO_ADDRESS.
type Cpu struct {
	Verbose bool        // Set to enable tracing of each instruction.
	Logger  *log.Logger // Trace destination; the standard logger if nil.

	Pc       uint8
	Register [REGISTER_COUNT]Word
	Memory   [MEMORY_SIZE]*Instruction // nil cells are undefined.
	Console  io.Console
}

// NewCpu creates a machine in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

func (cpu *Cpu) logf(format string, args ...any) {
	if cpu.Logger != nil {
		cpu.Logger.Printf(format, args...)
	} else {
		log.Printf(format, args...)
	}
}

// Reset the machine state.
// - Undefines every register but R[0].
// - Undefines all of memory.
// - Empties the console.
// - Sets the program counter to PC_START.
func (cpu *Cpu) Reset() {
	clear(cpu.Register[:])
	cpu.Register[0] = Word{Defined: true}
	clear(cpu.Memory[:])
	cpu.Console.Rewind()
	cpu.Pc = PC_START
}

// Load places every line of a program in memory.
func (cpu *Cpu) Load(prog *Program) {
	for addr, ins := range prog.Codes() {
		cpu.Memory[addr] = &ins
	}
}

// String returns the register state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   PC: %02X\n", cpu.Pc)
	for n, reg := range cpu.Register {
		text += fmt.Sprintf(" R[%X]: %v\n", n, reg)
	}

	return
}

// Fetch returns the instruction at the program counter.
func (cpu *Cpu) Fetch() (ins Instruction, err error) {
	cell := cpu.Memory[cpu.Pc]
	if cell == nil {
		err = ErrInstructionUninitialized
		return
	}

	ins = *cell
	return
}

// NeedsInput returns true if the instruction will read the console.
func (cpu *Cpu) NeedsInput(ins Instruction) bool {
	switch ins.Opcode {
	case OP_LOAD:
		return ins.Addr == IO_ADDRESS
	case OP_LDI:
		rt := cpu.Register[ins.T]
		return rt.Defined && int(rt.Int()) == IO_ADDRESS
	}

	return false
}

func (cpu *Cpu) setRegister(n uint8, value uint16) {
	cpu.Register[n] = Word{Value: value, Defined: true}
}

// load reads a memory cell, or the console at IO_ADDRESS. The word read is
// stored back as a fresh instruction, so a console read stays visible at
// M[FF].
func (cpu *Cpu) load(addr int) (value uint16, err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrMemoryAddressOutOfBounds
		return
	}

	if addr == IO_ADDRESS {
		var ok bool
		value, ok = cpu.Console.Read()
		if !ok {
			err = ErrInputNeeded
			return
		}
	} else {
		cell := cpu.Memory[addr]
		if cell == nil {
			err = ErrMemoryUninitialized
			return
		}
		value = cell.Word()
	}

	ins := InstructionOf(value)
	cpu.Memory[addr] = &ins

	return
}

// store writes a memory cell, echoing to the console at IO_ADDRESS.
func (cpu *Cpu) store(addr int, value uint16) (err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrMemoryAddressOutOfBounds
		return
	}

	if addr == IO_ADDRESS {
		cpu.Console.Write(value)
	}

	ins := InstructionOf(value)
	cpu.Memory[addr] = &ins

	return
}

// jumpInRange is the bound applied to jump register targets. It is kept
// apart from the memory bound, as the two have differed historically.
func jumpInRange(pc int) bool {
	return pc >= 0x00 && pc <= 0xFF
}

// Execute executes a single decoded instruction. The caller advances the
// program counter on RESULT_CONTINUE only.
func (cpu *Cpu) Execute(ins Instruction) (result Result, err error) {
	cpu.Register[0] = Word{Defined: true}

	if cpu.Verbose {
		cpu.logf("%02X: %v (%v)", cpu.Pc, Describe(ins), ins)
	}

	if ins.writesD() && ins.D == 0 && ins.Word() != NOOP_WORD {
		err = ErrRegisterIndexOutOfBounds
		return
	}

	if (ins.readsD() && !cpu.Register[ins.D].Defined) ||
		(ins.readsS() && !cpu.Register[ins.S].Defined) ||
		(ins.readsT() && !cpu.Register[ins.T].Defined) {
		err = ErrRegisterUninitialized
		return
	}

	d := ins.D

	switch ins.Format {
	case FORMAT_RR:
		a := int32(cpu.Register[ins.S].Int())
		b := int32(cpu.Register[ins.T].Int())

		var output int32
		switch ins.Opcode {
		case OP_ADD:
			output = a + b
		case OP_SUB:
			output = a - b
		case OP_AND:
			output = a & b
		case OP_XOR:
			output = a ^ b
		case OP_SHL, OP_SHR:
			if b < 0 || b > 0xF {
				err = ErrShiftMagnitudeOutOfBounds
				return
			}
			if ins.Opcode == OP_SHL {
				output = int32(int16(a << b))
			} else {
				output = a >> b
			}
		}

		if output < math.MinInt16 || output > math.MaxInt16 {
			err = ErrOverflow
			return
		}

		cpu.setRegister(d, uint16(output))
	case FORMAT_ADDR:
		switch ins.Opcode {
		case OP_LDA:
			cpu.setRegister(d, uint16(ins.Addr))
		case OP_LOAD:
			var value uint16
			value, err = cpu.load(int(ins.Addr))
			if err != nil {
				return
			}
			cpu.setRegister(d, value)
		case OP_STORE:
			err = cpu.store(int(ins.Addr), cpu.Register[d].Value)
			if err != nil {
				return
			}
		case OP_BZ:
			if cpu.Register[d].Int() == 0 {
				cpu.Pc = ins.Addr
				result = RESULT_JUMPED
			}
		case OP_BP:
			if cpu.Register[d].Int() > 0 {
				cpu.Pc = ins.Addr
				result = RESULT_JUMPED
			}
		case OP_JL:
			if d != 0 {
				cpu.setRegister(d, uint16(cpu.Pc)+1)
			}
			cpu.Pc = ins.Addr
			result = RESULT_JUMPED
		}
	case FORMAT_INDIRECT:
		addr := int(cpu.Register[ins.T].Int())
		switch ins.Opcode {
		case OP_LDI:
			var value uint16
			value, err = cpu.load(addr)
			if err != nil {
				return
			}
			cpu.setRegister(d, value)
		case OP_STI:
			err = cpu.store(addr, cpu.Register[d].Value)
			if err != nil {
				return
			}
		}
	case FORMAT_JUMP_REGISTER:
		pc := int(cpu.Register[d].Int())
		if !jumpInRange(pc) {
			err = ErrProgramCounterOutOfBounds
			return
		}
		cpu.Pc = uint8(pc)
		result = RESULT_JUMPED
	case FORMAT_HALT:
		result = RESULT_HALTED
	}

	return
}
