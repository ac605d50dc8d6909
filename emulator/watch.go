// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/toy/cpu"
)

// Watch is a Starlark expression checked after every step. When it is
// true the run pauses, as if Stop had been called.
//
// Predeclared names:
//
//	pc     program counter
//	R      tuple of the 16 registers, None when undefined
//	M      tuple of the 256 memory cells, None when undefined
//	out    tuple of the words written to the console
//	steps  instructions executed since reset
//
// Register and memory values are signed 16-bit integers.
type Watch struct {
	Expr string
}

// NewWatch checks the syntax of a watch expression.
func NewWatch(expr string) (watch *Watch, err error) {
	opts := syntax.FileOptions{}
	_, err = opts.ParseExpr("watch", expr, 0)
	if err != nil {
		err = &ErrWatch{Expr: expr, Err: err}
		return
	}

	watch = &Watch{Expr: expr}
	return
}

func predeclare(emu *Emulator) starlark.StringDict {
	regs := make(starlark.Tuple, cpu.REGISTER_COUNT)
	for n, reg := range emu.Registers() {
		if reg.Defined {
			regs[n] = starlark.MakeInt(int(reg.Int()))
		} else {
			regs[n] = starlark.None
		}
	}

	mem := make(starlark.Tuple, cpu.MEMORY_SIZE)
	for n, cell := range emu.Memory() {
		if cell != nil {
			mem[n] = starlark.MakeInt(int(int16(cell.Word())))
		} else {
			mem[n] = starlark.None
		}
	}

	var out starlark.Tuple
	for _, value := range emu.Output() {
		out = append(out, starlark.MakeInt(int(int16(value))))
	}

	return starlark.StringDict{
		"pc":    starlark.MakeInt(emu.Pc()),
		"R":     regs,
		"M":     mem,
		"out":   out,
		"steps": starlark.MakeInt(emu.Steps()),
	}
}

// Eval evaluates the expression against the emulator state.
func (watch *Watch) Eval(emu *Emulator) (hit bool, err error) {
	thread := starlark.Thread{Name: "watch"}
	opts := syntax.FileOptions{}
	prog := "rc=" + watch.Expr + "\n"

	dict, err := starlark.ExecFileOptions(&opts, &thread, "watch", prog, predeclare(emu))
	if err != nil {
		err = &ErrWatch{Expr: watch.Expr, Err: err}
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		return
	}

	hit = bool(rc.Truth())
	return
}
