// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/ezrec/toy/cpu"
)

// NULL_DISPLAY is shown for undefined registers, memory and instructions.
const NULL_DISPLAY = "????"

// Observer is notified after every step of a run, and on every lifecycle
// change. Update is called on the goroutine driving the emulator.
type Observer interface {
	Update(emu *Emulator)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(emu *Emulator)

func (fn ObserverFunc) Update(emu *Emulator) {
	fn(emu)
}

// Option configures a new Emulator.
type Option func(emu *Emulator)

// WithObserver sets the observer.
func WithObserver(obs Observer) Option {
	return func(emu *Emulator) { emu.Observer = obs }
}

// WithLogger sets the trace destination.
func WithLogger(logger *log.Logger) Option {
	return func(emu *Emulator) { emu.Logger = logger }
}

// WithVerbose enables tracing.
func WithVerbose(verbose bool) Option {
	return func(emu *Emulator) { emu.Verbose = verbose }
}

// WithWatch sets a watch expression.
func WithWatch(watch *Watch) Option {
	return func(emu *Emulator) { emu.Watch = watch }
}

// Emulator drives a loaded program through its lifecycle: run, stop and
// reset.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Logger   *log.Logger  // Log destination; the standard logger if nil.
	*cpu.Cpu              // Reference to the machine state.
	Program  *cpu.Program // Reference to the loaded program.
	Observer Observer     // Notified of every step; may be nil.
	Watch    *Watch       // Pauses the run when true; may be nil.

	running atomic.Bool
	stop    atomic.Bool

	reset    bool
	finished bool
	errored  bool
	waiting  bool
	err      error

	current *cpu.Instruction
	steps   int
}

// NewEmulator validates a program and loads it into a fresh machine.
func NewEmulator(prog *cpu.Program, opts ...Option) (emu *Emulator, err error) {
	if prog == nil {
		err = ErrNoProgram
		return
	}

	err = prog.Validate()
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: prog,
	}

	for _, opt := range opts {
		opt(emu)
	}

	emu.load()

	return
}

func (emu *Emulator) logf(format string, args ...any) {
	if !emu.Verbose {
		return
	}

	if emu.Logger != nil {
		emu.Logger.Printf(format, args...)
	} else {
		log.Printf(format, args...)
	}
}

func (emu *Emulator) notify() {
	if emu.Observer != nil {
		emu.Observer.Update(emu)
	}
}

// load clears the machine and places the program in memory.
func (emu *Emulator) load() {
	emu.Cpu.Reset()
	emu.Cpu.Load(emu.Program)

	emu.current = emu.Cpu.Memory[emu.Cpu.Pc]
	emu.steps = 0
	emu.err = nil
	emu.reset = true
	emu.finished = false
	emu.errored = false
	emu.waiting = false
}

// Reset reloads the program into a cleared machine. Not permitted while
// running; does nothing if the machine is already in its reset state.
func (emu *Emulator) Reset() (err error) {
	if emu.running.Load() {
		err = ErrRunning
		return
	}

	if emu.reset {
		return
	}

	emu.load()
	emu.logf("program reset")
	emu.notify()

	return
}

// Stop requests the run to pause once the current instruction is done.
func (emu *Emulator) Stop() {
	if emu.running.Load() {
		emu.stop.Store(true)
		emu.logf("program stopped")
	}
}

// Feed queues console input from free text, and returns the number of
// words queued.
func (emu *Emulator) Feed(text string) (n int) {
	n = emu.Cpu.Console.Feed(text)
	if emu.Cpu.Console.Pending() != 0 {
		emu.reset = false
	}

	return
}

// Tick performs a single step of the emulator. A program waiting on empty
// console input returns ErrInputStarved without executing anything.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Logger = emu.Logger

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil && !errors.Is(err, ErrInputStarved) {
			err = &ErrRuntime{Address: pc, Err: err}
		}
	}()

	emu.current = emu.Cpu.Memory[pc]

	ins, err := emu.Cpu.Fetch()
	if err != nil {
		return
	}

	if emu.Cpu.NeedsInput(ins) && emu.Cpu.Console.Pending() == 0 {
		err = ErrInputStarved
		return
	}

	result, err := emu.Cpu.Execute(ins)
	if err != nil {
		return
	}

	emu.steps++

	switch result {
	case cpu.RESULT_CONTINUE:
		emu.Cpu.Pc++
	case cpu.RESULT_HALTED:
		emu.logf("halted program, PC at %02X", emu.Cpu.Pc)
		done = true
	}

	return
}

// Run executes instructions until the program halts, fails, runs out of
// console input, or is stopped. Execution failures do not return an
// error; they are recorded, and reported by Err and ErrorMessage.
func (emu *Emulator) Run() (err error) {
	if !emu.running.CompareAndSwap(false, true) {
		err = ErrRunning
		return
	}

	emu.stop.Store(false)
	emu.reset = false
	emu.finished = false
	emu.waiting = false

	for !emu.stop.Load() {
		done, terr := emu.Tick()
		if errors.Is(terr, ErrInputStarved) {
			emu.logf("%02X: waiting for input", emu.Cpu.Pc)
			emu.waiting = true
			break
		}

		if terr != nil {
			emu.fail(terr)
			done = true
		}

		if done {
			emu.finished = true
			break
		}

		if emu.Watch != nil {
			hit, werr := emu.Watch.Eval(emu)
			if werr != nil {
				emu.fail(werr)
				emu.finished = true
				break
			}
			if hit {
				emu.logf("%02X: watch '%v' hit", emu.Cpu.Pc, emu.Watch.Expr)
				emu.stop.Store(true)
			}
		}

		emu.notify()
	}

	emu.running.Store(false)
	emu.notify()

	return
}

func (emu *Emulator) fail(err error) {
	emu.logf("%v", err)
	emu.err = err
	emu.errored = true
}

// Running is true while Run is executing.
func (emu *Emulator) Running() bool {
	return emu.running.Load()
}

// IsReset is true when nothing has run since the program was loaded.
func (emu *Emulator) IsReset() bool {
	return emu.reset
}

// Finished is true once the program has halted or failed.
func (emu *Emulator) Finished() bool {
	return emu.finished
}

// Waiting is true when the last run paused on empty console input.
func (emu *Emulator) Waiting() bool {
	return emu.waiting
}

// Errored is true if the last run failed.
func (emu *Emulator) Errored() bool {
	return emu.errored
}

// Err returns the failure of the last run, if any.
func (emu *Emulator) Err() error {
	return emu.err
}

// ErrorMessage returns the text of the last failure, or an empty string.
func (emu *Emulator) ErrorMessage() string {
	if emu.err == nil {
		return ""
	}

	return emu.err.Error()
}

// Steps returns the instructions executed since the last reset.
func (emu *Emulator) Steps() int {
	return emu.steps
}

// Pc returns the program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// PcHex returns the program counter as two hex digits.
func (emu *Emulator) PcHex() string {
	return fmt.Sprintf("%02X", emu.Cpu.Pc)
}

// Registers returns a copy of the registers.
func (emu *Emulator) Registers() (regs [cpu.REGISTER_COUNT]cpu.Word) {
	return emu.Cpu.Register
}

// Memory returns a copy of memory. Cells are immutable once written.
func (emu *Emulator) Memory() (mem [cpu.MEMORY_SIZE]*cpu.Instruction) {
	return emu.Cpu.Memory
}

// Current returns the instruction last fetched, or nil if its cell was
// undefined.
func (emu *Emulator) Current() *cpu.Instruction {
	return emu.current
}

// CurrentDisplay returns the current instruction and its description.
func (emu *Emulator) CurrentDisplay() string {
	if emu.current == nil {
		return NULL_DISPLAY + " (" + f("Uninitialised Instruction") + ")"
	}

	return emu.current.Hex() + " (" + cpu.Describe(*emu.current) + ")"
}

// Input returns the pending console input.
func (emu *Emulator) Input() []uint16 {
	return emu.Cpu.Console.Input()
}

// Output returns the console output.
func (emu *Emulator) Output() []uint16 {
	return emu.Cpu.Console.Output()
}

// Dump renders the machine state in the layout of the register, memory
// and console panels.
func (emu *Emulator) Dump() (text string) {
	text += fmt.Sprintf("PC: %v\n", emu.PcHex())
	text += fmt.Sprintf("Instruction: %v\n", emu.CurrentDisplay())

	for n, reg := range emu.Registers() {
		text += fmt.Sprintf("%X %v\n", n, reg)
	}

	for n, cell := range emu.Memory() {
		value := NULL_DISPLAY
		if cell != nil {
			value = cell.Hex()
		}
		text += fmt.Sprintf("%02X %v\n", n, value)
	}

	for _, value := range emu.Input() {
		text += fmt.Sprintf("stdin %04X\n", value)
	}

	for _, value := range emu.Output() {
		text += fmt.Sprintf("stdout %04X\n", value)
	}

	return
}
