// Package cpu implements the TOY machine: its instruction decoder, the
// execution engine, program validation, and the source formatter.
//
// The machine has sixteen 16-bit registers (R[0] always reads zero), 256
// words of memory addressed 00 to FF, and an 8-bit program counter which
// starts at 10. Addresses below 10 hold constants. Address FF is the
// console: loads from it read standard input, and stores to it write
// standard output.
//
// Every register and memory cell starts undefined, and reading an
// undefined value is an error rather than a zero.
//
// Source lines have the form
//
//	AA: CCCC comment
//
// where AA is the address and CCCC is the instruction, both in hex. All
// other lines are ignored.
package cpu
