package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	f.Add(uint8(0x10), uint16(0x1234), "")
	f.Add(uint8(0x00), uint16(0xffff), "   constant")
	f.Add(uint8(0xff), uint16(0x0000), " halt")

	f.Fuzz(func(t *testing.T, addr uint8, word uint16, comment string) {
		assert := assert.New(t)

		text := fmt.Sprintf("%02X: %04x%v", addr, word, comment)
		assert.True(IsWellFormed(text))

		line, err := Decode(text)
		assert.NoError(err)
		assert.Equal(addr, line.Address)
		assert.Equal(word, line.Instruction().Word())

		// Formatting is stable once applied.
		once := FormatLine(text)
		assert.Equal(once, FormatLine(once))
	})
}

func FuzzExecute(f *testing.F) {
	for op := range 0x10 {
		f.Add(uint16(op<<12|0x123), uint16(0x7fff), uint16(0x0001))
		f.Add(uint16(op<<12|0x1ff), uint16(0xffff), uint16(0x000f))
	}

	f.Fuzz(func(t *testing.T, word uint16, a uint16, b uint16) {
		assert := assert.New(t)

		cpu := NewCpu()
		for n := 1; n < REGISTER_COUNT; n++ {
			cpu.setRegister(uint8(n), a^(uint16(n)*b))
		}
		cpu.Console.Feed("0001")

		ins := InstructionOf(word)
		assert.Equal(word, ins.Word())

		result, err := cpu.Execute(ins)
		assert.Equal(Word{Defined: true}, cpu.Register[0])
		if err != nil {
			var kind ErrKind
			assert.ErrorAs(err, &kind)
			return
		}

		switch result {
		case RESULT_HALTED:
			assert.Equal(OP_HALT, ins.Opcode)
		case RESULT_JUMPED:
			assert.Contains([]Opcode{OP_BZ, OP_BP, OP_JR, OP_JL}, ins.Opcode)
		}
	})
}
