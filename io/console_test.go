package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		words []uint16
	}){
		{"", nil},
		{"  \n", nil},
		{"1", []uint16{0x0001}},
		{"00ff", []uint16{0x00ff}},
		{"12 34", []uint16{0x0012, 0x0034}},
		{"123456", []uint16{0x1234, 0x0056}},
		{"12345678", []uint16{0x1234, 0x5678}},
		{"abcdefgh 1", []uint16{0xabcd, 0x00ef, 0x0001}},
		{"FFFF,0000;7fff", []uint16{0xffff, 0x0000, 0x7fff}},
	}

	for _, entry := range table {
		assert.Equal(entry.words, Chunk(entry.text), entry.text)
	}
}

func TestConsole(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}
	assert.Equal(0, con.Pending())

	_, ok := con.Read()
	assert.False(ok)

	assert.Equal(3, con.Feed("0001 0002 3"))
	assert.Equal(1, con.Feed("4"))
	assert.Equal(4, con.Pending())
	assert.Equal([]uint16{1, 2, 3, 4}, con.Input())

	for _, expect := range []uint16{1, 2, 3, 4} {
		value, ok := con.Read()
		assert.True(ok)
		assert.Equal(expect, value)
	}
	_, ok = con.Read()
	assert.False(ok)

	var seen []uint16
	con.OnWrite(func(value uint16) {
		seen = append(seen, value)
		// The lock is not held during the callback.
		assert.Equal(len(seen), len(con.Output()))
	})

	con.Write(0xa)
	con.Write(0xb)
	assert.Equal([]uint16{0xa, 0xb}, con.Output())
	assert.Equal([]uint16{0xa, 0xb}, seen)

	out := con.Output()
	out[0] = 0xff
	assert.Equal([]uint16{0xa, 0xb}, con.Output())

	con.Feed("5")
	con.Rewind()
	assert.Empty(con.Input())
	assert.Empty(con.Output())
}
