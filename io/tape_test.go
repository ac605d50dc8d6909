package io

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  strings.NewReader("\n  \n0001 0002\nzz\n0003\n"),
		Output: output,
	}

	con := &Console{}
	tape.Attach(con)

	n, err := tape.Receive(con)
	assert.NoError(err)
	assert.Equal(2, n)
	assert.Equal([]uint16{1, 2}, con.Input())

	n, err = tape.Receive(con)
	assert.NoError(err)
	assert.Equal(1, n)
	assert.Equal([]uint16{1, 2, 3}, con.Input())

	n, err = tape.Receive(con)
	assert.ErrorIs(err, io.EOF)
	assert.Equal(0, n)

	con.Write(0x00ab)
	con.Write(0xfffe)
	assert.Equal("00AB\nFFFE\n", output.String())
}

func TestTape_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	con := &Console{}
	tape.Attach(con)

	_, err := tape.Receive(con)
	assert.ErrorIs(err, io.EOF)

	// Output is dropped without a writer.
	con.Write(1)
	assert.Equal([]uint16{1}, con.Output())

	tape.Input = strings.NewReader("0009\n")
	tape.Rewind()
	n, err := tape.Receive(con)
	assert.NoError(err)
	assert.Equal(1, n)
}
