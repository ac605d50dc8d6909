// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"slices"
	"strconv"
	"strings"
	"sync"
)

// CHUNK_SIZE is the number of hex digits in a console word.
const CHUNK_SIZE = 4

// Console is the memory mapped standard input and output of the machine.
// Input is a FIFO of words consumed by loads; output is an append-only log
// of words written by stores.
type Console struct {
	mutex sync.Mutex

	input  []uint16
	output []uint16

	onWrite func(value uint16)
}

// Rewind empties both queues.
func (con *Console) Rewind() {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	con.input = nil
	con.output = nil
}

// OnWrite registers a callback for every word written. It is invoked
// without the console lock held.
func (con *Console) OnWrite(fn func(value uint16)) {
	con.mutex.Lock()
	con.onWrite = fn
	con.mutex.Unlock()
}

func isNotHex(r rune) bool {
	return !strings.ContainsRune("0123456789abcdefABCDEF", r)
}

// Chunk splits free text into console words. Runs of hex digits are cut
// left to right into groups of four, and a short final group is padded
// with leading zeros. All other characters separate runs.
func Chunk(text string) (words []uint16) {
	for _, run := range strings.FieldsFunc(text, isNotHex) {
		for len(run) > 0 {
			n := min(len(run), CHUNK_SIZE)
			value, err := strconv.ParseUint(run[:n], 16, 16)
			if err != nil {
				panic(err)
			}
			words = append(words, uint16(value))
			run = run[n:]
		}
	}

	return
}

// Feed appends the words of free text to the input queue, and returns
// the number of words queued.
func (con *Console) Feed(text string) (n int) {
	words := Chunk(text)

	con.mutex.Lock()
	con.input = append(con.input, words...)
	con.mutex.Unlock()

	n = len(words)
	return
}

// Read pops the front of the input queue.
func (con *Console) Read() (value uint16, ok bool) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	if len(con.input) == 0 {
		return
	}

	value = con.input[0]
	con.input = con.input[1:]
	ok = true
	return
}

// Write appends to the output log.
func (con *Console) Write(value uint16) {
	con.mutex.Lock()
	con.output = append(con.output, value)
	fn := con.onWrite
	con.mutex.Unlock()

	if fn != nil {
		fn(value)
	}
}

// Pending returns the number of queued input words.
func (con *Console) Pending() int {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	return len(con.input)
}

// Input returns a copy of the input queue.
func (con *Console) Input() []uint16 {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	return slices.Clone(con.input)
}

// Output returns a copy of the output log.
func (con *Console) Output() []uint16 {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	return slices.Clone(con.output)
}
