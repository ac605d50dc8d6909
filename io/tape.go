package io

import (
	"bufio"
	"fmt"
	"io"
)

// Tape connects a Console to byte streams. Input lines are fed to the
// console on request, and every word written to the console is printed
// to Output as four hex digits and a newline.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

// Attach routes the console output to the tape.
func (tc *Tape) Attach(con *Console) {
	con.OnWrite(func(value uint16) {
		if tc.Output != nil {
			fmt.Fprintf(tc.Output, "%04X\n", value)
		}
	})
}

// Rewind drops any buffered input.
func (tc *Tape) Rewind() {
	tc.scanner = nil
}

// Receive feeds lines from the input stream to the console until at
// least one word is queued. Returns io.EOF when the input is exhausted.
func (tc *Tape) Receive(con *Console) (n int, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
	}

	for n == 0 {
		if !tc.scanner.Scan() {
			err = tc.scanner.Err()
			if err == nil {
				err = io.EOF
			}
			return
		}
		n = con.Feed(tc.scanner.Text())
	}

	return
}
