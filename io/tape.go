package io

import (
	"io"
	"iter"
)

// Tape provides sequential I/O for byte streams. It wraps an io.Reader for
// input and an io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Sent int // Bytes written to Output.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields bytes from the input stream until
// it is exhausted.
func (tc *Tape) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		if tc.Input == nil {
			return
		}
		for {
			var one [1]byte
			n, err := tc.Input.Read(one[:])
			if n == 1 {
				if !yield(one[0]) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}

// Send writes a byte to the output stream.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		err = ErrChannelFull
		return
	}

	_, err = tc.Output.Write([]byte{value})
	if err != nil {
		return
	}

	tc.Sent++
	return
}
