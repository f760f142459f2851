// Package io provides the program load boundary of the SAP-1 machine.
// It includes byte sources for program images (Rom, Tape), the output tape
// the emulator forwards the Output Register to, the byte-serial Loader
// handshake, and the program image file format.
package io

import (
	"iter"
)

// Source defines the interface for a stream of program bytes.
type Source interface {
	// Rewind resets the source to its first byte.
	Rewind()
	// Receive returns an iterator that yields bytes from the source.
	Receive() iter.Seq[byte]
}

// Channel is a Source that also accepts bytes.
type Channel interface {
	Source
	// Send writes a single byte to the channel.
	Send(value byte) error
}

// Target is the memory side of the load handshake.
type Target interface {
	// BeginLoad asserts programming mode, holding the sequencer.
	BeginLoad()
	// LoadByte writes a byte while in programming mode.
	LoadByte(addr uint8, value uint8) error
	// EndLoad deasserts programming mode.
	EndLoad()
}
