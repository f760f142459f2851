package io

import (
	"log"

	"github.com/gjrchen/UWasic-Training-pt2/cpu"
)

// Loader drives the byte-serial program load handshake. Each byte is
// presented with a Ready pulse and acknowledged with a Done pulse once
// written, after which the write address advances.
type Loader struct {
	PulseQueue

	Verbose bool  // Set to enable verbose logging.
	Addr    uint8 // Next write address.
	Count   int   // Bytes written by the last Load.
}

// Load fills the target memory from the source. Exactly cpu.MEM_SIZE bytes
// are written; extra source bytes are ignored, and a short source is
// ErrLoadShort. The target must be reset before it executes.
func (ld *Loader) Load(target Target, source Source) (err error) {
	ld.Reset()
	ld.Addr = 0
	ld.Count = 0

	source.Rewind()

	target.BeginLoad()
	defer target.EndLoad()

	for value := range source.Receive() {
		if ld.Count == cpu.MEM_SIZE {
			break
		}

		ld.Raise(PULSE_READY)
		err = target.LoadByte(ld.Addr, value)
		if err != nil {
			return
		}
		ld.Raise(PULSE_DONE)

		if ld.Verbose {
			log.Printf("load: 0x%x <- 0x%02x", ld.Addr, value)
		}

		ld.Addr = (ld.Addr + 1) & cpu.ADDR_MASK
		ld.Count++
	}

	if ld.Count < cpu.MEM_SIZE {
		err = ErrLoadShort(ld.Count)
		return
	}

	return
}
