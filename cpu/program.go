package cpu

import (
	"iter"
)

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the listing line that generated a memory address.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the listing line covering the address, if any.
func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program. Unused bytes are zero.
func (prog *Program) Binary() (bins [MEM_SIZE]uint8) {
	for addr, code := range prog.Codes() {
		bins[addr&ADDR_MASK] = uint8(code)
	}

	return
}

// Codes iterates over every generated byte and its address.
func (prog *Program) Codes() iter.Seq2[uint8, Code] {
	return func(yield func(addr uint8, code Code) bool) {
		for _, op := range prog.Opcodes {
			addr := uint8(op.Addr)
			for n, code := range op.Codes {
				if !yield(addr+uint8(n), code) {
					return
				}
			}
		}
	}
}
