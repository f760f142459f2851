// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/gjrchen/UWasic-Training-pt2/cpu"
	"github.com/gjrchen/UWasic-Training-pt2/internal"
	"github.com/gjrchen/UWasic-Training-pt2/io"
)

const (
	CLOCK_LIMIT = 4096 // Default clock limit for Run.
)

var _emulator_defines = map[string]string{
	"MEM_SIZE":     fmt.Sprintf("%v", cpu.MEM_SIZE),
	"STAGE_COUNT":  fmt.Sprintf("%v", cpu.STAGE_COUNT),
	"OPCODE_COUNT": fmt.Sprintf("%v", cpu.OPCODE_COUNT),
	"CLOCK_LIMIT":  fmt.Sprintf("%v", CLOCK_LIMIT),
}

// opcodeDefines returns the encoding of each mnemonic.
func opcodeDefines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for op := range cpu.CodeOp(cpu.OPCODE_COUNT) {
			if !yield("OP_"+op.String(), fmt.Sprintf("%#x", uint8(cpu.MakeCode(op, 0)))) {
				return
			}
		}
	}
}

// Emulator state. CPU + program load + output tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Loader io.Loader // Program load handshake.
	Rom    io.Rom    // Image presented to the loader.
	Tape   io.Tape   // Output Register tape.
	Trace  *Trace    // If set, receives one line per clock.

	fetch uint8 // Address of the instruction being executed.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		opcodeDefines(),
	)
}

// Reset loads the program listing into memory and resets the CPU.
func (emu *Emulator) Reset() (err error) {
	bins := emu.Program.Binary()
	emu.Rom.Data = bins[:]

	err = emu.Boot(&emu.Rom)
	return
}

// Boot loads memory from the source through the load handshake, then
// resets the CPU.
func (emu *Emulator) Boot(source io.Source) (err error) {
	emu.Loader.Verbose = emu.Verbose
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Loader.Load(emu.Cpu, source)
	if err != nil {
		return
	}

	emu.Cpu.Reset()
	emu.fetch = 0

	if emu.Trace != nil {
		emu.Trace.Reset(emu.Cpu)
	}

	return
}

// Ticks returns the total clocks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Addr returns the address of the executing instruction. Between
// instructions it is the address of the next fetch.
func (emu *Emulator) Addr() uint8 {
	if emu.Cpu.State() == cpu.STATE_T0 {
		return emu.Cpu.ProgramCounter()
	}
	return emu.fetch
}

// Code returns the current instruction code.
func (emu *Emulator) Code() cpu.Code {
	return cpu.Code(emu.Cpu.Mem.Read(emu.Addr()))
}

// LineNo returns the current line number for the executing opcode, or 0
// if no listing line generated it.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Addr())
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single clock of the emulator. It returns done once the
// CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	state := emu.Cpu.State()
	if state == cpu.STATE_T0 {
		emu.fetch = emu.Cpu.ProgramCounter()
	}

	emu.Cpu.Step()

	if emu.Cpu.LastWord().Has(cpu.SIG_OUT_LOAD) && emu.Tape.Output != nil {
		err = emu.Tape.Send(emu.Cpu.Output())
		if err != nil {
			return
		}
	}

	if emu.Trace != nil {
		err = emu.Trace.Clock(state, emu.Cpu)
		if err != nil {
			return
		}
	}

	done = emu.Cpu.Halted()
	return
}

// Instruction performs STAGE_COUNT clocks, a whole instruction when
// started at T0.
func (emu *Emulator) Instruction() (done bool, err error) {
	for range cpu.STAGE_COUNT {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	return
}

// Run clocks the emulator until the CPU halts. It returns ErrClockLimit if
// the CPU is still running after limit clocks.
func (emu *Emulator) Run(limit int) (clocks int, err error) {
	for !emu.Cpu.Halted() {
		if clocks == limit {
			err = ErrClockLimit
			return
		}

		_, err = emu.Tick()
		if err != nil {
			return
		}
		clocks++
	}

	return
}
