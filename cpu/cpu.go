package cpu

import (
	"fmt"
	"log"
	"slices"
)

// Mar is the memory address register: a 4-bit address and the data latch
// used for memory writes.
type Mar struct {
	Addr uint8 // Address half, 0..15.
	Data uint8 // Data latch.
}

// Cpu is the simulation context for the accumulator machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A     uint8  // Accumulator.
	B     uint8  // Second operand of the arithmetic unit.
	Ir    Code   // Instruction register.
	Mar   Mar    // Memory address register.
	Pc    uint8  // Program counter, 0..15.
	Out   uint8  // Output register.
	Carry bool   // Carry flag, committed by ADD and SUB.
	Zero  bool   // Zero flag, committed by ADD and SUB.
	Mem   Memory // Program and data memory.

	Ticks int // Clocks applied since reset.

	state       State       // Sequencer state.
	op          CodeOp      // Opcode latched at the T3 to T4 boundary.
	programming bool        // Sequencer held for program load.
	bus         Bus         // Bus of the most recent clock.
	word        ControlWord // Control word of the most recent clock.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears every register and flag.
// - Returns the sequencer to T0, leaving halt.
// - Memory is preserved.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.A = 0
	cpu.B = 0
	cpu.Ir = 0
	cpu.Mar = Mar{}
	cpu.Pc = 0
	cpu.Out = 0
	cpu.Carry = false
	cpu.Zero = false
	cpu.Ticks = 0

	cpu.state = STATE_T0
	cpu.op = OP_HLT
	cpu.word = CW_IDLE
	cpu.bus.Reset(CW_IDLE)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"state", "pc", "ir", "mar", "a", "b", "out", "flags",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "state":
			strval = cpu.state.String()
		case "pc":
			strval = fmt.Sprintf("%X", cpu.Pc)
		case "ir":
			strval = fmt.Sprintf("%02X %v", uint8(cpu.Ir), cpu.Ir)
		case "mar":
			strval = fmt.Sprintf("%X_%02X", cpu.Mar.Addr, cpu.Mar.Data)
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "b":
			strval = fmt.Sprintf("%02X", cpu.B)
		case "out":
			strval = fmt.Sprintf("%02X", cpu.Out)
		case "flags":
			strval = "--"
			if cpu.Carry {
				strval = "C" + strval[1:]
			}
			if cpu.Zero {
				strval = strval[:1] + "Z"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Output returns the output register.
func (cpu *Cpu) Output() uint8 {
	return cpu.Out
}

// Halted returns true once HLT has parked the sequencer.
func (cpu *Cpu) Halted() bool {
	return cpu.state == STATE_HALT
}

// ProgramCounter returns the 4-bit program counter.
func (cpu *Cpu) ProgramCounter() uint8 {
	return cpu.Pc & ADDR_MASK
}

// State returns the sequencer state the next Step will execute.
func (cpu *Cpu) State() State {
	return cpu.state
}

// Stage returns the cycle counter, 0..6, of the next Step.
func (cpu *Cpu) Stage() int {
	return cpu.state.Stage()
}

// Flags returns the committed carry and zero flags.
func (cpu *Cpu) Flags() (carry, zero bool) {
	return cpu.Carry, cpu.Zero
}

// Decoded returns the opcode selecting the current execute microprogram.
// Until the T3 to T4 boundary it is the opcode in the instruction register.
func (cpu *Cpu) Decoded() CodeOp {
	if cpu.state <= STATE_T3 {
		return cpu.Ir.Opcode()
	}
	return cpu.op
}

// ControlWord returns the control word the next Step will apply.
func (cpu *Cpu) ControlWord() ControlWord {
	return microcode.Lookup(cpu.Decoded(), cpu.state)
}

// LastWord returns the control word applied by the most recent Step.
func (cpu *Cpu) LastWord() ControlWord {
	return cpu.word
}

// Bus returns the drivers of the most recent Step.
func (cpu *Cpu) Bus() []Driver {
	return slices.Clone(cpu.bus.Drivers())
}

// Step advances one clock. A defective control word is a design error and
// panics.
func (cpu *Cpu) Step() {
	if cpu.programming {
		return
	}

	cw := cpu.ControlWord()

	err := cpu.Execute(cw)
	if err != nil {
		panic(err)
	}

	cpu.Ticks++

	prior := cpu.state
	if prior == STATE_T3 {
		cpu.op = cpu.Ir.Opcode()
	}
	cpu.state = prior.Next(cpu.op)

	if cpu.Verbose && prior != cpu.state && cpu.state == STATE_HALT {
		log.Printf("cpu: halt at pc 0x%x", cpu.Pc)
	}
}

// drive returns the byte a driver places on the bus.
func (cpu *Cpu) drive(driver Driver, cw ControlWord) (value uint8) {
	switch driver {
	case DRIVER_PC:
		value = cpu.Pc & ADDR_MASK
	case DRIVER_MEMORY:
		value = cpu.Mem.Read(cpu.Mar.Addr)
	case DRIVER_IR:
		value = cpu.Ir.Operand()
	case DRIVER_ACC:
		value = cpu.A
	case DRIVER_AU:
		value, _, _ = DoAlu(cpu.A, cpu.B, cw.Has(SIG_SUB))
	default:
		panic("unknown driver")
	}
	return
}

// Execute applies a single control word to the datapath: every enabled
// driver places its byte on the bus, then every enabled sink latches it.
// Registers are read before any sink is written.
func (cpu *Cpu) Execute(cw ControlWord) (err error) {
	if cw.Has(SIG_PC_JUMP) && cw.Has(SIG_PC_INC) {
		err = ErrControlConflict
		return
	}

	cpu.word = cw
	cpu.bus.Reset(cw)
	for _, driver := range cw.Drivers() {
		cpu.bus.Drive(driver, cpu.drive(driver, cw))
	}

	err = cpu.bus.Conflict()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %v %v", cpu.state, cw)
	}

	sinks := cw.Sinks()
	if len(sinks) != 0 {
		var value uint8
		value, err = cpu.bus.Value(sinks...)
		if err != nil {
			return
		}

		addr := cpu.Mar.Addr
		for _, sink := range sinks {
			switch sink {
			case SINK_MAR_ADDR:
				cpu.Mar.Addr = value & ADDR_MASK
			case SINK_MAR_DATA:
				cpu.Mar.Data = value
			case SINK_IR:
				cpu.Ir = Code(value)
			case SINK_ACC:
				if cw.Has(SIG_AU_EN) {
					_, cpu.Carry, cpu.Zero = DoAlu(cpu.A, cpu.B, cw.Has(SIG_SUB))
				}
				cpu.A = value
			case SINK_B:
				cpu.B = value
			case SINK_OUT:
				cpu.Out = value
			case SINK_PC:
				cpu.Pc = value & ADDR_MASK
			case SINK_MEMORY:
				cpu.Mem.Write(addr, value)
			}
		}
	}

	if cw.Has(SIG_PC_INC) {
		cpu.Pc = (cpu.Pc + 1) & ADDR_MASK
	}

	return
}

// Programming returns true while the sequencer is held for program load.
func (cpu *Cpu) Programming() bool {
	return cpu.programming
}

// BeginLoad asserts programming mode. The sequencer does not advance until
// EndLoad.
func (cpu *Cpu) BeginLoad() {
	if cpu.Verbose {
		log.Printf("cpu: program load begin")
	}
	cpu.programming = true
}

// LoadByte writes a program byte while in programming mode.
func (cpu *Cpu) LoadByte(addr uint8, value uint8) (err error) {
	if !cpu.programming {
		err = ErrNotProgramming
		return
	}

	cpu.Mem.Write(addr, value)
	return
}

// EndLoad deasserts programming mode. The CPU must be reset before
// execution begins.
func (cpu *Cpu) EndLoad() {
	if cpu.Verbose {
		log.Printf("cpu: program load end")
	}
	cpu.programming = false
}
