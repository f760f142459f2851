package cpu

import (
	"fmt"
	"strings"
)

// Signal is a single control line, numbered by its bit in the control word.
type Signal int

//go:generate go tool stringer -linecomment -type=Signal
const (
	SIG_PC_INC        = Signal(0)  // pcIncrement
	SIG_PC_EN         = Signal(1)  // pcEnable
	SIG_PC_JUMP       = Signal(2)  // pcJumpLoad
	SIG_MAR_ADDR_LOAD = Signal(3)  // marAddrLoad
	SIG_MAR_DATA_LOAD = Signal(4)  // marDataLoad
	SIG_MEM_EN        = Signal(5)  // memEnable
	SIG_MEM_WRITE     = Signal(6)  // memWrite
	SIG_IR_LOAD       = Signal(7)  // irLoad
	SIG_IR_EN         = Signal(8)  // irEnable
	SIG_ACC_LOAD      = Signal(9)  // accLoad
	SIG_ACC_EN        = Signal(10) // accEnable
	SIG_SUB           = Signal(11) // subtractMode
	SIG_AU_EN         = Signal(12) // auEnable
	SIG_B_LOAD        = Signal(13) // bLoad
	SIG_OUT_LOAD      = Signal(14) // outLoad
)

const SIGNAL_COUNT = 15

// ControlWord is the 15-bit vector of load and enable lines emitted by the
// sequencer each clock. Bit 14 is outLoad, bit 0 is pcIncrement.
type ControlWord uint16

// Control word bits. Lines marked active-low are asserted by clearing the bit.
const (
	CW_PC_INC        = ControlWord(1 << SIG_PC_INC)
	CW_PC_EN         = ControlWord(1 << SIG_PC_EN)
	CW_PC_JUMP       = ControlWord(1 << SIG_PC_JUMP)
	CW_MAR_ADDR_LOAD = ControlWord(1 << SIG_MAR_ADDR_LOAD) // active-low
	CW_MAR_DATA_LOAD = ControlWord(1 << SIG_MAR_DATA_LOAD) // active-low
	CW_MEM_EN        = ControlWord(1 << SIG_MEM_EN)        // active-low
	CW_MEM_WRITE     = ControlWord(1 << SIG_MEM_WRITE)     // active-low
	CW_IR_LOAD       = ControlWord(1 << SIG_IR_LOAD)       // active-low
	CW_IR_EN         = ControlWord(1 << SIG_IR_EN)         // active-low
	CW_ACC_LOAD      = ControlWord(1 << SIG_ACC_LOAD)      // active-low
	CW_ACC_EN        = ControlWord(1 << SIG_ACC_EN)
	CW_SUB           = ControlWord(1 << SIG_SUB)
	CW_AU_EN         = ControlWord(1 << SIG_AU_EN)
	CW_B_LOAD        = ControlWord(1 << SIG_B_LOAD)   // active-low
	CW_OUT_LOAD      = ControlWord(1 << SIG_OUT_LOAD) // active-low

	CW_MASK       = ControlWord(1<<SIGNAL_COUNT - 1)
	CW_ACTIVE_LOW = CW_OUT_LOAD | CW_B_LOAD | CW_ACC_LOAD | CW_IR_EN | CW_IR_LOAD |
		CW_MEM_WRITE | CW_MEM_EN | CW_MAR_DATA_LOAD | CW_MAR_ADDR_LOAD
)

// Bit returns the control word bit carrying the signal.
func (sig Signal) Bit() ControlWord {
	return ControlWord(1) << sig
}

// ActiveLow returns true if the signal is asserted by a 0 bit.
func (sig Signal) ActiveLow() bool {
	return CW_ACTIVE_LOW&sig.Bit() != 0
}

// Has returns true if the signal is asserted in the control word.
func (cw ControlWord) Has(sig Signal) bool {
	set := cw&sig.Bit() != 0
	return set != sig.ActiveLow()
}

// With returns the control word with the signals asserted.
func (cw ControlWord) With(sigs ...Signal) ControlWord {
	for _, sig := range sigs {
		if sig.ActiveLow() {
			cw &^= sig.Bit()
		} else {
			cw |= sig.Bit()
		}
	}
	return cw
}

// Signals returns the asserted signals, from bit 14 down to bit 0.
func (cw ControlWord) Signals() (sigs []Signal) {
	for sig := Signal(SIGNAL_COUNT - 1); sig >= 0; sig-- {
		if cw.Has(sig) {
			sigs = append(sigs, sig)
		}
	}
	return
}

// Driver is a unit that can place a byte on the bus.
type Driver int

//go:generate go tool stringer -linecomment -type=Driver
const (
	DRIVER_PC     = Driver(0) // pc
	DRIVER_MEMORY = Driver(1) // mem
	DRIVER_IR     = Driver(2) // ir
	DRIVER_ACC    = Driver(3) // a
	DRIVER_AU     = Driver(4) // au
)

// Sink is a unit that latches the bus at the end of the clock.
type Sink int

//go:generate go tool stringer -linecomment -type=Sink
const (
	SINK_MAR_ADDR = Sink(0) // mar
	SINK_MAR_DATA = Sink(1) // mdr
	SINK_IR       = Sink(2) // ir
	SINK_ACC      = Sink(3) // a
	SINK_B        = Sink(4) // b
	SINK_OUT      = Sink(5) // o
	SINK_PC       = Sink(6) // pc
	SINK_MEMORY   = Sink(7) // mem
)

// memWrite reports a write cycle: write-enable together with chip-enable.
func (cw ControlWord) memWrite() bool {
	return cw.Has(SIG_MEM_EN) && cw.Has(SIG_MEM_WRITE)
}

// Drivers returns the units the control word enables onto the bus.
func (cw ControlWord) Drivers() (drivers []Driver) {
	if cw.Has(SIG_PC_EN) {
		drivers = append(drivers, DRIVER_PC)
	}
	if cw.Has(SIG_MEM_EN) && !cw.Has(SIG_MEM_WRITE) {
		drivers = append(drivers, DRIVER_MEMORY)
	}
	if cw.Has(SIG_IR_EN) {
		drivers = append(drivers, DRIVER_IR)
	}
	if cw.Has(SIG_ACC_EN) {
		drivers = append(drivers, DRIVER_ACC)
	}
	if cw.Has(SIG_AU_EN) {
		drivers = append(drivers, DRIVER_AU)
	}
	return
}

// Sinks returns the units the control word loads from the bus.
func (cw ControlWord) Sinks() (sinks []Sink) {
	if cw.Has(SIG_MAR_ADDR_LOAD) {
		sinks = append(sinks, SINK_MAR_ADDR)
	}
	if cw.Has(SIG_MAR_DATA_LOAD) {
		sinks = append(sinks, SINK_MAR_DATA)
	}
	if cw.Has(SIG_IR_LOAD) {
		sinks = append(sinks, SINK_IR)
	}
	if cw.Has(SIG_ACC_LOAD) {
		sinks = append(sinks, SINK_ACC)
	}
	if cw.Has(SIG_B_LOAD) {
		sinks = append(sinks, SINK_B)
	}
	if cw.Has(SIG_OUT_LOAD) {
		sinks = append(sinks, SINK_OUT)
	}
	if cw.Has(SIG_PC_JUMP) {
		sinks = append(sinks, SINK_PC)
	}
	if cw.memWrite() {
		sinks = append(sinks, SINK_MEMORY)
	}
	return
}

// Check verifies the bus discipline of the control word: at most one
// driver, a driver whenever anything latches the bus, and no jump in the
// same clock as an increment.
func (cw ControlWord) Check() (err error) {
	if cw&^CW_MASK != 0 {
		err = ErrMicrocodeWidth
		return
	}

	drivers := cw.Drivers()
	sinks := cw.Sinks()

	switch {
	case len(drivers) > 1:
		err = ErrBusContention{Word: cw, Drivers: drivers}
	case len(drivers) == 0 && len(sinks) != 0:
		err = ErrBusFloating{Word: cw, Sinks: sinks}
	case cw.Has(SIG_PC_JUMP) && cw.Has(SIG_PC_INC):
		err = ErrControlConflict
	}

	return
}

// String returns the hex word and the asserted signal names.
func (cw ControlWord) String() string {
	sigs := cw.Signals()
	if len(sigs) == 0 {
		return fmt.Sprintf("0x%04x[idle]", uint16(cw))
	}
	names := make([]string, len(sigs))
	for n, sig := range sigs {
		names[n] = sig.String()
	}
	return fmt.Sprintf("0x%04x[%v]", uint16(cw), strings.Join(names, " "))
}
