package cpu

import (
	"slices"
)

// Bus is the shared 8-bit conductor for a single clock. Drivers place their
// byte with Drive; Value resolves what the sinks latch.
type Bus struct {
	Word    ControlWord
	value   uint8
	drivers []Driver
}

// Drive places a byte on the bus.
func (bus *Bus) Drive(driver Driver, value uint8) {
	bus.drivers = append(bus.drivers, driver)
	bus.value = value
}

// Drivers returns the units that drove the bus this clock.
func (bus *Bus) Drivers() []Driver {
	return bus.drivers
}

// Conflict returns ErrBusContention if more than one unit drove the bus.
func (bus *Bus) Conflict() (err error) {
	if len(bus.drivers) > 1 {
		err = ErrBusContention{Word: bus.Word, Drivers: slices.Clone(bus.drivers)}
	}
	return
}

// Value returns the byte latched by the sinks. It is an error to read a
// bus with no driver, or with more than one.
func (bus *Bus) Value(sinks ...Sink) (value uint8, err error) {
	err = bus.Conflict()
	if err != nil {
		return
	}

	if len(bus.drivers) == 0 {
		err = ErrBusFloating{Word: bus.Word, Sinks: sinks}
		return
	}

	value = bus.value
	return
}

// Reset clears the bus for the next clock.
func (bus *Bus) Reset(cw ControlWord) {
	bus.Word = cw
	bus.value = 0
	bus.drivers = bus.drivers[:0]
}
