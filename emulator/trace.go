package emulator

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/gjrchen/UWasic-Training-pt2/cpu"
)

var chNew = ansi.ColorCode("default+bu:default")

// change is a register value and its value on the previous clock.
type change struct {
	Name     string
	Old, New uint8
	Width    int // Hex digits.
}

func (c *change) Changed() bool {
	return c.Old != c.New
}

func (c *change) String(color bool) string {
	value := fmt.Sprintf("%0*x", c.Width, c.New)
	switch {
	case !c.Changed():
		return fmt.Sprintf(" %s=%s", c.Name, value)
	case color:
		return fmt.Sprintf(" %s=%s", c.Name, chNew+value+ansi.Reset)
	default:
		return fmt.Sprintf("+%s=%s", c.Name, value)
	}
}

// Trace writes one line per clock: the state that executed, its control
// word, and the registers after the clock edge.
type Trace struct {
	Output io.Writer // Destination of trace lines.
	Color  bool      // Highlight changed values with ANSI color.

	last []uint8
}

// registers returns the traced register values, in column order.
func registers(c *cpu.Cpu) (names []string, values []uint8, widths []int) {
	var flags uint8
	carry, zero := c.Flags()
	if carry {
		flags |= 2
	}
	if zero {
		flags |= 1
	}

	names = []string{"pc", "mar", "ir", "a", "b", "out", "cz"}
	values = []uint8{c.ProgramCounter(), c.Mar.Addr, uint8(c.Ir), c.A, c.B, c.Output(), flags}
	widths = []int{1, 1, 2, 2, 2, 2, 1}
	return
}

// Reset sets the baseline for change highlighting.
func (tr *Trace) Reset(c *cpu.Cpu) {
	_, tr.last, _ = registers(c)
}

// Clock writes the trace line for the clock that just executed in state.
func (tr *Trace) Clock(state cpu.State, c *cpu.Cpu) (err error) {
	names, values, widths := registers(c)
	if tr.last == nil {
		tr.last = values
	}

	var line strings.Builder
	fmt.Fprintf(&line, "%5d %-3v %v", c.Ticks, state, c.LastWord())
	for n, name := range names {
		ch := change{Name: name, Old: tr.last[n], New: values[n], Width: widths[n]}
		line.WriteString(ch.String(tr.Color))
	}
	line.WriteString("\n")

	tr.last = values

	_, err = io.WriteString(tr.Output, line.String())
	return
}
