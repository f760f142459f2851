package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// model is an instruction level rendition of the machine.
type model struct {
	a, out, pc  uint8
	carry, zero bool
	halted      bool
	mem         Memory
}

func (m *model) step() {
	if m.halted {
		return
	}

	code := Code(m.mem.Read(m.pc))
	m.pc = (m.pc + 1) & ADDR_MASK
	addr := code.Operand()

	switch code.Opcode() {
	case OP_HLT:
		m.halted = true
	case OP_ADD:
		m.a, m.carry, m.zero = DoAlu(m.a, m.mem.Read(addr), false)
	case OP_SUB:
		m.a, m.carry, m.zero = DoAlu(m.a, m.mem.Read(addr), true)
	case OP_LDA:
		m.a = m.mem.Read(addr)
	case OP_OUT:
		m.out = m.a
	case OP_STA:
		m.mem.Write(addr, m.a)
	case OP_JMP:
		m.pc = addr
	}
}

func FuzzCpu(f *testing.F) {
	f.Add([]byte{0x2f, 0x3e, 0x50, 0x00}, uint8(0x10))
	f.Add([]byte{0x4f, 0x6e, 0x70}, uint8(0))
	f.Add([]byte{0xa1, 0xb2, 0xc3, 0xd4, 0xe5, 0xf6, 0x80}, uint8(0xff))

	f.Fuzz(func(t *testing.T, program []byte, a uint8) {
		assert := assert.New(t)

		if len(program) > MEM_SIZE {
			program = program[:MEM_SIZE]
		}

		cpu := newLoaded(t, program...)
		cpu.A = a

		m := &model{a: a, mem: cpu.Mem}

		for range 32 {
			for range STAGE_COUNT {
				cpu.Step()
				if !assert.LessOrEqual(len(cpu.Bus()), 1) {
					return
				}
			}
			m.step()

			assert.Equal(m.halted, cpu.Halted())
			assert.Equal(m.a, cpu.A)
			assert.Equal(m.out, cpu.Output())
			assert.Equal(m.pc, cpu.ProgramCounter())
			carry, zero := cpu.Flags()
			assert.Equal(m.carry, carry)
			assert.Equal(m.zero, zero)
			assert.Equal(m.mem, cpu.Mem)
		}
	})
}
