package io

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gjrchen/UWasic-Training-pt2/cpu"
)

func TestLoader_Load(t *testing.T) {
	assert := assert.New(t)

	data := make([]byte, cpu.MEM_SIZE+4)
	for n := range data {
		data[n] = byte(n + 0x40)
	}

	target := cpu.NewCpu()
	ld := &Loader{}

	err := ld.Load(target, &Rom{Data: data})
	assert.NoError(err)
	assert.False(target.Programming())
	assert.Equal(cpu.MEM_SIZE, ld.Count)
	assert.Equal(uint8(0), ld.Addr)

	for addr := range uint8(cpu.MEM_SIZE) {
		assert.Equal(addr+0x40, target.Mem.Read(addr))
	}

	assert.Len(ld.Pulses, 2*cpu.MEM_SIZE)
	for n := range cpu.MEM_SIZE {
		pulse, ok := ld.Await()
		assert.True(ok)
		assert.Equal(PULSE_READY, pulse, "byte %d", n)
		pulse, ok = ld.Await()
		assert.True(ok)
		assert.Equal(PULSE_DONE, pulse, "byte %d", n)
	}
}

func TestLoader_Load_Short(t *testing.T) {
	assert := assert.New(t)

	target := cpu.NewCpu()
	ld := &Loader{}

	err := ld.Load(target, &Rom{Data: []byte{1, 2, 3}})
	var short ErrLoadShort
	assert.True(errors.As(err, &short))
	assert.Equal(ErrLoadShort(3), short)
	assert.False(target.Programming())
	assert.Equal(uint8(3), target.Mem.Read(2))
	assert.Len(ld.Pulses, 6)
}

// refuser is a target that rejects every byte.
type refuser struct {
	begin, end int
}

func (rf *refuser) BeginLoad() { rf.begin++ }
func (rf *refuser) EndLoad()   { rf.end++ }

func (rf *refuser) LoadByte(addr uint8, value uint8) error {
	return cpu.ErrNotProgramming
}

func TestLoader_Load_Refused(t *testing.T) {
	assert := assert.New(t)

	target := &refuser{}
	ld := &Loader{}

	err := ld.Load(target, &Rom{Data: []byte{1, 2, 3}})
	assert.ErrorIs(err, cpu.ErrNotProgramming)
	assert.Equal(1, target.begin)
	assert.Equal(1, target.end)
	assert.Equal([]Pulse{PULSE_READY}, ld.Pulses)
	assert.Equal(0, ld.Count)
}

func TestLoader_Load_Held(t *testing.T) {
	assert := assert.New(t)

	target := cpu.NewCpu()
	ld := &Loader{}

	target.Step()
	target.Step()
	assert.Equal(cpu.STATE_T2, target.State())

	assert.NoError(ld.Load(target, &Rom{Data: make([]byte, cpu.MEM_SIZE)}))
	assert.Equal(cpu.STATE_T2, target.State())

	target.Reset()
	assert.Equal(cpu.STATE_T0, target.State())
}
