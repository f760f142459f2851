package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b     uint8
		subtract bool
		output   uint8
		carry    bool
		zero     bool
	}){
		{a: 0, b: 0, output: 0, zero: true},
		{a: 1, b: 1, output: 2},
		{a: 0x7f, b: 0x01, output: 0x80},
		{a: 0xff, b: 0x01, output: 0, carry: true, zero: true},
		{a: 0xff, b: 0xff, output: 0xfe, carry: true},
		{a: 1, b: 1, subtract: true, output: 0, carry: true, zero: true},
		{a: 5, b: 3, subtract: true, output: 2, carry: true},
		{a: 0, b: 1, subtract: true, output: 0xff},
		{a: 3, b: 5, subtract: true, output: 0xfe},
		{a: 0, b: 0, subtract: true, output: 0, carry: true, zero: true},
		{a: 0x80, b: 0x7f, subtract: true, output: 0x01, carry: true},
	}

	for _, entry := range table {
		name := fmt.Sprintf("%#x,%#x,%v", entry.a, entry.b, entry.subtract)
		output, carry, zero := DoAlu(entry.a, entry.b, entry.subtract)
		assert.Equal(entry.output, output, name)
		assert.Equal(entry.carry, carry, name)
		assert.Equal(entry.zero, zero, name)
	}
}

func FuzzDoAlu(f *testing.F) {
	f.Add(uint8(0), uint8(0), false)
	f.Add(uint8(0xff), uint8(1), false)
	f.Add(uint8(0), uint8(1), true)

	f.Fuzz(func(t *testing.T, a, b uint8, subtract bool) {
		assert := assert.New(t)

		output, carry, zero := DoAlu(a, b, subtract)
		if subtract {
			assert.Equal(a-b, output)
			assert.Equal(a >= b, carry)
		} else {
			assert.Equal(a+b, output)
			assert.Equal(int(a)+int(b) > 0xff, carry)
		}
		assert.Equal(output == 0, zero)
	})
}
