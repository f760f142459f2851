package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_Receive(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{
		Data: []byte{0x4e, 0x2f, 0x50, 0x00},
	}

	var data []byte
	for value := range rom.Receive() {
		data = append(data, value)
	}
	assert.Equal([]byte{0x4e, 0x2f, 0x50, 0x00}, data)

	// A second pass starts over.
	rom.Rewind()
	data = data[:0]
	for value := range rom.Receive() {
		data = append(data, value)
	}
	assert.Len(data, 4)
}

func TestRom_Receive_Empty(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []byte{}}

	count := 0
	for range rom.Receive() {
		count++
	}

	assert.Equal(0, count)
}

func TestRom_Receive_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []byte{1, 2, 3, 4, 5}}

	count := 0
	for range rom.Receive() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

func TestRom_Send(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	assert.Equal(ErrChannelFull, rom.Send(0x12))
	assert.Empty(rom.Data)
}
