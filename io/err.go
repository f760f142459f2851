package io

import (
	"errors"

	"github.com/gjrchen/UWasic-Training-pt2/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))

	// Image errors
	ErrImageMagic    = errors.New(f("image magic invalid"))
	ErrImageVersion  = errors.New(f("image version unsupported"))
	ErrImageLength   = errors.New(f("image length invalid"))
	ErrImageChecksum = errors.New(f("image checksum mismatch"))
)

// ErrLoadShort is a program source that ran out before memory was full.
// The value is the number of bytes loaded.
type ErrLoadShort int

func (err ErrLoadShort) Error() string {
	return f("program load short, %d bytes", int(err))
}
