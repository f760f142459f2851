package io

import (
	"iter"
)

// Rom is a read only program image.
type Rom struct {
	Data []byte
}

var _ Channel = (*Rom)(nil)

// Rewind is a no-op, every Receive starts at the first byte.
func (rc *Rom) Rewind() {
}

// Receive returns an iterator over the image bytes.
func (rc *Rom) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for _, data := range rc.Data {
			if !yield(data) {
				return
			}
		}
	}
}

// Send always fails, a Rom cannot be written.
func (rc *Rom) Send(value byte) error {
	return ErrChannelFull
}
