package io

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/gjrchen/UWasic-Training-pt2/cpu"
)

const (
	IMAGE_MAGIC   = "SAP1" // Image file magic.
	IMAGE_VERSION = 1      // Image file format version.
)

// imageHeader is the on-disk program image.
type imageHeader struct {
	Magic   string `struc:"[4]byte"`
	Version uint32
	Crc     uint32
	Length  int    `struc:"uint16,sizeof=Data"`
	Data    []byte
}

// Marshal writes the Rom as a program image.
func (rc *Rom) Marshal(w io.Writer) (err error) {
	if len(rc.Data) != cpu.MEM_SIZE {
		err = ErrImageLength
		return
	}

	hdr := &imageHeader{
		Magic:   IMAGE_MAGIC,
		Version: IMAGE_VERSION,
		Crc:     crc32.ChecksumIEEE(rc.Data),
		Data:    bytes.Clone(rc.Data),
	}

	err = struc.PackWithOrder(w, hdr, binary.BigEndian)
	if err != nil {
		err = errors.Wrap(err, f("failed to pack image"))
		return
	}

	return
}

// Unmarshal replaces the Rom contents with a program image.
func (rc *Rom) Unmarshal(r io.Reader) (err error) {
	var hdr imageHeader

	err = struc.UnpackWithOrder(r, &hdr, binary.BigEndian)
	if err != nil {
		err = errors.Wrap(err, f("failed to unpack image"))
		return
	}

	if hdr.Magic != IMAGE_MAGIC {
		err = errors.Wrapf(ErrImageMagic, "%q", hdr.Magic)
		return
	}

	if hdr.Version != IMAGE_VERSION {
		err = errors.Wrapf(ErrImageVersion, "%d", hdr.Version)
		return
	}

	if len(hdr.Data) != cpu.MEM_SIZE {
		err = errors.Wrapf(ErrImageLength, "%d", len(hdr.Data))
		return
	}

	if crc32.ChecksumIEEE(hdr.Data) != hdr.Crc {
		err = errors.Wrapf(ErrImageChecksum, "0x%08x", hdr.Crc)
		return
	}

	rc.Data = hdr.Data
	return
}
