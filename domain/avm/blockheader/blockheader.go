// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader decodes the 80-byte block headers supplied as
// external state and exposes the fields read by the block-info opcodes.
package blockheader

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// HeaderSize is the wire size of a block header in bytes.
const HeaderSize = 80

// ErrHeaderSize is returned when the input is not exactly HeaderSize bytes.
var ErrHeaderSize = errors.New("block header must be exactly 80 bytes")

// Header is a decoded block header.
type Header struct {
	Version    int32
	PrevBlock  [32]byte
	MerkleRoot [32]byte
	Time       uint32
	Bits       uint32
	Nonce      uint32

	raw [HeaderSize]byte
}

// Decode parses an 80-byte wire header.
func Decode(b []byte) (*Header, error) {
	if len(b) != HeaderSize {
		return nil, errors.Wrapf(ErrHeaderSize, "got %d bytes", len(b))
	}
	h := &Header{
		Version: int32(binary.LittleEndian.Uint32(b[0:4])),
		Time:    binary.LittleEndian.Uint32(b[68:72]),
		Bits:    binary.LittleEndian.Uint32(b[72:76]),
		Nonce:   binary.LittleEndian.Uint32(b[76:80]),
	}
	copy(h.PrevBlock[:], b[4:36])
	copy(h.MerkleRoot[:], b[36:68])
	copy(h.raw[:], b)
	return h, nil
}

// Bytes returns the raw 80-byte serialization the header was decoded from.
func (h *Header) Bytes() []byte {
	raw := h.raw
	return raw[:]
}

// Difficulty derives the difficulty from the compact bits field using the
// classic formula, rounded to the nearest integer.
func (h *Header) Difficulty() uint64 {
	shift := (h.Bits >> 24) & 0xff
	diff := float64(0x0000ffff) / float64(h.Bits&0x00ffffff)

	for shift < 29 {
		diff *= 256.0
		shift++
	}
	for shift > 29 {
		diff /= 256.0
		shift--
	}
	return uint64(math.Round(diff))
}
