// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
)

func buildHeader(version int32, prev, merkle byte, time, bits, nonce uint32) []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(b[0:4], uint32(version))
	for i := 4; i < 36; i++ {
		b[i] = prev
	}
	for i := 36; i < 68; i++ {
		b[i] = merkle
	}
	binary.LittleEndian.PutUint32(b[68:72], time)
	binary.LittleEndian.PutUint32(b[72:76], bits)
	binary.LittleEndian.PutUint32(b[76:80], nonce)
	return b
}

func TestDecode(t *testing.T) {
	raw := buildHeader(2, 0xaa, 0xbb, 1700000000, 0x1d00ffff, 42)
	h, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if h.Version != 2 {
		t.Errorf("version = %d", h.Version)
	}
	if h.PrevBlock != ([32]byte{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
		0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
		0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa}) {
		t.Errorf("prev block = %x", h.PrevBlock)
	}
	if h.Time != 1700000000 || h.Bits != 0x1d00ffff || h.Nonce != 42 {
		t.Errorf("fields = %d %#x %d", h.Time, h.Bits, h.Nonce)
	}
	if !bytes.Equal(h.Bytes(), raw) {
		t.Error("Bytes did not round trip")
	}
}

func TestDecodeWrongSize(t *testing.T) {
	for _, size := range []int{0, 79, 81} {
		if _, err := Decode(make([]byte, size)); !errors.Is(err, ErrHeaderSize) {
			t.Errorf("size %d: err = %v", size, err)
		}
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		bits uint32
		want uint64
	}{
		// The genesis target is difficulty 1 by definition.
		{0x1d00ffff, 1},
		// Halving the mantissa doubles the difficulty (rounded).
		{0x1d007fff, 2},
		// One exponent step is a factor of 256.
		{0x1c00ffff, 256},
	}
	for _, test := range tests {
		h, err := Decode(buildHeader(1, 0, 0, 0, test.bits, 0))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got := h.Difficulty(); got != test.want {
			t.Errorf("difficulty(%#x) = %d, want %d", test.bits, got, test.want)
		}
	}
}
