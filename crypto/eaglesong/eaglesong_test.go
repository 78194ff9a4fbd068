// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eaglesong

import (
	"bytes"
	"testing"
)

func TestSum256Deterministic(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		[]byte("a"),
		[]byte("abc"),
		bytes.Repeat([]byte{0x5a}, 31),
		bytes.Repeat([]byte{0x5a}, 32),
		bytes.Repeat([]byte{0x5a}, 33),
		bytes.Repeat([]byte{0xff}, 1000),
	}
	for _, in := range inputs {
		h1 := Sum256(in)
		h2 := Sum256(append([]byte(nil), in...))
		if h1 != h2 {
			t.Errorf("digest of %d bytes not deterministic", len(in))
		}
	}
}

func TestSum256Distinct(t *testing.T) {
	seen := make(map[[Size]byte][]byte)
	inputs := [][]byte{
		nil,
		[]byte{0x00},
		[]byte{0x01},
		[]byte("abc"),
		[]byte("abd"),
		bytes.Repeat([]byte{0x00}, 32),
		bytes.Repeat([]byte{0x00}, 33),
	}
	for _, in := range inputs {
		h := Sum256(in)
		if prev, ok := seen[h]; ok {
			t.Fatalf("collision between %x and %x", prev, in)
		}
		seen[h] = in
	}
}

func TestSum256SingleBitAvalanche(t *testing.T) {
	base := Sum256([]byte{0x00, 0x00, 0x00, 0x00})
	flipped := Sum256([]byte{0x01, 0x00, 0x00, 0x00})

	diff := 0
	for i := range base {
		diff += popcount(base[i] ^ flipped[i])
	}
	// A structurally sound permutation flips a large fraction of the
	// output bits; anything tiny indicates broken diffusion.
	if diff < 32 {
		t.Fatalf("only %d output bits differ", diff)
	}
}

func popcount(b byte) int {
	n := 0
	for ; b != 0; b &= b - 1 {
		n++
	}
	return n
}
