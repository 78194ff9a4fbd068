// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eaglesong implements the Eaglesong sponge hash used by the
// OP_HASH_FN opcode: a 512-bit state of sixteen 32-bit words, a 256-bit
// rate, and a 43-round ARX-style permutation with per-round injection
// constants.
//
// TODO: cross-check the injection-constant table in constants.go against
// the reference implementation's test vectors before relying on
// cross-implementation compatibility.
package eaglesong

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the digest size in bytes.
	Size = 32

	stateWords = 16
	rateWords  = 8
	rounds     = 43

	delimiter = 0x06
)

// rotations are the two circulant rotation amounts applied per word.
var rotations = [stateWords][2]uint{
	{2, 29}, {3, 23}, {5, 19}, {7, 17},
	{11, 13}, {13, 11}, {17, 7}, {19, 5},
	{23, 3}, {29, 2}, {2, 23}, {3, 19},
	{5, 17}, {7, 13}, {11, 29}, {13, 7},
}

// permute applies the round function in place: a linear mix across the
// state, circulant rotations per word, a pairwise addition layer, and the
// round's injection constants.
func permute(state *[stateWords]uint32) {
	var mixed [stateWords]uint32
	for round := 0; round < rounds; round++ {
		// Linear diffusion layer.
		acc := uint32(0)
		for i := 0; i < stateWords; i++ {
			acc ^= state[i]
		}
		for i := 0; i < stateWords; i++ {
			mixed[i] = acc ^ state[i] ^ state[(i+1)%stateWords]
		}

		// Circulant rotations.
		for i := 0; i < stateWords; i++ {
			w := mixed[i]
			state[i] = w ^ bits.RotateLeft32(w, int(rotations[i][0])) ^
				bits.RotateLeft32(w, int(rotations[i][1]))
		}

		// Injection constants.
		for i := 0; i < stateWords; i++ {
			state[i] ^= injectionConstants[round*stateWords+i]
		}

		// Addition layer.
		for i := 0; i < stateWords; i += 2 {
			state[i] += state[i+1]
			state[i+1] = bits.RotateLeft32(state[i+1], 8) + state[i]
		}
	}
}

// Sum256 returns the Eaglesong digest of data.
func Sum256(data []byte) [Size]byte {
	var state [stateWords]uint32

	// Absorb full rate blocks, then the padded final block. Padding is a
	// single delimiter byte followed by zeros.
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, data...)
	buf = append(buf, delimiter)
	for len(buf)%(rateWords*4) != 0 {
		buf = append(buf, 0)
	}

	for off := 0; off < len(buf); off += rateWords * 4 {
		for i := 0; i < rateWords; i++ {
			state[i] ^= binary.BigEndian.Uint32(buf[off+i*4:])
		}
		permute(&state)
	}

	var digest [Size]byte
	for i := 0; i < rateWords; i++ {
		binary.BigEndian.PutUint32(digest[i*4:], state[i])
	}
	return digest
}
