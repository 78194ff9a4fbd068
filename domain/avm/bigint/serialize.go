// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import "math/big"

// Serialize returns the script encoding of n: the absolute value in
// little-endian byte order with the sign carried in bit 7 of the most
// significant byte. An extra byte is appended when the magnitude already
// uses that bit. Zero serializes to the empty slice.
func (n Int) Serialize() []byte {
	v := n.big()
	if v.Sign() == 0 {
		return nil
	}

	// big.Int.Bytes is big-endian; reverse into little-endian order.
	mag := new(big.Int).Abs(v).Bytes()
	result := make([]byte, len(mag), len(mag)+1)
	for i, b := range mag {
		result[len(mag)-1-i] = b
	}

	negative := v.Sign() < 0
	if result[len(result)-1]&0x80 != 0 {
		extra := byte(0x00)
		if negative {
			extra = 0x80
		}
		result = append(result, extra)
	} else if negative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// Deserialize decodes the script encoding produced by Serialize. The empty
// slice decodes to zero. Non-minimal encodings are accepted; callers enforce
// minimality separately.
func Deserialize(b []byte) Int {
	if len(b) == 0 {
		return Int{}
	}

	mag := make([]byte, len(b))
	for i, by := range b {
		mag[len(b)-1-i] = by
	}

	negative := mag[0]&0x80 != 0
	mag[0] &= 0x7f

	v := new(big.Int).SetBytes(mag)
	if negative {
		v.Neg(v)
	}
	return Int{v: v}
}
