// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"bytes"
	"math"
	"math/big"
	"testing"
)

// TestSerialize checks the little-endian sign-magnitude encoding against
// known vectors.
func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want []byte
	}{
		{"zero", 0, nil},
		{"one", 1, []byte{0x01}},
		{"minus one", -1, []byte{0x81}},
		{"127", 127, []byte{0x7f}},
		{"128 needs a sign byte", 128, []byte{0x80, 0x00}},
		{"-128 carries the sign in the extra byte", -128, []byte{0x80, 0x80}},
		{"256", 256, []byte{0x00, 0x01}},
		{"-256", -256, []byte{0x00, 0x81}},
		{"0x7fff", 0x7fff, []byte{0xff, 0x7f}},
		{"0x8000", 0x8000, []byte{0x00, 0x80, 0x00}},
	}

	for _, test := range tests {
		got := FromInt64(test.n).Serialize()
		if !bytes.Equal(got, test.want) {
			t.Errorf("%s: serialized %d to %x, want %x", test.name, test.n, got, test.want)
		}
	}
}

// TestSerializeRoundTrip checks that deserialize(serialize(n)) is the
// identity for values across the interesting boundaries.
func TestSerializeRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, -2, 127, -127, 128, -128, 255, -255, 256, -256,
		32767, -32767, 32768, -32768, math.MaxInt32, math.MinInt32 + 1,
		math.MaxInt64, math.MinInt64 + 1,
	}
	for _, v := range values {
		n := FromInt64(v)
		back := Deserialize(n.Serialize())
		if !n.Equal(back) {
			t.Errorf("round trip of %d yielded %s", v, back.Big())
		}
	}

	// A value well past 64 bits.
	huge := new(big.Int).Lsh(big.NewInt(1), 300)
	huge.Sub(huge, big.NewInt(19))
	n := FromBig(huge)
	if back := Deserialize(n.Serialize()); !n.Equal(back) {
		t.Errorf("round trip of %s yielded %s", huge, back.Big())
	}
	if back := Deserialize(n.Neg().Serialize()); !n.Neg().Equal(back) {
		t.Errorf("round trip of -%s yielded %s", huge, back.Big())
	}
}

func TestArithmetic(t *testing.T) {
	a := FromInt64(-17)
	b := FromInt64(5)

	if got := a.Add(b).Int64(); got != -12 {
		t.Errorf("-17 + 5 = %d", got)
	}
	if got := a.Sub(b).Int64(); got != -22 {
		t.Errorf("-17 - 5 = %d", got)
	}
	if got := a.Mul(b).Int64(); got != -85 {
		t.Errorf("-17 * 5 = %d", got)
	}
	// Division truncates towards zero and the remainder follows the
	// dividend.
	if got := a.Div(b).Int64(); got != -3 {
		t.Errorf("-17 / 5 = %d", got)
	}
	if got := a.Mod(b).Int64(); got != -2 {
		t.Errorf("-17 %% 5 = %d", got)
	}
	if got := b.Div(a).Int64(); got != 0 {
		t.Errorf("5 / -17 = %d", got)
	}
	if got := a.Neg().Int64(); got != 17 {
		t.Errorf("-(-17) = %d", got)
	}
	if got := a.Abs().Int64(); got != 17 {
		t.Errorf("abs(-17) = %d", got)
	}
}

func TestBitwise(t *testing.T) {
	a := FromInt64(0b1100)
	b := FromInt64(0b1010)
	if got := a.And(b).Int64(); got != 0b1000 {
		t.Errorf("and = %b", got)
	}
	if got := a.Or(b).Int64(); got != 0b1110 {
		t.Errorf("or = %b", got)
	}
	if got := FromInt64(1).Lsh(10).Int64(); got != 1024 {
		t.Errorf("1 << 10 = %d", got)
	}
	if got := FromInt64(1024).Rsh(3).Int64(); got != 128 {
		t.Errorf("1024 >> 3 = %d", got)
	}
}

func TestClamps(t *testing.T) {
	big := FromInt64(math.MaxInt64).Add(FromInt64(1))
	if got := big.Int64Clamped(); got != math.MaxInt64 {
		t.Errorf("positive clamp = %d", got)
	}
	if got := big.Neg().Int64Clamped(); got != math.MinInt64 {
		t.Errorf("negative clamp = %d", got)
	}
	if got := FromInt64(math.MaxInt64).Int32Clamped(); got != math.MaxInt32 {
		t.Errorf("32-bit positive clamp = %d", got)
	}
	if got := FromInt64(math.MinInt64).Int32Clamped(); got != math.MinInt32 {
		t.Errorf("32-bit negative clamp = %d", got)
	}
	if got := FromInt64(42).Int32Clamped(); got != 42 {
		t.Errorf("in-range clamp = %d", got)
	}
}

func TestZeroValue(t *testing.T) {
	var n Int
	if !n.IsZero() || n.Sign() != 0 {
		t.Error("zero value is not zero")
	}
	if got := n.Serialize(); len(got) != 0 {
		t.Errorf("zero serialized to %x", got)
	}
	if !Deserialize(nil).IsZero() {
		t.Error("empty slice did not decode to zero")
	}
}
