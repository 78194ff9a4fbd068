// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptnum

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestIsMinimallyEncoded(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		want bool
	}{
		{"empty", nil, true},
		{"one", []byte{0x01}, true},
		{"negative one", []byte{0x81}, true},
		{"lone zero", []byte{0x00}, false},
		{"lone sign bit", []byte{0x80}, false},
		{"padded one", []byte{0x01, 0x00}, false},
		{"sign spill is minimal", []byte{0x80, 0x00}, true},
		{"negative sign spill is minimal", []byte{0x80, 0x80}, true},
		{"double padding", []byte{0x01, 0x00, 0x00}, false},
		{"high bit in second-from-top", []byte{0xff, 0x7f}, true},
	}

	for _, test := range tests {
		if got := IsMinimallyEncoded(test.b); got != test.want {
			t.Errorf("%s: IsMinimallyEncoded(%x) = %v, want %v",
				test.name, test.b, got, test.want)
		}
	}
}

func TestMakeRejects(t *testing.T) {
	if _, err := Make([]byte{0x01, 0x00}, MaxScriptNumSize); !errors.Is(err, ErrNotMinimal) {
		t.Errorf("non-minimal encoding: got %v", err)
	}
	if _, err := Make([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, 5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("6 bytes with max 5: got %v", err)
	}
	if _, err := Make([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, 5); err != nil {
		t.Errorf("5 bytes with max 5: got %v", err)
	}
}

// TestBytesRoundTrip checks that re-decoding a serialized number with the
// same maximum size yields an equal number.
func TestBytesRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, -127, 128, -128, 255, 256, 65535, -65535,
		1 << 31, -(1 << 31), 1<<62 + 12345}
	for _, v := range values {
		n := FromInt64(v)
		back, err := Make(n.Bytes(), MaxScriptNumSize)
		if err != nil {
			t.Errorf("%d: re-decode failed: %v", v, err)
			continue
		}
		if !n.Equal(back) {
			t.Errorf("%d: round trip yielded %s", v, back.BigInt().Big())
		}
	}
}

func TestMinimallyEncode(t *testing.T) {
	tests := []struct {
		in   []byte
		want []byte
	}{
		{nil, nil},
		{[]byte{0x00}, []byte{}},
		{[]byte{0x80}, []byte{}},
		{[]byte{0x01, 0x00}, []byte{0x01}},
		{[]byte{0x01, 0x80}, []byte{0x81}},
		{[]byte{0x01, 0x00, 0x00}, []byte{0x01}},
		{[]byte{0x80, 0x00}, []byte{0x80, 0x00}},
		{[]byte{0x80, 0x80}, []byte{0x80, 0x80}},
		{[]byte{0xff, 0x00}, []byte{0xff, 0x00}},
		{[]byte{0xff, 0x80}, []byte{0xff, 0x80}},
		{[]byte{0x01}, []byte{0x01}},
	}

	for _, test := range tests {
		in := append([]byte(nil), test.in...)
		got := MinimallyEncode(in)
		if len(got) != len(test.want) || (len(got) > 0 && !bytes.Equal(got, test.want)) {
			t.Errorf("MinimallyEncode(%x) = %x, want %x", test.in, got, test.want)
		}
		if !IsMinimallyEncoded(got) {
			t.Errorf("MinimallyEncode(%x) = %x is not minimal", test.in, got)
		}
	}
}

func TestArithmeticPromotes(t *testing.T) {
	// Results past the 64-bit range must stay exact.
	big := FromInt64(1 << 62)
	sum := big.Add(big).Add(big)
	back, err := Make(sum.Bytes(), MaxScriptNumSize)
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if !sum.Equal(back) {
		t.Fatalf("3 * 2^62 corrupted: %s", back.BigInt().Big())
	}
	if sum.Cmp(big) <= 0 {
		t.Fatal("3 * 2^62 compared <= 2^62")
	}
}

func TestComparisonsAndBools(t *testing.T) {
	if !FromBool(true).Equal(FromInt64(1)) || !FromBool(false).Equal(FromInt64(0)) {
		t.Error("FromBool encoding mismatch")
	}
	if FromInt64(-5).Cmp(FromInt64(3)) >= 0 {
		t.Error("-5 compared >= 3")
	}
	if !FromInt64(-5).IsNegative() || FromInt64(5).IsNegative() {
		t.Error("IsNegative mismatch")
	}
	if got := FromInt64(6).AndInt64(3).Int64(); got != 2 {
		t.Errorf("6 & 3 = %d", got)
	}
}

func TestInt32Clamp(t *testing.T) {
	if got := FromInt64(1 << 40).Int32(); got != 1<<31-1 {
		t.Errorf("clamp high = %d", got)
	}
	if got := FromInt64(-(1 << 40)).Int32(); got != -(1 << 31) {
		t.Errorf("clamp low = %d", got)
	}
}
