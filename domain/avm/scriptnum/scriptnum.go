// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scriptnum implements the numeric values used on the interpreter
// stack. Numbers are stored on the stack encoded as little endian with a
// sign bit, and every decode enforces the unique minimal encoding.
package scriptnum

import (
	"github.com/pkg/errors"

	"github.com/atomicals/avmd/domain/avm/bigint"
)

// MaxScriptNumSize is the default maximum number of bytes a decoded script
// number may occupy.
const MaxScriptNumSize = 100000

// ErrOutOfRange is returned when a byte string is longer than the maximum
// accepted size for a script number.
var ErrOutOfRange = errors.New("script number is longer than the maximum accepted size")

// ErrNotMinimal is returned when a byte string is not the minimal encoding
// of the number it represents.
var ErrNotMinimal = errors.New("script number is not minimally encoded")

// Num is a numeric value on the stack. The zero value is the number 0.
type Num struct {
	v bigint.Int
}

// FromInt64 returns the Num holding n.
func FromInt64(n int64) Num {
	return Num{v: bigint.FromInt64(n)}
}

// FromUint64 returns the Num holding n.
func FromUint64(n uint64) Num {
	return Num{v: bigint.FromUint64(n)}
}

// FromBigInt returns the Num holding n.
func FromBigInt(n bigint.Int) Num {
	return Num{v: n}
}

// FromBool returns 1 for true and 0 for false.
func FromBool(b bool) Num {
	if b {
		return FromInt64(1)
	}
	return Num{}
}

// Make decodes a script number from b, rejecting byte strings longer than
// maxSize and byte strings that are not minimally encoded.
func Make(b []byte, maxSize int) (Num, error) {
	if len(b) > maxSize {
		return Num{}, ErrOutOfRange
	}
	if !IsMinimallyEncoded(b) {
		return Num{}, ErrNotMinimal
	}
	return Num{v: bigint.Deserialize(b)}, nil
}

// Bytes returns the minimal script encoding of n.
func (n Num) Bytes() []byte {
	return n.v.Serialize()
}

// BigInt returns the underlying arbitrary-precision value.
func (n Num) BigInt() bigint.Int {
	return n.v
}

// Add returns n + m.
func (n Num) Add(m Num) Num { return Num{v: n.v.Add(m.v)} }

// Sub returns n - m.
func (n Num) Sub(m Num) Num { return Num{v: n.v.Sub(m.v)} }

// Mul returns n * m.
func (n Num) Mul(m Num) Num { return Num{v: n.v.Mul(m.v)} }

// Div returns n / m truncated towards zero. m must be nonzero.
func (n Num) Div(m Num) Num { return Num{v: n.v.Div(m.v)} }

// Mod returns the remainder of n / m with the sign of the dividend. m must
// be nonzero.
func (n Num) Mod(m Num) Num { return Num{v: n.v.Mod(m.v)} }

// Neg returns -n.
func (n Num) Neg() Num { return Num{v: n.v.Neg()} }

// Abs returns |n|.
func (n Num) Abs() Num { return Num{v: n.v.Abs()} }

// And returns n & m.
func (n Num) And(m Num) Num { return Num{v: n.v.And(m.v)} }

// AndInt64 returns n & m.
func (n Num) AndInt64(m int64) Num {
	return Num{v: n.v.And(bigint.FromInt64(m))}
}

// Cmp returns -1, 0 or 1 depending on whether n is less than, equal to or
// greater than m.
func (n Num) Cmp(m Num) int { return n.v.Cmp(m.v) }

// Equal reports whether n == m.
func (n Num) Equal(m Num) bool { return n.Cmp(m) == 0 }

// IsZero reports whether n == 0.
func (n Num) IsZero() bool { return n.v.IsZero() }

// IsNegative reports whether n < 0.
func (n Num) IsNegative() bool { return n.v.Sign() < 0 }

// Int32 returns n clamped to the 32-bit signed range.
func (n Num) Int32() int32 {
	return n.v.Int32Clamped()
}

// Int64 returns n clamped to the 64-bit signed range.
func (n Num) Int64() int64 {
	return n.v.Int64Clamped()
}

// SizeType returns the non-negative 32-bit value of n for use as an index
// or length. Callers must have already range-checked n.
func (n Num) SizeType() int {
	return int(n.v.Int32Clamped())
}

// IsMinimallyEncoded reports whether b is the unique shortest encoding of
// the number it represents. The empty slice is the minimal encoding of 0.
func IsMinimallyEncoded(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	// The most significant byte must carry more than the sign bit, unless
	// the sign bit would otherwise spill into the next byte.
	if b[len(b)-1]&0x7f == 0 {
		if len(b) == 1 || b[len(b)-2]&0x80 == 0 {
			return false
		}
	}
	return true
}

// MinimallyEncode re-minimizes b in place, dropping superfluous most
// significant bytes while preserving the represented number, and returns
// the result. The returned slice aliases b.
func MinimallyEncode(b []byte) []byte {
	if len(b) == 0 {
		return b
	}

	last := b[len(b)-1]
	if last&0x7f != 0 {
		return b
	}
	if len(b) == 1 {
		return b[:0]
	}

	// Scan backwards past zero bytes, moving the sign bit onto the first
	// byte that can absorb it.
	i := len(b) - 1
	for i > 0 {
		if b[i-1] != 0 {
			if b[i-1]&0x80 != 0 {
				// The sign bit does not fit; keep one extra byte.
				b[i] = last & 0x80
				i++
			} else {
				b[i-1] |= last & 0x80
			}
			return b[:i]
		}
		i--
	}
	return b[:0]
}
