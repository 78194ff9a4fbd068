// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"math"
	"math/big"
)

// Int is an immutable arbitrary-precision signed integer. All arithmetic
// returns a fresh value; the zero value of Int is usable and equal to 0.
type Int struct {
	v *big.Int
}

var bigZero = big.NewInt(0)

// FromInt64 returns an Int holding n.
func FromInt64(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// FromUint64 returns an Int holding n.
func FromUint64(n uint64) Int {
	return Int{v: new(big.Int).SetUint64(n)}
}

// FromBig returns an Int holding a copy of n.
func FromBig(n *big.Int) Int {
	return Int{v: new(big.Int).Set(n)}
}

func (n Int) big() *big.Int {
	if n.v == nil {
		return bigZero
	}
	return n.v
}

// Big returns a copy of n as a *big.Int.
func (n Int) Big() *big.Int {
	return new(big.Int).Set(n.big())
}

// Add returns n + m.
func (n Int) Add(m Int) Int {
	return Int{v: new(big.Int).Add(n.big(), m.big())}
}

// Sub returns n - m.
func (n Int) Sub(m Int) Int {
	return Int{v: new(big.Int).Sub(n.big(), m.big())}
}

// Mul returns n * m.
func (n Int) Mul(m Int) Int {
	return Int{v: new(big.Int).Mul(n.big(), m.big())}
}

// Div returns n / m truncated towards zero. Division by zero panics; callers
// are required to reject zero divisors first.
func (n Int) Div(m Int) Int {
	return Int{v: new(big.Int).Quo(n.big(), m.big())}
}

// Mod returns the remainder of n / m. The sign of the result follows the
// dividend, matching truncated division.
func (n Int) Mod(m Int) Int {
	return Int{v: new(big.Int).Rem(n.big(), m.big())}
}

// Neg returns -n.
func (n Int) Neg() Int {
	return Int{v: new(big.Int).Neg(n.big())}
}

// Abs returns |n|.
func (n Int) Abs() Int {
	return Int{v: new(big.Int).Abs(n.big())}
}

// And returns n & m over the infinite two's-complement representation.
func (n Int) And(m Int) Int {
	return Int{v: new(big.Int).And(n.big(), m.big())}
}

// Or returns n | m over the infinite two's-complement representation.
func (n Int) Or(m Int) Int {
	return Int{v: new(big.Int).Or(n.big(), m.big())}
}

// Lsh returns n << bits.
func (n Int) Lsh(bits uint) Int {
	return Int{v: new(big.Int).Lsh(n.big(), bits)}
}

// Rsh returns n >> bits (arithmetic shift).
func (n Int) Rsh(bits uint) Int {
	return Int{v: new(big.Int).Rsh(n.big(), bits)}
}

// Cmp returns -1, 0 or 1 depending on whether n is less than, equal to or
// greater than m.
func (n Int) Cmp(m Int) int {
	return n.big().Cmp(m.big())
}

// Sign returns -1, 0 or 1 depending on the sign of n.
func (n Int) Sign() int {
	return n.big().Sign()
}

// IsZero reports whether n == 0.
func (n Int) IsZero() bool {
	return n.big().Sign() == 0
}

// Equal reports whether n == m.
func (n Int) Equal(m Int) bool {
	return n.Cmp(m) == 0
}

// IsInt64 reports whether n fits in an int64.
func (n Int) IsInt64() bool {
	return n.big().IsInt64()
}

// Int64 returns n as an int64. The value must fit; use Int64Clamped when it
// may not.
func (n Int) Int64() int64 {
	return n.big().Int64()
}

// Int64Clamped returns n clamped to the int64 range.
func (n Int) Int64Clamped() int64 {
	if n.big().IsInt64() {
		return n.big().Int64()
	}
	if n.big().Sign() > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

// Int32Clamped returns n clamped to the int32 range.
func (n Int) Int32Clamped() int32 {
	v := n.Int64Clamped()
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
