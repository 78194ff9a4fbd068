// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statecontext

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// RefSize is the size in bytes of an atomical reference, the identifier of
// a fungible-token class or a unique non-fungible token.
const RefSize = 36

// ErrRefSize is returned when a byte string that should be an atomical
// reference is not exactly RefSize bytes.
var ErrRefSize = errors.New("atomical reference must be exactly 36 bytes")

// Ref is a 288-bit atomical reference.
type Ref [RefSize]byte

// RefFromBytes converts a byte string into a Ref.
func RefFromBytes(b []byte) (Ref, error) {
	var ref Ref
	if len(b) != RefSize {
		return ref, errors.Wrapf(ErrRefSize, "got %d bytes", len(b))
	}
	copy(ref[:], b)
	return ref, nil
}

// RefFromHex parses the hex form used as a map key in the state documents.
func RefFromHex(s string) (Ref, error) {
	var ref Ref
	b, err := hex.DecodeString(s)
	if err != nil {
		return ref, errors.Wrapf(ErrRefSize, "invalid hex %q", s)
	}
	return RefFromBytes(b)
}

// Hex returns the lowercase hex form used as a map key in the state
// documents.
func (r Ref) Hex() string {
	return hex.EncodeToString(r[:])
}

// Bytes returns the reference as a byte slice.
func (r Ref) Bytes() []byte {
	b := r
	return b[:]
}
