// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// schnorrSigSize is the size of a Schnorr signature; signatures of this
// length dispatch to Schnorr verification, everything else is treated as
// DER ECDSA.
const schnorrSigSize = 64

// parsePubKey parses a compressed or uncompressed secp256k1 public key.
func parsePubKey(pubKey []byte) (*btcec.PublicKey, bool) {
	parsed, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return nil, false
	}
	return parsed, true
}

// verifySignature checks sig over the 32-byte hash with the given public
// key, dispatching on the signature length.
func verifySignature(sig []byte, pubKey *btcec.PublicKey, hash []byte) bool {
	if len(sig) == schnorrSigSize {
		parsed, err := schnorr.ParseSignature(sig)
		if err != nil {
			return false
		}
		return parsed.Verify(hash, pubKey)
	}

	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(hash, pubKey)
}
