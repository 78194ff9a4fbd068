// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statecontext

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
)

// HashSize is the size of the state hash in bytes.
const HashSize = sha256.Size

// Canonical digestion: every sub-document reduces to the SHA-256 of its
// entries serialized in ascending raw-key-byte order. Lowercase hex string
// order equals raw byte order, so sorting the hex keys is sufficient.

func mustHexBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("statecontext: non-hex key in validated document: " + s)
	}
	return b
}

func digestKV(m KVMap) [HashSize]byte {
	var preimage []byte
	for _, ks := range sortedKeys(len(m), func(add func(string)) {
		for k := range m {
			add(k)
		}
	}) {
		preimage = append(preimage, mustHexBytes(ks)...)
		inner := m[ks]
		for _, k := range sortedKeys(len(inner), func(add func(string)) {
			for ik := range inner {
				add(ik)
			}
		}) {
			preimage = append(preimage, mustHexBytes(k)...)
			preimage = append(preimage, mustHexBytes(inner[k])...)
		}
	}
	return sha256.Sum256(preimage)
}

func digestDeletes(m map[string]map[string]bool) [HashSize]byte {
	var preimage []byte
	for _, ks := range sortedKeys(len(m), func(add func(string)) {
		for k := range m {
			add(k)
		}
	}) {
		preimage = append(preimage, mustHexBytes(ks)...)
		inner := m[ks]
		for _, k := range sortedKeys(len(inner), func(add func(string)) {
			for ik := range inner {
				add(ik)
			}
		}) {
			preimage = append(preimage, mustHexBytes(k)...)
		}
	}
	return sha256.Sum256(preimage)
}

// digestFt and digestNft reduce balance documents to the digest of their
// keys only; values are covered transitively by the update journals and
// withdrawal maps.
func digestFt(m map[string]uint64) [HashSize]byte {
	var preimage []byte
	for _, k := range ftKeysSorted(m) {
		preimage = append(preimage, mustHexBytes(k)...)
	}
	return sha256.Sum256(preimage)
}

func digestNft(m map[string]bool) [HashSize]byte {
	var preimage []byte
	for _, k := range nftKeysSorted(m) {
		preimage = append(preimage, mustHexBytes(k)...)
	}
	return sha256.Sum256(preimage)
}

func digestFtWithdraws(m map[string]map[uint32]uint64) [HashSize]byte {
	var preimage []byte
	for _, k := range sortedKeys(len(m), func(add func(string)) {
		for key := range m {
			add(key)
		}
	}) {
		preimage = append(preimage, mustHexBytes(k)...)
		outputs := m[k]
		indexes := make([]uint32, 0, len(outputs))
		for index := range outputs {
			indexes = append(indexes, index)
		}
		sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })
		var scratch [8]byte
		for _, index := range indexes {
			binary.LittleEndian.PutUint64(scratch[:], uint64(index))
			preimage = append(preimage, scratch[:]...)
			binary.LittleEndian.PutUint64(scratch[:], outputs[index])
			preimage = append(preimage, scratch[:]...)
		}
	}
	return sha256.Sum256(preimage)
}

func digestNftWithdraws(m map[string]uint32) [HashSize]byte {
	var preimage []byte
	var scratch [4]byte
	for _, k := range sortedKeys(len(m), func(add func(string)) {
		for key := range m {
			add(key)
		}
	}) {
		preimage = append(preimage, mustHexBytes(k)...)
		binary.LittleEndian.PutUint32(scratch[:], m[k])
		preimage = append(preimage, scratch[:]...)
	}
	return sha256.Sum256(preimage)
}

// StateHash rolls the previous state hash and every input and output
// document into the chained 32-byte digest. The concatenation order is
// fixed; changing it breaks the chain.
func (c *Context) StateHash(prevStateHash [HashSize]byte) [HashSize]byte {
	digests := [][HashSize]byte{
		digestNft(c.nftIncoming),
		digestFt(c.ftIncoming),
		digestKV(c.kvLive),
		digestKV(c.kvUpdates),
		digestDeletes(c.kvDeletes),
		digestNft(c.nftLive),
		digestFt(c.ftLive),
		digestNft(c.nftUpdates),
		digestFt(c.ftUpdates),
		digestNftWithdraws(c.nftWithdraws),
		digestFtWithdraws(c.ftWithdraws),
	}

	preimage := make([]byte, 0, HashSize*(len(digests)+1))
	preimage = append(preimage, prevStateHash[:]...)
	for _, digest := range digests {
		preimage = append(preimage, digest[:]...)
	}
	return sha256.Sum256(preimage)
}
