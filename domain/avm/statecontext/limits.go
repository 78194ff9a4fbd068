// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statecontext

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// Limits bounds the byte sizes of the final state documents. The values are
// host configuration, not consensus; byte counts are computed on the raw
// (pre-CBOR) key and value bytes, with integer values counted as 8 bytes.
type Limits struct {
	MaxStateFinalBytes     int
	MaxStateUpdateBytes    int
	MaxBalancesBytes       int
	MaxBalancesUpdateBytes int
}

// DefaultLimits are the limits used when the host supplies none.
func DefaultLimits() Limits {
	return Limits{
		MaxStateFinalBytes:     100000,
		MaxStateUpdateBytes:    100000,
		MaxBalancesBytes:       100000,
		MaxBalancesUpdateBytes: 100000,
	}
}

// Document format and size-limit errors. The entry point maps each to its
// ABI error code.
var (
	ErrStateFormat = errors.New("state document is malformed")

	ErrStateSize              = errors.New("final state exceeds the size limit")
	ErrStateUpdatesSize       = errors.New("state updates exceed the size limit")
	ErrStateDeletesSize       = errors.New("state deletes exceed the size limit")
	ErrFtBalancesSize         = errors.New("ft balances exceed the size limit")
	ErrFtBalancesUpdatesSize  = errors.New("ft balance updates exceed the size limit")
	ErrNftBalancesSize        = errors.New("nft balances exceed the size limit")
	ErrNftBalancesUpdatesSize = errors.New("nft balance updates exceed the size limit")
)

func isHexString(s string) bool {
	if len(s) < 2 || len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// measureKV validates a two-level key/value document: hex keys at both
// levels, non-empty inner objects, hex string values. It returns the raw
// byte count of keys and values.
func measureKV(m KVMap) (int, error) {
	byteCount := 0
	for ks, inner := range m {
		if !isHexString(ks) {
			return 0, errors.Wrapf(ErrStateFormat, "keyspace %q is not hex", ks)
		}
		byteCount += len(ks) / 2
		if len(inner) == 0 {
			return 0, errors.Wrapf(ErrStateFormat, "keyspace %q is empty", ks)
		}
		for k, v := range inner {
			if !isHexString(k) {
				return 0, errors.Wrapf(ErrStateFormat, "key %q is not hex", k)
			}
			byteCount += len(k) / 2
			if !isHexString(v) {
				return 0, errors.Wrapf(ErrStateFormat, "value for key %q is not hex", k)
			}
			byteCount += len(v) / 2
		}
	}
	return byteCount, nil
}

// measureDeletes validates the delete journal: hex keys, non-empty inner
// objects, inner values strictly true. Values do not count towards size.
func measureDeletes(m map[string]map[string]bool) (int, error) {
	byteCount := 0
	for ks, inner := range m {
		if !isHexString(ks) {
			return 0, errors.Wrapf(ErrStateFormat, "keyspace %q is not hex", ks)
		}
		byteCount += len(ks) / 2
		if len(inner) == 0 {
			return 0, errors.Wrapf(ErrStateFormat, "keyspace %q is empty", ks)
		}
		for k, v := range inner {
			if !isHexString(k) {
				return 0, errors.Wrapf(ErrStateFormat, "key %q is not hex", k)
			}
			if !v {
				return 0, errors.Wrapf(ErrStateFormat, "delete marker for %q is false", k)
			}
			byteCount += len(k) / 2
		}
	}
	return byteCount, nil
}

// measureFt validates a fungible balance document. Zero balances are only
// legal in update journals, where they signal removal.
func measureFt(m map[string]uint64, allowZero bool) (int, error) {
	byteCount := 0
	for k, v := range m {
		if !isHexString(k) {
			return 0, errors.Wrapf(ErrStateFormat, "ft key %q is not hex", k)
		}
		if v == 0 && !allowZero {
			return 0, errors.Wrapf(ErrStateFormat, "ft key %q holds a zero balance", k)
		}
		byteCount += len(k)/2 + 8
	}
	return byteCount, nil
}

// measureNft validates a non-fungible document. False entries are only
// legal in update journals, where they signal release.
func measureNft(m map[string]bool, allowFalse bool) (int, error) {
	byteCount := 0
	for k, v := range m {
		if !isHexString(k) {
			return 0, errors.Wrapf(ErrStateFormat, "nft key %q is not hex", k)
		}
		if !v && !allowFalse {
			return 0, errors.Wrapf(ErrStateFormat, "nft key %q holds false", k)
		}
		byteCount += len(k) / 2
	}
	return byteCount, nil
}

// ValidateRestrictions checks document shapes and, where a limit applies,
// sizes. It runs at construction over the host snapshots and again at
// finalization over the canonicalized result. The incoming pools are shape
// checked but carry no size limit.
func (c *Context) ValidateRestrictions(limits Limits) error {
	stateBytes, err := measureKV(c.kvLive)
	if err != nil {
		return err
	}
	if stateBytes > limits.MaxStateFinalBytes {
		return errors.Wrapf(ErrStateSize, "%d > %d", stateBytes, limits.MaxStateFinalBytes)
	}

	updatesBytes, err := measureKV(c.kvUpdates)
	if err != nil {
		return err
	}
	if updatesBytes > limits.MaxStateUpdateBytes {
		return errors.Wrapf(ErrStateUpdatesSize, "%d > %d", updatesBytes, limits.MaxStateUpdateBytes)
	}

	deletesBytes, err := measureDeletes(c.kvDeletes)
	if err != nil {
		return err
	}
	if deletesBytes > limits.MaxStateUpdateBytes {
		return errors.Wrapf(ErrStateDeletesSize, "%d > %d", deletesBytes, limits.MaxStateUpdateBytes)
	}

	ftBytes, err := measureFt(c.ftLive, false)
	if err != nil {
		return err
	}
	if ftBytes > limits.MaxBalancesBytes {
		return errors.Wrapf(ErrFtBalancesSize, "%d > %d", ftBytes, limits.MaxBalancesBytes)
	}

	ftUpdatesBytes, err := measureFt(c.ftUpdates, true)
	if err != nil {
		return err
	}
	if ftUpdatesBytes > limits.MaxBalancesUpdateBytes {
		return errors.Wrapf(ErrFtBalancesUpdatesSize, "%d > %d",
			ftUpdatesBytes, limits.MaxBalancesUpdateBytes)
	}

	if _, err := measureFt(c.ftIncoming, false); err != nil {
		return err
	}

	nftBytes, err := measureNft(c.nftLive, false)
	if err != nil {
		return err
	}
	if nftBytes > limits.MaxBalancesBytes {
		return errors.Wrapf(ErrNftBalancesSize, "%d > %d", nftBytes, limits.MaxBalancesBytes)
	}

	nftUpdatesBytes, err := measureNft(c.nftUpdates, true)
	if err != nil {
		return err
	}
	if nftUpdatesBytes > limits.MaxBalancesUpdateBytes {
		return errors.Wrapf(ErrNftBalancesUpdatesSize, "%d > %d",
			nftUpdatesBytes, limits.MaxBalancesUpdateBytes)
	}

	_, err = measureNft(c.nftIncoming, false)
	return err
}
