// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txview provides a read-only view over the spending transaction
// consumed by the introspection opcodes. The entry point parses the wire
// bytes once; everything downstream treats the view as immutable.
package txview

// TxIDSize is the size of a transaction id in bytes.
const TxIDSize = 32

// TxID is the id of the transaction referenced by an outpoint, in the byte
// order it appears on the wire.
type TxID [TxIDSize]byte

// Outpoint identifies the previous output being spent.
type Outpoint struct {
	TxID  TxID
	Index uint32
}

// TxIn is a single transaction input.
type TxIn struct {
	PreviousOutpoint Outpoint
	SignatureScript  []byte
	Sequence         uint32
	Witness          [][]byte
}

// TxOut is a single transaction output.
type TxOut struct {
	Value        uint64
	ScriptPubKey []byte
}

// TxView is the decoded spending transaction.
type TxView struct {
	Version  int32
	Inputs   []*TxIn
	Outputs  []*TxOut
	LockTime uint32
}

// SequenceLockTimeDisableFlag set in a sequence number disables relative
// lock-time semantics for that input.
const SequenceLockTimeDisableFlag = uint32(1) << 31

// SequenceLockTimeTypeFlag selects time-based rather than height-based
// relative lock-time.
const SequenceLockTimeTypeFlag = uint32(1) << 22

// SequenceLockTimeMask extracts the lock-time value from a sequence number.
const SequenceLockTimeMask = uint32(0x0000ffff)

// SequenceFinal is the sequence number that finalizes an input.
const SequenceFinal = uint32(0xffffffff)

// LockTimeThreshold is the boundary between block-height and unix-time
// interpretations of a lock time.
const LockTimeThreshold = uint32(500000000)
