// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import (
	"encoding/binary"

	"github.com/atomicals/avmd/domain/avm/script"
	"github.com/atomicals/avmd/domain/avm/txview"
)

// ExecutionContext is the per-invocation read-only context shared by the
// introspection and authorization opcodes: the spending transaction, the
// concatenated unlock+lock script bytes the authorization message commits
// to, and the optional authorization public key supplied by the host.
type ExecutionContext struct {
	tx         *txview.TxView
	fullScript []byte
	authPubKey []byte
}

// NewExecutionContext builds the context for one invocation. fullScript
// must be the unlocking script immediately followed by the locking script.
func NewExecutionContext(tx *txview.TxView, fullScript, authPubKey []byte) *ExecutionContext {
	return &ExecutionContext{
		tx:         tx,
		fullScript: fullScript,
		authPubKey: authPubKey,
	}
}

// Tx returns the spending transaction view.
func (c *ExecutionContext) Tx() *txview.TxView {
	return c.tx
}

// AuthPubKey returns the host-supplied authorization public key, if any.
func (c *ExecutionContext) AuthPubKey() ([]byte, bool) {
	if len(c.authPubKey) == 0 {
		return nil, false
	}
	return c.authPubKey, true
}

// AuthSig scans the transaction outputs for the first "sig" OP_RETURN
// carrier and returns its signature payload.
func (c *ExecutionContext) AuthSig() ([]byte, bool) {
	for _, out := range c.tx.Outputs {
		if sig, ok := script.ExtractSigOpReturn(out.ScriptPubKey); ok {
			return sig, true
		}
	}
	return nil, false
}

// AuthMessage derives the byte sequence signed to authorize the call:
//
//	prev_txid | prev_vout_le32 | unlock | lock | Σ(value_le64 | script)
//
// where outputs carrying the signature itself ("sig" OP_RETURN form) are
// skipped from the output concatenation.
func (c *ExecutionContext) AuthMessage() []byte {
	input := c.tx.Inputs[0]

	var message []byte
	message = append(message, input.PreviousOutpoint.TxID[:]...)

	var scratch [8]byte
	binary.LittleEndian.PutUint32(scratch[:4], input.PreviousOutpoint.Index)
	message = append(message, scratch[:4]...)

	message = append(message, c.fullScript...)

	for _, out := range c.tx.Outputs {
		if _, ok := script.ExtractSigOpReturn(out.ScriptPubKey); ok {
			continue
		}
		binary.LittleEndian.PutUint64(scratch[:], out.Value)
		message = append(message, scratch[:]...)
		message = append(message, out.ScriptPubKey...)
	}
	return message
}
