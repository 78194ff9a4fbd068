// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import (
	"fmt"

	"github.com/atomicals/avmd/domain/avm/script"
	"github.com/atomicals/avmd/domain/avm/scriptnum"
	"github.com/atomicals/avmd/domain/avm/txview"
)

// lockTimeNumSize allows up to 5-byte operands for the lock-time opcodes so
// times past the 32-bit horizon remain expressible.
const lockTimeNumSize = 5

// opcodeCheckLockTimeVerify compares the operand on top of the stack
// against the transaction lock time. Without the enabling flag it behaves
// as a NOP.
func opcodeCheckLockTimeVerify(vm *Engine) error {
	if vm.flags&FlagCheckLockTimeVerify == 0 {
		return nil
	}

	raw, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	lockTime, err := scriptnum.Make(raw, lockTimeNumSize)
	if err != nil {
		return scriptError(ErrInvalidNumberRange, err.Error())
	}
	if lockTime.IsNegative() {
		return scriptError(ErrNegativeLockTime, fmt.Sprintf(
			"negative lock time %s", lockTime.BigInt().Big()))
	}
	if err := vm.requireContext(); err != nil {
		return err
	}

	tx := vm.execCtx.Tx()
	txLockTime := int64(tx.LockTime)
	operand := lockTime.Int64()

	// Lock-by-height and lock-by-time operands only compare against a
	// lock time of the same kind.
	threshold := int64(txview.LockTimeThreshold)
	if (txLockTime < threshold) != (operand < threshold) {
		return scriptError(ErrUnsatisfiedLockTime,
			"lock time type differs from the transaction lock time type")
	}
	if operand > txLockTime {
		return scriptError(ErrUnsatisfiedLockTime, fmt.Sprintf(
			"lock time %d not yet reached (transaction at %d)", operand, txLockTime))
	}
	if tx.Inputs[0].Sequence == txview.SequenceFinal {
		return scriptError(ErrUnsatisfiedLockTime,
			"transaction input is final")
	}
	return nil
}

// opcodeCheckSequenceVerify compares the operand on top of the stack
// against the signed input's sequence number. Without the enabling flag it
// behaves as a NOP.
func opcodeCheckSequenceVerify(vm *Engine) error {
	if vm.flags&FlagCheckSequenceVerify == 0 {
		return nil
	}

	raw, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	sequence, err := scriptnum.Make(raw, lockTimeNumSize)
	if err != nil {
		return scriptError(ErrInvalidNumberRange, err.Error())
	}
	if sequence.IsNegative() {
		return scriptError(ErrNegativeLockTime, fmt.Sprintf(
			"negative sequence %s", sequence.BigInt().Big()))
	}

	// Operands with the disable flag set keep the opcode soft-fork
	// extensible.
	if !sequence.AndInt64(int64(txview.SequenceLockTimeDisableFlag)).IsZero() {
		return nil
	}
	if err := vm.requireContext(); err != nil {
		return err
	}

	tx := vm.execCtx.Tx()
	if uint32(tx.Version) < 2 {
		return scriptError(ErrUnsatisfiedLockTime,
			"transaction version does not support relative lock times")
	}
	txSequence := int64(tx.Inputs[0].Sequence)
	if txSequence&int64(txview.SequenceLockTimeDisableFlag) != 0 {
		return scriptError(ErrUnsatisfiedLockTime,
			"transaction input sequence has relative lock times disabled")
	}

	mask := int64(txview.SequenceLockTimeTypeFlag | txview.SequenceLockTimeMask)
	txSequenceMasked := txSequence & mask
	operandMasked := sequence.AndInt64(mask).Int64()

	typeFlag := int64(txview.SequenceLockTimeTypeFlag)
	if (txSequenceMasked < typeFlag) != (operandMasked < typeFlag) {
		return scriptError(ErrUnsatisfiedLockTime,
			"sequence lock type differs from the transaction input")
	}
	if operandMasked > txSequenceMasked {
		return scriptError(ErrUnsatisfiedLockTime, fmt.Sprintf(
			"sequence %d not yet reached (input at %d)", operandMasked, txSequenceMasked))
	}
	return nil
}

// opcodeTxNullary pushes a top-level transaction field.
func opcodeTxNullary(vm *Engine) error {
	if err := vm.requireContext(); err != nil {
		return err
	}
	tx := vm.execCtx.Tx()

	var n scriptnum.Num
	switch vm.currentOpcode() {
	case script.OpTxVersion:
		n = scriptnum.FromInt64(int64(tx.Version))
	case script.OpTxInputCount:
		n = scriptnum.FromInt64(int64(len(tx.Inputs)))
	case script.OpTxOutputCount:
		n = scriptnum.FromInt64(int64(len(tx.Outputs)))
	case script.OpTxLockTime:
		n = scriptnum.FromInt64(int64(tx.LockTime))
	}
	vm.dstack.PushByteArray(n.Bytes())
	return nil
}

// opcodeTxUnary consumes an index and pushes the addressed input or output
// field.
func opcodeTxUnary(vm *Engine) error {
	if err := vm.requireContext(); err != nil {
		return err
	}
	sn, err := vm.popNum()
	if err != nil {
		return err
	}
	index := int(sn.Int32())
	tx := vm.execCtx.Tx()

	validInput := func() error {
		if index < 0 || index >= len(tx.Inputs) {
			return scriptError(ErrInvalidTxInputIndex, fmt.Sprintf(
				"input index %d out of range for %d inputs", index, len(tx.Inputs)))
		}
		return nil
	}
	validOutput := func() error {
		if index < 0 || index >= len(tx.Outputs) {
			return scriptError(ErrInvalidTxOutputIndex, fmt.Sprintf(
				"output index %d out of range for %d outputs", index, len(tx.Outputs)))
		}
		return nil
	}

	switch vm.currentOpcode() {
	case script.OpOutpointTxHash:
		if err := validInput(); err != nil {
			return err
		}
		vm.dstack.PushByteArray(tx.Inputs[index].PreviousOutpoint.TxID[:])

	case script.OpOutpointIndex:
		if err := validInput(); err != nil {
			return err
		}
		n := scriptnum.FromInt64(int64(tx.Inputs[index].PreviousOutpoint.Index))
		vm.dstack.PushByteArray(n.Bytes())

	case script.OpInputBytecode:
		if err := validInput(); err != nil {
			return err
		}
		sigScript := tx.Inputs[index].SignatureScript
		if len(sigScript) > script.MaxElementSize {
			return scriptError(ErrPushSize, fmt.Sprintf(
				"input script of %d bytes exceeds the maximum element size", len(sigScript)))
		}
		vm.dstack.PushByteArray(sigScript)

	case script.OpInputSequenceNumber:
		if err := validInput(); err != nil {
			return err
		}
		n := scriptnum.FromInt64(int64(tx.Inputs[index].Sequence))
		vm.dstack.PushByteArray(n.Bytes())

	case script.OpOutputValue:
		if err := validOutput(); err != nil {
			return err
		}
		n := scriptnum.FromUint64(tx.Outputs[index].Value)
		vm.dstack.PushByteArray(n.Bytes())

	case script.OpOutputBytecode:
		if err := validOutput(); err != nil {
			return err
		}
		lockScript := tx.Outputs[index].ScriptPubKey
		if len(lockScript) > script.MaxElementSize {
			return scriptError(ErrPushSize, fmt.Sprintf(
				"output script of %d bytes exceeds the maximum element size", len(lockScript)))
		}
		vm.dstack.PushByteArray(lockScript)
	}
	return nil
}
