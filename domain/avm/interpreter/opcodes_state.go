// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import (
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/atomicals/avmd/crypto/eaglesong"
	"github.com/atomicals/avmd/domain/avm/blockheader"
	"github.com/atomicals/avmd/domain/avm/script"
	"github.com/atomicals/avmd/domain/avm/scriptnum"
	"github.com/atomicals/avmd/domain/avm/statecontext"
)

// popRef pops an atomical reference operand, enforcing the 36-byte size.
func (vm *Engine) popRef() (statecontext.Ref, error) {
	raw, err := vm.dstack.PopByteArray()
	if err != nil {
		return statecontext.Ref{}, err
	}
	ref, err := statecontext.RefFromBytes(raw)
	if err != nil {
		return statecontext.Ref{}, scriptError(ErrAtomicalRefSize, fmt.Sprintf(
			"atomical reference of %d bytes", len(raw)))
	}
	return ref, nil
}

// popStateKey pops a keyspace or key-name operand, enforcing the state key
// size bound.
func (vm *Engine) popStateKey() ([]byte, error) {
	raw, err := vm.dstack.PopByteArray()
	if err != nil {
		return nil, err
	}
	if len(raw) > statecontext.MaxStateKeySize {
		return nil, scriptError(ErrStateKeySize, fmt.Sprintf(
			"state key of %d bytes exceeds the maximum %d",
			len(raw), statecontext.MaxStateKeySize))
	}
	return raw, nil
}

// popTypeSelector pops the live/incoming selector operand (0 or 1) for the
// token query opcodes, reporting failures with the given code.
func (vm *Engine) popTypeSelector(code ErrorCode) (int, error) {
	sn, err := vm.popNum()
	if err != nil {
		return 0, err
	}
	selector := int(sn.Int32())
	if selector < 0 || selector > 1 {
		return 0, scriptError(code, fmt.Sprintf("type selector %d", selector))
	}
	return selector, nil
}

// opcodeTokenUnary handles the one-operand token opcodes: OP_FT_BALANCE_ADD,
// OP_NFT_PUT, OP_FT_COUNT and OP_NFT_COUNT.
func opcodeTokenUnary(vm *Engine) error {
	if err := vm.requireContext(); err != nil {
		return err
	}
	if vm.dstack.Depth() < 1 {
		return scriptError(ErrInvalidStackOperation, "token opcode needs 1 item")
	}

	switch vm.currentOpcode() {
	case script.OpFtBalanceAdd:
		ref, err := vm.popRef()
		if err != nil {
			return err
		}
		if !vm.state.FtBalanceAdd(ref) {
			return scriptError(ErrFtBalanceAdd, fmt.Sprintf(
				"ft %s has no incoming balance or was already added", ref.Hex()))
		}

	case script.OpNftPut:
		ref, err := vm.popRef()
		if err != nil {
			return err
		}
		if !vm.state.NftPut(ref) {
			return scriptError(ErrNftPut, fmt.Sprintf(
				"nft %s has no incoming entry or was already put", ref.Hex()))
		}

	case script.OpFtCount:
		selector, err := vm.popTypeSelector(ErrFtCountType)
		if err != nil {
			return err
		}
		count := vm.state.FtCount()
		if selector == 1 {
			count = vm.state.FtCountIncoming()
		}
		vm.dstack.PushByteArray(scriptnum.FromInt64(int64(count)).Bytes())

	case script.OpNftCount:
		selector, err := vm.popTypeSelector(ErrNftCountType)
		if err != nil {
			return err
		}
		count := vm.state.NftCount()
		if selector == 1 {
			count = vm.state.NftCountIncoming()
		}
		vm.dstack.PushByteArray(scriptnum.FromInt64(int64(count)).Bytes())
	}
	return nil
}

// opcodeStateBinary handles the two-operand state opcodes.
func opcodeStateBinary(vm *Engine) error {
	if err := vm.requireContext(); err != nil {
		return err
	}
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "state opcode needs 2 items")
	}

	switch vm.currentOpcode() {
	case script.OpKvExists:
		key, err := vm.popStateKey()
		if err != nil {
			return err
		}
		keyspace, err := vm.popStateKey()
		if err != nil {
			return err
		}
		vm.pushBool(vm.state.KVExists(keyspace, key))

	case script.OpKvGet:
		key, err := vm.popStateKey()
		if err != nil {
			return err
		}
		keyspace, err := vm.popStateKey()
		if err != nil {
			return err
		}
		value, ok := vm.state.KVGet(keyspace, key)
		if !ok {
			return scriptError(ErrStateKeyNotFound, "no value for state key")
		}
		vm.dstack.PushByteArray(value)

	case script.OpKvDelete:
		key, err := vm.popStateKey()
		if err != nil {
			return err
		}
		keyspace, err := vm.popStateKey()
		if err != nil {
			return err
		}
		vm.state.KVDelete(keyspace, key)

	case script.OpNftWithdraw:
		ref, err := vm.popRef()
		if err != nil {
			return err
		}
		indexNum, err := vm.popNum()
		if err != nil {
			return err
		}
		index := int(indexNum.Int32())
		if index < 0 || index >= len(vm.execCtx.Tx().Outputs) {
			return scriptError(ErrWithdrawNftOutputIndex, fmt.Sprintf(
				"withdraw output index %d out of range", index))
		}
		if !vm.state.WithdrawNft(ref, uint32(index)) {
			return scriptError(ErrWithdrawNft, fmt.Sprintf(
				"nft %s is not held by the contract", ref.Hex()))
		}

	case script.OpFtBalance:
		selector, err := vm.popTypeSelector(ErrFtBalanceType)
		if err != nil {
			return err
		}
		ref, err := vm.popRef()
		if err != nil {
			return err
		}
		balance := vm.state.FtBalance(ref)
		if selector == 1 {
			balance = vm.state.FtBalanceIncoming(ref)
		}
		vm.dstack.PushByteArray(scriptnum.FromUint64(balance).Bytes())

	case script.OpNftExists:
		selector, err := vm.popTypeSelector(ErrNftExistsType)
		if err != nil {
			return err
		}
		ref, err := vm.popRef()
		if err != nil {
			return err
		}
		exists := vm.state.NftExists(ref)
		if selector == 1 {
			exists = vm.state.NftExistsIncoming(ref)
		}
		vm.pushBool(exists)

	case script.OpFtItem:
		selector, err := vm.popTypeSelector(ErrFtItemType)
		if err != nil {
			return err
		}
		indexNum, err := vm.popNum()
		if err != nil {
			return err
		}
		index := int(indexNum.Int32())
		if index < 0 {
			return scriptError(ErrFtItemIndex, fmt.Sprintf("ft item index %d", index))
		}
		ref, ok := vm.state.FtItem(index)
		if selector == 1 {
			ref, ok = vm.state.FtItemIncoming(index)
		}
		if !ok {
			return scriptError(ErrFtItemIndex, fmt.Sprintf(
				"no ft item at index %d", index))
		}
		vm.dstack.PushByteArray(ref.Bytes())

	case script.OpNftItem:
		selector, err := vm.popTypeSelector(ErrNftItemType)
		if err != nil {
			return err
		}
		indexNum, err := vm.popNum()
		if err != nil {
			return err
		}
		index := int(indexNum.Int32())
		if index < 0 {
			return scriptError(ErrNftItemIndex, fmt.Sprintf("nft item index %d", index))
		}
		ref, ok := vm.state.NftItem(index)
		if selector == 1 {
			ref, ok = vm.state.NftItemIncoming(index)
		}
		if !ok {
			return scriptError(ErrNftItemIndex, fmt.Sprintf(
				"no nft item at index %d", index))
		}
		vm.dstack.PushByteArray(ref.Bytes())

	case script.OpGetBlockInfo:
		return vm.opGetBlockInfo()

	case script.OpDecodeBlockInfo:
		return vm.opDecodeBlockInfo()

	case script.OpHashFn:
		return vm.opHashFn()
	}
	return nil
}

// opcodeStateTernary handles OP_KV_PUT and OP_FT_WITHDRAW.
func opcodeStateTernary(vm *Engine) error {
	if err := vm.requireContext(); err != nil {
		return err
	}
	if vm.dstack.Depth() < 3 {
		return scriptError(ErrInvalidStackOperation, "state opcode needs 3 items")
	}

	switch vm.currentOpcode() {
	case script.OpKvPut:
		value, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		key, err := vm.popStateKey()
		if err != nil {
			return err
		}
		keyspace, err := vm.popStateKey()
		if err != nil {
			return err
		}
		vm.state.KVPut(keyspace, key, value)

	case script.OpFtWithdraw:
		ref, err := vm.popRef()
		if err != nil {
			return err
		}
		indexNum, err := vm.popNum()
		if err != nil {
			return err
		}
		amountNum, err := vm.popNum()
		if err != nil {
			return err
		}

		tx := vm.execCtx.Tx()
		index := int(indexNum.Int32())
		if index < 0 || index >= len(tx.Outputs) {
			return scriptError(ErrWithdrawFtOutputIndex, fmt.Sprintf(
				"withdraw output index %d out of range", index))
		}
		amount := amountNum.Int64()
		if amount <= 0 || uint64(amount) > tx.Outputs[index].Value {
			return scriptError(ErrWithdrawFtAmount, fmt.Sprintf(
				"withdraw amount %d out of range for output value %d",
				amount, tx.Outputs[index].Value))
		}
		if !vm.state.WithdrawFt(ref, uint32(index), uint64(amount)) {
			return scriptError(ErrWithdrawFt, fmt.Sprintf(
				"ft %s balance cannot cover the withdrawal", ref.Hex()))
		}
	}
	return nil
}

// blockInfoField selectors shared by OP_GETBLOCKINFO and
// OP_DECODEBLOCKINFO.
const (
	blockFieldVersion    = 0
	blockFieldPrevHash   = 1
	blockFieldMerkleRoot = 2
	blockFieldTime       = 3
	blockFieldBits       = 4
	blockFieldNonce      = 5
	blockFieldDifficulty = 6
	blockFieldHeader     = 7
	blockFieldHeight     = 8
)

func (vm *Engine) opGetBlockInfo() error {
	fieldNum, err := vm.popNum()
	if err != nil {
		return err
	}
	field := int(fieldNum.Int32())
	if field < 0 || field > blockFieldHeight {
		return scriptError(ErrBlockInfoItem, fmt.Sprintf("block info field %d", field))
	}
	heightNum, err := vm.popNum()
	if err != nil {
		return err
	}
	height := uint32(heightNum.Int32())

	external := vm.state.External()
	if field == blockFieldHeight {
		resolved, err := external.HeightAt(height)
		if err != nil {
			return scriptError(ErrUnknown, err.Error())
		}
		vm.dstack.PushByteArray(scriptnum.FromInt64(int64(resolved)).Bytes())
		return nil
	}

	header, err := external.HeaderAt(height)
	if err != nil {
		return scriptError(ErrUnknown, err.Error())
	}
	if field == blockFieldHeader {
		vm.dstack.PushByteArray(header.Bytes())
		return nil
	}
	return vm.pushHeaderField(headerReader{
		version:    header.Version,
		prevHash:   header.PrevBlock[:],
		merkleRoot: header.MerkleRoot[:],
		time:       header.Time,
		bits:       header.Bits,
		nonce:      header.Nonce,
		difficulty: header.Difficulty(),
	}, field)
}

func (vm *Engine) opDecodeBlockInfo() error {
	fieldNum, err := vm.popNum()
	if err != nil {
		return err
	}
	field := int(fieldNum.Int32())
	if field < 0 || field > blockFieldDifficulty {
		return scriptError(ErrBlockInfoItem, fmt.Sprintf("block info field %d", field))
	}
	raw, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	header, err := blockheader.Decode(raw)
	if err != nil {
		return scriptError(ErrBlockHeaderSize, fmt.Sprintf(
			"block header of %d bytes", len(raw)))
	}
	return vm.pushHeaderField(headerReader{
		version:    header.Version,
		prevHash:   header.PrevBlock[:],
		merkleRoot: header.MerkleRoot[:],
		time:       header.Time,
		bits:       header.Bits,
		nonce:      header.Nonce,
		difficulty: header.Difficulty(),
	}, field)
}

type headerReader struct {
	version    int32
	prevHash   []byte
	merkleRoot []byte
	time       uint32
	bits       uint32
	nonce      uint32
	difficulty uint64
}

func (vm *Engine) pushHeaderField(h headerReader, field int) error {
	switch field {
	case blockFieldVersion:
		vm.dstack.PushByteArray(scriptnum.FromInt64(int64(h.version)).Bytes())
	case blockFieldPrevHash:
		vm.dstack.PushByteArray(h.prevHash)
	case blockFieldMerkleRoot:
		vm.dstack.PushByteArray(h.merkleRoot)
	case blockFieldTime:
		vm.dstack.PushByteArray(scriptnum.FromInt64(int64(h.time)).Bytes())
	case blockFieldBits:
		vm.dstack.PushByteArray(scriptnum.FromInt64(int64(h.bits)).Bytes())
	case blockFieldNonce:
		vm.dstack.PushByteArray(scriptnum.FromInt64(int64(h.nonce)).Bytes())
	case blockFieldDifficulty:
		vm.dstack.PushByteArray(scriptnum.FromUint64(h.difficulty).Bytes())
	default:
		return scriptError(ErrBlockInfoItem, fmt.Sprintf("block info field %d", field))
	}
	return nil
}

// Hash algorithm selectors for OP_HASH_FN.
const (
	hashFnSha3_256   = 0
	hashFnSha512     = 1
	hashFnSha512_256 = 2
	hashFnEaglesong  = 3
)

func (vm *Engine) opHashFn() error {
	algoNum, err := vm.popNum()
	if err != nil {
		return err
	}
	algo := int(algoNum.Int32())
	if algo < 0 || algo > hashFnEaglesong {
		return scriptError(ErrHashFunc, fmt.Sprintf("hash algorithm %d", algo))
	}
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	switch algo {
	case hashFnSha3_256:
		sum := sha3.Sum256(data)
		vm.dstack.PushByteArray(sum[:])
	case hashFnSha512:
		sum := sha512.Sum512(data)
		vm.dstack.PushByteArray(sum[:])
	case hashFnSha512_256:
		sum := sha512.Sum512_256(data)
		vm.dstack.PushByteArray(sum[:])
	case hashFnEaglesong:
		sum := eaglesong.Sum256(data)
		vm.dstack.PushByteArray(sum[:])
	}
	return nil
}
