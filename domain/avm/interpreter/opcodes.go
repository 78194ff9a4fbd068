// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/ripemd160"

	"github.com/atomicals/avmd/domain/avm/script"
	"github.com/atomicals/avmd/domain/avm/scriptnum"
)

// opcodeHandlers dispatches executable opcodes. Pushes up to OP_PUSHDATA4
// are handled inline by the engine; a nil entry means BAD_OPCODE.
var opcodeHandlers = [256]func(*Engine) error{
	script.Op1Negate: opcodeN,
	script.Op1:       opcodeN,
	script.Op2:       opcodeN,
	script.Op3:       opcodeN,
	script.Op4:       opcodeN,
	script.Op5:       opcodeN,
	script.Op6:       opcodeN,
	script.Op7:       opcodeN,
	script.Op8:       opcodeN,
	script.Op9:       opcodeN,
	script.Op10:      opcodeN,
	script.Op11:      opcodeN,
	script.Op12:      opcodeN,
	script.Op13:      opcodeN,
	script.Op14:      opcodeN,
	script.Op15:      opcodeN,
	script.Op16:      opcodeN,

	script.OpNop:                 opcodeNop,
	script.OpIf:                  opcodeIf,
	script.OpNotIf:               opcodeIf,
	script.OpElse:                opcodeElse,
	script.OpEndIf:               opcodeEndIf,
	script.OpVerify:              opcodeVerify,
	script.OpReturn:              opcodeReturn,
	script.OpCheckLockTimeVerify: opcodeCheckLockTimeVerify,
	script.OpCheckSequenceVerify: opcodeCheckSequenceVerify,
	script.OpNop1:                opcodeUpgradableNop,
	script.OpNop4:                opcodeUpgradableNop,
	script.OpNop5:                opcodeUpgradableNop,
	script.OpNop6:                opcodeUpgradableNop,
	script.OpNop7:                opcodeUpgradableNop,
	script.OpNop8:                opcodeUpgradableNop,
	script.OpNop9:                opcodeUpgradableNop,
	script.OpNop10:               opcodeUpgradableNop,

	script.OpToAltStack:   opcodeToAltStack,
	script.OpFromAltStack: opcodeFromAltStack,
	script.Op2Drop:        opcode2Drop,
	script.Op2Dup:         opcode2Dup,
	script.Op3Dup:         opcode3Dup,
	script.Op2Over:        opcode2Over,
	script.Op2Rot:         opcode2Rot,
	script.Op2Swap:        opcode2Swap,
	script.OpIfDup:        opcodeIfDup,
	script.OpDepth:        opcodeDepth,
	script.OpDrop:         opcodeDrop,
	script.OpDup:          opcodeDup,
	script.OpNip:          opcodeNip,
	script.OpOver:         opcodeOver,
	script.OpPick:         opcodePickRoll,
	script.OpRoll:         opcodePickRoll,
	script.OpRot:          opcodeRot,
	script.OpSwap:         opcodeSwap,
	script.OpTuck:         opcodeTuck,
	script.OpSize:         opcodeSize,

	script.OpCat:          opcodeCat,
	script.OpSplit:        opcodeSplit,
	script.OpNum2Bin:      opcodeNum2Bin,
	script.OpBin2Num:      opcodeBin2Num,
	script.OpReverseBytes: opcodeReverseBytes,

	script.OpInvert: opcodeInvert,
	script.OpAnd:    opcodeBitwiseBinary,
	script.OpOr:     opcodeBitwiseBinary,
	script.OpXor:    opcodeBitwiseBinary,
	script.OpLShift: opcodeShift,
	script.OpRShift: opcodeShift,

	script.OpEqual:       opcodeEqual,
	script.OpEqualVerify: opcodeEqual,

	script.Op1Add:               opcodeUnaryNumeric,
	script.Op1Sub:               opcodeUnaryNumeric,
	script.OpNegate:             opcodeUnaryNumeric,
	script.OpAbs:                opcodeUnaryNumeric,
	script.OpNot:                opcodeUnaryNumeric,
	script.Op0NotEqual:          opcodeUnaryNumeric,
	script.OpAdd:                opcodeBinaryNumeric,
	script.OpSub:                opcodeBinaryNumeric,
	script.OpMul:                opcodeBinaryNumeric,
	script.OpDiv:                opcodeBinaryNumeric,
	script.OpMod:                opcodeBinaryNumeric,
	script.OpBoolAnd:            opcodeBinaryNumeric,
	script.OpBoolOr:             opcodeBinaryNumeric,
	script.OpNumEqual:           opcodeBinaryNumeric,
	script.OpNumEqualVerify:     opcodeBinaryNumeric,
	script.OpNumNotEqual:        opcodeBinaryNumeric,
	script.OpLessThan:           opcodeBinaryNumeric,
	script.OpGreaterThan:        opcodeBinaryNumeric,
	script.OpLessThanOrEqual:    opcodeBinaryNumeric,
	script.OpGreaterThanOrEqual: opcodeBinaryNumeric,
	script.OpMin:                opcodeBinaryNumeric,
	script.OpMax:                opcodeBinaryNumeric,
	script.OpWithin:             opcodeWithin,

	script.OpRipemd160: opcodeHash,
	script.OpSha1:      opcodeHash,
	script.OpSha256:    opcodeHash,
	script.OpHash160:   opcodeHash,
	script.OpHash256:   opcodeHash,

	script.OpCheckDataSig:       opcodeCheckDataSig,
	script.OpCheckDataSigVerify: opcodeCheckDataSig,
	script.OpCheckAuthSig:       opcodeCheckAuthSig,
	script.OpCheckAuthSigVerify: opcodeCheckAuthSig,

	script.OpTxVersion:           opcodeTxNullary,
	script.OpTxInputCount:        opcodeTxNullary,
	script.OpTxOutputCount:       opcodeTxNullary,
	script.OpTxLockTime:          opcodeTxNullary,
	script.OpOutpointTxHash:      opcodeTxUnary,
	script.OpOutpointIndex:       opcodeTxUnary,
	script.OpInputBytecode:       opcodeTxUnary,
	script.OpInputSequenceNumber: opcodeTxUnary,
	script.OpOutputValue:         opcodeTxUnary,
	script.OpOutputBytecode:      opcodeTxUnary,

	script.OpNftPut:          opcodeTokenUnary,
	script.OpFtBalanceAdd:    opcodeTokenUnary,
	script.OpFtCount:         opcodeTokenUnary,
	script.OpNftCount:        opcodeTokenUnary,
	script.OpKvExists:        opcodeStateBinary,
	script.OpKvGet:           opcodeStateBinary,
	script.OpKvDelete:        opcodeStateBinary,
	script.OpNftWithdraw:     opcodeStateBinary,
	script.OpHashFn:          opcodeStateBinary,
	script.OpGetBlockInfo:    opcodeStateBinary,
	script.OpDecodeBlockInfo: opcodeStateBinary,
	script.OpFtBalance:       opcodeStateBinary,
	script.OpFtItem:          opcodeStateBinary,
	script.OpNftItem:         opcodeStateBinary,
	script.OpNftExists:       opcodeStateBinary,
	script.OpKvPut:           opcodeStateTernary,
	script.OpFtWithdraw:      opcodeStateTernary,
}

// currentOpcode re-derives the opcode the engine is dispatching. Handlers
// shared by several opcodes use it to branch.
func (vm *Engine) currentOpcode() byte {
	return vm.curOpcode
}

// opcodeN pushes the small integer encoded by OP_1NEGATE and OP_1..OP_16.
func opcodeN(vm *Engine) error {
	op := vm.currentOpcode()
	if op == script.Op1Negate {
		vm.dstack.PushByteArray(scriptnum.FromInt64(-1).Bytes())
		return nil
	}
	n := int64(op) - int64(script.Op1-1)
	vm.dstack.PushByteArray(scriptnum.FromInt64(n).Bytes())
	return nil
}

func opcodeNop(vm *Engine) error {
	return nil
}

// opcodeUpgradableNop handles the reserved NOP opcodes, which fail when
// upgradable NOPs are discouraged.
func opcodeUpgradableNop(vm *Engine) error {
	if vm.flags&FlagDiscourageUpgradableNops != 0 {
		return scriptError(ErrDiscourageUpgradableNops, fmt.Sprintf(
			"%s reserved for soft-fork upgrades", script.OpcodeName(vm.currentOpcode())))
	}
	return nil
}

// opcodeIf handles OP_IF and OP_NOTIF. On a taken branch the condition is
// popped with the minimal-if rule; on a skipped branch only the nesting is
// tracked.
func opcodeIf(vm *Engine) error {
	condition := false
	if vm.execThisOp {
		if vm.dstack.Depth() < 1 {
			return scriptError(ErrUnbalancedConditional,
				"OP_IF/OP_NOTIF with no condition on the stack")
		}
		top, err := vm.dstack.PeekByteArray(0)
		if err != nil {
			return err
		}
		if len(top) > 1 || (len(top) == 1 && top[0] != 1) {
			return scriptError(ErrMinimalIf,
				"OP_IF/OP_NOTIF condition must be the empty element or [1]")
		}
		condition = castToBool(top)
		if vm.currentOpcode() == script.OpNotIf {
			condition = !condition
		}
		if _, err := vm.dstack.PopByteArray(); err != nil {
			return err
		}
	}
	vm.condStack.push(condition)
	return nil
}

func opcodeElse(vm *Engine) error {
	if vm.condStack.empty() {
		return scriptError(ErrUnbalancedConditional, "OP_ELSE with no matching OP_IF")
	}
	vm.condStack.toggleTop()
	return nil
}

func opcodeEndIf(vm *Engine) error {
	if vm.condStack.empty() {
		return scriptError(ErrUnbalancedConditional, "OP_ENDIF with no matching OP_IF")
	}
	vm.condStack.pop()
	return nil
}

func opcodeVerify(vm *Engine) error {
	top, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	if !castToBool(top) {
		return scriptError(ErrVerify, "OP_VERIFY failed")
	}
	_, err = vm.dstack.PopByteArray()
	return err
}

// opcodeReturn terminates the run successfully when the stack is empty. The
// remainder of the script does not affect validity, unbalanced conditionals
// included. With a non-empty stack it fails.
func opcodeReturn(vm *Engine) error {
	if vm.dstack.Depth() == 0 {
		return errEarlyReturn
	}
	return scriptError(ErrOpReturn, "OP_RETURN with a non-empty stack")
}

func opcodeToAltStack(vm *Engine) error {
	item, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	vm.astack.PushByteArray(item)
	return nil
}

func opcodeFromAltStack(vm *Engine) error {
	if vm.astack.Depth() < 1 {
		return scriptError(ErrInvalidAltstackOperation,
			"OP_FROMALTSTACK with an empty alt stack")
	}
	item, err := vm.astack.PopByteArray()
	if err != nil {
		return err
	}
	vm.dstack.PushByteArray(item)
	return nil
}

func opcode2Drop(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_2DROP needs 2 items")
	}
	vm.dstack.PopByteArray()
	vm.dstack.PopByteArray()
	return nil
}

func opcode2Dup(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_2DUP needs 2 items")
	}
	x1, _ := vm.dstack.PeekByteArray(1)
	x2, _ := vm.dstack.PeekByteArray(0)
	vm.dstack.PushByteArray(x1)
	vm.dstack.PushByteArray(x2)
	return nil
}

func opcode3Dup(vm *Engine) error {
	if vm.dstack.Depth() < 3 {
		return scriptError(ErrInvalidStackOperation, "OP_3DUP needs 3 items")
	}
	x1, _ := vm.dstack.PeekByteArray(2)
	x2, _ := vm.dstack.PeekByteArray(1)
	x3, _ := vm.dstack.PeekByteArray(0)
	vm.dstack.PushByteArray(x1)
	vm.dstack.PushByteArray(x2)
	vm.dstack.PushByteArray(x3)
	return nil
}

func opcode2Over(vm *Engine) error {
	if vm.dstack.Depth() < 4 {
		return scriptError(ErrInvalidStackOperation, "OP_2OVER needs 4 items")
	}
	x1, _ := vm.dstack.PeekByteArray(3)
	x2, _ := vm.dstack.PeekByteArray(2)
	vm.dstack.PushByteArray(x1)
	vm.dstack.PushByteArray(x2)
	return nil
}

func opcode2Rot(vm *Engine) error {
	if vm.dstack.Depth() < 6 {
		return scriptError(ErrInvalidStackOperation, "OP_2ROT needs 6 items")
	}
	x1, _ := vm.dstack.RemoveByteArray(5)
	x2, _ := vm.dstack.RemoveByteArray(4)
	vm.dstack.PushByteArray(x1)
	vm.dstack.PushByteArray(x2)
	return nil
}

func opcode2Swap(vm *Engine) error {
	if vm.dstack.Depth() < 4 {
		return scriptError(ErrInvalidStackOperation, "OP_2SWAP needs 4 items")
	}
	if err := vm.dstack.swap(3, 1); err != nil {
		return err
	}
	return vm.dstack.swap(2, 0)
}

func opcodeIfDup(vm *Engine) error {
	top, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	if castToBool(top) {
		vm.dstack.PushByteArray(top)
	}
	return nil
}

func opcodeDepth(vm *Engine) error {
	vm.dstack.PushByteArray(scriptnum.FromInt64(int64(vm.dstack.Depth())).Bytes())
	return nil
}

func opcodeDrop(vm *Engine) error {
	_, err := vm.dstack.PopByteArray()
	return err
}

func opcodeDup(vm *Engine) error {
	top, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	vm.dstack.PushByteArray(top)
	return nil
}

func opcodeNip(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_NIP needs 2 items")
	}
	_, err := vm.dstack.RemoveByteArray(1)
	return err
}

func opcodeOver(vm *Engine) error {
	x1, err := vm.dstack.PeekByteArray(1)
	if err != nil {
		return err
	}
	vm.dstack.PushByteArray(x1)
	return nil
}

// opcodePickRoll copies (OP_PICK) or moves (OP_ROLL) the n-th element from
// the top of the stack to the top.
func opcodePickRoll(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_PICK/OP_ROLL needs 2 items")
	}
	sn, err := vm.popNum()
	if err != nil {
		return err
	}
	if sn.IsNegative() || sn.Cmp(scriptnum.FromInt64(int64(vm.dstack.Depth()))) >= 0 {
		return scriptError(ErrInvalidStackOperation, fmt.Sprintf(
			"index %s out of range for depth %d", sn.BigInt().Big(), vm.dstack.Depth()))
	}
	n := sn.SizeType()

	if vm.currentOpcode() == script.OpRoll {
		item, err := vm.dstack.RemoveByteArray(n)
		if err != nil {
			return err
		}
		vm.dstack.PushByteArray(item)
		return nil
	}
	item, err := vm.dstack.PeekByteArray(n)
	if err != nil {
		return err
	}
	vm.dstack.PushByteArray(item)
	return nil
}

func opcodeRot(vm *Engine) error {
	if vm.dstack.Depth() < 3 {
		return scriptError(ErrInvalidStackOperation, "OP_ROT needs 3 items")
	}
	if err := vm.dstack.swap(2, 1); err != nil {
		return err
	}
	return vm.dstack.swap(1, 0)
}

func opcodeSwap(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_SWAP needs 2 items")
	}
	return vm.dstack.swap(1, 0)
}

func opcodeTuck(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_TUCK needs 2 items")
	}
	top, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	return vm.dstack.InsertByteArray(2, top)
}

func opcodeSize(vm *Engine) error {
	top, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	vm.dstack.PushByteArray(scriptnum.FromInt64(int64(len(top))).Bytes())
	return nil
}

// opcodeBitwiseBinary handles OP_AND, OP_OR and OP_XOR over equal-length
// operands.
func opcodeBitwiseBinary(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "bitwise opcode needs 2 items")
	}
	v2, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	v1, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	if len(v1) != len(v2) {
		return scriptError(ErrInvalidOperandSize, fmt.Sprintf(
			"operand sizes %d and %d differ", len(v1), len(v2)))
	}

	result := make([]byte, len(v1))
	switch vm.currentOpcode() {
	case script.OpAnd:
		for i := range v1 {
			result[i] = v1[i] & v2[i]
		}
	case script.OpOr:
		for i := range v1 {
			result[i] = v1[i] | v2[i]
		}
	case script.OpXor:
		for i := range v1 {
			result[i] = v1[i] ^ v2[i]
		}
	}
	vm.dstack.PushByteArray(result)
	return nil
}

func opcodeInvert(vm *Engine) error {
	top, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	result := make([]byte, len(top))
	for i, b := range top {
		result[i] = ^b
	}
	vm.dstack.PushByteArray(result)
	return nil
}

// shiftRight shifts x right by n bits with zero fill, n < 8*len(x).
func shiftRight(x []byte, n int) []byte {
	bitShift := uint(n % 8)
	byteShift := n / 8

	result := make([]byte, len(x))
	for i := 0; i < len(x); i++ {
		k := i + byteShift
		if k < len(x) {
			result[k] |= x[i] >> bitShift
		}
		if bitShift > 0 && k+1 < len(x) {
			result[k+1] |= x[i] << (8 - bitShift)
		}
	}
	return result
}

// shiftLeft shifts x left by n bits with zero fill, n < 8*len(x).
func shiftLeft(x []byte, n int) []byte {
	bitShift := uint(n % 8)
	byteShift := n / 8

	result := make([]byte, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		k := i - byteShift
		if k >= 0 {
			result[k] |= x[i] << bitShift
		}
		if bitShift > 0 && k-1 >= 0 {
			result[k-1] |= x[i] >> (8 - bitShift)
		}
	}
	return result
}

// opcodeShift handles OP_LSHIFT and OP_RSHIFT. A shift count of at least
// 8*len(operand) yields the all-zero string of the same length, so the
// count never drives the amount of work past the operand size.
func opcodeShift(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "shift opcode needs 2 items")
	}
	n, err := vm.popNum()
	if err != nil {
		return err
	}
	if n.IsNegative() {
		return scriptError(ErrInvalidNumberRange, "negative shift count")
	}
	operand, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	totalBits := scriptnum.FromInt64(int64(len(operand)) * 8)
	if n.Cmp(totalBits) >= 0 {
		vm.dstack.PushByteArray(make([]byte, len(operand)))
		return nil
	}

	count := n.SizeType()
	if vm.currentOpcode() == script.OpLShift {
		vm.dstack.PushByteArray(shiftLeft(operand, count))
	} else {
		vm.dstack.PushByteArray(shiftRight(operand, count))
	}
	return nil
}

// opcodeEqual handles OP_EQUAL and OP_EQUALVERIFY.
func opcodeEqual(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_EQUAL needs 2 items")
	}
	v2, _ := vm.dstack.PopByteArray()
	v1, _ := vm.dstack.PopByteArray()
	equal := bytes.Equal(v1, v2)
	vm.pushBool(equal)

	if vm.currentOpcode() == script.OpEqualVerify {
		if !equal {
			return scriptError(ErrEqualVerify, "OP_EQUALVERIFY failed")
		}
		_, err := vm.dstack.PopByteArray()
		return err
	}
	return nil
}

// opcodeUnaryNumeric handles OP_1ADD, OP_1SUB, OP_NEGATE, OP_ABS, OP_NOT
// and OP_0NOTEQUAL.
func opcodeUnaryNumeric(vm *Engine) error {
	n, err := vm.popNum()
	if err != nil {
		return err
	}

	var result scriptnum.Num
	switch vm.currentOpcode() {
	case script.Op1Add:
		result = n.Add(scriptnum.FromInt64(1))
	case script.Op1Sub:
		result = n.Sub(scriptnum.FromInt64(1))
	case script.OpNegate:
		result = n.Neg()
	case script.OpAbs:
		result = n.Abs()
	case script.OpNot:
		result = scriptnum.FromBool(n.IsZero())
	case script.Op0NotEqual:
		result = scriptnum.FromBool(!n.IsZero())
	}
	vm.dstack.PushByteArray(result.Bytes())
	return nil
}

// opcodeBinaryNumeric handles the two-operand numeric opcodes.
func opcodeBinaryNumeric(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "numeric opcode needs 2 items")
	}
	n2, err := vm.popNum()
	if err != nil {
		return err
	}
	n1, err := vm.popNum()
	if err != nil {
		return err
	}

	var result scriptnum.Num
	switch vm.currentOpcode() {
	case script.OpAdd:
		result = n1.Add(n2)
	case script.OpSub:
		result = n1.Sub(n2)
	case script.OpMul:
		result = n1.Mul(n2)
	case script.OpDiv:
		if n2.IsZero() {
			return scriptError(ErrDivByZero, "OP_DIV by zero")
		}
		result = n1.Div(n2)
	case script.OpMod:
		if n2.IsZero() {
			return scriptError(ErrModByZero, "OP_MOD by zero")
		}
		result = n1.Mod(n2)
	case script.OpBoolAnd:
		result = scriptnum.FromBool(!n1.IsZero() && !n2.IsZero())
	case script.OpBoolOr:
		result = scriptnum.FromBool(!n1.IsZero() || !n2.IsZero())
	case script.OpNumEqual, script.OpNumEqualVerify:
		result = scriptnum.FromBool(n1.Equal(n2))
	case script.OpNumNotEqual:
		result = scriptnum.FromBool(!n1.Equal(n2))
	case script.OpLessThan:
		result = scriptnum.FromBool(n1.Cmp(n2) < 0)
	case script.OpGreaterThan:
		result = scriptnum.FromBool(n1.Cmp(n2) > 0)
	case script.OpLessThanOrEqual:
		result = scriptnum.FromBool(n1.Cmp(n2) <= 0)
	case script.OpGreaterThanOrEqual:
		result = scriptnum.FromBool(n1.Cmp(n2) >= 0)
	case script.OpMin:
		if n1.Cmp(n2) < 0 {
			result = n1
		} else {
			result = n2
		}
	case script.OpMax:
		if n1.Cmp(n2) > 0 {
			result = n1
		} else {
			result = n2
		}
	}
	vm.dstack.PushByteArray(result.Bytes())

	if vm.currentOpcode() == script.OpNumEqualVerify {
		top, err := vm.dstack.PeekByteArray(0)
		if err != nil {
			return err
		}
		if !castToBool(top) {
			return scriptError(ErrNumEqualVerify, "OP_NUMEQUALVERIFY failed")
		}
		_, err = vm.dstack.PopByteArray()
		return err
	}
	return nil
}

func opcodeWithin(vm *Engine) error {
	if vm.dstack.Depth() < 3 {
		return scriptError(ErrInvalidStackOperation, "OP_WITHIN needs 3 items")
	}
	max, err := vm.popNum()
	if err != nil {
		return err
	}
	min, err := vm.popNum()
	if err != nil {
		return err
	}
	x, err := vm.popNum()
	if err != nil {
		return err
	}
	vm.pushBool(min.Cmp(x) <= 0 && x.Cmp(max) < 0)
	return nil
}

func opcodeCat(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_CAT needs 2 items")
	}
	v2, _ := vm.dstack.PopByteArray()
	v1, _ := vm.dstack.PopByteArray()
	if len(v1)+len(v2) > script.MaxElementSize {
		return scriptError(ErrPushSize, fmt.Sprintf(
			"concatenation of %d bytes exceeds the maximum element size %d",
			len(v1)+len(v2), script.MaxElementSize))
	}
	result := make([]byte, 0, len(v1)+len(v2))
	result = append(result, v1...)
	result = append(result, v2...)
	vm.dstack.PushByteArray(result)
	return nil
}

func opcodeSplit(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_SPLIT needs 2 items")
	}
	n, err := vm.popNum()
	if err != nil {
		return err
	}
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	if n.IsNegative() || n.Cmp(scriptnum.FromInt64(int64(len(data)))) > 0 {
		return scriptError(ErrInvalidSplitRange, fmt.Sprintf(
			"split point %s out of range for %d bytes", n.BigInt().Big(), len(data)))
	}
	position := n.SizeType()

	left := make([]byte, position)
	copy(left, data[:position])
	right := make([]byte, len(data)-position)
	copy(right, data[position:])
	vm.dstack.PushByteArray(left)
	vm.dstack.PushByteArray(right)
	return nil
}

func opcodeReverseBytes(vm *Engine) error {
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	result := make([]byte, len(data))
	for i, b := range data {
		result[len(data)-1-i] = b
	}
	vm.dstack.PushByteArray(result)
	return nil
}

// opcodeNum2Bin re-encodes the number below the top of the stack into the
// byte length given on top, relocating the sign bit into the padded form.
func opcodeNum2Bin(vm *Engine) error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation, "OP_NUM2BIN needs 2 items")
	}
	sizeNum, err := vm.popNum()
	if err != nil {
		return err
	}
	if sizeNum.IsNegative() || sizeNum.Cmp(scriptnum.FromInt64(int64(script.MaxElementSize))) > 0 {
		return scriptError(ErrPushSize, fmt.Sprintf(
			"requested size %s out of range", sizeNum.BigInt().Big()))
	}
	size := sizeNum.SizeType()

	raw, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	minimal := scriptnum.MinimallyEncode(append([]byte(nil), raw...))
	if len(minimal) > size {
		return scriptError(ErrImpossibleEncoding, fmt.Sprintf(
			"cannot encode %d minimal bytes into %d", len(minimal), size))
	}
	if len(minimal) == size {
		vm.dstack.PushByteArray(minimal)
		return nil
	}

	signBit := byte(0x00)
	if len(minimal) > 0 {
		signBit = minimal[len(minimal)-1] & 0x80
		minimal[len(minimal)-1] &= 0x7f
	}
	padded := make([]byte, size)
	copy(padded, minimal)
	if size > 0 {
		padded[size-1] = signBit
	}
	vm.dstack.PushByteArray(padded)
	return nil
}

// opcodeBin2Num re-minimizes the top of the stack as a number.
func opcodeBin2Num(vm *Engine) error {
	raw, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	minimal := scriptnum.MinimallyEncode(append([]byte(nil), raw...))
	if len(minimal) > scriptnum.MaxScriptNumSize {
		return scriptError(ErrInvalidNumberRange, fmt.Sprintf(
			"number of %d bytes exceeds the maximum %d",
			len(minimal), scriptnum.MaxScriptNumSize))
	}
	vm.dstack.PushByteArray(minimal)
	return nil
}

// opcodeHash handles the fixed-function hash opcodes.
func opcodeHash(vm *Engine) error {
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	var digest []byte
	switch vm.currentOpcode() {
	case script.OpRipemd160:
		digest = ripemd160Sum(data)
	case script.OpSha1:
		sum := sha1.Sum(data)
		digest = sum[:]
	case script.OpSha256:
		sum := sha256.Sum256(data)
		digest = sum[:]
	case script.OpHash160:
		sum := sha256.Sum256(data)
		digest = ripemd160Sum(sum[:])
	case script.OpHash256:
		first := sha256.Sum256(data)
		second := sha256.Sum256(first[:])
		digest = second[:]
	}
	vm.dstack.PushByteArray(digest)
	return nil
}

func ripemd160Sum(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)
}

// opcodeCheckDataSig handles OP_CHECKDATASIG and OP_CHECKDATASIGVERIFY. An
// encoding-valid but verification-failed non-empty signature is never
// allowed through as a false result.
func opcodeCheckDataSig(vm *Engine) error {
	if vm.dstack.Depth() < 3 {
		return scriptError(ErrInvalidStackOperation, "OP_CHECKDATASIG needs 3 items")
	}
	pubKey, _ := vm.dstack.PopByteArray()
	message, _ := vm.dstack.PopByteArray()
	sig, _ := vm.dstack.PopByteArray()

	success := false
	if len(sig) > 0 {
		hash := sha256.Sum256(message)
		parsed, ok := parsePubKey(pubKey)
		if ok {
			success = verifySignature(sig, parsed, hash[:])
		}
		if !success {
			return scriptError(ErrSigNullFail,
				"non-empty signature failed to verify")
		}
	}

	vm.pushBool(success)
	if vm.currentOpcode() == script.OpCheckDataSigVerify {
		if !success {
			return scriptError(ErrCheckDataSigVerify, "OP_CHECKDATASIGVERIFY failed")
		}
		_, err := vm.dstack.PopByteArray()
		return err
	}
	return nil
}

// opcodeCheckAuthSig handles OP_CHECKAUTHSIG and OP_CHECKAUTHSIGVERIFY.
// The signature comes from the designated transaction output and the public
// key from the execution context; when either is present both must be, and
// the signature must verify over the derived authorization message.
func opcodeCheckAuthSig(vm *Engine) error {
	if err := vm.requireContext(); err != nil {
		return err
	}

	sig, hasSig := vm.execCtx.AuthSig()
	pubKey, hasPubKey := vm.execCtx.AuthPubKey()

	if !hasSig && !hasPubKey {
		if vm.currentOpcode() == script.OpCheckAuthSigVerify {
			return scriptError(ErrCheckAuthSigVerify,
				"OP_CHECKAUTHSIGVERIFY with no authorization data")
		}
		vm.pushBool(false)
		return nil
	}

	if !hasSig || !hasPubKey {
		return scriptError(ErrCheckAuthSig,
			"authorization requires both a signature and a public key")
	}
	parsed, ok := parsePubKey(pubKey)
	if !ok {
		return scriptError(ErrCheckAuthSig, "invalid authorization public key")
	}

	hash := sha256.Sum256(vm.execCtx.AuthMessage())
	if !verifySignature(sig, parsed, hash[:]) {
		return scriptError(ErrCheckAuthSigNull,
			"authorization signature failed to verify")
	}

	vm.dstack.PushByteArray(pubKey)
	return nil
}
