// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package interpreter implements the AVM script dispatcher: a deterministic
// stack machine executing an unlocking and a locking script over a shared
// stack of byte strings, with transaction introspection, token and
// key/value state opcodes, and the authorization-signature protocol.
package interpreter

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/atomicals/avmd/domain/avm/script"
	"github.com/atomicals/avmd/domain/avm/scriptnum"
	"github.com/atomicals/avmd/domain/avm/statecontext"
)

// Flags is the bitfield of optional verification behaviors.
type Flags uint32

const (
	// FlagCheckLockTimeVerify enables OP_CHECKLOCKTIMEVERIFY; without it
	// the opcode behaves as a NOP.
	FlagCheckLockTimeVerify Flags = 1 << iota

	// FlagCheckSequenceVerify enables OP_CHECKSEQUENCEVERIFY; without it
	// the opcode behaves as a NOP.
	FlagCheckSequenceVerify

	// FlagDiscourageUpgradableNops makes the reserved NOP opcodes fail.
	FlagDiscourageUpgradableNops
)

const allFlags = FlagCheckLockTimeVerify | FlagCheckSequenceVerify |
	FlagDiscourageUpgradableNops

// ErrInvalidFlags is returned when unknown flag bits are set. This is a
// host-level error, not a script error.
var ErrInvalidFlags = errors.New("unknown script verification flag bits")

// errEarlyReturn terminates a script run successfully from inside a handler
// (OP_RETURN with an empty stack). It never escapes Execute.
var errEarlyReturn = errors.New("early successful return")

// Engine executes scripts against an execution context and a state context.
// One Engine runs one invocation: the unlocking script, then the locking
// script, over the same data stack.
type Engine struct {
	dstack    stack
	astack    stack
	condStack conditionStack
	numOps    int
	flags     Flags

	execCtx *ExecutionContext
	state   *statecontext.Context

	// execThisOp reports whether the current opcode runs on a taken
	// branch; IF-family handlers consult it while being dispatched on
	// skipped branches for balance tracking.
	execThisOp bool

	// curOpcode is the opcode being dispatched; handlers shared between
	// several opcodes branch on it.
	curOpcode byte

	// opNum is the ordinal of the instruction being executed within the
	// current script run, reported alongside script errors.
	opNum int
}

// NewEngine returns an engine ready to run one invocation.
func NewEngine(flags Flags, execCtx *ExecutionContext, state *statecontext.Context) (*Engine, error) {
	if flags&^allFlags != 0 {
		return nil, errors.Wrapf(ErrInvalidFlags, "flags %#x", uint32(flags))
	}
	return &Engine{flags: flags, execCtx: execCtx, state: state}, nil
}

// OpNum returns the 0-based ordinal of the last executed instruction within
// its script run. After a failed Execute it identifies the offending
// instruction.
func (vm *Engine) OpNum() int {
	return vm.opNum
}

// Depth returns the current data stack depth.
func (vm *Engine) Depth() int {
	return vm.dstack.Depth()
}

// PeekTop returns the top data stack element without removing it.
func (vm *Engine) PeekTop() ([]byte, error) {
	return vm.dstack.PeekByteArray(0)
}

// Execute runs a single script over the engine's shared stacks. The
// condition stack, op counter and op ordinal reset per run; the data and
// alt stacks persist across runs.
func (vm *Engine) Execute(scr []byte) error {
	if len(scr) > script.MaxScriptSize {
		return scriptError(ErrScriptSize, fmt.Sprintf(
			"script of %d bytes exceeds the maximum of %d", len(scr), script.MaxScriptSize))
	}

	vm.condStack = newConditionStack()
	vm.numOps = 0
	vm.opNum = 0

	tokenizer := script.MakeTokenizer(scr)
	opNum := 0
	for ; tokenizer.Next(); opNum++ {
		// Record the ordinal up front so a failure in any later step
		// lands on the right instruction.
		vm.opNum = opNum

		opcode := tokenizer.Opcode()
		data := tokenizer.Data()
		vm.curOpcode = opcode

		if len(data) > script.MaxElementSize {
			return scriptError(ErrPushSize, fmt.Sprintf(
				"element of %d bytes exceeds the maximum of %d",
				len(data), script.MaxElementSize))
		}

		// OP_RESERVED and friends below OP_16 do not count towards the
		// opcode limit.
		if opcode > script.Op16 {
			vm.numOps++
			if vm.numOps > script.MaxOpsPerScript {
				return scriptError(ErrOpCount, fmt.Sprintf(
					"exceeded the maximum of %d operations", script.MaxOpsPerScript))
			}
		}

		if opcode == script.Op2Mul || opcode == script.Op2Div {
			return scriptError(ErrDisabledOpcode, fmt.Sprintf(
				"attempt to execute disabled opcode %s", script.OpcodeName(opcode)))
		}

		vm.execThisOp = vm.condStack.allTrue()
		switch {
		case vm.execThisOp && opcode <= script.OpPushData4:
			if !script.IsMinimalDataPush(opcode, data) {
				return scriptError(ErrMinimalData, fmt.Sprintf(
					"push of %d bytes via %s is not minimal",
					len(data), script.OpcodeName(opcode)))
			}
			vm.dstack.PushByteArray(data)

		case vm.execThisOp || (opcode >= script.OpIf && opcode <= script.OpEndIf):
			handler := opcodeHandlers[opcode]
			if handler == nil {
				return scriptError(ErrBadOpcode, fmt.Sprintf(
					"attempt to execute invalid opcode %s", script.OpcodeName(opcode)))
			}
			if err := handler(vm); err != nil {
				if errors.Is(err, errEarlyReturn) {
					return nil
				}
				return err
			}
		}

		if vm.dstack.Depth()+vm.astack.Depth() > script.MaxStackDepth {
			return scriptError(ErrStackSize, fmt.Sprintf(
				"combined stack depth exceeds the maximum of %d", script.MaxStackDepth))
		}
	}
	if err := tokenizer.Err(); err != nil {
		vm.opNum = opNum
		return scriptError(ErrBadOpcode, err.Error())
	}

	if !vm.condStack.empty() {
		return scriptError(ErrUnbalancedConditional,
			"end of script reached in a conditional execution block")
	}
	return nil
}

// popNum pops the top stack element and decodes it as a script number with
// the default maximum size.
func (vm *Engine) popNum() (scriptnum.Num, error) {
	return vm.popNumWithSize(scriptnum.MaxScriptNumSize)
}

// popNumWithSize pops the top stack element and decodes it as a script
// number bounded to maxSize bytes.
func (vm *Engine) popNumWithSize(maxSize int) (scriptnum.Num, error) {
	raw, err := vm.dstack.PopByteArray()
	if err != nil {
		return scriptnum.Num{}, err
	}
	n, err := scriptnum.Make(raw, maxSize)
	if err != nil {
		return scriptnum.Num{}, scriptError(ErrInvalidNumberRange, err.Error())
	}
	return n, nil
}

// pushBool pushes the canonical boolean encoding: [1] for true, the empty
// element for false.
func (vm *Engine) pushBool(v bool) {
	if v {
		vm.dstack.PushByteArray([]byte{1})
	} else {
		vm.dstack.PushByteArray(nil)
	}
}

// requireContext fails with CONTEXT_NOT_PRESENT when no transaction context
// is attached.
func (vm *Engine) requireContext() error {
	if vm.execCtx == nil || vm.execCtx.Tx() == nil {
		return scriptError(ErrContextNotPresent,
			"opcode requires a transaction context")
	}
	return nil
}
