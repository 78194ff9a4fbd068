// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import (
	"github.com/atomicals/avmd/domain/avm/script"
	"github.com/atomicals/avmd/domain/avm/statecontext"
)

// VerifyScriptAVM validates one contract invocation: it requires the
// unlocking script to be push only, evaluates it, evaluates the locking
// script over the resulting stack, and requires a single truthy element to
// remain. It returns the 0-based ordinal of the failing instruction within
// its script run alongside any script error.
func VerifyScriptAVM(unlockScript, lockScript []byte, flags Flags,
	execCtx *ExecutionContext, state *statecontext.Context) (int, error) {

	vm, err := NewEngine(flags, execCtx, state)
	if err != nil {
		return 0, err
	}

	if !script.IsPushOnly(unlockScript) {
		return 0, scriptError(ErrSigPushOnly, "unlocking script is not push only")
	}

	if err := vm.Execute(unlockScript); err != nil {
		return vm.OpNum(), err
	}
	if err := vm.Execute(lockScript); err != nil {
		return vm.OpNum(), err
	}

	if vm.Depth() == 0 {
		return vm.OpNum(), scriptError(ErrEvalFalse, "stack empty at the end of execution")
	}
	top, err := vm.PeekTop()
	if err != nil {
		return vm.OpNum(), err
	}
	if !castToBool(top) {
		return vm.OpNum(), scriptError(ErrEvalFalse, "false value at the top of the stack")
	}
	if vm.Depth() != 1 {
		return vm.OpNum(), scriptError(ErrCleanStack, "stack holds more than one element")
	}
	return vm.OpNum(), nil
}
