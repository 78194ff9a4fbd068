// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package main builds the C shared library exposing verify_script_avm. It
// only copies buffers across the boundary and maps the typed errors onto
// the ABI enums; all behavior lives in domain/avm/consensus.
//
// Build with:
//
//	go build -buildmode=c-shared -o libavmconsensus.so ./libavmconsensus
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/atomicals/avmd/domain/avm/consensus"
	"github.com/atomicals/avmd/domain/avm/statecontext"
)

// apiVersion is the version of the C ABI exposed by this library.
const apiVersion = 1

func goBytes(data *C.uint8_t, length C.uint) []byte {
	if data == nil || length == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), C.int(length))
}

func copyOut(src []byte, dest *C.uint8_t, destLen *C.uint) {
	if dest != nil && len(src) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(dest)), len(src)), src)
	}
	if destLen != nil {
		*destLen = C.uint(len(src))
	}
}

//export verify_script_avm
func verify_script_avm(
	lockScript *C.uint8_t, lockScriptLen C.uint,
	unlockScript *C.uint8_t, unlockScriptLen C.uint,
	txTo *C.uint8_t, txToLen C.uint,
	authPubKey *C.uint8_t, authPubKeyLen C.uint,
	ftStateCbor *C.uint8_t, ftStateCborLen C.uint,
	ftStateIncomingCbor *C.uint8_t, ftStateIncomingCborLen C.uint,
	nftStateCbor *C.uint8_t, nftStateCborLen C.uint,
	nftStateIncomingCbor *C.uint8_t, nftStateIncomingCborLen C.uint,
	contractExternalStateCbor *C.uint8_t, contractExternalStateCborLen C.uint,
	contractStateCbor *C.uint8_t, contractStateCborLen C.uint,
	prevStateHash *C.uint8_t,
	flags C.uint,
	errOut *C.int,
	scriptErr *C.uint, scriptErrOpNum *C.uint,
	stateHash *C.uint8_t,
	stateFinal *C.uint8_t, stateFinalLen *C.uint,
	stateUpdates *C.uint8_t, stateUpdatesLen *C.uint,
	stateDeletes *C.uint8_t, stateDeletesLen *C.uint,
	ftBalances *C.uint8_t, ftBalancesLen *C.uint,
	ftBalancesUpdates *C.uint8_t, ftBalancesUpdatesLen *C.uint,
	nftBalances *C.uint8_t, nftBalancesLen *C.uint,
	nftBalancesUpdates *C.uint8_t, nftBalancesUpdatesLen *C.uint,
	ftWithdraws *C.uint8_t, ftWithdrawsLen *C.uint,
	nftWithdraws *C.uint8_t, nftWithdrawsLen *C.uint,
	ftBalancesAdded *C.uint8_t, ftBalancesAddedLen *C.uint,
	nftPuts *C.uint8_t, nftPutsLen *C.uint,
) C.int {

	req := &consensus.Request{
		LockScript:            goBytes(lockScript, lockScriptLen),
		UnlockScript:          goBytes(unlockScript, unlockScriptLen),
		TxBytes:               goBytes(txTo, txToLen),
		AuthPubKey:            goBytes(authPubKey, authPubKeyLen),
		FtState:               goBytes(ftStateCbor, ftStateCborLen),
		FtStateIncoming:       goBytes(ftStateIncomingCbor, ftStateIncomingCborLen),
		NftState:              goBytes(nftStateCbor, nftStateCborLen),
		NftStateIncoming:      goBytes(nftStateIncomingCbor, nftStateIncomingCborLen),
		ContractState:         goBytes(contractStateCbor, contractStateCborLen),
		ContractExternalState: goBytes(contractExternalStateCbor, contractExternalStateCborLen),
		Flags:                 uint32(flags),
	}
	if prevStateHash != nil {
		copy(req.PrevStateHash[:], goBytes(prevStateHash, statecontext.HashSize))
	}

	setErr := func(code consensus.ErrorCode) {
		if errOut != nil {
			*errOut = C.int(code)
		}
	}
	setErr(consensus.ErrOK)
	if scriptErr != nil {
		*scriptErr = 0
	}
	if scriptErrOpNum != nil {
		*scriptErrOpNum = 0
	}

	result, err := consensus.VerifyScriptAVM(req)
	if err != nil {
		if cerr, ok := err.(consensus.Error); ok {
			setErr(cerr.ErrorCode)
		} else {
			setErr(consensus.ErrInvalidFlags)
		}
		return 0
	}

	if scriptErr != nil {
		*scriptErr = C.uint(result.ScriptError)
	}
	if scriptErrOpNum != nil {
		*scriptErrOpNum = C.uint(result.ScriptErrorOpNum)
	}
	if !result.Success {
		return 0
	}

	if stateHash != nil {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(stateHash)), statecontext.HashSize),
			result.StateHash[:])
	}
	copyOut(result.StateFinal, stateFinal, stateFinalLen)
	copyOut(result.StateUpdates, stateUpdates, stateUpdatesLen)
	copyOut(result.StateDeletes, stateDeletes, stateDeletesLen)
	copyOut(result.FtBalances, ftBalances, ftBalancesLen)
	copyOut(result.FtBalancesUpdates, ftBalancesUpdates, ftBalancesUpdatesLen)
	copyOut(result.NftBalances, nftBalances, nftBalancesLen)
	copyOut(result.NftBalancesUpdates, nftBalancesUpdates, nftBalancesUpdatesLen)
	copyOut(result.FtWithdraws, ftWithdraws, ftWithdrawsLen)
	copyOut(result.NftWithdraws, nftWithdraws, nftWithdrawsLen)
	copyOut(result.FtBalancesAdded, ftBalancesAdded, ftBalancesAddedLen)
	copyOut(result.NftPuts, nftPuts, nftPutsLen)
	return 1
}

//export avmconsensus_version
func avmconsensus_version() C.uint {
	return apiVersion
}

func main() {}
