// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import "fmt"

// ErrorCode identifies the kind of script error. The numeric values are
// part of the ABI (they are returned through the entry point's script_err
// slot) and must not be reordered.
type ErrorCode int

const (
	ErrOK ErrorCode = iota
	ErrUnknown
	ErrEvalFalse
	ErrOpReturn

	// Max sizes.
	ErrScriptSize
	ErrPushSize
	ErrOpCount
	ErrStackSize
	ErrSigCount
	ErrPubKeyCount
	ErrInputSigChecks

	// Operand checks.
	ErrInvalidOperandSize
	ErrInvalidNumberRange
	ErrImpossibleEncoding
	ErrInvalidSplitRange
	ErrInvalidBitCount

	// Failed verify operations.
	ErrVerify
	ErrEqualVerify
	ErrCheckMultiSigVerify
	ErrCheckSigVerify
	ErrCheckDataSigVerify
	ErrNumEqualVerify

	// Logical/format/canonical errors.
	ErrBadOpcode
	ErrDisabledOpcode
	ErrInvalidStackOperation
	ErrInvalidAltstackOperation
	ErrUnbalancedConditional

	// Divisor errors.
	ErrDivByZero
	ErrModByZero

	// Bitfield errors.
	ErrInvalidBitfieldSize
	ErrInvalidBitRange

	// CHECKLOCKTIMEVERIFY and CHECKSEQUENCEVERIFY.
	ErrNegativeLockTime
	ErrUnsatisfiedLockTime

	// Malleability.
	ErrSigHashType
	ErrSigDER
	ErrMinimalData
	ErrSigPushOnly
	ErrSigHighS
	ErrPubKeyType
	ErrCleanStack
	ErrMinimalIf
	ErrSigNullFail

	// Schnorr.
	ErrSigBadLength
	ErrSigNonSchnorr

	// Softfork safeness.
	ErrDiscourageUpgradableNops

	// Anti replay.
	ErrIllegalForkID
	ErrMustUseForkID

	// Auxiliary.
	ErrSigChecksLimitExceeded

	// Operand checks for 64-bit integers.
	ErrInvalidNumberRange64Bit

	// Native introspection.
	ErrContextNotPresent
	ErrLimitedContextNoSiblingInfo
	ErrInvalidTxInputIndex
	ErrInvalidTxOutputIndex

	// NOP.
	ErrInvalidNop1
	ErrInvalidNop2
	ErrInvalidNop3
	ErrInvalidNop4
	ErrInvalidNop5
	ErrInvalidNop6

	errorCount

	// Atomicals virtual machine errors.
	ErrAtomicalRefSize
	ErrStateKeyNotFound
	ErrWithdrawFtAmount
	ErrWithdrawFt
	ErrWithdrawFtOutputIndex
	ErrWithdrawNft
	ErrWithdrawNftOutputIndex
	ErrFtItemIndex
	ErrNftItemIndex
	ErrStateKeySize
	ErrFtBalanceType
	ErrNftExistsType
	ErrNftItemType
	ErrFtItemType
	ErrFtCountType
	ErrNftCountType
	ErrBlockInfoItem
	ErrBlockHeaderSize
	ErrCheckTxInBlock
	ErrTxIDSize
	ErrHashFunc
	ErrFtBalanceAdd
	ErrNftPut
	ErrAuthIndex
	ErrAuthNamespace
	ErrCheckAuthSig
	ErrCheckAuthSigVerify
	ErrCheckAuthSigNull

	// Script enhancements.
	ErrBigInt
)

var errorCodeStrings = map[ErrorCode]string{
	ErrOK:                          "OK",
	ErrUnknown:                     "UNKNOWN",
	ErrEvalFalse:                   "EVAL_FALSE",
	ErrOpReturn:                    "OP_RETURN",
	ErrScriptSize:                  "SCRIPT_SIZE",
	ErrPushSize:                    "PUSH_SIZE",
	ErrOpCount:                     "OP_COUNT",
	ErrStackSize:                   "STACK_SIZE",
	ErrSigCount:                    "SIG_COUNT",
	ErrPubKeyCount:                 "PUBKEY_COUNT",
	ErrInputSigChecks:              "INPUT_SIGCHECKS",
	ErrInvalidOperandSize:          "INVALID_OPERAND_SIZE",
	ErrInvalidNumberRange:          "INVALID_NUMBER_RANGE",
	ErrImpossibleEncoding:          "IMPOSSIBLE_ENCODING",
	ErrInvalidSplitRange:           "INVALID_SPLIT_RANGE",
	ErrInvalidBitCount:             "INVALID_BIT_COUNT",
	ErrVerify:                      "VERIFY",
	ErrEqualVerify:                 "EQUALVERIFY",
	ErrCheckMultiSigVerify:         "CHECKMULTISIGVERIFY",
	ErrCheckSigVerify:              "CHECKSIGVERIFY",
	ErrCheckDataSigVerify:          "CHECKDATASIGVERIFY",
	ErrNumEqualVerify:              "NUMEQUALVERIFY",
	ErrBadOpcode:                   "BAD_OPCODE",
	ErrDisabledOpcode:              "DISABLED_OPCODE",
	ErrInvalidStackOperation:       "INVALID_STACK_OPERATION",
	ErrInvalidAltstackOperation:    "INVALID_ALTSTACK_OPERATION",
	ErrUnbalancedConditional:       "UNBALANCED_CONDITIONAL",
	ErrDivByZero:                   "DIV_BY_ZERO",
	ErrModByZero:                   "MOD_BY_ZERO",
	ErrInvalidBitfieldSize:         "INVALID_BITFIELD_SIZE",
	ErrInvalidBitRange:             "INVALID_BIT_RANGE",
	ErrNegativeLockTime:            "NEGATIVE_LOCKTIME",
	ErrUnsatisfiedLockTime:         "UNSATISFIED_LOCKTIME",
	ErrSigHashType:                 "SIG_HASHTYPE",
	ErrSigDER:                      "SIG_DER",
	ErrMinimalData:                 "MINIMALDATA",
	ErrSigPushOnly:                 "SIG_PUSHONLY",
	ErrSigHighS:                    "SIG_HIGH_S",
	ErrPubKeyType:                  "PUBKEYTYPE",
	ErrCleanStack:                  "CLEANSTACK",
	ErrMinimalIf:                   "MINIMALIF",
	ErrSigNullFail:                 "SIG_NULLFAIL",
	ErrSigBadLength:                "SIG_BADLENGTH",
	ErrSigNonSchnorr:               "SIG_NONSCHNORR",
	ErrDiscourageUpgradableNops:    "DISCOURAGE_UPGRADABLE_NOPS",
	ErrIllegalForkID:               "ILLEGAL_FORKID",
	ErrMustUseForkID:               "MUST_USE_FORKID",
	ErrSigChecksLimitExceeded:      "SIGCHECKS_LIMIT_EXCEEDED",
	ErrInvalidNumberRange64Bit:     "INVALID_NUMBER_RANGE_64_BIT",
	ErrContextNotPresent:           "CONTEXT_NOT_PRESENT",
	ErrLimitedContextNoSiblingInfo: "LIMITED_CONTEXT_NO_SIBLING_INFO",
	ErrInvalidTxInputIndex:         "INVALID_TX_INPUT_INDEX",
	ErrInvalidTxOutputIndex:        "INVALID_TX_OUTPUT_INDEX",
	ErrInvalidNop1:                 "INVALID_NOP1",
	ErrInvalidNop2:                 "INVALID_NOP2",
	ErrInvalidNop3:                 "INVALID_NOP3",
	ErrInvalidNop4:                 "INVALID_NOP4",
	ErrInvalidNop5:                 "INVALID_NOP5",
	ErrInvalidNop6:                 "INVALID_NOP6",
	ErrAtomicalRefSize:             "INVALID_ATOMICAL_REF_SIZE",
	ErrStateKeyNotFound:            "INVALID_AVM_STATE_KEY_NOT_FOUND",
	ErrWithdrawFtAmount:            "INVALID_AVM_WITHDRAW_FT_AMOUNT",
	ErrWithdrawFt:                  "INVALID_AVM_WITHDRAW_FT",
	ErrWithdrawFtOutputIndex:       "INVALID_AVM_WITHDRAW_FT_OUTPUT_INDEX",
	ErrWithdrawNft:                 "INVALID_AVM_WITHDRAW_NFT",
	ErrWithdrawNftOutputIndex:      "INVALID_AVM_WITHDRAW_NFT_OUTPUT_INDEX",
	ErrFtItemIndex:                 "INVALID_AVM_INVALID_FT_ITEM_INDEX",
	ErrNftItemIndex:                "INVALID_AVM_INVALID_NFT_ITEM_INDEX",
	ErrStateKeySize:                "INVALID_AVM_STATE_KEY_SIZE",
	ErrFtBalanceType:               "INVALID_AVM_FT_BALANCE_TYPE",
	ErrNftExistsType:               "INVALID_AVM_NFT_EXISTS_TYPE",
	ErrNftItemType:                 "INVALID_AVM_NFT_ITEM_TYPE",
	ErrFtItemType:                  "INVALID_AVM_FT_ITEM_TYPE",
	ErrFtCountType:                 "INVALID_AVM_FT_COUNT_TYPE",
	ErrNftCountType:                "INVALID_AVM_NFT_COUNT_TYPE",
	ErrBlockInfoItem:               "INVALID_AVM_INVALID_BLOCKINFO_ITEM",
	ErrBlockHeaderSize:             "INVALID_AVM_BLOCK_HEADER_SIZE",
	ErrCheckTxInBlock:              "INVALID_AVM_CHECKTXINBLOCK_ERROR",
	ErrTxIDSize:                    "INVALID_AVM_TXID_SIZE",
	ErrHashFunc:                    "INVALID_AVM_HASH_FUNC",
	ErrFtBalanceAdd:                "INVALID_AVM_FT_BALANCE_ADD_INVALID",
	ErrNftPut:                      "INVALID_AVM_NFT_PUT_INVALID",
	ErrAuthIndex:                   "INVALID_AVM_AUTH_INVALID_INDEX",
	ErrAuthNamespace:               "INVALID_AVM_AUTH_INVALID_NAMESPACE",
	ErrCheckAuthSig:                "INVALID_AVM_CHECKAUTHSIG",
	ErrCheckAuthSigVerify:          "INVALID_AVM_CHECKAUTHSIGVERIFY",
	ErrCheckAuthSigNull:            "INVALID_AVM_CHECKAUTHSIGNULL",
	ErrBigInt:                      "BIG_INT",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error. The caller can use type
// assertions on the returned error to access the ErrorCode field and react
// to specific conditions.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
