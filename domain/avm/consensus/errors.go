// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import "fmt"

// ErrorCode identifies a host-level failure. The numeric values are the
// ABI error enum returned through the entry point.
type ErrorCode int

const (
	ErrOK ErrorCode = iota
	ErrTxIndex
	ErrTxSizeMismatch
	ErrInvalidFlags
	ErrInvalidFtWithdraw
	ErrInvalidNftWithdraw
	ErrStateSize
	ErrStateUpdatesSize
	ErrStateDeletesSize
	ErrStateFtBalancesSize
	ErrStateFtBalancesUpdatesSize
	ErrStateNftBalancesSize
	ErrStateNftBalancesUpdatesSize
)

var errorCodeStrings = map[ErrorCode]string{
	ErrOK:                          "OK",
	ErrTxIndex:                     "TX_INDEX",
	ErrTxSizeMismatch:              "TX_SIZE_MISMATCH",
	ErrInvalidFlags:                "INVALID_FLAGS",
	ErrInvalidFtWithdraw:           "INVALID_FT_WITHDRAW",
	ErrInvalidNftWithdraw:          "INVALID_NFT_WITHDRAW",
	ErrStateSize:                   "STATE_SIZE_ERROR",
	ErrStateUpdatesSize:            "STATE_UPDATES_SIZE_ERROR",
	ErrStateDeletesSize:            "STATE_DELETES_SIZE_ERROR",
	ErrStateFtBalancesSize:         "STATE_FT_BALANCES_SIZE_ERROR",
	ErrStateFtBalancesUpdatesSize:  "STATE_FT_BALANCES_UPDATES_SIZE_ERROR",
	ErrStateNftBalancesSize:        "STATE_NFT_BALANCES_SIZE_ERROR",
	ErrStateNftBalancesUpdatesSize: "STATE_NFT_BALANCES_UPDATES_SIZE_ERROR",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a host-level error with its ABI error code.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e Error) Error() string {
	return e.Description
}

func consensusError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a consensus
// error with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	cerr, ok := err.(Error)
	return ok && cerr.ErrorCode == c
}
