// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consensus frames one AVM invocation: it decodes the CBOR state
// documents, parses the transaction, runs the verifier, canonicalizes and
// validates the resulting state, and serializes the outputs together with
// the chained state hash.
package consensus

import (
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/atomicals/avmd/domain/avm/interpreter"
	"github.com/atomicals/avmd/domain/avm/statecontext"
	"github.com/atomicals/avmd/domain/avm/txview"
	"github.com/atomicals/avmd/infrastructure/logger"
)

// Request carries the inputs of one invocation. All byte slices are owned
// by the caller and read only for the duration of the call.
type Request struct {
	UnlockScript []byte
	LockScript   []byte

	// TxBytes is the wire-encoded spending transaction; its serialized
	// length must match exactly.
	TxBytes []byte

	// AuthPubKey optionally carries the authorization public key.
	AuthPubKey []byte

	// CBOR state documents.
	FtState               []byte
	FtStateIncoming       []byte
	NftState              []byte
	NftStateIncoming      []byte
	ContractState         []byte
	ContractExternalState []byte

	PrevStateHash [statecontext.HashSize]byte

	// Flags is reserved and must be zero.
	Flags uint32

	// Limits bounds the final state documents; the zero value selects the
	// defaults.
	Limits statecontext.Limits
}

// Result carries the outputs of one invocation. On script failure only the
// script error fields are populated.
type Result struct {
	Success          bool
	ScriptError      interpreter.ErrorCode
	ScriptErrorOpNum int

	StateHash [statecontext.HashSize]byte

	// CBOR output documents.
	StateFinal         []byte
	StateUpdates       []byte
	StateDeletes       []byte
	FtBalances         []byte
	FtBalancesUpdates  []byte
	NftBalances        []byte
	NftBalancesUpdates []byte
	FtWithdraws        []byte
	NftWithdraws       []byte
	FtBalancesAdded    []byte
	NftPuts            []byte
}

// encMode serializes output documents with deterministic (sorted-key) map
// encoding so the documents are byte-stable across runs.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(errors.Wrap(err, "building canonical CBOR encoder"))
	}
}

type externalStateDoc struct {
	Height  uint64            `cbor:"height"`
	Headers map[string]string `cbor:"headers"`
}

func decodeDoc(raw []byte, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return cbor.Unmarshal(raw, out)
}

// VerifyScriptAVM runs one invocation. Host-level failures return an Error
// carrying the ABI code; script-level failures return a Result with
// Success false and the script error populated.
func VerifyScriptAVM(req *Request) (*Result, error) {
	defer logger.LogAndMeasureExecutionTime(log, "VerifyScriptAVM")()

	if req.Flags != 0 {
		return nil, consensusError(ErrInvalidFlags, fmt.Sprintf(
			"reserved flags must be zero, got %#x", req.Flags))
	}

	tx, err := txview.Deserialize(req.TxBytes)
	if err != nil {
		return nil, consensusError(ErrTxSizeMismatch, err.Error())
	}
	if len(tx.Inputs) == 0 {
		return nil, consensusError(ErrTxIndex, "transaction has no inputs")
	}

	var (
		ftState     map[string]uint64
		ftIncoming  map[string]uint64
		nftState    map[string]bool
		nftIncoming map[string]bool
		kvState     statecontext.KVMap
		externalDoc externalStateDoc
	)
	if err := decodeDoc(req.FtState, &ftState); err != nil {
		return nil, consensusError(ErrStateFtBalancesSize, err.Error())
	}
	if err := decodeDoc(req.FtStateIncoming, &ftIncoming); err != nil {
		return nil, consensusError(ErrStateFtBalancesSize, err.Error())
	}
	if err := decodeDoc(req.NftState, &nftState); err != nil {
		return nil, consensusError(ErrStateNftBalancesSize, err.Error())
	}
	if err := decodeDoc(req.NftStateIncoming, &nftIncoming); err != nil {
		return nil, consensusError(ErrStateNftBalancesSize, err.Error())
	}
	if err := decodeDoc(req.ContractState, &kvState); err != nil {
		return nil, consensusError(ErrStateSize, err.Error())
	}
	if err := decodeDoc(req.ContractExternalState, &externalDoc); err != nil {
		return nil, consensusError(ErrStateSize, err.Error())
	}

	external, err := statecontext.NewExternalState(externalDoc.Height, externalDoc.Headers)
	if err != nil {
		return nil, consensusError(ErrStateSize, err.Error())
	}

	limits := req.Limits
	if limits == (statecontext.Limits{}) {
		limits = statecontext.DefaultLimits()
	}

	state := statecontext.New(ftState, ftIncoming, nftState, nftIncoming, kvState, external)
	if err := state.ValidateRestrictions(limits); err != nil {
		return nil, mapStateError(err)
	}

	fullScript := make([]byte, 0, len(req.UnlockScript)+len(req.LockScript))
	fullScript = append(fullScript, req.UnlockScript...)
	fullScript = append(fullScript, req.LockScript...)
	execCtx := interpreter.NewExecutionContext(tx, fullScript, req.AuthPubKey)

	opNum, err := interpreter.VerifyScriptAVM(req.UnlockScript, req.LockScript, 0, execCtx, state)
	if err != nil {
		serr, ok := err.(interpreter.Error)
		if !ok {
			return nil, consensusError(ErrInvalidFlags, err.Error())
		}
		log.Debugf("Script failed with %v at op %d: %s", serr.ErrorCode, opNum, serr.Description)
		return &Result{
			Success:          false,
			ScriptError:      serr.ErrorCode,
			ScriptErrorOpNum: opNum,
		}, nil
	}

	state.Canonicalize()
	if err := state.ValidateRestrictions(limits); err != nil {
		return nil, mapStateError(err)
	}
	if err := validateWithdrawals(state, tx); err != nil {
		return nil, err
	}

	result := &Result{
		Success:     true,
		ScriptError: interpreter.ErrOK,
		StateHash:   state.StateHash(req.PrevStateHash),
	}
	if err := encodeOutputs(state, result); err != nil {
		return nil, err
	}
	return result, nil
}

// validateWithdrawals re-checks the realized withdrawal maps against the
// transaction outputs before they are surfaced to the host.
func validateWithdrawals(state *statecontext.Context, tx *txview.TxView) error {
	for ref, outputs := range state.FtWithdrawals() {
		for index, amount := range outputs {
			if int(index) >= len(tx.Outputs) {
				return consensusError(ErrInvalidFtWithdraw, fmt.Sprintf(
					"ft %s withdraws to missing output %d", ref, index))
			}
			if amount == 0 || amount > tx.Outputs[index].Value {
				return consensusError(ErrInvalidFtWithdraw, fmt.Sprintf(
					"ft %s withdraws %d against output value %d",
					ref, amount, tx.Outputs[index].Value))
			}
		}
	}
	for ref, index := range state.NftWithdrawals() {
		if int(index) >= len(tx.Outputs) {
			return consensusError(ErrInvalidNftWithdraw, fmt.Sprintf(
				"nft %s withdraws to missing output %d", ref, index))
		}
	}
	return nil
}

func mapStateError(err error) error {
	switch {
	case errors.Is(err, statecontext.ErrStateSize):
		return consensusError(ErrStateSize, err.Error())
	case errors.Is(err, statecontext.ErrStateUpdatesSize):
		return consensusError(ErrStateUpdatesSize, err.Error())
	case errors.Is(err, statecontext.ErrStateDeletesSize):
		return consensusError(ErrStateDeletesSize, err.Error())
	case errors.Is(err, statecontext.ErrFtBalancesSize):
		return consensusError(ErrStateFtBalancesSize, err.Error())
	case errors.Is(err, statecontext.ErrFtBalancesUpdatesSize):
		return consensusError(ErrStateFtBalancesUpdatesSize, err.Error())
	case errors.Is(err, statecontext.ErrNftBalancesSize):
		return consensusError(ErrStateNftBalancesSize, err.Error())
	case errors.Is(err, statecontext.ErrNftBalancesUpdatesSize):
		return consensusError(ErrStateNftBalancesUpdatesSize, err.Error())
	default:
		// Malformed documents surface through the final-state code.
		return consensusError(ErrStateSize, err.Error())
	}
}

func encodeOutputs(state *statecontext.Context, result *Result) error {
	ftWithdraws := make(map[string]map[string]uint64, len(state.FtWithdrawals()))
	for ref, outputs := range state.FtWithdrawals() {
		inner := make(map[string]uint64, len(outputs))
		for index, amount := range outputs {
			inner[strconv.FormatUint(uint64(index), 10)] = amount
		}
		ftWithdraws[ref] = inner
	}

	docs := []struct {
		value interface{}
		dest  *[]byte
	}{
		{state.StateFinal(), &result.StateFinal},
		{state.StateUpdates(), &result.StateUpdates},
		{state.StateDeletes(), &result.StateDeletes},
		{state.FtBalances(), &result.FtBalances},
		{state.FtBalancesUpdates(), &result.FtBalancesUpdates},
		{state.NftBalances(), &result.NftBalances},
		{state.NftBalancesUpdates(), &result.NftBalancesUpdates},
		{ftWithdraws, &result.FtWithdraws},
		{state.NftWithdrawals(), &result.NftWithdraws},
		{state.FtBalancesAdded(), &result.FtBalancesAdded},
		{state.NftPuts(), &result.NftPuts},
	}
	for _, doc := range docs {
		encoded, err := encMode.Marshal(doc.value)
		if err != nil {
			return consensusError(ErrStateSize, errors.Wrap(err, "encoding output document").Error())
		}
		*doc.dest = encoded
	}
	return nil
}
