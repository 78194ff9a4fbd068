// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/atomicals/avmd/domain/avm/interpreter"
	"github.com/atomicals/avmd/domain/avm/script"
	"github.com/atomicals/avmd/domain/avm/statecontext"
)

func pushData(data []byte) []byte {
	if len(data) == 0 {
		return []byte{script.Op0}
	}
	if len(data) == 1 && data[0] >= 1 && data[0] <= 16 {
		return []byte{script.Op1 + data[0] - 1}
	}
	return append([]byte{byte(len(data))}, data...)
}

// buildTxBytes serializes a minimal one-input transaction with the given
// outputs as (value, script) pairs.
func buildTxBytes(outputs ...[2][]byte) []byte {
	var buf bytes.Buffer
	u32 := func(v uint32) { binary.Write(&buf, binary.LittleEndian, v) }

	u32(1)           // version
	buf.WriteByte(1) // one input
	buf.Write(bytes.Repeat([]byte{0x42}, 32))
	u32(0)           // prevout index
	buf.WriteByte(0) // empty signature script
	u32(0xffffffff)  // sequence
	buf.WriteByte(byte(len(outputs)))
	for _, out := range outputs {
		buf.Write(out[0])
		buf.WriteByte(byte(len(out[1])))
		buf.Write(out[1])
	}
	u32(0) // locktime
	return buf.Bytes()
}

func valueBytes(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

func mustCbor(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := cbor.Marshal(v)
	if err != nil {
		t.Fatalf("cbor.Marshal failed: %v", err)
	}
	return b
}

func TestVerifyScriptAVMKVRoundTrip(t *testing.T) {
	req := &Request{
		UnlockScript: append(append(pushData([]byte("ks")), pushData([]byte("k"))...), pushData([]byte("v"))...),
		LockScript: append(append(append(append(
			[]byte{script.OpKvPut},
			pushData([]byte("ks"))...), pushData([]byte("k"))...),
			script.OpKvGet), append(pushData([]byte("v")), script.OpEqual)...),
		TxBytes: buildTxBytes([2][]byte{valueBytes(1000), {0x51}}),
	}

	result, err := VerifyScriptAVM(req)
	if err != nil {
		t.Fatalf("VerifyScriptAVM failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("script failed: %v at %d", result.ScriptError, result.ScriptErrorOpNum)
	}

	var finalState map[string]map[string]string
	if err := cbor.Unmarshal(result.StateFinal, &finalState); err != nil {
		t.Fatalf("decoding state final: %v", err)
	}
	if finalState["6b73"]["6b"] != "76" {
		t.Errorf("state final = %v", finalState)
	}

	var updates map[string]map[string]string
	if err := cbor.Unmarshal(result.StateUpdates, &updates); err != nil {
		t.Fatalf("decoding updates: %v", err)
	}
	if updates["6b73"]["6b"] != "76" {
		t.Errorf("updates = %v", updates)
	}

	if result.StateHash == ([statecontext.HashSize]byte{}) {
		t.Error("state hash is zero")
	}

	// Determinism: the same request yields the same hash and documents.
	result2, err := VerifyScriptAVM(req)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if result.StateHash != result2.StateHash {
		t.Error("state hash differs across runs")
	}
	if !bytes.Equal(result.StateFinal, result2.StateFinal) {
		t.Error("state final differs across runs")
	}
}

func TestVerifyScriptAVMFtScenario(t *testing.T) {
	refA := bytes.Repeat([]byte{0xaa}, statecontext.RefSize)
	ref, _ := statecontext.RefFromBytes(refA)

	lock := []byte{script.OpFtBalanceAdd}
	lock = append(lock, pushData([]byte{40})...)
	lock = append(lock, script.Op0)
	lock = append(lock, pushData(refA)...)
	lock = append(lock, script.OpFtWithdraw, script.Op1)

	req := &Request{
		UnlockScript:    pushData(refA),
		LockScript:      lock,
		TxBytes:         buildTxBytes([2][]byte{valueBytes(60), {0x51}}),
		FtStateIncoming: mustCbor(t, map[string]uint64{ref.Hex(): 100}),
	}

	result, err := VerifyScriptAVM(req)
	if err != nil {
		t.Fatalf("VerifyScriptAVM failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("script failed: %v at %d", result.ScriptError, result.ScriptErrorOpNum)
	}

	var balances map[string]uint64
	if err := cbor.Unmarshal(result.FtBalances, &balances); err != nil {
		t.Fatalf("decoding balances: %v", err)
	}
	if balances[ref.Hex()] != 60 {
		t.Errorf("balances = %v", balances)
	}

	var withdraws map[string]map[string]uint64
	if err := cbor.Unmarshal(result.FtWithdraws, &withdraws); err != nil {
		t.Fatalf("decoding withdraws: %v", err)
	}
	if withdraws[ref.Hex()]["0"] != 40 {
		t.Errorf("withdraws = %v", withdraws)
	}

	var added map[string]bool
	if err := cbor.Unmarshal(result.FtBalancesAdded, &added); err != nil {
		t.Fatalf("decoding added: %v", err)
	}
	if !added[ref.Hex()] {
		t.Errorf("added = %v", added)
	}
}

func TestVerifyScriptAVMScriptFailure(t *testing.T) {
	req := &Request{
		UnlockScript: []byte{script.Op1, script.Op1},
		LockScript:   []byte{script.OpNop},
		TxBytes:      buildTxBytes([2][]byte{valueBytes(1), {0x51}}),
	}
	result, err := VerifyScriptAVM(req)
	if err != nil {
		t.Fatalf("VerifyScriptAVM errored: %v", err)
	}
	if result.Success {
		t.Fatal("clean-stack violation succeeded")
	}
	if result.ScriptError != interpreter.ErrCleanStack {
		t.Errorf("script error = %v", result.ScriptError)
	}
	if len(result.StateFinal) != 0 {
		t.Error("outputs produced for a failed script")
	}
}

func TestVerifyScriptAVMHostErrors(t *testing.T) {
	good := buildTxBytes([2][]byte{valueBytes(1), {0x51}})

	// Reserved flags.
	req := &Request{UnlockScript: []byte{script.Op1}, LockScript: []byte{script.OpNop},
		TxBytes: good, Flags: 1}
	if _, err := VerifyScriptAVM(req); !IsErrorCode(err, ErrInvalidFlags) {
		t.Errorf("flags: err = %v", err)
	}

	// Trailing bytes after the transaction.
	req = &Request{UnlockScript: []byte{script.Op1}, LockScript: []byte{script.OpNop},
		TxBytes: append(append([]byte(nil), good...), 0x00)}
	if _, err := VerifyScriptAVM(req); !IsErrorCode(err, ErrTxSizeMismatch) {
		t.Errorf("trailing bytes: err = %v", err)
	}

	// Truncated transaction.
	req = &Request{UnlockScript: []byte{script.Op1}, LockScript: []byte{script.OpNop},
		TxBytes: good[:8]}
	if _, err := VerifyScriptAVM(req); !IsErrorCode(err, ErrTxSizeMismatch) {
		t.Errorf("truncated tx: err = %v", err)
	}

	// Malformed state document.
	req = &Request{UnlockScript: []byte{script.Op1}, LockScript: []byte{script.OpNop},
		TxBytes: good, ContractState: []byte{0xff, 0xff}}
	if _, err := VerifyScriptAVM(req); !IsErrorCode(err, ErrStateSize) {
		t.Errorf("bad cbor: err = %v", err)
	}
}

func TestVerifyScriptAVMSizeLimits(t *testing.T) {
	req := &Request{
		UnlockScript: append(append(pushData([]byte("ks")), pushData([]byte("k"))...),
			pushData(bytes.Repeat([]byte{0x55}, 64))...),
		LockScript: []byte{script.OpKvPut, script.Op1},
		TxBytes:    buildTxBytes([2][]byte{valueBytes(1), {0x51}}),
		Limits: statecontext.Limits{
			MaxStateFinalBytes:     16,
			MaxStateUpdateBytes:    1000,
			MaxBalancesBytes:       1000,
			MaxBalancesUpdateBytes: 1000,
		},
	}
	if _, err := VerifyScriptAVM(req); !IsErrorCode(err, ErrStateSize) {
		t.Errorf("state size: err = %v", err)
	}

	req.Limits.MaxStateFinalBytes = 1000
	req.Limits.MaxStateUpdateBytes = 16
	if _, err := VerifyScriptAVM(req); !IsErrorCode(err, ErrStateUpdatesSize) {
		t.Errorf("updates size: err = %v", err)
	}
}

func TestVerifyScriptAVMStateHashChains(t *testing.T) {
	req := &Request{
		UnlockScript: []byte{script.Op1},
		LockScript:   []byte{script.OpNop},
		TxBytes:      buildTxBytes([2][]byte{valueBytes(1), {0x51}}),
	}
	r1, err := VerifyScriptAVM(req)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	req.PrevStateHash[0] = 0xde
	r2, err := VerifyScriptAVM(req)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if r1.StateHash == r2.StateHash {
		t.Error("state hash ignores the previous hash")
	}
}
