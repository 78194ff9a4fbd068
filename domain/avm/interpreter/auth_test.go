// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import (
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/atomicals/avmd/domain/avm/script"
	"github.com/atomicals/avmd/domain/avm/txview"
)

func sigOpReturnScript(sig []byte) []byte {
	out := []byte{script.OpReturn, 0x03, 's', 'i', 'g', byte(len(sig))}
	return append(out, sig...)
}

// signAuth derives the authorization message for the transaction and the
// given scripts, signs it, and appends the carrier output. The carrier is
// excluded from the message, so signing before appending it is sound.
func signAuth(t *testing.T, tx *txview.TxView, fullScript []byte,
	priv *btcec.PrivateKey, useSchnorr bool) {
	t.Helper()

	execCtx := NewExecutionContext(tx, fullScript, nil)
	hash := sha256.Sum256(execCtx.AuthMessage())

	var sig []byte
	if useSchnorr {
		schnorrSig, err := schnorr.Sign(priv, hash[:])
		if err != nil {
			t.Fatalf("schnorr sign failed: %v", err)
		}
		sig = schnorrSig.Serialize()
	} else {
		sig = ecdsa.Sign(priv, hash[:]).Serialize()
	}

	tx.Outputs = append(tx.Outputs, &txview.TxOut{
		Value:        0,
		ScriptPubKey: sigOpReturnScript(sig),
	})
}

func TestCheckAuthSigSuccess(t *testing.T) {
	for _, useSchnorr := range []bool{false, true} {
		priv, err := btcec.NewPrivateKey()
		if err != nil {
			t.Fatalf("NewPrivateKey failed: %v", err)
		}
		pubKey := priv.PubKey().SerializeCompressed()

		lock := []byte{script.OpCheckAuthSig, script.OpDrop, script.Op1}
		tx := testTx()
		signAuth(t, tx, lock, priv, useSchnorr)

		state := testState(t)
		execCtx := NewExecutionContext(tx, lock, pubKey)
		if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); err != nil {
			t.Errorf("schnorr=%v: verify failed: %v", useSchnorr, err)
		}
	}
}

func TestCheckAuthSigPushesKey(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey failed: %v", err)
	}
	pubKey := priv.PubKey().SerializeCompressed()

	lock := cat([]byte{script.OpCheckAuthSig}, pushData(pubKey), []byte{script.OpEqual})
	tx := testTx()
	signAuth(t, tx, lock, priv, false)

	state := testState(t)
	execCtx := NewExecutionContext(tx, lock, pubKey)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
}

func TestCheckAuthSigWrongKey(t *testing.T) {
	priv, _ := btcec.NewPrivateKey()
	other, _ := btcec.NewPrivateKey()

	lock := []byte{script.OpCheckAuthSig, script.OpDrop, script.Op1}
	tx := testTx()
	signAuth(t, tx, lock, priv, false)

	state := testState(t)
	execCtx := NewExecutionContext(tx, lock, other.PubKey().SerializeCompressed())
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); !IsErrorCode(err, ErrCheckAuthSigNull) {
		t.Fatalf("err = %v, want %v", err, ErrCheckAuthSigNull)
	}
}

func TestCheckAuthSigMessageCommitsToOutputs(t *testing.T) {
	priv, _ := btcec.NewPrivateKey()
	pubKey := priv.PubKey().SerializeCompressed()

	lock := []byte{script.OpCheckAuthSig, script.OpDrop, script.Op1}
	tx := testTx()
	signAuth(t, tx, lock, priv, false)

	// Tampering with an output after signing must invalidate the
	// signature.
	tx.Outputs[0].Value++

	state := testState(t)
	execCtx := NewExecutionContext(tx, lock, pubKey)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); !IsErrorCode(err, ErrCheckAuthSigNull) {
		t.Fatalf("err = %v, want %v", err, ErrCheckAuthSigNull)
	}
}

func TestCheckAuthSigMissingCounterpart(t *testing.T) {
	priv, _ := btcec.NewPrivateKey()
	pubKey := priv.PubKey().SerializeCompressed()

	// Key without a signature output.
	lock := []byte{script.OpCheckAuthSig}
	state := testState(t)
	execCtx := NewExecutionContext(testTx(), lock, pubKey)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); !IsErrorCode(err, ErrCheckAuthSig) {
		t.Fatalf("key without sig: err = %v", err)
	}

	// Signature output without a key.
	tx := testTx()
	signAuth(t, tx, lock, priv, false)
	state = testState(t)
	execCtx = NewExecutionContext(tx, lock, nil)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); !IsErrorCode(err, ErrCheckAuthSig) {
		t.Fatalf("sig without key: err = %v", err)
	}
}

func TestCheckAuthSigNeitherPresent(t *testing.T) {
	// The non-verify variant pushes false.
	lock := []byte{script.OpCheckAuthSig, script.OpNot}
	state := testState(t)
	execCtx := NewExecutionContext(testTx(), lock, nil)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); err != nil {
		t.Fatalf("checkauthsig with nothing present: %v", err)
	}

	// The verify variant fails.
	lock = []byte{script.OpCheckAuthSigVerify}
	state = testState(t)
	execCtx = NewExecutionContext(testTx(), lock, nil)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); !IsErrorCode(err, ErrCheckAuthSigVerify) {
		t.Fatalf("checkauthsigverify: err = %v", err)
	}
}

func TestCheckDataSig(t *testing.T) {
	priv, _ := btcec.NewPrivateKey()
	pubKey := priv.PubKey().SerializeCompressed()
	message := []byte("attested data")
	hash := sha256.Sum256(message)
	sig := ecdsa.Sign(priv, hash[:]).Serialize()

	// Valid signature pushes true.
	lock := cat(pushData(sig), pushData(message), pushData(pubKey), []byte{script.OpCheckDataSig})
	state := testState(t)
	execCtx := NewExecutionContext(testTx(), lock, nil)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); err != nil {
		t.Fatalf("valid datasig: %v", err)
	}

	// Empty signature pushes false without failing.
	lock = cat([]byte{script.Op0}, pushData(message), pushData(pubKey),
		[]byte{script.OpCheckDataSig, script.OpNot})
	state = testState(t)
	execCtx = NewExecutionContext(testTx(), lock, nil)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); err != nil {
		t.Fatalf("empty datasig: %v", err)
	}

	// A non-empty signature that does not verify is never allowed.
	wrong := append([]byte(nil), sig...)
	lock = cat(pushData(wrong), pushData([]byte("other data")), pushData(pubKey),
		[]byte{script.OpCheckDataSig})
	state = testState(t)
	execCtx = NewExecutionContext(testTx(), lock, nil)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); !IsErrorCode(err, ErrSigNullFail) {
		t.Fatalf("wrong datasig: err = %v", err)
	}

	// The verify variant consumes the true result.
	lock = cat(pushData(sig), pushData(message), pushData(pubKey),
		[]byte{script.OpCheckDataSigVerify, script.Op1})
	state = testState(t)
	execCtx = NewExecutionContext(testTx(), lock, nil)
	if _, err := VerifyScriptAVM(nil, lock, 0, execCtx, state); err != nil {
		t.Fatalf("datasigverify: %v", err)
	}
}
