// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script provides the byte-level representation of AVM scripts:
// opcode constants, the opcode tokenizer, and the push-encoding rules.
package script

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

const (
	// MaxScriptSize is the maximum allowed length of a single script in
	// bytes.
	MaxScriptSize = 1000000

	// MaxElementSize is the maximum allowed length in bytes of an element
	// pushed onto the stack.
	MaxElementSize = 4000

	// MaxOpsPerScript is the maximum number of executed non-push opcodes
	// per script run.
	MaxOpsPerScript = 1000000

	// MaxStackDepth is the maximum combined depth of the data stack and
	// the alt stack.
	MaxStackDepth = 1000
)

// ErrTruncatedPush is returned by the tokenizer when a push opcode runs past
// the end of the script.
var ErrTruncatedPush = errors.New("opcode requires more bytes than the script contains")

// OpcodeName returns the canonical name of the opcode for use in errors and
// disassembly.
func OpcodeName(opcode byte) string {
	if opcode >= OpData1 && opcode <= OpData75 {
		return fmt.Sprintf("OP_DATA_%d", opcode)
	}
	if name, ok := opcodeNames[opcode]; ok {
		return name
	}
	return fmt.Sprintf("OP_UNKNOWN%d", opcode)
}

// Tokenizer decodes a script one opcode at a time, enforcing push-size
// framing. It deliberately performs no validation beyond framing; minimal
// push rules are enforced by the dispatcher for executed pushes only.
type Tokenizer struct {
	script []byte
	offset int
	opcode byte
	data   []byte
	err    error
}

// MakeTokenizer returns a tokenizer positioned at the start of the script.
func MakeTokenizer(scr []byte) Tokenizer {
	return Tokenizer{script: scr}
}

// Next reads the next opcode and, for pushes, its immediate payload. It
// returns false when the script is exhausted or malformed; Err distinguishes
// the two.
func (t *Tokenizer) Next() bool {
	if t.err != nil || t.offset >= len(t.script) {
		return false
	}

	op := t.script[t.offset]
	t.opcode = op
	t.offset++
	t.data = nil

	var dataLen int
	switch {
	case op <= OpData75:
		dataLen = int(op)
	case op == OpPushData1:
		if len(t.script)-t.offset < 1 {
			t.err = errors.Wrapf(ErrTruncatedPush, "%s at offset %d", OpcodeName(op), t.offset-1)
			return false
		}
		dataLen = int(t.script[t.offset])
		t.offset++
	case op == OpPushData2:
		if len(t.script)-t.offset < 2 {
			t.err = errors.Wrapf(ErrTruncatedPush, "%s at offset %d", OpcodeName(op), t.offset-1)
			return false
		}
		dataLen = int(binary.LittleEndian.Uint16(t.script[t.offset:]))
		t.offset += 2
	case op == OpPushData4:
		if len(t.script)-t.offset < 4 {
			t.err = errors.Wrapf(ErrTruncatedPush, "%s at offset %d", OpcodeName(op), t.offset-1)
			return false
		}
		dataLen = int(binary.LittleEndian.Uint32(t.script[t.offset:]))
		t.offset += 4
	default:
		return true
	}

	if len(t.script)-t.offset < dataLen {
		t.err = errors.Wrapf(ErrTruncatedPush, "%s wants %d bytes but only %d remain",
			OpcodeName(op), dataLen, len(t.script)-t.offset)
		return false
	}
	t.data = t.script[t.offset : t.offset+dataLen]
	t.offset += dataLen
	return true
}

// Opcode returns the opcode read by the latest call to Next.
func (t *Tokenizer) Opcode() byte {
	return t.opcode
}

// Data returns the push payload read by the latest call to Next, or nil for
// non-push opcodes.
func (t *Tokenizer) Data() []byte {
	return t.data
}

// Done reports whether the whole script was consumed without error.
func (t *Tokenizer) Done() bool {
	return t.err == nil && t.offset >= len(t.script)
}

// Err returns the framing error encountered, if any.
func (t *Tokenizer) Err() error {
	return t.err
}

// IsPushOnly reports whether the script consists solely of well-framed push
// instructions (opcodes up to OP_16).
func IsPushOnly(scr []byte) bool {
	tokenizer := MakeTokenizer(scr)
	for tokenizer.Next() {
		if tokenizer.Opcode() > Op16 {
			return false
		}
	}
	return tokenizer.Done()
}

// IsMinimalDataPush reports whether the push described by opcode and data
// uses the canonical, shortest push encoding.
func IsMinimalDataPush(opcode byte, data []byte) bool {
	dataLen := len(data)
	switch {
	case dataLen == 0:
		return opcode == Op0
	case dataLen == 1 && data[0] >= 1 && data[0] <= 16:
		return opcode == Op1+data[0]-1
	case dataLen == 1 && data[0] == 0x81:
		return opcode == Op1Negate
	case dataLen <= 75:
		return int(opcode) == dataLen
	case dataLen <= 255:
		return opcode == OpPushData1
	case dataLen <= 65535:
		return opcode == OpPushData2
	}
	return opcode == OpPushData4
}

// ExtractSigOpReturn recognizes the "sig" OP_RETURN form used to carry an
// authorization signature out of band:
//
//	OP_RETURN 0x03 's' 'i' 'g' <push payload>
//
// It returns the payload of the push following the marker, and whether the
// script has the form.
func ExtractSigOpReturn(scr []byte) ([]byte, bool) {
	if len(scr) < 6 || scr[0] != OpReturn {
		return nil, false
	}
	if scr[1] != 0x03 || scr[2] != 's' || scr[3] != 'i' || scr[4] != 'g' {
		return nil, false
	}

	tokenizer := MakeTokenizer(scr[5:])
	if !tokenizer.Next() {
		return nil, false
	}
	if tokenizer.Opcode() > OpPushData4 {
		return nil, false
	}
	return tokenizer.Data(), true
}
