// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestTokenizer(t *testing.T) {
	scr := []byte{
		Op1, Op0,
		0x03, 0xaa, 0xbb, 0xcc,
		OpPushData1, 0x02, 0x01, 0x02,
		OpPushData2, 0x01, 0x00, 0xff,
		OpDup,
	}

	type step struct {
		opcode byte
		data   []byte
	}
	want := []step{
		{Op1, nil},
		{Op0, []byte{}},
		{0x03, []byte{0xaa, 0xbb, 0xcc}},
		{OpPushData1, []byte{0x01, 0x02}},
		{OpPushData2, []byte{0xff}},
		{OpDup, nil},
	}

	tokenizer := MakeTokenizer(scr)
	for i, w := range want {
		if !tokenizer.Next() {
			t.Fatalf("step %d: Next returned false: %v", i, tokenizer.Err())
		}
		if tokenizer.Opcode() != w.opcode {
			t.Errorf("step %d: opcode %#x, want %#x", i, tokenizer.Opcode(), w.opcode)
		}
		if len(w.data) != len(tokenizer.Data()) ||
			(len(w.data) > 0 && !bytes.Equal(tokenizer.Data(), w.data)) {
			t.Errorf("step %d: data %x, want %x", i, tokenizer.Data(), w.data)
		}
	}
	if tokenizer.Next() {
		t.Error("tokenizer did not stop at the end")
	}
	if !tokenizer.Done() {
		t.Errorf("tokenizer not done: %v", tokenizer.Err())
	}
}

func TestTokenizerTruncation(t *testing.T) {
	tests := []struct {
		name string
		scr  []byte
	}{
		{"direct push past end", []byte{0x05, 0x01, 0x02}},
		{"pushdata1 missing size", []byte{OpPushData1}},
		{"pushdata1 payload short", []byte{OpPushData1, 0x03, 0x01}},
		{"pushdata2 missing size", []byte{OpPushData2, 0x01}},
		{"pushdata4 missing size", []byte{OpPushData4, 0x01, 0x02, 0x03}},
		{"pushdata4 payload short", []byte{OpPushData4, 0x02, 0x00, 0x00, 0x00, 0xaa}},
	}

	for _, test := range tests {
		tokenizer := MakeTokenizer(test.scr)
		for tokenizer.Next() {
		}
		if !errors.Is(tokenizer.Err(), ErrTruncatedPush) {
			t.Errorf("%s: err = %v, want truncated push", test.name, tokenizer.Err())
		}
		if tokenizer.Done() {
			t.Errorf("%s: tokenizer reported done", test.name)
		}
	}
}

func TestIsPushOnly(t *testing.T) {
	if !IsPushOnly([]byte{Op0, Op1, Op16, 0x02, 0xca, 0xfe, Op1Negate}) {
		t.Error("push-only script rejected")
	}
	if IsPushOnly([]byte{Op1, OpDup}) {
		t.Error("OP_DUP accepted as push only")
	}
	if IsPushOnly([]byte{0x05, 0x01}) {
		t.Error("truncated push accepted as push only")
	}
	if !IsPushOnly(nil) {
		t.Error("empty script rejected")
	}
}

func TestIsMinimalDataPush(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
		data   []byte
		want   bool
	}{
		{"empty via OP_0", Op0, nil, true},
		{"empty via direct push", 0x01, []byte{}, false},
		{"one via OP_1", Op1, []byte{0x01}, true},
		{"one via direct push", 0x01, []byte{0x01}, false},
		{"two bytes direct", 0x02, []byte{0xab, 0xcd}, true},
		{"0x81 must use OP_1NEGATE", 0x01, []byte{0x81}, false},
		{"17 is fine as a direct push", 0x01, []byte{0x11}, true},
		{"75 bytes direct", 75, make([]byte, 75), true},
		{"76 bytes via PUSHDATA1", OpPushData1, make([]byte, 76), true},
		{"76 bytes via PUSHDATA2", OpPushData2, make([]byte, 76), false},
		{"300 bytes via PUSHDATA2", OpPushData2, make([]byte, 300), true},
		{"300 bytes via PUSHDATA4", OpPushData4, make([]byte, 300), false},
	}

	for _, test := range tests {
		if got := IsMinimalDataPush(test.opcode, test.data); got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestExtractSigOpReturn(t *testing.T) {
	sig := []byte{0xde, 0xad, 0xbe, 0xef}
	scr := append([]byte{OpReturn, 0x03, 's', 'i', 'g', byte(len(sig))}, sig...)
	got, ok := ExtractSigOpReturn(scr)
	if !ok || !bytes.Equal(got, sig) {
		t.Fatalf("ExtractSigOpReturn = %x, %v", got, ok)
	}

	bad := [][]byte{
		nil,
		{OpReturn},
		{OpReturn, 0x03, 's', 'i', 'g'}, // no push
		{OpReturn, 0x03, 's', 'i', 'G', 0x01, 0xaa},       // wrong marker
		{OpDup, 0x03, 's', 'i', 'g', 0x01, 0xaa},          // not an OP_RETURN
		{OpReturn, 0x03, 's', 'i', 'g', OpDup, 0xaa},      // marker followed by non-push
		{OpReturn, 0x03, 's', 'i', 'g', 0x05, 0x01, 0x02}, // truncated push
	}
	for i, scr := range bad {
		if _, ok := ExtractSigOpReturn(scr); ok {
			t.Errorf("case %d: %x accepted", i, scr)
		}
	}
}

func TestOpcodeName(t *testing.T) {
	tests := []struct {
		opcode byte
		want   string
	}{
		{Op0, "OP_0"},
		{0x4a, "OP_DATA_74"},
		{OpDup, "OP_DUP"},
		{OpFtWithdraw, "OP_FT_WITHDRAW"},
		{OpHashFn, "OP_HASH_FN"},
		{0xfe, "OP_UNKNOWN254"},
	}
	for _, test := range tests {
		if got := OpcodeName(test.opcode); got != test.want {
			t.Errorf("OpcodeName(%#x) = %q, want %q", test.opcode, got, test.want)
		}
	}
}
