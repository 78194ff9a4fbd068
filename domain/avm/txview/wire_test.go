// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txview

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

type txBuilder struct {
	buf bytes.Buffer
}

func (b *txBuilder) u8(v uint8)   { b.buf.WriteByte(v) }
func (b *txBuilder) u32(v uint32) { binary.Write(&b.buf, binary.LittleEndian, v) }
func (b *txBuilder) u64(v uint64) { binary.Write(&b.buf, binary.LittleEndian, v) }
func (b *txBuilder) compact(v uint64) {
	switch {
	case v < 0xfd:
		b.u8(uint8(v))
	case v <= 0xffff:
		b.u8(0xfd)
		binary.Write(&b.buf, binary.LittleEndian, uint16(v))
	default:
		b.u8(0xfe)
		b.u32(uint32(v))
	}
}
func (b *txBuilder) varBytes(v []byte) {
	b.compact(uint64(len(v)))
	b.buf.Write(v)
}
func (b *txBuilder) bytes(v []byte) { b.buf.Write(v) }

func buildSimpleTx() []byte {
	b := &txBuilder{}
	b.u32(1) // version
	b.compact(1)
	txid := bytes.Repeat([]byte{0x11}, TxIDSize)
	b.bytes(txid)
	b.u32(3)                       // prevout index
	b.varBytes([]byte{0x51})       // signature script
	b.u32(0xfffffffe)              // sequence
	b.compact(2)                   // outputs
	b.u64(5000)                    // value
	b.varBytes([]byte{0x76, 0xa9}) // script
	b.u64(0)                       // value
	b.varBytes([]byte{0x6a})       // script
	b.u32(123456)                  // locktime
	return b.buf.Bytes()
}

func TestDeserialize(t *testing.T) {
	tx, err := Deserialize(buildSimpleTx())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if tx.Version != 1 {
		t.Errorf("version = %d", tx.Version)
	}
	if len(tx.Inputs) != 1 || len(tx.Outputs) != 2 {
		t.Fatalf("unexpected shape: %s", spew.Sdump(tx))
	}
	in := tx.Inputs[0]
	if in.PreviousOutpoint.Index != 3 {
		t.Errorf("prevout index = %d", in.PreviousOutpoint.Index)
	}
	if in.PreviousOutpoint.TxID != (TxID{0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
		0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
		0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11}) {
		t.Errorf("prevout txid = %x", in.PreviousOutpoint.TxID)
	}
	if !bytes.Equal(in.SignatureScript, []byte{0x51}) {
		t.Errorf("signature script = %x", in.SignatureScript)
	}
	if in.Sequence != 0xfffffffe {
		t.Errorf("sequence = %#x", in.Sequence)
	}
	if tx.Outputs[0].Value != 5000 || !bytes.Equal(tx.Outputs[0].ScriptPubKey, []byte{0x76, 0xa9}) {
		t.Errorf("output 0 = %s", spew.Sdump(tx.Outputs[0]))
	}
	if tx.LockTime != 123456 {
		t.Errorf("locktime = %d", tx.LockTime)
	}
}

func TestDeserializeWitness(t *testing.T) {
	b := &txBuilder{}
	b.u32(2)     // version
	b.compact(0) // witness marker
	b.u8(1)      // flags
	b.compact(1) // inputs
	b.bytes(bytes.Repeat([]byte{0x22}, TxIDSize))
	b.u32(0)
	b.varBytes(nil)
	b.u32(0xffffffff)
	b.compact(1) // outputs
	b.u64(1)
	b.varBytes([]byte{0x51})
	b.compact(2) // witness stack for the single input
	b.varBytes([]byte{0xaa})
	b.varBytes([]byte{0xbb, 0xcc})
	b.u32(0)

	tx, err := Deserialize(b.buf.Bytes())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if len(tx.Inputs) != 1 {
		t.Fatalf("inputs = %d", len(tx.Inputs))
	}
	witness := tx.Inputs[0].Witness
	if len(witness) != 2 || !bytes.Equal(witness[0], []byte{0xaa}) ||
		!bytes.Equal(witness[1], []byte{0xbb, 0xcc}) {
		t.Errorf("witness = %s", spew.Sdump(witness))
	}
}

func TestDeserializeNoWitnessFlag(t *testing.T) {
	// Marker zero with flags bit 0 clear: inputs follow, no witnesses.
	b := &txBuilder{}
	b.u32(1)
	b.compact(0)
	b.u8(0) // flags without the witness bit
	b.compact(0)
	b.compact(1)
	b.u64(9)
	b.varBytes([]byte{0x51})
	b.u32(0)

	tx, err := Deserialize(b.buf.Bytes())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if len(tx.Inputs) != 0 || len(tx.Outputs) != 1 {
		t.Errorf("shape: %s", spew.Sdump(tx))
	}
}

func TestDeserializeTrailingBytes(t *testing.T) {
	raw := append(buildSimpleTx(), 0x00)
	if _, err := Deserialize(raw); !errors.Is(err, ErrTrailingBytes) {
		t.Errorf("trailing byte: err = %v", err)
	}
}

func TestDeserializeTruncated(t *testing.T) {
	raw := buildSimpleTx()
	for _, cut := range []int{1, 4, 10, len(raw) - 1} {
		if _, err := Deserialize(raw[:cut]); !errors.Is(err, ErrMalformedTx) {
			t.Errorf("cut at %d: err = %v", cut, err)
		}
	}
}

func TestDeserializeHugeCount(t *testing.T) {
	b := &txBuilder{}
	b.u32(1)
	b.u8(0xfe)
	b.u32(0xffffffff) // absurd input count
	if _, err := Deserialize(b.buf.Bytes()); !errors.Is(err, ErrMalformedTx) {
		t.Errorf("huge count: err = %v", err)
	}
}
