// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txview

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrMalformedTx is returned when the transaction bytes cannot be decoded.
var ErrMalformedTx = errors.New("malformed transaction")

// ErrTrailingBytes is returned when decoding succeeds but bytes remain after
// the transaction. The serialized length must match exactly.
var ErrTrailingBytes = errors.New("transaction is followed by trailing bytes")

// witnessMarkerFlag marks the extended serialization carrying witness data.
const witnessMarkerFlag = 0x01

// maxItemsPerVector bounds decoded vector lengths so a corrupt compact size
// cannot drive allocation.
const maxItemsPerVector = 1 << 20

type wireReader struct {
	buf    []byte
	offset int
}

func (r *wireReader) remaining() int {
	return len(r.buf) - r.offset
}

func (r *wireReader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, errors.Wrapf(ErrMalformedTx, "want %d bytes at offset %d, have %d",
			n, r.offset, r.remaining())
	}
	b := r.buf[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *wireReader) readUint8() (uint8, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *wireReader) readUint32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *wireReader) readUint64() (uint64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// readCompactSize reads a Bitcoin-style variable-length integer.
func (r *wireReader) readCompactSize() (uint64, error) {
	discriminant, err := r.readUint8()
	if err != nil {
		return 0, err
	}
	switch discriminant {
	case 0xfd:
		b, err := r.readBytes(2)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 0xfe:
		v, err := r.readUint32()
		return uint64(v), err
	case 0xff:
		return r.readUint64()
	default:
		return uint64(discriminant), nil
	}
}

func (r *wireReader) readVarBytes() ([]byte, error) {
	n, err := r.readCompactSize()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.remaining()) {
		return nil, errors.Wrapf(ErrMalformedTx, "byte vector of %d exceeds remaining %d",
			n, r.remaining())
	}
	return r.readBytes(int(n))
}

func (r *wireReader) readTxIn() (*TxIn, error) {
	txIn := &TxIn{}
	hash, err := r.readBytes(TxIDSize)
	if err != nil {
		return nil, err
	}
	copy(txIn.PreviousOutpoint.TxID[:], hash)

	txIn.PreviousOutpoint.Index, err = r.readUint32()
	if err != nil {
		return nil, err
	}
	txIn.SignatureScript, err = r.readVarBytes()
	if err != nil {
		return nil, err
	}
	txIn.Sequence, err = r.readUint32()
	if err != nil {
		return nil, err
	}
	return txIn, nil
}

func (r *wireReader) readTxOut() (*TxOut, error) {
	txOut := &TxOut{}
	var err error
	txOut.Value, err = r.readUint64()
	if err != nil {
		return nil, err
	}
	txOut.ScriptPubKey, err = r.readVarBytes()
	if err != nil {
		return nil, err
	}
	return txOut, nil
}

// Deserialize parses the extended wire encoding of the spending transaction:
//
//	version i32 | vec<input> | vec<output> | [witnesses] | locktime u32
//
// When the leading input count reads as zero and at least one more byte
// remains, that byte is a flags field, the real input vector follows, and a
// witness stack per input trails the output vector when the witness flag
// bit is set. The whole buffer must be consumed; trailing bytes yield
// ErrTrailingBytes.
func Deserialize(b []byte) (*TxView, error) {
	r := &wireReader{buf: b}
	tx := &TxView{}

	version, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	tx.Version = int32(version)

	inputCount, err := r.readCompactSize()
	if err != nil {
		return nil, err
	}

	hasWitness := false
	if inputCount == 0 && r.remaining() > 0 {
		flags, err := r.readUint8()
		if err != nil {
			return nil, err
		}
		hasWitness = flags&witnessMarkerFlag != 0
		inputCount, err = r.readCompactSize()
		if err != nil {
			return nil, err
		}
	}
	if inputCount > maxItemsPerVector {
		return nil, errors.Wrapf(ErrMalformedTx, "input count %d is too large", inputCount)
	}

	tx.Inputs = make([]*TxIn, 0, inputCount)
	for i := uint64(0); i < inputCount; i++ {
		txIn, err := r.readTxIn()
		if err != nil {
			return nil, err
		}
		tx.Inputs = append(tx.Inputs, txIn)
	}

	outputCount, err := r.readCompactSize()
	if err != nil {
		return nil, err
	}
	if outputCount > maxItemsPerVector {
		return nil, errors.Wrapf(ErrMalformedTx, "output count %d is too large", outputCount)
	}
	tx.Outputs = make([]*TxOut, 0, outputCount)
	for i := uint64(0); i < outputCount; i++ {
		txOut, err := r.readTxOut()
		if err != nil {
			return nil, err
		}
		tx.Outputs = append(tx.Outputs, txOut)
	}

	if hasWitness {
		for _, txIn := range tx.Inputs {
			itemCount, err := r.readCompactSize()
			if err != nil {
				return nil, err
			}
			if itemCount > maxItemsPerVector {
				return nil, errors.Wrapf(ErrMalformedTx, "witness item count %d is too large", itemCount)
			}
			witness := make([][]byte, 0, itemCount)
			for i := uint64(0); i < itemCount; i++ {
				item, err := r.readVarBytes()
				if err != nil {
					return nil, err
				}
				witness = append(witness, item)
			}
			txIn.Witness = witness
		}
	}

	tx.LockTime, err = r.readUint32()
	if err != nil {
		return nil, err
	}

	if r.remaining() != 0 {
		return nil, errors.Wrapf(ErrTrailingBytes, "%d bytes remain after transaction", r.remaining())
	}
	return tx, nil
}
