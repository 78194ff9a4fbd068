// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statecontext

import (
	"encoding/hex"
	"strconv"

	"github.com/pkg/errors"

	"github.com/atomicals/avmd/domain/avm/blockheader"
)

// MaxExternalHeight bounds the current height accepted in the external
// state document.
const MaxExternalHeight = 10000000

// ErrExternalState is returned when the external state document is
// malformed.
var ErrExternalState = errors.New("invalid contract external state")

// ErrBlockInfoHeight is returned when a block-info opcode asks for a height
// with no supplied header.
var ErrBlockInfoHeight = errors.New("no block header for requested height")

// ExternalState is the immutable block-header context supplied by the
// host: the current height and a header per referenced height.
type ExternalState struct {
	CurrentHeight uint32
	headers       map[uint32]*blockheader.Header
}

// NewExternalState validates and builds the external context from the
// decoded document: a non-negative height no greater than MaxExternalHeight
// and a map from decimal-string heights to hex-encoded 80-byte headers.
func NewExternalState(height uint64, headers map[string]string) (*ExternalState, error) {
	if height > MaxExternalHeight {
		return nil, errors.Wrapf(ErrExternalState, "height %d exceeds maximum %d",
			height, MaxExternalHeight)
	}

	decoded := make(map[uint32]*blockheader.Header, len(headers))
	for heightKey, headerHex := range headers {
		h, err := strconv.ParseUint(heightKey, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrExternalState, "header height key %q", heightKey)
		}
		raw, err := hex.DecodeString(headerHex)
		if err != nil {
			return nil, errors.Wrapf(ErrExternalState, "header at height %s is not hex", heightKey)
		}
		header, err := blockheader.Decode(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrExternalState, "header at height %s", heightKey)
		}
		decoded[uint32(h)] = header
	}

	return &ExternalState{
		CurrentHeight: uint32(height),
		headers:       decoded,
	}, nil
}

// resolveHeight maps the opcode's height operand onto a concrete height; a
// height of zero aliases the current height.
func (e *ExternalState) resolveHeight(height uint32) uint32 {
	if height == 0 {
		return e.CurrentHeight
	}
	return height
}

// HeaderAt returns the header supplied for the given height, with zero
// aliasing the current height.
func (e *ExternalState) HeaderAt(height uint32) (*blockheader.Header, error) {
	resolved := e.resolveHeight(height)
	header, ok := e.headers[resolved]
	if !ok {
		return nil, errors.Wrapf(ErrBlockInfoHeight, "height %d", resolved)
	}
	return header, nil
}

// HeightAt resolves the height operand, failing when no header was supplied
// for it.
func (e *ExternalState) HeightAt(height uint32) (uint32, error) {
	resolved := e.resolveHeight(height)
	if _, ok := e.headers[resolved]; !ok {
		return 0, errors.Wrapf(ErrBlockInfoHeight, "height %d", resolved)
	}
	return resolved, nil
}
