// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interpreter

import "fmt"

// stack holds the byte-string elements manipulated by the opcodes. Peeks
// and pops address elements from the top down, so an index of 0 refers to
// the top element.
type stack struct {
	items [][]byte
}

// Depth returns the number of items on the stack.
func (s *stack) Depth() int {
	return len(s.items)
}

// PushByteArray adds the given item to the top of the stack.
func (s *stack) PushByteArray(item []byte) {
	s.items = append(s.items, item)
}

// PopByteArray pops the item off the top of the stack and returns it.
func (s *stack) PopByteArray() ([]byte, error) {
	if len(s.items) == 0 {
		return nil, scriptError(ErrInvalidStackOperation,
			"attempt to pop from an empty stack")
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, nil
}

// PeekByteArray returns the item idx entries down from the top without
// removing it.
func (s *stack) PeekByteArray(idx int) ([]byte, error) {
	if idx < 0 || idx >= len(s.items) {
		return nil, scriptError(ErrInvalidStackOperation, fmt.Sprintf(
			"stack index %d out of range for depth %d", idx, len(s.items)))
	}
	return s.items[len(s.items)-1-idx], nil
}

// SetByteArray replaces the item idx entries down from the top.
func (s *stack) SetByteArray(idx int, item []byte) error {
	if idx < 0 || idx >= len(s.items) {
		return scriptError(ErrInvalidStackOperation, fmt.Sprintf(
			"stack index %d out of range for depth %d", idx, len(s.items)))
	}
	s.items[len(s.items)-1-idx] = item
	return nil
}

// RemoveByteArray removes the item idx entries down from the top and
// returns it.
func (s *stack) RemoveByteArray(idx int) ([]byte, error) {
	if idx < 0 || idx >= len(s.items) {
		return nil, scriptError(ErrInvalidStackOperation, fmt.Sprintf(
			"stack index %d out of range for depth %d", idx, len(s.items)))
	}
	pos := len(s.items) - 1 - idx
	item := s.items[pos]
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	return item, nil
}

// InsertByteArray inserts the item so that it ends up idx entries down from
// the top.
func (s *stack) InsertByteArray(idx int, item []byte) error {
	if idx < 0 || idx > len(s.items) {
		return scriptError(ErrInvalidStackOperation, fmt.Sprintf(
			"stack insert index %d out of range for depth %d", idx, len(s.items)))
	}
	pos := len(s.items) - idx
	s.items = append(s.items, nil)
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = item
	return nil
}

// swap exchanges the items idx1 and idx2 entries down from the top.
func (s *stack) swap(idx1, idx2 int) error {
	a, err := s.PeekByteArray(idx1)
	if err != nil {
		return err
	}
	b, err := s.PeekByteArray(idx2)
	if err != nil {
		return err
	}
	if err := s.SetByteArray(idx1, b); err != nil {
		return err
	}
	return s.SetByteArray(idx2, a)
}

// castToBool interprets a byte string as a boolean: any nonzero byte makes
// it true, except a lone sign bit in the final byte (negative zero).
func castToBool(v []byte) bool {
	for i, b := range v {
		if b != 0 {
			if i == len(v)-1 && b == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}
