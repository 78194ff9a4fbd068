// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statecontext

import (
	"testing"

	"github.com/pkg/errors"
)

func TestValidateRestrictionsShapes(t *testing.T) {
	external, _ := NewExternalState(0, nil)

	// A zero balance in the live table is a format error.
	c := New(map[string]uint64{mustRef(t, 0x01).Hex(): 0}, nil, nil, nil, nil, external)
	if err := c.ValidateRestrictions(DefaultLimits()); !errors.Is(err, ErrStateFormat) {
		t.Errorf("zero live balance: %v", err)
	}

	// A false entry in the live nft table is a format error.
	c = New(nil, nil, map[string]bool{mustRef(t, 0x02).Hex(): false}, nil, nil, external)
	if err := c.ValidateRestrictions(DefaultLimits()); !errors.Is(err, ErrStateFormat) {
		t.Errorf("false live nft: %v", err)
	}

	// Non-hex keys are format errors.
	c = New(map[string]uint64{"zz": 1}, nil, nil, nil, nil, external)
	if err := c.ValidateRestrictions(DefaultLimits()); !errors.Is(err, ErrStateFormat) {
		t.Errorf("non-hex ft key: %v", err)
	}
	c = New(nil, nil, nil, nil, KVMap{"zz": {"00": "00"}}, external)
	if err := c.ValidateRestrictions(DefaultLimits()); !errors.Is(err, ErrStateFormat) {
		t.Errorf("non-hex keyspace: %v", err)
	}

	// An empty keyspace object is a format error before canonicalization
	// prunes it.
	c = New(nil, nil, nil, nil, KVMap{"aa": {}}, external)
	if err := c.ValidateRestrictions(DefaultLimits()); !errors.Is(err, ErrStateFormat) {
		t.Errorf("empty keyspace: %v", err)
	}

	// A zero balance in the updates journal is fine.
	ref := mustRef(t, 0x03)
	c = New(map[string]uint64{ref.Hex(): 1}, nil, nil, nil, nil, external)
	if !c.WithdrawFt(ref, 0, 1) {
		t.Fatal("withdraw failed")
	}
	if err := c.ValidateRestrictions(DefaultLimits()); err != nil {
		t.Errorf("zero update balance: %v", err)
	}
}

func TestValidateRestrictionsSizes(t *testing.T) {
	external, _ := NewExternalState(0, nil)
	ref := mustRef(t, 0x04)

	tests := []struct {
		name   string
		build  func() *Context
		limits Limits
		want   error
	}{
		{
			name: "state final over limit",
			build: func() *Context {
				c := New(nil, nil, nil, nil, nil, external)
				c.KVPut([]byte("ks"), []byte("key"), make([]byte, 32))
				return c
			},
			limits: Limits{MaxStateFinalBytes: 10, MaxStateUpdateBytes: 1000,
				MaxBalancesBytes: 1000, MaxBalancesUpdateBytes: 1000},
			want: ErrStateSize,
		},
		{
			name: "state updates over limit",
			build: func() *Context {
				c := New(nil, nil, nil, nil, nil, external)
				c.KVPut([]byte("ks"), []byte("key"), make([]byte, 32))
				return c
			},
			limits: Limits{MaxStateFinalBytes: 1000, MaxStateUpdateBytes: 10,
				MaxBalancesBytes: 1000, MaxBalancesUpdateBytes: 1000},
			want: ErrStateUpdatesSize,
		},
		{
			name: "ft balances over limit",
			build: func() *Context {
				return New(map[string]uint64{ref.Hex(): 9}, nil, nil, nil, nil, external)
			},
			limits: Limits{MaxStateFinalBytes: 1000, MaxStateUpdateBytes: 1000,
				MaxBalancesBytes: 10, MaxBalancesUpdateBytes: 1000},
			want: ErrFtBalancesSize,
		},
		{
			name: "nft balances over limit",
			build: func() *Context {
				return New(nil, nil, map[string]bool{ref.Hex(): true}, nil, nil, external)
			},
			limits: Limits{MaxStateFinalBytes: 1000, MaxStateUpdateBytes: 1000,
				MaxBalancesBytes: 10, MaxBalancesUpdateBytes: 1000},
			want: ErrNftBalancesSize,
		},
	}

	for _, test := range tests {
		err := test.build().ValidateRestrictions(test.limits)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: err = %v, want %v", test.name, err, test.want)
		}
	}
}

func TestExternalStateValidation(t *testing.T) {
	if _, err := NewExternalState(MaxExternalHeight+1, nil); !errors.Is(err, ErrExternalState) {
		t.Errorf("over-limit height: %v", err)
	}
	if _, err := NewExternalState(1, map[string]string{"x": "00"}); !errors.Is(err, ErrExternalState) {
		t.Errorf("bad height key: %v", err)
	}
	if _, err := NewExternalState(1, map[string]string{"1": "zz"}); !errors.Is(err, ErrExternalState) {
		t.Errorf("non-hex header: %v", err)
	}
	if _, err := NewExternalState(1, map[string]string{"1": "00"}); !errors.Is(err, ErrExternalState) {
		t.Errorf("short header: %v", err)
	}

	header := make([]byte, 160)
	for i := range header {
		header[i] = 'a'
	}
	external, err := NewExternalState(7, map[string]string{"7": string(header)})
	if err != nil {
		t.Fatalf("valid external state rejected: %v", err)
	}
	// Height zero aliases the current height.
	if _, err := external.HeaderAt(0); err != nil {
		t.Errorf("current height alias: %v", err)
	}
	if resolved, err := external.HeightAt(0); err != nil || resolved != 7 {
		t.Errorf("HeightAt(0) = %d, %v", resolved, err)
	}
	if _, err := external.HeaderAt(9); !errors.Is(err, ErrBlockInfoHeight) {
		t.Errorf("missing height: %v", err)
	}
}
