// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package statecontext holds the staged per-contract state mutated by the
// token and key/value opcodes during one invocation: the live key/value
// store with its update and delete journals, the fungible and non-fungible
// token tables with their incoming pools and withdrawal maps, and the
// immutable external block-header context.
//
// Keys at every level are lowercase hex strings over the raw bytes; the
// empty byte string canonicalizes to "00". Hex-string ordering equals raw
// byte ordering, which makes the sorted map iteration used for item lookup
// and state digestion canonical.
package statecontext

import (
	"encoding/hex"
	"sort"
)

// MaxStateKeySize bounds the raw byte length of a keyspace or key name.
const MaxStateKeySize = 1024

// KVMap is a two-level hex-keyed map: keyspace -> key -> value.
type KVMap map[string]map[string]string

// Context is the staging area for one invocation. It is created by the
// entry point, mutated only by opcode handlers, and discarded at return.
type Context struct {
	kvLive    KVMap
	kvUpdates KVMap
	kvDeletes map[string]map[string]bool

	ftLive     map[string]uint64
	ftUpdates  map[string]uint64
	nftLive    map[string]bool
	nftUpdates map[string]bool

	ftIncoming  map[string]uint64
	nftIncoming map[string]bool

	ftAddedOnce map[string]struct{}
	nftPutOnce  map[string]struct{}

	ftWithdraws  map[string]map[uint32]uint64
	nftWithdraws map[string]uint32

	external *ExternalState
}

// New builds a Context over the host-supplied snapshots. The snapshot maps
// are owned by the Context afterwards. The snapshots must already have been
// validated (see ValidateRestrictions); New itself performs no validation.
func New(ftState map[string]uint64, ftIncoming map[string]uint64,
	nftState map[string]bool, nftIncoming map[string]bool,
	contractState KVMap, external *ExternalState) *Context {

	if ftState == nil {
		ftState = make(map[string]uint64)
	}
	if ftIncoming == nil {
		ftIncoming = make(map[string]uint64)
	}
	if nftState == nil {
		nftState = make(map[string]bool)
	}
	if nftIncoming == nil {
		nftIncoming = make(map[string]bool)
	}
	if contractState == nil {
		contractState = make(KVMap)
	}

	return &Context{
		kvLive:       contractState,
		kvUpdates:    make(KVMap),
		kvDeletes:    make(map[string]map[string]bool),
		ftLive:       ftState,
		ftUpdates:    make(map[string]uint64),
		nftLive:      nftState,
		nftUpdates:   make(map[string]bool),
		ftIncoming:   ftIncoming,
		nftIncoming:  nftIncoming,
		ftAddedOnce:  make(map[string]struct{}),
		nftPutOnce:   make(map[string]struct{}),
		ftWithdraws:  make(map[string]map[uint32]uint64),
		nftWithdraws: make(map[string]uint32),
		external:     external,
	}
}

// hexKey canonicalizes raw key bytes into the hex form used by the state
// documents. The empty byte string maps to "00".
func hexKey(b []byte) string {
	if len(b) == 0 {
		return "00"
	}
	return hex.EncodeToString(b)
}

// KVPut writes value under (keyspace, key) in the live state, records the
// write in the updates journal and clears any delete marker for the key.
func (c *Context) KVPut(keyspace, key, value []byte) {
	ks := hexKey(keyspace)
	k := hexKey(key)
	v := hexKey(value)

	ensureInner(c.kvLive, ks)[k] = v
	ensureInner(c.kvUpdates, ks)[k] = v
	if deletes, ok := c.kvDeletes[ks]; ok {
		delete(deletes, k)
	}
}

// KVDelete removes (keyspace, key) from the live state and the updates
// journal and records a delete marker.
func (c *Context) KVDelete(keyspace, key []byte) {
	ks := hexKey(keyspace)
	k := hexKey(key)

	if live, ok := c.kvLive[ks]; ok {
		delete(live, k)
	}
	if updates, ok := c.kvUpdates[ks]; ok {
		delete(updates, k)
	}
	if c.kvDeletes[ks] == nil {
		c.kvDeletes[ks] = make(map[string]bool)
	}
	c.kvDeletes[ks][k] = true
}

// KVGet reads the live value under (keyspace, key).
func (c *Context) KVGet(keyspace, key []byte) ([]byte, bool) {
	live, ok := c.kvLive[hexKey(keyspace)]
	if !ok {
		return nil, false
	}
	v, ok := live[hexKey(key)]
	if !ok {
		return nil, false
	}
	// Values are validated hex on the way in; a decode failure here would
	// be an internal invariant violation.
	b, err := hex.DecodeString(v)
	if err != nil {
		panic("statecontext: non-hex value in live state: " + v)
	}
	return b, true
}

// KVExists reports whether (keyspace, key) is present in the live state.
func (c *Context) KVExists(keyspace, key []byte) bool {
	live, ok := c.kvLive[hexKey(keyspace)]
	if !ok {
		return false
	}
	_, ok = live[hexKey(key)]
	return ok
}

func ensureInner(m KVMap, key string) map[string]string {
	inner, ok := m[key]
	if !ok {
		inner = make(map[string]string)
		m[key] = inner
	}
	return inner
}

// FtBalanceAdd moves the full incoming amount for ref into the live balance
// table. It fails when ref has no incoming entry or was already added this
// invocation.
func (c *Context) FtBalanceAdd(ref Ref) bool {
	key := ref.Hex()
	incoming, ok := c.ftIncoming[key]
	if !ok || incoming == 0 {
		return false
	}
	if _, taken := c.ftAddedOnce[key]; taken {
		return false
	}
	c.ftAddedOnce[key] = struct{}{}
	balance := c.ftLive[key] + incoming
	c.ftLive[key] = balance
	c.ftUpdates[key] = balance
	return true
}

// NftPut moves ref from the incoming pool into the live table. It fails
// when ref has no incoming entry or was already put this invocation.
func (c *Context) NftPut(ref Ref) bool {
	key := ref.Hex()
	if !c.nftIncoming[key] {
		return false
	}
	if _, taken := c.nftPutOnce[key]; taken {
		return false
	}
	c.nftPutOnce[key] = struct{}{}
	c.nftLive[key] = true
	c.nftUpdates[key] = true
	return true
}

// FtBalance returns the live balance for ref, zero when absent.
func (c *Context) FtBalance(ref Ref) uint64 {
	return c.ftLive[ref.Hex()]
}

// FtBalanceIncoming returns the incoming pool amount for ref, zero when
// absent.
func (c *Context) FtBalanceIncoming(ref Ref) uint64 {
	return c.ftIncoming[ref.Hex()]
}

// NftExists reports whether ref is held live by the contract.
func (c *Context) NftExists(ref Ref) bool {
	return c.nftLive[ref.Hex()]
}

// NftExistsIncoming reports whether ref is offered in the incoming pool.
func (c *Context) NftExistsIncoming(ref Ref) bool {
	return c.nftIncoming[ref.Hex()]
}

// FtCount returns the number of live fungible-token classes.
func (c *Context) FtCount() int { return len(c.ftLive) }

// FtCountIncoming returns the number of incoming fungible-token classes.
func (c *Context) FtCountIncoming() int { return len(c.ftIncoming) }

// NftCount returns the number of live non-fungible tokens.
func (c *Context) NftCount() int { return len(c.nftLive) }

// NftCountIncoming returns the number of incoming non-fungible tokens.
func (c *Context) NftCountIncoming() int { return len(c.nftIncoming) }

func sortedKeys(n int, iter func(append func(string))) []string {
	keys := make([]string, 0, n)
	iter(func(k string) { keys = append(keys, k) })
	sort.Strings(keys)
	return keys
}

func ftKeysSorted(m map[string]uint64) []string {
	return sortedKeys(len(m), func(add func(string)) {
		for k := range m {
			add(k)
		}
	})
}

func nftKeysSorted(m map[string]bool) []string {
	return sortedKeys(len(m), func(add func(string)) {
		for k := range m {
			add(k)
		}
	})
}

func itemAt(keys []string, index int) (Ref, bool) {
	if index < 0 || index >= len(keys) {
		return Ref{}, false
	}
	ref, err := RefFromHex(keys[index])
	if err != nil {
		return Ref{}, false
	}
	return ref, true
}

// FtItem returns the index-th live fungible-token reference in ascending
// key order.
func (c *Context) FtItem(index int) (Ref, bool) {
	return itemAt(ftKeysSorted(c.ftLive), index)
}

// FtItemIncoming returns the index-th incoming fungible-token reference in
// ascending key order.
func (c *Context) FtItemIncoming(index int) (Ref, bool) {
	return itemAt(ftKeysSorted(c.ftIncoming), index)
}

// NftItem returns the index-th live non-fungible-token reference in
// ascending key order.
func (c *Context) NftItem(index int) (Ref, bool) {
	return itemAt(nftKeysSorted(c.nftLive), index)
}

// NftItemIncoming returns the index-th incoming non-fungible-token
// reference in ascending key order.
func (c *Context) NftItemIncoming(index int) (Ref, bool) {
	return itemAt(nftKeysSorted(c.nftIncoming), index)
}

// WithdrawFt deducts amount from the live balance of ref and records the
// withdrawal against the given transaction output. The balance entry is
// removed when it reaches zero.
func (c *Context) WithdrawFt(ref Ref, outputIndex uint32, amount uint64) bool {
	if amount == 0 {
		return false
	}
	key := ref.Hex()
	available, ok := c.ftLive[key]
	if !ok || amount > available {
		return false
	}
	updated := available - amount
	if updated == 0 {
		delete(c.ftLive, key)
	} else {
		c.ftLive[key] = updated
	}
	c.ftUpdates[key] = updated

	if c.ftWithdraws[key] == nil {
		c.ftWithdraws[key] = make(map[uint32]uint64)
	}
	c.ftWithdraws[key][outputIndex] += amount
	return true
}

// WithdrawNft releases ref from the live table and records the withdrawal
// against the given transaction output.
func (c *Context) WithdrawNft(ref Ref, outputIndex uint32) bool {
	key := ref.Hex()
	if !c.nftLive[key] {
		return false
	}
	delete(c.nftLive, key)
	c.nftUpdates[key] = false
	c.nftWithdraws[key] = outputIndex
	return true
}

// External returns the immutable external block-header context.
func (c *Context) External() *ExternalState {
	return c.external
}

// Canonicalize prunes empty keyspaces from the three key/value maps, zero
// balances from the live fungible table and false entries from the live
// non-fungible table. It runs once, after successful script execution.
func (c *Context) Canonicalize() {
	pruneEmptyKeyspaces(c.kvLive)
	pruneEmptyKeyspaces(c.kvUpdates)
	for ks, inner := range c.kvDeletes {
		if len(inner) == 0 {
			delete(c.kvDeletes, ks)
		}
	}
	for k, v := range c.ftLive {
		if v == 0 {
			delete(c.ftLive, k)
		}
	}
	for k, v := range c.nftLive {
		if !v {
			delete(c.nftLive, k)
		}
	}
}

func pruneEmptyKeyspaces(m KVMap) {
	for ks, inner := range m {
		if len(inner) == 0 {
			delete(m, ks)
		}
	}
}

// Snapshots of the final state, consumed by the entry point for output
// encoding and state hashing. The returned maps alias the context.

// StateFinal returns the live key/value state.
func (c *Context) StateFinal() KVMap { return c.kvLive }

// StateUpdates returns the key/value update journal.
func (c *Context) StateUpdates() KVMap { return c.kvUpdates }

// StateDeletes returns the key/value delete journal.
func (c *Context) StateDeletes() map[string]map[string]bool { return c.kvDeletes }

// FtBalances returns the live fungible balances.
func (c *Context) FtBalances() map[string]uint64 { return c.ftLive }

// FtBalancesUpdates returns the fungible balances changed this invocation.
func (c *Context) FtBalancesUpdates() map[string]uint64 { return c.ftUpdates }

// NftBalances returns the live non-fungible table.
func (c *Context) NftBalances() map[string]bool { return c.nftLive }

// NftBalancesUpdates returns the non-fungible entries changed this
// invocation.
func (c *Context) NftBalancesUpdates() map[string]bool { return c.nftUpdates }

// FtWithdrawals returns the fungible withdrawal map: ref -> output index ->
// amount.
func (c *Context) FtWithdrawals() map[string]map[uint32]uint64 { return c.ftWithdraws }

// NftWithdrawals returns the non-fungible withdrawal map: ref -> output
// index.
func (c *Context) NftWithdrawals() map[string]uint32 { return c.nftWithdraws }

// FtBalancesAdded returns the set of refs taken from the incoming fungible
// pool this invocation.
func (c *Context) FtBalancesAdded() map[string]bool {
	added := make(map[string]bool, len(c.ftAddedOnce))
	for k := range c.ftAddedOnce {
		added[k] = true
	}
	return added
}

// NftPuts returns the set of refs taken from the incoming non-fungible pool
// this invocation.
func (c *Context) NftPuts() map[string]bool {
	puts := make(map[string]bool, len(c.nftPutOnce))
	for k := range c.nftPutOnce {
		puts[k] = true
	}
	return puts
}

// FtIncoming returns the read-only incoming fungible pool.
func (c *Context) FtIncoming() map[string]uint64 { return c.ftIncoming }

// NftIncoming returns the read-only incoming non-fungible pool.
func (c *Context) NftIncoming() map[string]bool { return c.nftIncoming }
