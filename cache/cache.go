/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache

import (
	"log"

	"ordercache/constants"
)

// Config controls construction of an OrderCache. The zero Config is
// valid: no capacity hint, no logging.
type Config struct {
	// CapacityHint preallocates the primary store's backing slabs for
	// this many slots. Purely an optimization; the store still grows
	// on demand past this size.
	CapacityHint int

	// Logger, if non-nil, receives a sparse trail of diagnostic lines:
	// construction and primary-store capacity growth. Nil means
	// silent.
	Logger *log.Logger
}

// NewConfig returns the default Config: no capacity hint, no logging.
func NewConfig() *Config {
	return &Config{}
}

// OrderCache is the in-memory order book described by spec sections
// 2-4: a primary slab store keyed by the order id's numeric tail, two
// secondary indices (by user, by security), and a per-security
// aggregate snapshot kept incrementally in sync with both. None of its
// methods are safe for concurrent use; callers serialize access
// externally if needed.
type OrderCache struct {
	store      *orderStore
	byUser     *bucketIndex
	bySecurity *bucketIndex
	snapshots  *snapshotEngine
	logger     *log.Logger
}

// NewOrderCache builds an empty cache. A nil cfg is equivalent to
// NewConfig().
func NewOrderCache(cfg *Config) *OrderCache {
	if cfg == nil {
		cfg = NewConfig()
	}
	if cfg.Logger != nil {
		cfg.Logger.Printf("ordercache: new cache, capacity hint %d", cfg.CapacityHint)
	}
	return &OrderCache{
		store:      newOrderStore(cfg.CapacityHint, cfg.Logger),
		byUser:     newBucketIndex(),
		bySecurity: newBucketIndex(),
		snapshots:  newSnapshotEngine(),
		logger:     cfg.Logger,
	}
}

// Add validates o and, unless its decoded slot is already alive,
// commits it to the primary store, both secondary indices, and the
// security's aggregate snapshot. A duplicate id is a silent no-op, not
// an error (spec section 4.6/4.7).
func (c *OrderCache) Add(o Order) error {
	index, err := validate(o)
	if err != nil {
		return err
	}
	if c.store.has(index) {
		return nil
	}

	c.store.insert(o, index)
	c.byUser.addRef(o.User, index)
	c.bySecurity.addRef(o.SecurityID, index)
	c.snapshots.onAdd(o)
	return nil
}

// Cancel decodes orderID and, if its slot is alive, removes it from
// every view. A malformed id is an error; an id whose slot is not
// alive is a silent no-op.
func (c *OrderCache) Cancel(orderID string) error {
	index, ok := decodeOrderID(orderID)
	if !ok {
		return newValidationError(constants.ErrKindInvalidOrderIDOnCancel, "order id "+orderID+" is malformed")
	}
	if !c.store.has(index) {
		return nil
	}
	c.cancelIndex(index)
	return nil
}

// cancelIndex removes the order at index from every view. Callers must
// have already confirmed c.store.has(index).
func (c *OrderCache) cancelIndex(index uint64) {
	o := c.store.get(index)
	c.snapshots.onRemove(o)
	c.bySecurity.removeRef(o.SecurityID, index)
	c.byUser.removeRef(o.User, index)
	c.store.erase(index)
}

// CancelForUser cancels every order currently live for user. Iterates
// a defensive copy of the user's index bucket so cancelling one entry
// doesn't perturb the rest of the walk. Absent user is a no-op.
func (c *OrderCache) CancelForUser(user string) {
	for _, index := range c.byUser.snapshot(user) {
		if c.store.has(index) {
			c.cancelIndex(index)
		}
	}
}

// CancelForSecurityWithMinQty cancels every order live for securityID
// whose quantity is at least minQty. minQty == 0 is a no-op (spec
// section 4.6: zero would otherwise cancel everything unconditionally,
// which is never what a caller means by this call).
func (c *OrderCache) CancelForSecurityWithMinQty(securityID string, minQty uint32) {
	if minQty == 0 {
		return
	}
	for _, index := range c.bySecurity.snapshot(securityID) {
		if !c.store.has(index) {
			continue
		}
		if c.store.get(index).Qty >= minQty {
			c.cancelIndex(index)
		}
	}
}

// MatchingSize returns the O(1) matching-size read for securityID, 0
// if the security has no live orders (spec section 4.5).
func (c *OrderCache) MatchingSize(securityID string) uint32 {
	snap, ok := c.snapshots.get(securityID)
	if !ok {
		return 0
	}
	return matchingSize(snap)
}

// AllOrders returns a copy of every currently live order, in
// unspecified order.
func (c *OrderCache) AllOrders() []Order {
	return c.store.enumerate()
}

// LiveOrderCount returns the number of currently live orders.
func (c *OrderCache) LiveOrderCount() int {
	return c.store.liveCount()
}

// UserOrderCount returns the number of orders currently live for user.
func (c *OrderCache) UserOrderCount(user string) int {
	return c.byUser.count(user)
}

// SecurityIDs returns the securities that currently have at least one
// live order, in unspecified order.
func (c *OrderCache) SecurityIDs() []string {
	return c.snapshots.securityIDs()
}
