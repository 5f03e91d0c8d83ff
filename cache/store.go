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

// HOT PATH: orderStore backs every Add/Cancel. Insert and erase are
// O(1); erase uses swap-pop against the alive-index list instead of a
// linear remove so cancelling never scans the whole store.
package cache

import "log"

// orderStore is the dense slot array keyed by the numeric tail of the
// order id (spec section 4.2/9: id<->index coupling). Freed slots keep
// their backing memory and are reused if the same slot is added again;
// capacity only ever grows.
type orderStore struct {
	orders []Order
	alive  []bool

	// aliveIndex holds every currently-alive slot exactly once, in no
	// particular order. pos[i] is the position of slot i within
	// aliveIndex, valid only while alive[i] is true.
	aliveIndex []uint64
	pos        []int

	logger *log.Logger
}

func newOrderStore(capacityHint int, logger *log.Logger) *orderStore {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &orderStore{
		orders:     make([]Order, 0, capacityHint),
		alive:      make([]bool, 0, capacityHint),
		aliveIndex: make([]uint64, 0, capacityHint),
		pos:        make([]int, 0, capacityHint),
		logger:     logger,
	}
}

func (s *orderStore) has(index uint64) bool {
	return index < uint64(len(s.alive)) && s.alive[index]
}

// get is only defined when has(index) is true; callers always gate on
// has, per spec section 4.2.
func (s *orderStore) get(index uint64) Order {
	return s.orders[index]
}

// ensureCapacity grows the backing slabs so that index is addressable.
func (s *orderStore) ensureCapacity(index uint64) {
	need := int(index) + 1
	if need <= len(s.orders) {
		return
	}
	if need > cap(s.orders) && s.logger != nil {
		s.logger.Printf("ordercache: growing primary store from %d to %d slots", len(s.orders), need)
	}

	// append reuses any preallocated capacity and grows geometrically
	// past it, so extending the slabs is amortized O(1) per slot.
	s.orders = append(s.orders, make([]Order, need-len(s.orders))...)
	s.alive = append(s.alive, make([]bool, need-len(s.alive))...)
	s.pos = append(s.pos, make([]int, need-len(s.pos))...)
}

// insert requires has(index) == false.
func (s *orderStore) insert(o Order, index uint64) {
	s.ensureCapacity(index)
	s.orders[index] = o
	s.alive[index] = true
	s.pos[index] = len(s.aliveIndex)
	s.aliveIndex = append(s.aliveIndex, index)
}

// erase requires has(index) == true. Swap-pop: move the last alive
// entry into the freed slot's position and fix up its recorded
// position, so removal never shifts the rest of the list.
func (s *orderStore) erase(index uint64) {
	p := s.pos[index]
	last := len(s.aliveIndex) - 1
	lastSlot := s.aliveIndex[last]

	s.aliveIndex[p] = lastSlot
	s.pos[lastSlot] = p
	s.aliveIndex = s.aliveIndex[:last]

	s.alive[index] = false
}

// enumerate copies out all live orders. Order is stable across
// identical histories on the same store but otherwise unspecified.
func (s *orderStore) enumerate() []Order {
	out := make([]Order, len(s.aliveIndex))
	for i, idx := range s.aliveIndex {
		out[i] = s.orders[idx]
	}
	return out
}

func (s *orderStore) liveCount() int {
	return len(s.aliveIndex)
}
