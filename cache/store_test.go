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

import "testing"

func TestOrderStore_InsertAndGet(t *testing.T) {
	s := newOrderStore(0, nil)
	o := Order{OrderID: "OrdId3", SecurityID: "SEC", Side: "Buy", Qty: 10, User: "u1", Company: "CompA"}

	if s.has(3) {
		t.Fatal("expected slot 3 absent before insert")
	}
	s.insert(o, 3)
	if !s.has(3) {
		t.Fatal("expected slot 3 alive after insert")
	}
	if got := s.get(3); got != o {
		t.Errorf("get(3) = %+v, want %+v", got, o)
	}
}

// TestOrderStore_InsertGrowsSparsely verifies that inserting at a high
// index grows the backing slabs without requiring every lower index to
// be inserted first.
func TestOrderStore_InsertGrowsSparsely(t *testing.T) {
	s := newOrderStore(0, nil)
	o := Order{OrderID: "OrdId100", SecurityID: "SEC", Side: "Sell", Qty: 1, User: "u1", Company: "CompA"}
	s.insert(o, 100)

	if !s.has(100) {
		t.Fatal("expected slot 100 alive")
	}
	for i := uint64(0); i < 100; i++ {
		if s.has(i) {
			t.Errorf("slot %d should not be alive", i)
		}
	}
	if s.liveCount() != 1 {
		t.Errorf("liveCount() = %d, want 1", s.liveCount())
	}
}

func TestOrderStore_EraseAndReinsert(t *testing.T) {
	s := newOrderStore(0, nil)
	a := Order{OrderID: "OrdId1", SecurityID: "SEC", Side: "Buy", Qty: 1, User: "u1", Company: "CompA"}
	s.insert(a, 1)
	s.erase(1)

	if s.has(1) {
		t.Fatal("expected slot 1 dead after erase")
	}
	if s.liveCount() != 0 {
		t.Errorf("liveCount() = %d, want 0", s.liveCount())
	}

	b := Order{OrderID: "OrdId1", SecurityID: "SEC2", Side: "Sell", Qty: 9, User: "u2", Company: "CompB"}
	s.insert(b, 1)
	if !s.has(1) {
		t.Fatal("expected slot 1 alive after reinsert")
	}
	if got := s.get(1); got != b {
		t.Errorf("get(1) = %+v, want %+v", got, b)
	}
}

// TestOrderStore_EraseSwapPopKeepsOthersAlive verifies that erasing one
// slot via swap-pop never disturbs the liveness of unrelated slots.
func TestOrderStore_EraseSwapPopKeepsOthersAlive(t *testing.T) {
	s := newOrderStore(0, nil)
	for i := uint64(0); i < 5; i++ {
		s.insert(Order{OrderID: "x", Qty: 1}, i)
	}
	s.erase(2)

	for i := uint64(0); i < 5; i++ {
		want := i != 2
		if s.has(i) != want {
			t.Errorf("has(%d) = %v, want %v", i, s.has(i), want)
		}
	}
	if s.liveCount() != 4 {
		t.Errorf("liveCount() = %d, want 4", s.liveCount())
	}

	got := s.enumerate()
	if len(got) != 4 {
		t.Fatalf("enumerate() returned %d orders, want 4", len(got))
	}
}

func TestOrderStore_EnumerateEmpty(t *testing.T) {
	s := newOrderStore(0, nil)
	got := s.enumerate()
	if len(got) != 0 {
		t.Errorf("enumerate() on empty store = %v, want empty", got)
	}
}
