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

// Package cache's snapshot engine is the core of the order cache (spec
// section 2): one securitySnapshot per security with a live order,
// updated incrementally on every Add/Cancel so that MatchingSize never
// recomputes from the underlying orders.
//
// maxVolumes needs an ordered multiset supporting insert, removal of an
// arbitrary interior value, and O(log n) max - a max-heap alone can't
// satisfy arbitrary removal. github.com/google/btree's generic BTreeG
// is that structure; entries are keyed by (volume, company) so two
// companies sharing a combined volume stay distinct.
package cache

import (
	"ordercache/constants"

	"github.com/google/btree"
)

const maxVolumesDegree = 32

type companyVolume struct {
	company string
	volume  int64
}

func lessCompanyVolume(a, b companyVolume) bool {
	if a.volume != b.volume {
		return a.volume < b.volume
	}
	return a.company < b.company
}

type companyTotals struct {
	buy  int64
	sell int64
}

// securitySnapshot is the per-security aggregate record described by
// spec section 3: total buy/sell quantity, a per-company (buy,sell)
// breakdown, and the running multiset of per-company combined volumes.
type securitySnapshot struct {
	totalBuy   int64
	totalSell  int64
	companies  map[string]companyTotals
	maxVolumes *btree.BTreeG[companyVolume]
}

func newSecuritySnapshot() *securitySnapshot {
	return &securitySnapshot{
		companies:  make(map[string]companyTotals),
		maxVolumes: btree.NewG(maxVolumesDegree, lessCompanyVolume),
	}
}

// onAdd folds one order's contribution in, per spec section 4.4 steps
// 1-5: evict the company's old combined-volume entry (if any), update
// the totals, then reinsert the new combined volume.
func (s *securitySnapshot) onAdd(company string, qty int64, isBuy bool) {
	v := s.companies[company]
	oldCombined := v.buy + v.sell
	if oldCombined > 0 {
		s.maxVolumes.Delete(companyVolume{company: company, volume: oldCombined})
	}

	if isBuy {
		s.totalBuy += qty
		v.buy += qty
	} else {
		s.totalSell += qty
		v.sell += qty
	}
	s.companies[company] = v
	s.maxVolumes.ReplaceOrInsert(companyVolume{company: company, volume: v.buy + v.sell})
}

// onRemove is the symmetric inverse of onAdd: evict the old combined
// volume, subtract, and reinsert only if the company still has live
// volume on this security - otherwise drop the company entirely so the
// map stays bounded by currently-active companies.
func (s *securitySnapshot) onRemove(company string, qty int64, isBuy bool) {
	v := s.companies[company]
	oldCombined := v.buy + v.sell
	if oldCombined > 0 {
		s.maxVolumes.Delete(companyVolume{company: company, volume: oldCombined})
	}

	if isBuy {
		s.totalBuy -= qty
		v.buy -= qty
	} else {
		s.totalSell -= qty
		v.sell -= qty
	}

	if newCombined := v.buy + v.sell; newCombined > 0 {
		s.companies[company] = v
		s.maxVolumes.ReplaceOrInsert(companyVolume{company: company, volume: newCombined})
	} else {
		delete(s.companies, company)
	}
}

// maxVolume returns the leading company's combined volume, 0 if no
// company currently has any live order on this security.
func (s *securitySnapshot) maxVolume() int64 {
	top, ok := s.maxVolumes.Max()
	if !ok {
		return 0
	}
	return top.volume
}

func (s *securitySnapshot) isEmpty() bool {
	return s.totalBuy == 0 && s.totalSell == 0
}

// snapshotEngine owns one securitySnapshot per security with a live
// order. A security's entry is dropped once its last order cancels
// (spec section 9, Open Question: retention on emptiness is
// unobservable, this implementation keeps the map bounded).
type snapshotEngine struct {
	bySecurity map[string]*securitySnapshot
}

func newSnapshotEngine() *snapshotEngine {
	return &snapshotEngine{bySecurity: make(map[string]*securitySnapshot)}
}

func (e *snapshotEngine) onAdd(o Order) {
	snap, ok := e.bySecurity[o.SecurityID]
	if !ok {
		snap = newSecuritySnapshot()
		e.bySecurity[o.SecurityID] = snap
	}
	snap.onAdd(o.Company, int64(o.Qty), o.Side == constants.SideBuy)
}

func (e *snapshotEngine) onRemove(o Order) {
	snap, ok := e.bySecurity[o.SecurityID]
	if !ok {
		return
	}
	snap.onRemove(o.Company, int64(o.Qty), o.Side == constants.SideBuy)
	if snap.isEmpty() {
		delete(e.bySecurity, o.SecurityID)
	}
}

func (e *snapshotEngine) get(securityID string) (*securitySnapshot, bool) {
	s, ok := e.bySecurity[securityID]
	return s, ok
}

func (e *snapshotEngine) securityIDs() []string {
	ids := make([]string, 0, len(e.bySecurity))
	for id := range e.bySecurity {
		ids = append(ids, id)
	}
	return ids
}
