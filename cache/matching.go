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

// matchingSize computes the maximum size of a single matching round for
// a security in O(1), from its aggregate snapshot alone (spec section
// 5): the leading company's combined volume caps how much of that
// company's own buy+sell can match against everybody else, and the
// remaining liquidity on each side caps what's left.
//
// All arithmetic runs in int64 to keep the excess/match terms from
// overflowing while totalBuy/totalSell/leading are each already
// bounded by the uint32 qty sum of a finite number of live orders; the
// final result is narrowed back to uint32 because a matched size can
// never exceed either side's own total.
func matchingSize(snap *securitySnapshot) uint32 {
	if snap == nil {
		return 0
	}
	leading := snap.maxVolume()
	if leading == 0 {
		return 0
	}

	buy := snap.totalBuy
	sell := snap.totalSell

	excessBuy := max64(0, leading-sell)
	excessSell := max64(0, leading-buy)

	matchBuy := buy - excessBuy
	matchSell := sell - excessSell

	result := max64(0, min64(matchBuy, matchSell))
	return uint32(result)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
