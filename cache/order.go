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

// Order is an immutable value object describing a single buy or sell
// intention submitted by a user acting for a company. Orders are never
// mutated once added; the only edit model is cancel then re-add.
type Order struct {
	OrderID    string // must match constants.OrderIDPrefix + decimal digits
	SecurityID string
	Side       string // constants.SideBuy or constants.SideSell
	Qty        uint32
	User       string
	Company    string
}
