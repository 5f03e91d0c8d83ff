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
	"strconv"
	"strings"

	"ordercache/constants"
)

// decodeOrderID parses the canonical slot index out of an order id of
// the form "OrdId<digits>". ok is false if the id doesn't match that
// shape; decodeOrderID has no side effects and never panics.
func decodeOrderID(id string) (index uint64, ok bool) {
	if !strings.HasPrefix(id, constants.OrderIDPrefix) {
		return 0, false
	}
	digits := id[len(constants.OrderIDPrefix):]
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// validate checks field-level constraints on o, in the order fixed by
// spec section 4.1: EmptyOrderId, InvalidOrderIdFormat, EmptySecurityId,
// EmptyUser, EmptyCompany, InvalidSide, ZeroQuantity. On success it
// returns the decoded slot index. No side effects.
func validate(o Order) (uint64, error) {
	if o.OrderID == "" {
		return 0, newValidationError(constants.ErrKindEmptyOrderID, "order id is empty")
	}
	index, ok := decodeOrderID(o.OrderID)
	if !ok {
		return 0, newValidationError(constants.ErrKindInvalidOrderIDFormat, "order id "+o.OrderID+" does not match "+constants.OrderIDPrefix+"<digits>")
	}
	if o.SecurityID == "" {
		return 0, newValidationError(constants.ErrKindEmptySecurityID, "security id is empty")
	}
	if o.User == "" {
		return 0, newValidationError(constants.ErrKindEmptyUser, "user is empty")
	}
	if o.Company == "" {
		return 0, newValidationError(constants.ErrKindEmptyCompany, "company is empty")
	}
	if o.Side != constants.SideBuy && o.Side != constants.SideSell {
		return 0, newValidationError(constants.ErrKindInvalidSide, "side must be Buy or Sell, got "+o.Side)
	}
	if o.Qty == 0 {
		return 0, newValidationError(constants.ErrKindZeroQuantity, "qty must be > 0")
	}
	return index, nil
}
