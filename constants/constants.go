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

// Package constants holds the enumerated values shared by the order
// cache: the order-id wire format, the side enum, and the validator's
// error kinds.
package constants

// --- Order ID wire format ---
const (
	// OrderIDPrefix is the fixed textual prefix of every order id. The
	// remainder of the id is the decimal slot index into the primary
	// store; id -> index is total, deterministic, and injective.
	OrderIDPrefix = "OrdId"
)

// --- Side ---
const (
	SideBuy  = "Buy"
	SideSell = "Sell"
)

// --- Validator error kinds ---
type ErrKind int

const (
	ErrKindNone ErrKind = iota
	ErrKindEmptyOrderID
	ErrKindInvalidOrderIDFormat
	ErrKindEmptySecurityID
	ErrKindEmptyUser
	ErrKindEmptyCompany
	ErrKindInvalidSide
	ErrKindZeroQuantity
	// ErrKindInvalidOrderIDOnCancel is raised by cancel, not add: the id
	// handed to cancel does not parse to a slot index.
	ErrKindInvalidOrderIDOnCancel
)

// String renders a human-readable label for an ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindEmptyOrderID:
		return "EmptyOrderId"
	case ErrKindInvalidOrderIDFormat:
		return "InvalidOrderIdFormat"
	case ErrKindEmptySecurityID:
		return "EmptySecurityId"
	case ErrKindEmptyUser:
		return "EmptyUser"
	case ErrKindEmptyCompany:
		return "EmptyCompany"
	case ErrKindInvalidSide:
		return "InvalidSide"
	case ErrKindZeroQuantity:
		return "ZeroQuantity"
	case ErrKindInvalidOrderIDOnCancel:
		return "InvalidOrderIdOnCancel"
	default:
		return "None"
	}
}
