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

import "ordercache/constants"

// ValidationError reports why Add rejected an order, or why Cancel
// rejected a malformed order id. Callers that need to branch on the
// specific failure should errors.As into this type and switch on Kind
// rather than matching the message text.
type ValidationError struct {
	Kind   constants.ErrKind
	Reason string
}

func (e *ValidationError) Error() string {
	return "ordercache: " + e.Kind.String() + ": " + e.Reason
}

func newValidationError(kind constants.ErrKind, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Reason: reason}
}
