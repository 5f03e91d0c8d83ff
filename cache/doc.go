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

// Package cache provides an in-memory order cache for a trading-style
// workload: a primary slot store, per-user and per-security secondary
// indices, and a per-security aggregate snapshot that answers the
// matching-size query in O(1).
//
// OrderCache is not safe for concurrent use. Callers that need
// multi-goroutine access wrap it in their own mutual exclusion; no
// operation here blocks or schedules asynchronously.
package cache
