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

// bucketIndex maps an arbitrary string key (a user or a security id) to
// the unordered set of live slot indices currently filed under that
// key. Shared implementation for both secondary indices, per spec
// section 4.3: linear scan within a bucket is fine because bucket size
// is bounded by how many orders are simultaneously live for one user or
// one security, not by total fan-out.
type bucketIndex struct {
	buckets map[string][]uint64
}

func newBucketIndex() *bucketIndex {
	return &bucketIndex{buckets: make(map[string][]uint64)}
}

// addRef files index under key, creating the bucket if this is its
// first entry.
func (b *bucketIndex) addRef(key string, index uint64) {
	b.buckets[key] = append(b.buckets[key], index)
}

// removeRef locates index within key's bucket by linear scan and
// swap-pops it out. Fails silently if key or index is missing. A
// bucket that becomes empty is deleted so there are no empty buckets.
func (b *bucketIndex) removeRef(key string, index uint64) {
	bucket, ok := b.buckets[key]
	if !ok {
		return
	}
	for i, v := range bucket {
		if v == index {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket = bucket[:last]
			break
		}
	}
	if len(bucket) == 0 {
		delete(b.buckets, key)
	} else {
		b.buckets[key] = bucket
	}
}

// snapshot returns a defensive copy of key's bucket so callers
// (CancelForUser, CancelForSecurityWithMinQty) can iterate it while
// removeRef mutates the live bucket underneath them mid-loop.
func (b *bucketIndex) snapshot(key string) []uint64 {
	bucket, ok := b.buckets[key]
	if !ok {
		return nil
	}
	out := make([]uint64, len(bucket))
	copy(out, bucket)
	return out
}

func (b *bucketIndex) count(key string) int {
	return len(b.buckets[key])
}
