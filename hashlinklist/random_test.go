// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import (
	"fmt"
	"sort"
	"testing"

	"github.com/lsmkv/hashlinklist/internal/base"
	"github.com/lsmkv/hashlinklist/prefix"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// TestRandomizedInsertsStaySortedPerBucket runs many seeded, randomized
// insert orders and checks every bucket's list and the materialized
// full-order iterator both come out sorted (spec.md §8's sortedness and
// total-order properties), the same style of seeded property test the
// teacher's arenaskl skl_test.go runs with golang.org/x/exp/rand.
func TestRandomizedInsertsStaySortedPerBucket(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 1000} {
		rng := rand.New(rand.NewSource(seed))
		w, r := newTestIndex(t, 32, prefix.NewFixedPrefix(2))

		n := 500
		order := rng.Perm(n)
		for i, idx := range order {
			k := fmt.Sprintf("%04d", idx)
			require.NoError(t, w.Insert(encode(k, i+1)))
		}

		for b := uint32(0); b < r.idx.buckets.count(); b++ {
			bit := bucketIterator{idx: r.idx, headOff: r.idx.buckets.headOffset(b)}
			var bucket []string
			for bit.seekToHead(); bit.Valid(); bit.Next() {
				bucket = append(bucket, string(base.DecodeInternalKey(bit.Key()).UserKey))
			}
			require.True(t, sort.StringsAreSorted(bucket), "seed %d: bucket %d not sorted: %v", seed, b, bucket)
		}

		it := r.NewIterator()
		var seen []string
		for it.SeekToFirst(); it.Valid(); it.Next() {
			seen = append(seen, string(base.DecodeInternalKey(it.Key()).UserKey))
		}
		require.True(t, sort.StringsAreSorted(seen), "seed %d: not sorted: %v", seed, seen)
		require.Len(t, seen, n)

		for i, idx := range order {
			require.True(t, r.Contains(encode(fmt.Sprintf("%04d", idx), i+1)))
		}
	}
}
