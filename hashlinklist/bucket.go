// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import (
	"sync/atomic"
	"unsafe"

	"github.com/lsmkv/hashlinklist/internal/base"
)

// bucketTable is component B: a fixed-size array of atomic bucket-head
// offsets, one per hash bucket, allocated from the arena exactly once at
// construction (spec.md §4.B). It never resizes; BucketCount is fixed for
// the index's lifetime.
type bucketTable struct {
	arena Arena
	heads []atomic.Uint32
}

// newBucketTable allocates a bucketCount-entry array of bucket-head
// offsets from a. Every head starts at 0 (empty bucket), matching the
// zero-initialized memory arena.New's backing make([]byte, ...) provides.
func newBucketTable(a Arena, bucketCount uint32) (*bucketTable, error) {
	if bucketCount == 0 {
		return nil, base.ErrBucketCountInvalid
	}
	size := bucketCount * uint32(unsafe.Sizeof(atomic.Uint32{}))
	off, err := a.Alloc(size, arenaAlign4)
	if err != nil {
		return nil, err
	}
	heads := unsafe.Slice((*atomic.Uint32)(a.Pointer(off)), bucketCount)
	return &bucketTable{arena: a, heads: heads}, nil
}

// count returns the fixed number of buckets.
func (bt *bucketTable) count() uint32 { return uint32(len(bt.heads)) }

// headOffset acquire-loads the head offset of bucket i.
func (bt *bucketTable) headOffset(i uint32) uint32 { return bt.heads[i].Load() }

// setHeadOffset release-stores a new head offset for bucket i. Only the
// single writer may call this.
func (bt *bucketTable) setHeadOffset(i uint32, off uint32) { bt.heads[i].Store(off) }
