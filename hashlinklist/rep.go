// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package hashlinklist implements RocksDB's prefix-partitioned, bucketed,
// lock-free sorted-linked-list memtable index (components B-E of spec.md).
// Keys sharing a hash-extractor prefix chain together in one bucket's
// sorted singly-linked list; a single writer goroutine inserts while any
// number of readers walk the structure concurrently without locking,
// synchronizing only through the atomic bucket-head and node-successor
// offsets component C defines.
package hashlinklist

import (
	"github.com/lsmkv/hashlinklist/internal/base"
	"github.com/lsmkv/hashlinklist/internal/hash"
	"github.com/lsmkv/hashlinklist/internal/invariants"
	"github.com/lsmkv/hashlinklist/internal/metrics"
	"github.com/lsmkv/hashlinklist/prefix"
)

// UserKeyFunc decodes the user key portion out of a memtable-encoded
// entry, so the index can apply the prefix extractor to the right bytes.
// The default, used when a Config leaves this nil,
// treats entry as a base.InternalKey encoding and strips its trailer.
type UserKeyFunc func(entry []byte) []byte

func defaultUserKey(entry []byte) []byte {
	return base.DecodeInternalKey(entry).UserKey
}

// Index ties together the bucket table (component B), the comparator and
// prefix extractor, and the arena entries are allocated from. It has no
// exported mutating methods; callers reach Insert only through a Writer
// and everything else only through a Reader, so the single-writer
// requirement (spec.md §5) is enforced at the type boundary rather than by
// convention.
type Index struct {
	arena     Arena
	cmp       base.Compare
	equal     base.Equal
	extractor prefix.Extractor
	userKey   UserKeyFunc
	buckets   *bucketTable
	logger    base.Logger
	metrics   *metrics.Recorder
}

func (idx *Index) slot(px []byte) uint32 {
	return hash.Murmur32(px, hash.Seed0) % idx.buckets.count()
}

// isAfter reports whether n's entry sorts strictly before entry, i.e.
// whether a writer walking a bucket's list should keep advancing past n
// to find entry's insertion point. Mirrors RocksDB's KeyIsAfterNode.
func (idx *Index) isAfter(entry []byte, n *node) bool {
	return idx.cmp(n.entry(idx.arena), entry) < 0
}

// findGreaterOrEqual walks the bucket starting at headOff and returns the
// offset of the first node whose entry is >= entry, or 0 if none exists.
func (idx *Index) findGreaterOrEqual(headOff uint32, entry []byte) uint32 {
	curOff := headOff
	cur := nodeAt(idx.arena, curOff)
	for cur != nil && idx.isAfter(entry, cur) {
		curOff = cur.nextOffset.Load()
		cur = nodeAt(idx.arena, curOff)
	}
	return curOff
}

func (idx *Index) contains(entry []byte) bool {
	px := idx.extractor.Transform(idx.userKey(entry))
	slot := idx.slot(px)
	headOff := idx.buckets.headOffset(slot)
	if headOff == 0 {
		return false
	}
	foundOff := idx.findGreaterOrEqual(headOff, entry)
	if foundOff == 0 {
		return false
	}
	return idx.equal(entry, nodeAt(idx.arena, foundOff).entry(idx.arena))
}

// Writer is the single mutating handle onto an Index. Only one goroutine
// may hold and use a Writer at a time; spec.md §5 makes this the caller's
// responsibility, same as the original's single-threaded Insert contract.
type Writer struct {
	idx *Index
}

// Insert adds entry to its bucket's sorted list, in its prefix-derived
// bucket, at the position that keeps the list sorted by the index's
// comparator. entry must not already be present; debug builds assert
// this (spec.md §7).
func (w *Writer) Insert(entry []byte) error {
	idx := w.idx
	px := idx.extractor.Transform(idx.userKey(entry))
	slot := idx.slot(px)

	nodeOff, err := newNode(idx.arena, entry)
	if err != nil {
		return err
	}
	nd := nodeAt(idx.arena, nodeOff)

	headOff := idx.buckets.headOffset(slot)
	if headOff == 0 {
		nd.nextOffset.Store(0)
		idx.buckets.setHeadOffset(slot, nodeOff)
		idx.onInsert(slot)
		return nil
	}

	var prevOff uint32
	curOff := headOff
	cur := nodeAt(idx.arena, curOff)
	for cur != nil && idx.isAfter(entry, cur) {
		if invariants.Enabled && prevOff != 0 {
			prev := nodeAt(idx.arena, prevOff)
			if idx.cmp(prev.entry(idx.arena), cur.entry(idx.arena)) > 0 {
				idx.logger.Fatalf("hashlinklist: bucket list is not sorted")
			}
		}
		prevOff = curOff
		curOff = cur.nextOffset.Load()
		cur = nodeAt(idx.arena, curOff)
	}

	if invariants.Enabled && cur != nil && idx.equal(entry, cur.entry(idx.arena)) {
		idx.logger.Fatalf("hashlinklist: duplicate insert of %q", entry)
	}

	nd.nextOffset.Store(curOff)
	if prevOff == 0 {
		idx.buckets.setHeadOffset(slot, nodeOff)
	} else {
		nodeAt(idx.arena, prevOff).nextOffset.Store(nodeOff)
	}
	idx.onInsert(slot)
	return nil
}

func (idx *Index) onInsert(slot uint32) {
	if idx.metrics != nil {
		idx.metrics.RecordInsert(slot)
	}
}

// Reader is the read-only handle onto an Index. Any number of goroutines
// may hold and use Readers concurrently with each other and with the
// single Writer, with no locking (spec.md §5).
type Reader struct {
	idx *Index
}

// Contains reports whether entry is present in the index.
func (r *Reader) Contains(entry []byte) bool { return r.idx.contains(entry) }

// ApproximateMemoryUsage always returns 0: the index tracks no byte
// accounting of its own, leaving that to the arena it was constructed
// with (spec.md §3, matching the original's ApproximateMemoryUsage, which
// also always returns 0 since the hash table itself is allocated from the
// arena already accounted for elsewhere).
func (r *Reader) ApproximateMemoryUsage() uint64 { return 0 }

// NewIterator returns a materialized full-order iterator over every entry
// in the index, built fresh from the current contents of every bucket.
func (r *Reader) NewIterator() Iterator {
	return newFullIterator(r.idx)
}

// NewRawPrefixIterator returns an iterator over exactly the bucket that
// px (already in prefix form, not a user key) hashes to. It never
// re-homes to another bucket, even via Seek.
func (r *Reader) NewRawPrefixIterator(px []byte) Iterator {
	slot := r.idx.slot(px)
	return newBucketIterator(r.idx, r.idx.buckets.headOffset(slot))
}

// NewPrefixIterator returns an iterator over the bucket that userKey's
// extracted prefix hashes to.
func (r *Reader) NewPrefixIterator(userKey []byte) Iterator {
	return r.NewRawPrefixIterator(r.idx.extractor.Transform(userKey))
}

// NewDynamicPrefixIterator returns an iterator with no fixed bucket: each
// Seek re-derives the prefix from the sought user key and re-homes to
// that bucket before searching it.
func (r *Reader) NewDynamicPrefixIterator() Iterator {
	return newDynamicIterator(r.idx)
}
