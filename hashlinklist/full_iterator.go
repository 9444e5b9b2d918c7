// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import "sort"

// fullIterator is the materialized full-order iterator (spec.md §4.D): it
// walks every bucket once at construction and keeps a single sorted view
// over all of them, supporting the complete positional API (Prev,
// SeekToLast, ordered Seek) that a per-bucket iterator cannot.
//
// The original builds this auxiliary structure as a fresh skiplist,
// inserting every bucket's entries into it one at a time via repeated
// SeekToHead/Next walks. For a structure that is built once and never
// mutated again, a sorted slice searched with binary search gives the
// same O(log n) seek and O(1) step costs as a skiplist without the
// multi-level pointer machinery; entries are arena-resident node views,
// so sorting the slice of entry byte slices never copies key data.
type fullIterator struct {
	idx     *Index
	entries [][]byte
	pos     int
}

func newFullIterator(idx *Index) Iterator {
	var entries [][]byte
	for i := uint32(0); i < idx.buckets.count(); i++ {
		it := bucketIterator{idx: idx, headOff: idx.buckets.headOffset(i)}
		for it.seekToHead(); it.Valid(); it.Next() {
			entries = append(entries, it.Key())
		}
	}
	sort.Slice(entries, func(a, b int) bool {
		return idx.cmp(entries[a], entries[b]) < 0
	})
	return &fullIterator{idx: idx, entries: entries, pos: -1}
}

func (it *fullIterator) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.entries)
}

func (it *fullIterator) Key() []byte { return it.entries[it.pos] }

func (it *fullIterator) Next() { it.pos++ }

func (it *fullIterator) Prev() { it.pos-- }

func (it *fullIterator) SeekToFirst() {
	if len(it.entries) == 0 {
		it.pos = -1
		return
	}
	it.pos = 0
}

func (it *fullIterator) SeekToLast() {
	it.pos = len(it.entries) - 1
}

func (it *fullIterator) Seek(userKey []byte, opts SeekOptions) {
	entry := it.idx.searchEntry(userKey, opts)
	it.pos = sort.Search(len(it.entries), func(i int) bool {
		return it.idx.cmp(it.entries[i], entry) >= 0
	})
}
