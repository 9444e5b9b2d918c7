// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import "github.com/lsmkv/hashlinklist/internal/base"

// SeekOptions configures a Seek call. Encoded, if set, is a pre-encoded
// search entry (e.g. built once by a caller issuing many seeks for the
// same user key at different sequence numbers), letting Seek skip
// re-deriving one from userKey.
type SeekOptions struct {
	Encoded []byte
}

// Iterator is the common shape of all four iterator kinds component D
// describes: EmptyIterator, the per-bucket prefix iterator, the dynamic
// prefix iterator, and the materialized full-order iterator. Not every
// kind supports every method meaningfully (see each constructor's doc);
// calling an unsupported positional operation leaves the iterator
// invalid rather than panicking, matching the original's EmptyIterator
// and non-dynamic Iterator behavior for out-of-bucket operations.
type Iterator interface {
	// Valid reports whether the iterator is positioned at an entry.
	Valid() bool

	// Key returns the entry at the iterator's current position. Valid
	// must be true.
	Key() []byte

	// Next advances to the next entry in the iterator's ordering.
	Next()

	// Prev moves to the previous entry in the iterator's ordering, where
	// supported.
	Prev()

	// SeekToFirst positions at the first entry in the iterator's
	// ordering, where supported.
	SeekToFirst()

	// SeekToLast positions at the last entry in the iterator's ordering,
	// where supported.
	SeekToLast()

	// Seek positions at the first entry >= userKey, using the index's
	// comparator over memtable-encoded entries.
	Seek(userKey []byte, opts SeekOptions)
}

// searchEntry returns the memtable-encoded entry to search for, given a
// user key and SeekOptions. Uses opts.Encoded directly if supplied.
func (idx *Index) searchEntry(userKey []byte, opts SeekOptions) []byte {
	if opts.Encoded != nil {
		return opts.Encoded
	}
	search := base.MakeSearchKey(userKey)
	buf := make([]byte, search.Size())
	search.Encode(buf)
	return buf
}

// emptyIterator is always invalid and supports no positioning. Returned
// when a prefix iterator is requested for a bucket with no entries,
// mirroring the original's EmptyIterator.
type emptyIterator struct{}

func (emptyIterator) Valid() bool                          { return false }
func (emptyIterator) Key() []byte                          { return nil }
func (emptyIterator) Next()                                {}
func (emptyIterator) Prev()                                {}
func (emptyIterator) SeekToFirst()                         {}
func (emptyIterator) SeekToLast()                          {}
func (emptyIterator) Seek(userKey []byte, opts SeekOptions) {}

// bucketIterator walks a single bucket's sorted linked list. It has no
// notion of the index's total order across buckets: Prev, SeekToFirst,
// and SeekToLast all just invalidate it, matching the original
// Iterator's documented restriction that these operations aren't
// supported outside the dynamic and full-list iterators.
type bucketIterator struct {
	idx     *Index
	headOff uint32
	curOff  uint32
}

func newBucketIterator(idx *Index, headOff uint32) Iterator {
	if headOff == 0 {
		return emptyIterator{}
	}
	return &bucketIterator{idx: idx, headOff: headOff}
}

func (it *bucketIterator) Valid() bool { return it.curOff != 0 }

func (it *bucketIterator) Key() []byte {
	return nodeAt(it.idx.arena, it.curOff).entry(it.idx.arena)
}

func (it *bucketIterator) Next() {
	it.curOff = nodeAt(it.idx.arena, it.curOff).nextOffset.Load()
}

func (it *bucketIterator) Prev() { it.curOff = 0 }

// SeekToFirst invalidates the iterator: a single bucket has no standalone
// notion of a full-order first entry, so this matches the original's
// Iterator::SeekToFirst (Reset(nullptr)), not the internal SeekToHead the
// full-order builder uses.
func (it *bucketIterator) SeekToFirst() { it.curOff = 0 }

func (it *bucketIterator) SeekToLast() { it.curOff = 0 }

func (it *bucketIterator) Seek(userKey []byte, opts SeekOptions) {
	entry := it.idx.searchEntry(userKey, opts)
	it.curOff = it.idx.findGreaterOrEqual(it.headOff, entry)
}

// seekToHead positions at the bucket's first node, used internally by the
// materialized full-order iterator's builder to walk every bucket from
// the start.
func (it *bucketIterator) seekToHead() { it.curOff = it.headOff }

// dynamicIterator re-homes to a different bucket on every Seek, deriving
// the target bucket from the sought user key's prefix. Unlike
// bucketIterator, it has no fixed bucket at construction.
type dynamicIterator struct {
	bucketIterator
}

func newDynamicIterator(idx *Index) Iterator {
	return &dynamicIterator{bucketIterator{idx: idx}}
}

func (it *dynamicIterator) Seek(userKey []byte, opts SeekOptions) {
	px := it.idx.extractor.Transform(userKey)
	slot := it.idx.slot(px)
	it.headOff = it.idx.buckets.headOffset(slot)
	it.bucketIterator.Seek(userKey, opts)
}
