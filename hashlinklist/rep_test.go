// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import (
	"fmt"
	"testing"

	"github.com/lsmkv/hashlinklist/internal/arena"
	"github.com/lsmkv/hashlinklist/internal/base"
	"github.com/lsmkv/hashlinklist/prefix"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T, bucketCount uint32, ext prefix.Extractor) (*Writer, *Reader) {
	t.Helper()
	a := arena.New(1 << 20)
	f := NewFactory(Config{Extractor: ext, BucketCount: bucketCount})
	w, r, err := f.New(base.DefaultComparer, a)
	require.NoError(t, err)
	return w, r
}

func encode(userKey string, seqNum int) []byte {
	k := base.MakeInternalKey([]byte(userKey), base.SeqNum(seqNum), base.InternalKeyKindSet)
	buf := make([]byte, k.Size())
	k.Encode(buf)
	return buf
}

func TestFactoryRejectsZeroBucketCount(t *testing.T) {
	a := arena.New(1 << 10)
	f := NewFactory(Config{Extractor: prefix.NewNoop(), BucketCount: 0})
	_, _, err := f.New(base.DefaultComparer, a)
	require.ErrorIs(t, err, base.ErrBucketCountInvalid)
}

func TestInsertAndContains(t *testing.T) {
	w, r := newTestIndex(t, 16, prefix.NewFixedPrefix(3))

	entries := []string{"aaa1", "aaa2", "bbb1", "ccc9", "aaa0"}
	for i, k := range entries {
		require.NoError(t, w.Insert(encode(k, i+1)))
	}

	for i, k := range entries {
		require.True(t, r.Contains(encode(k, i+1)), "missing %s", k)
	}
	require.False(t, r.Contains(encode("zzz9", 1)))
}

func TestBucketListStaysSorted(t *testing.T) {
	w, r := newTestIndex(t, 1, prefix.NewNoop())

	keys := []string{"m", "a", "z", "c", "k", "b"}
	for i, k := range keys {
		require.NoError(t, w.Insert(encode(k, i+1)))
	}

	it := r.NewRawPrefixIterator([]byte{})
	var seen []string
	for it.Seek([]byte(""), SeekOptions{}); it.Valid(); it.Next() {
		seen = append(seen, string(base.DecodeInternalKey(it.Key()).UserKey))
	}
	require.Equal(t, []string{"a", "b", "c", "k", "m", "z"}, seen)
}

func TestBucketIteratorSeekToFirstAndSeekToLastAreInvalid(t *testing.T) {
	w, r := newTestIndex(t, 1, prefix.NewNoop())
	require.NoError(t, w.Insert(encode("m", 1)))
	require.NoError(t, w.Insert(encode("a", 2)))

	it := r.NewRawPrefixIterator([]byte{})
	it.SeekToFirst()
	require.False(t, it.Valid(), "SeekToFirst must leave a per-bucket iterator invalid")

	it.SeekToLast()
	require.False(t, it.Valid(), "SeekToLast must leave a per-bucket iterator invalid")

	it.Seek([]byte(""), SeekOptions{})
	require.True(t, it.Valid(), "re-seeking must restore validity")
	require.Equal(t, "a", string(base.DecodeInternalKey(it.Key()).UserKey))

	dyn := r.NewDynamicPrefixIterator()
	dyn.SeekToFirst()
	require.False(t, dyn.Valid(), "SeekToFirst must leave a dynamic prefix iterator invalid")
}

func TestFullIteratorOrdersAcrossBuckets(t *testing.T) {
	w, r := newTestIndex(t, 8, prefix.NewFixedPrefix(1))

	keys := []string{"d1", "b2", "a3", "c4", "a1", "b0"}
	for i, k := range keys {
		require.NoError(t, w.Insert(encode(k, i+1)))
	}

	it := r.NewIterator()
	var seen []string
	for it.SeekToFirst(); it.Valid(); it.Next() {
		seen = append(seen, string(base.DecodeInternalKey(it.Key()).UserKey))
	}
	require.Equal(t, []string{"a1", "a3", "b0", "b2", "c4", "d1"}, seen)

	it.SeekToLast()
	require.Equal(t, "d1", string(base.DecodeInternalKey(it.Key()).UserKey))
	it.Prev()
	require.Equal(t, "c4", string(base.DecodeInternalKey(it.Key()).UserKey))
}

func TestFullIteratorSeek(t *testing.T) {
	w, r := newTestIndex(t, 4, prefix.NewFixedPrefix(1))
	for i, k := range []string{"a", "c", "e", "g"} {
		require.NoError(t, w.Insert(encode(k, i+1)))
	}

	it := r.NewIterator()
	it.Seek([]byte("d"), SeekOptions{})
	require.True(t, it.Valid())
	require.Equal(t, "e", string(base.DecodeInternalKey(it.Key()).UserKey))
}

func TestDynamicPrefixIteratorRehomes(t *testing.T) {
	w, r := newTestIndex(t, 8, prefix.NewFixedPrefix(1))
	for i, k := range []string{"a1", "a2", "b1", "b2"} {
		require.NoError(t, w.Insert(encode(k, i+1)))
	}

	it := r.NewDynamicPrefixIterator()
	it.Seek([]byte("a1"), SeekOptions{})
	require.True(t, it.Valid())
	require.Equal(t, "a1", string(base.DecodeInternalKey(it.Key()).UserKey))

	it.Seek([]byte("b1"), SeekOptions{})
	require.True(t, it.Valid())
	require.Equal(t, "b1", string(base.DecodeInternalKey(it.Key()).UserKey))
}

func TestEmptyIteratorForUnpopulatedBucket(t *testing.T) {
	_, r := newTestIndex(t, 8, prefix.NewFixedPrefix(1))
	it := r.NewPrefixIterator([]byte("zzz"))
	require.False(t, it.Valid())
	it.SeekToFirst()
	require.False(t, it.Valid())
}

func TestApproximateMemoryUsageIsZero(t *testing.T) {
	_, r := newTestIndex(t, 4, prefix.NewNoop())
	require.Zero(t, r.ApproximateMemoryUsage())
}

func TestInsertReturnsErrArenaFullWhenExhausted(t *testing.T) {
	a := arena.New(64)
	f := NewFactory(Config{Extractor: prefix.NewNoop(), BucketCount: 4})
	w, _, err := f.New(base.DefaultComparer, a)
	require.NoError(t, err)

	var lastErr error
	for i := 0; i < 100 && lastErr == nil; i++ {
		lastErr = w.Insert(encode(fmt.Sprintf("key-%03d", i), i+1))
	}
	require.ErrorIs(t, lastErr, base.ErrArenaFull)
}
