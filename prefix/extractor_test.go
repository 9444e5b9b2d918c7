// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package prefix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedPrefix(t *testing.T) {
	f := NewFixedPrefix(3)
	require.Equal(t, "rocksdb.FixedPrefix.3", f.Name())

	require.True(t, f.InDomain([]byte("abcdef")))
	require.False(t, f.InDomain([]byte("ab")))
	require.Equal(t, []byte("abc"), f.Transform([]byte("abcdef")))

	require.True(t, f.InRange([]byte("abc")))
	require.False(t, f.InRange([]byte("ab")))
	require.False(t, f.InRange([]byte("abcd")))

	require.True(t, f.SameResultWhenAppended([]byte("abc")))
	require.False(t, f.SameResultWhenAppended([]byte("ab")))
}

func TestFixedPrefixIdempotentOnItsOwnOutput(t *testing.T) {
	f := NewFixedPrefix(4)
	key := []byte("abcdefgh")
	p1 := f.Transform(key)
	require.True(t, f.InDomain(p1))
	p2 := f.Transform(p1)
	require.Equal(t, p1, p2)
}

func TestCappedPrefix(t *testing.T) {
	c := NewCappedPrefix(4)
	require.Equal(t, "rocksdb.CappedPrefix.4", c.Name())

	require.True(t, c.InDomain([]byte("a")))
	require.True(t, c.InDomain(nil))

	require.Equal(t, []byte("abcd"), c.Transform([]byte("abcdefgh")))
	require.Equal(t, []byte("ab"), c.Transform([]byte("ab")))

	require.True(t, c.InRange([]byte("ab")))
	require.True(t, c.InRange([]byte("abcd")))
	require.False(t, c.InRange([]byte("abcde")))

	require.True(t, c.SameResultWhenAppended([]byte("abcd")))
	require.False(t, c.SameResultWhenAppended([]byte("ab")))
}

func TestCappedPrefixShortKeyIsItsOwnPrefix(t *testing.T) {
	c := NewCappedPrefix(10)
	key := []byte("short")
	require.Equal(t, key, c.Transform(key))
}

func TestNoop(t *testing.T) {
	n := NewNoop()
	require.Equal(t, "rocksdb.Noop", n.Name())
	require.True(t, n.InDomain([]byte("anything")))
	require.True(t, n.InRange([]byte("anything")))
	require.Equal(t, []byte("anything"), n.Transform([]byte("anything")))
	require.False(t, n.SameResultWhenAppended([]byte("anything")))
}
