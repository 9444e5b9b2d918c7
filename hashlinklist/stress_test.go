// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import (
	"context"
	"fmt"
	"testing"

	"github.com/lsmkv/hashlinklist/internal/stress"
	"github.com/lsmkv/hashlinklist/prefix"
	"github.com/stretchr/testify/require"
)

// stressIndex lets a Writer/Reader pair satisfy stress.Index, which
// speaks in terms of a single combined interface
// rather than this package's split Writer/Reader handles.
type stressIndex struct {
	w *Writer
	r *Reader
}

func (s stressIndex) Insert(entry []byte) error  { return s.w.Insert(entry) }
func (s stressIndex) Contains(entry []byte) bool { return s.r.Contains(entry) }

func TestConcurrentWriterAndReaders(t *testing.T) {
	w, r := newTestIndex(t, 64, prefix.NewFixedPrefix(4))

	const n = 2000
	keys := make([][]byte, n)
	for i := 0; i < n; i++ {
		keys[i] = encode(fmt.Sprintf("key-%05d", i), i+1)
	}

	err := stress.Run(context.Background(), stressIndex{w: w, r: r}, stress.Config{
		Keys:           keys,
		Readers:        8,
		ReadIterations: 500,
	})
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		require.True(t, r.Contains(keys[i]))
	}
}
