// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package prefix

import "strconv"

type fixedPrefix struct {
	len  int
	name string
}

// NewFixedPrefix returns an Extractor whose prefix is always the first n
// bytes of the key. Keys shorter than n are out of domain.
func NewFixedPrefix(n int) Extractor {
	return &fixedPrefix{len: n, name: "rocksdb.FixedPrefix." + strconv.Itoa(n)}
}

func (f *fixedPrefix) Name() string { return f.name }

func (f *fixedPrefix) Transform(src []byte) []byte {
	return src[:f.len]
}

func (f *fixedPrefix) InDomain(src []byte) bool {
	return len(src) >= f.len
}

func (f *fixedPrefix) InRange(dst []byte) bool {
	return len(dst) == f.len
}

func (f *fixedPrefix) SameResultWhenAppended(prefix []byte) bool {
	return f.InDomain(prefix)
}
