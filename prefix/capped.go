// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package prefix

import "strconv"

type cappedPrefix struct {
	cap  int
	name string
}

// NewCappedPrefix returns an Extractor whose prefix is the first min(n,
// len(key)) bytes of the key. Unlike NewFixedPrefix, every key is in
// domain: short keys contribute their whole length as the prefix.
func NewCappedPrefix(n int) Extractor {
	return &cappedPrefix{cap: n, name: "rocksdb.CappedPrefix." + strconv.Itoa(n)}
}

func (c *cappedPrefix) Name() string { return c.name }

func (c *cappedPrefix) Transform(src []byte) []byte {
	if len(src) < c.cap {
		return src
	}
	return src[:c.cap]
}

func (c *cappedPrefix) InDomain(src []byte) bool {
	return true
}

func (c *cappedPrefix) InRange(dst []byte) bool {
	return len(dst) <= c.cap
}

func (c *cappedPrefix) SameResultWhenAppended(prefix []byte) bool {
	return len(prefix) >= c.cap
}
