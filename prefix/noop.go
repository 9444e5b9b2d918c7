// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package prefix

type noop struct{}

// NewNoop returns an Extractor whose prefix is the entire key, so each
// distinct key is its own prefix and gets its own candidate bucket.
// Useful mainly as a baseline for testing the bucket table and iterators
// independent of prefix derivation.
func NewNoop() Extractor { return noop{} }

func (noop) Name() string { return "rocksdb.Noop" }

func (noop) Transform(src []byte) []byte { return src }

func (noop) InDomain(src []byte) bool { return true }

func (noop) InRange(dst []byte) bool { return true }

func (noop) SameResultWhenAppended(prefix []byte) bool { return false }
