// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package prefix implements component A: the pluggable extractor that maps
// a user key to the prefix bytes the bucketed hash/linked-list index hashes
// to choose a bucket. Grounded on RocksDB's SliceTransform
// (original_source/include/rocksdb/slice_transform.h,
// original_source/util/slice.cc), which this package's three constructors
// mirror exactly, including their persisted Name strings.
package prefix

// Extractor maps a user key to a prefix. Implementations must be pure and
// allocation-free in Transform: the returned slice is a view into src and
// must not be retained past src's lifetime.
//
// Name is a persisted identifier (spec.md §6): external collaborators
// compare it to detect an incompatible extractor change across runs, so it
// must encode every parameter that affects Transform's output.
type Extractor interface {
	// Name identifies the extractor and its parameters.
	Name() string

	// Transform returns the prefix of src. The caller must have already
	// checked InDomain(src); behavior is undefined otherwise.
	Transform(src []byte) []byte

	// InDomain reports whether src is long enough (or otherwise eligible)
	// for Transform to be called on it.
	InDomain(src []byte) bool

	// InRange reports whether dst could itself be the output of Transform,
	// i.e. whether dst is a valid prefix value.
	InRange(dst []byte) bool

	// SameResultWhenAppended reports whether Transform(prefix+anything)
	// always equals Transform(prefix), for any suffix appended to prefix.
	// The hashlinklist index and its iterators do not call it.
	SameResultWhenAppended(prefix []byte) bool
}
