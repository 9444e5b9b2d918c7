// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"errors"
)

// ErrArenaFull is returned by an Arena when it cannot satisfy an allocation
// request. The index does not translate this failure; it is propagated
// verbatim from the arena to the caller of Insert.
var ErrArenaFull = errors.New("hashlinklist: arena is full")

// ErrBucketCountInvalid is returned by a Factory when asked to construct an
// Index with a non-positive bucket count.
var ErrBucketCountInvalid = errors.New("hashlinklist: bucket count must be positive")
