// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import "unsafe"

// Arena is the allocation contract this index consumes (spec.md §9): a
// fixed-capacity byte-offset bump allocator. The index never owns an
// Arena's lifetime; a caller (in production, the surrounding memtable)
// constructs one, shares it across however many prefix buckets and nodes
// it's sized for, and releases it all at once when done.
//
// internal/arena.Arena is the concrete implementation this package is
// built and tested against, but any type satisfying this contract works.
type Arena interface {
	// Alloc reserves size bytes aligned to align+1 bytes (align is a mask,
	// e.g. 3 for 4-byte alignment) and returns the offset of the first
	// reserved byte, or a non-nil error if the arena's capacity is
	// exhausted.
	Alloc(size, align uint32) (uint32, error)

	// Bytes returns the size-byte region starting at offset. offset must
	// have come from a prior successful Alloc on the same arena. Offset 0
	// is reserved to mean "no allocation" and returns nil.
	Bytes(offset, size uint32) []byte

	// Pointer returns an unsafe.Pointer to the byte at offset, for
	// reinterpreting an allocated region as a fixed-layout struct. Offset 0
	// returns nil.
	Pointer(offset uint32) unsafe.Pointer
}
