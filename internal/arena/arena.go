// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package arena implements a fixed-size bump allocator: the concrete
// collaborator spec.md §9 says the index depends on only through its
// allocation contract, never by owning it. Grounded on
// internal/arenaskl.Arena, simplified from a growable arena (which backs an
// unbounded multi-level skiplist) to the fixed-capacity shape this index's
// single bucket table and node population actually need.
package arena

import (
	"sync/atomic"
	"unsafe"

	"github.com/lsmkv/hashlinklist/internal/base"
)

// Align4 requests 4-byte-aligned offsets, sized for a uint32 or
// atomic.Uint32 field. It is expressed as a mask (alignment-1), matching
// arenaskl's convention.
const Align4 = 3

// Arena is a lock-free bump allocator over a fixed-size backing buffer.
// Allocations are never freed individually; the whole arena is released at
// once when its owner (the memtable, in production use) is discarded.
type Arena struct {
	n   uint32
	buf []byte
}

// New allocates a new arena with the given fixed capacity in bytes.
func New(size uint32) *Arena {
	// Offset 0 is reserved as the nil marker, so node and bucket-head links
	// can use a zero value to mean "no successor" without a separate bool.
	return &Arena{n: 1, buf: make([]byte, size)}
}

// Alloc reserves size bytes aligned to align+1 bytes (align is a mask, e.g.
// Align4) and returns the offset of the first reserved byte. It returns
// base.ErrArenaFull if the arena's fixed capacity is exhausted.
func (a *Arena) Alloc(size, align uint32) (uint32, error) {
	padded := size + align

	newSize := atomic.AddUint32(&a.n, padded)
	if int(newSize) > len(a.buf) {
		return 0, base.ErrArenaFull
	}

	offset := (newSize - padded + align) & ^align
	return offset, nil
}

// Bytes returns the size-byte region starting at offset. offset must have
// come from a prior successful Alloc on the same arena; offset 0 returns
// nil.
func (a *Arena) Bytes(offset, size uint32) []byte {
	if offset == 0 {
		return nil
	}
	return a.buf[offset : offset+size : offset+size]
}

// Pointer returns an unsafe.Pointer to the byte at offset, for callers that
// reinterpret an allocated region as a fixed-layout struct (as the
// hashlinklist package does for its node type). offset 0 returns nil.
func (a *Arena) Pointer(offset uint32) unsafe.Pointer {
	if offset == 0 {
		return nil
	}
	return unsafe.Pointer(&a.buf[offset])
}
