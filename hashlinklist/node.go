// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import (
	"sync/atomic"
	"unsafe"
)

// arenaAlign4 requests 4-byte aligned offsets, matching internal/arena's
// Align4 convention (a mask, not a byte count).
const arenaAlign4 = 3

// node is the in-arena representation of one entry in a bucket's sorted
// singly-linked list (spec.md §3, §4.C). Its memory lives inside the
// owning Arena, never the Go heap: newNode allocates node-sized,
// 4-byte-aligned bytes from the arena and reinterprets them in place, the
// same offset-addressed idiom internal/arenaskl's Iterator uses for its
// own node pointers.
type node struct {
	entryOffset uint32
	entrySize   uint32

	// nextOffset is the arena offset of the successor node, or 0 if this
	// is the last node in its bucket. A single writer goroutine is the
	// only mutator; readers load nextOffset concurrently with no lock
	// (spec.md §5), so every access goes through sync/atomic for the
	// acquire-load/release-store ordering the original's AtomicPointer
	// provided.
	nextOffset atomic.Uint32
}

// nodeSize is 4-byte aligned: two uint32 fields plus an atomic.Uint32,
// which itself wraps a single uint32.
var nodeSize = uint32(unsafe.Sizeof(node{}))

// newNode copies entry into the arena and allocates a node pointing at it,
// returning the new node's offset. The node's nextOffset starts at 0
// (unlinked); the caller splices it into a bucket's list.
func newNode(a Arena, entry []byte) (uint32, error) {
	entryOff, err := a.Alloc(uint32(len(entry)), 0)
	if err != nil {
		return 0, err
	}
	copy(a.Bytes(entryOff, uint32(len(entry))), entry)

	nodeOff, err := a.Alloc(nodeSize, arenaAlign4)
	if err != nil {
		return 0, err
	}
	nd := nodeAt(a, nodeOff)
	nd.entryOffset = entryOff
	nd.entrySize = uint32(len(entry))
	nd.nextOffset.Store(0)
	return nodeOff, nil
}

// nodeAt reinterprets the node-sized region at offset as a *node. offset 0
// yields nil, representing an empty bucket or a list's tail.
func nodeAt(a Arena, offset uint32) *node {
	return (*node)(a.Pointer(offset))
}

// entry returns the node's arena-backed entry bytes.
func (n *node) entry(a Arena) []byte {
	return a.Bytes(n.entryOffset, n.entrySize)
}
