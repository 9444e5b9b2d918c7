// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package hash implements the bucket hash function consumed by the
// hashlinklist index's bucket table.
package hash

// Seed0 is the seed spec.md §6 pins the bucket hash function to: "MurmurHash
// with seed 0". Using any other seed changes bucket distribution but is
// still a private implementation detail; the value zero itself is the
// external, persisted-behavior contract.
const Seed0 uint32 = 0

// Murmur32 computes a 32-bit Murmur-style hash of b with the given seed:
// each 4-byte little-endian word is added, multiplied by m and xor-shifted
// by r, then the 1-3 byte tail gets one more such round. This is
// hand-rolled rather than imported from
// a hashing library for the same reason bloom.hash in the teacher's
// bloom/bloom.go is hand-rolled: the exact mixing constants and the
// byte-at-a-time tail handling are part of an external, persisted contract
// (here, the bucket a key lands in), so a drop-in replacement hash function
// is not substitutable even though its statistical properties are similar.
func Murmur32(b []byte, seed uint32) uint32 {
	const (
		m = 0xc6a4a793
		r = 24
	)

	h := seed ^ (uint32(len(b)) * m)

	for len(b) >= 4 {
		w := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		b = b[4:]
		h += w
		h *= m
		h ^= h >> r
	}

	switch len(b) {
	case 3:
		h += uint32(b[2]) << 16
		fallthrough
	case 2:
		h += uint32(b[1]) << 8
		fallthrough
	case 1:
		h += uint32(b[0])
		h *= m
		h ^= h >> r
	}

	return h
}
