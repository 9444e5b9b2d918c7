// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Compare returns -1, 0, or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b. a and b are user keys; the hashlinklist index
// orders memtable-encoded entries by applying Compare to their user keys
// and breaking ties with InternalCompare's trailer order. This is the
// three-way-compare contract spec.md §6 requires of the comparator
// collaborator.
type Compare func(a, b []byte) int

// Equal returns true if a and b are equivalent. For a given Compare,
// Equal(a,b)=true iff Compare(a,b)=0.
type Equal func(a, b []byte) bool

// FormatKey returns a formatter for a user key, used only for diagnostics.
type FormatKey func(key []byte) fmt.Formatter

// DefaultFormatter formats non-ASCII bytes as escaped hexadecimal.
var DefaultFormatter FormatKey = func(key []byte) fmt.Formatter {
	return FormatBytes(key)
}

// Comparer defines a total ordering over the space of []byte keys.
type Comparer struct {
	// Compare defaults to bytes.Compare if not specified.
	Compare Compare
	// Equal defaults to Compare(a,b)==0 if not specified.
	Equal Equal
	// FormatKey defaults to DefaultFormatter if not specified.
	FormatKey FormatKey

	// Name identifies the comparer. Persisted by external collaborators
	// (spec.md §6) alongside the prefix extractor's Name for on-disk
	// compatibility checks; changing it is a breaking format change.
	Name string
}

// EnsureDefaults returns c with every optional field populated, or
// DefaultComparer if c is nil.
func (c *Comparer) EnsureDefaults() *Comparer {
	if c == nil {
		return DefaultComparer
	}
	if c.Compare != nil && c.Equal != nil && c.FormatKey != nil && c.Name != "" {
		return c
	}
	n := *c
	if n.Compare == nil {
		n.Compare = bytes.Compare
	}
	if n.Equal == nil {
		cmp := n.Compare
		n.Equal = func(a, b []byte) bool { return cmp(a, b) == 0 }
	}
	if n.FormatKey == nil {
		n.FormatKey = DefaultFormatter
	}
	if n.Name == "" {
		n.Name = "leveldb.BytewiseComparator"
	}
	return &n
}

// DefaultComparer orders keys lexicographically, consistent with
// bytes.Compare.
var DefaultComparer = &Comparer{
	Compare:   bytes.Compare,
	Equal:     bytes.Equal,
	FormatKey: DefaultFormatter,
	// This name matches the LevelDB/RocksDB default comparator name and
	// should not be changed; it is part of the on-disk format collaborators
	// validate against.
	Name: "leveldb.BytewiseComparator",
}

// MinUserKey returns the smaller of two user keys. If one of the keys is
// nil, the other is returned.
func MinUserKey(cmp Compare, a, b []byte) []byte {
	if a != nil && (b == nil || cmp(a, b) < 0) {
		return a
	}
	return b
}

// FormatBytes formats a byte slice using hexadecimal escapes for non-ASCII
// data.
type FormatBytes []byte

const lowerhex = "0123456789abcdef"

// Format implements fmt.Formatter.
func (p FormatBytes) Format(s fmt.State, c rune) {
	buf := make([]byte, 0, len(p))
	for _, b := range p {
		if b < utf8.RuneSelf && strconv.IsPrint(rune(b)) {
			buf = append(buf, b)
			continue
		}
		buf = append(buf, `\x`...)
		buf = append(buf, lowerhex[b>>4])
		buf = append(buf, lowerhex[b&0xF])
	}
	_, _ = s.Write(buf)
}
