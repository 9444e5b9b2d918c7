// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/redact"
)

// SeqNum is a sequence number defining precedence among identical user keys.
// A key with a higher sequence number takes precedence over a key with an
// equal user key of a lower sequence number. The outer memtable is
// responsible for assigning these; the index treats them only as a
// tie-breaking suffix baked into the trailer, never interpreting them
// itself (spec.md §9's Open Question: uniqueness is the caller's invariant).
type SeqNum uint64

const (
	// SeqNumZero is the zero sequence number.
	SeqNumZero SeqNum = 0
	// SeqNumMax is the largest valid sequence number.
	SeqNumMax SeqNum = 1<<56 - 1
)

func (s SeqNum) String() string {
	if s == SeqNumMax {
		return "inf"
	}
	return fmt.Sprintf("%d", uint64(s))
}

// SafeFormat implements redact.SafeFormatter.
func (s SeqNum) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(s.String()))
}

// InternalKeyKind enumerates the kind of a memtable entry. The index never
// inspects the kind beyond using it to break ties in InternalCompare; it is
// carried solely because the outer memtable's encoding includes it in every
// trailer.
type InternalKeyKind uint8

const (
	InternalKeyKindDelete InternalKeyKind = 0
	InternalKeyKindSet    InternalKeyKind = 1
	InternalKeyKindMerge  InternalKeyKind = 2

	// InternalKeyKindMax is the largest defined key kind.
	InternalKeyKindMax InternalKeyKind = InternalKeyKindMerge

	// InternalKeyKindInvalid marks an invalid, unset key kind.
	InternalKeyKindInvalid InternalKeyKind = 255
)

var internalKeyKindNames = [...]string{
	InternalKeyKindDelete: "DEL",
	InternalKeyKindSet:    "SET",
	InternalKeyKindMerge:  "MERGE",
}

func (k InternalKeyKind) String() string {
	if int(k) < len(internalKeyKindNames) {
		return internalKeyKindNames[k]
	}
	return fmt.Sprintf("UNKNOWN:%d", k)
}

// SafeFormat implements redact.SafeFormatter.
func (k InternalKeyKind) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(k.String()))
}

// InternalKeyTrailer encodes a SeqNum and an InternalKeyKind into a single
// 8-byte suffix, the "disambiguating suffix" spec.md §3 attributes to the
// outer memtable's encoding.
type InternalKeyTrailer uint64

// MakeTrailer constructs an internal key trailer from the specified sequence
// number and kind.
func MakeTrailer(seqNum SeqNum, kind InternalKeyKind) InternalKeyTrailer {
	return (InternalKeyTrailer(seqNum) << 8) | InternalKeyTrailer(kind)
}

func (t InternalKeyTrailer) String() string {
	return fmt.Sprintf("%s,%s", SeqNum(t>>8), InternalKeyKind(t&0xff))
}

// SeqNum returns the sequence number component of the trailer.
func (t InternalKeyTrailer) SeqNum() SeqNum {
	return SeqNum(t >> 8)
}

// Kind returns the key kind component of the trailer.
func (t InternalKeyTrailer) Kind() InternalKeyKind {
	return InternalKeyKind(t & 0xff)
}

// InternalTrailerLen is the number of bytes used to encode InternalKey.Trailer.
const InternalTrailerLen = 8

// InternalKey is a memtable-encoded entry: spec.md's "Entry". It is the user
// key, as understood by the outer memtable's clients, followed by an 8-byte
// trailer. Entries are immutable once constructed; the index never mutates
// one after Insert.
type InternalKey struct {
	UserKey []byte
	Trailer InternalKeyTrailer
}

// MakeInternalKey constructs an internal key from a user key, sequence
// number and kind.
func MakeInternalKey(userKey []byte, seqNum SeqNum, kind InternalKeyKind) InternalKey {
	return InternalKey{UserKey: userKey, Trailer: MakeTrailer(seqNum, kind)}
}

// MakeSearchKey constructs an internal key appropriate for a lookup: it
// carries the maximal sequence number and kind so it sorts before any other
// internal key sharing the same user key, matching the "encoded search key"
// the outer memtable builds for Seek (spec.md §6, EncodeKey).
func MakeSearchKey(userKey []byte) InternalKey {
	return MakeInternalKey(userKey, SeqNumMax, InternalKeyKindMax)
}

// InternalTrailerLen encoding round-trips through DecodeInternalKey.
//
// DecodeInternalKey decodes an encoded internal key produced by Encode.
func DecodeInternalKey(encodedKey []byte) InternalKey {
	n := len(encodedKey) - InternalTrailerLen
	if n < 0 {
		return InternalKey{Trailer: InternalKeyTrailer(InternalKeyKindInvalid)}
	}
	trailer := InternalKeyTrailer(binary.LittleEndian.Uint64(encodedKey[n:]))
	return InternalKey{UserKey: encodedKey[:n:n], Trailer: trailer}
}

// InternalCompare compares two internal keys using the specified user-key
// comparison function. For equal user keys, internal keys compare in
// descending sequence number order, so that the most recent write for a
// given user key sorts first among same-key entries. This is the total
// order invariant 2 of spec.md §3 depends on.
func InternalCompare(userCmp Compare, a, b InternalKey) int {
	if x := userCmp(a.UserKey, b.UserKey); x != 0 {
		return x
	}
	return cmp.Compare(b.Trailer, a.Trailer)
}

// Encode encodes the receiver into buf, which must be at least k.Size() bytes.
func (k InternalKey) Encode(buf []byte) {
	i := copy(buf, k.UserKey)
	binary.LittleEndian.PutUint64(buf[i:], uint64(k.Trailer))
}

// Size returns the encoded size of the key.
func (k InternalKey) Size() int {
	return len(k.UserKey) + InternalTrailerLen
}

// SeqNum returns the sequence number component of the key.
func (k InternalKey) SeqNum() SeqNum {
	return k.Trailer.SeqNum()
}

// Kind returns the kind component of the key.
func (k InternalKey) Kind() InternalKeyKind {
	return k.Trailer.Kind()
}

// Clone clones the storage for the UserKey component of the key.
func (k InternalKey) Clone() InternalKey {
	if len(k.UserKey) == 0 {
		return k
	}
	return InternalKey{UserKey: append([]byte(nil), k.UserKey...), Trailer: k.Trailer}
}

func (k InternalKey) String() string {
	return fmt.Sprintf("%s#%s,%s", FormatBytes(k.UserKey), k.SeqNum(), k.Kind())
}
