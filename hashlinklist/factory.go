// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package hashlinklist

import (
	"github.com/lsmkv/hashlinklist/internal/base"
	"github.com/lsmkv/hashlinklist/internal/metrics"
	"github.com/lsmkv/hashlinklist/prefix"
)

// Config holds the construction-time parameters for an Index (component
// E). A zero Config is invalid; BucketCount and Extractor must be set.
type Config struct {
	// Extractor derives the bucket-partitioning prefix from each entry's
	// user key.
	Extractor prefix.Extractor

	// BucketCount is the fixed number of buckets the index hashes into.
	// It cannot change after construction.
	BucketCount uint32

	// UserKey decodes the user key out of an entry. Defaults to treating
	// entries as base.InternalKey encodings.
	UserKey UserKeyFunc

	// Logger receives diagnostic messages. Defaults to base.DefaultLogger.
	Logger base.Logger

	// Metrics, if non-nil, is fed insert and bucket-occupancy observations.
	// Left nil, the index collects no metrics.
	Metrics *metrics.Recorder
}

// Factory holds a Config and produces indexes bound to a caller-supplied
// comparator and arena, the same factory-object shape spec.md §4.E
// describes. A single Factory can build any number of independent
// Indexes, e.g. one per memtable generation.
type Factory struct {
	Config Config
}

// NewFactory returns a Factory for the given configuration.
func NewFactory(cfg Config) *Factory {
	return &Factory{Config: cfg}
}

// New constructs a fresh Index bound to cmp and arena, returning separate
// Writer and Reader handles onto it (spec.md §5's single-writer,
// many-reader contract, enforced by giving mutation and read-only access
// distinct Go types).
func (f *Factory) New(cmp *base.Comparer, a Arena) (*Writer, *Reader, error) {
	if f.Config.BucketCount == 0 {
		return nil, nil, base.ErrBucketCountInvalid
	}
	cmp = cmp.EnsureDefaults()

	buckets, err := newBucketTable(a, f.Config.BucketCount)
	if err != nil {
		return nil, nil, err
	}

	userKey := f.Config.UserKey
	if userKey == nil {
		userKey = defaultUserKey
	}
	logger := f.Config.Logger
	if logger == nil {
		logger = base.DefaultLogger{}
	}

	// Entries are base.InternalKey encodings: order them by user key under
	// cmp, breaking ties by trailer as InternalCompare defines, so a
	// MakeSearchKey lookup sorts before every entry with its user key.
	userCmp := cmp.Compare
	entryCmp := func(x, y []byte) int {
		return base.InternalCompare(userCmp, base.DecodeInternalKey(x), base.DecodeInternalKey(y))
	}

	idx := &Index{
		arena:     a,
		cmp:       entryCmp,
		equal:     cmp.Equal,
		extractor: f.Config.Extractor,
		userKey:   userKey,
		buckets:   buckets,
		logger:    logger,
		metrics:   f.Config.Metrics,
	}
	return &Writer{idx: idx}, &Reader{idx: idx}, nil
}
