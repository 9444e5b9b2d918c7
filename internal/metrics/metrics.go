// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package metrics instruments the hashlinklist index with Prometheus
// collectors, following the same prometheus.Histogram/Gauge-as-struct-field
// pattern the teacher's wal package uses for FsyncLatency.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder collects counts describing an index's write and bucket-fill
// behavior. A nil *Recorder is valid everywhere it's accepted: every
// method on a nil Recorder is a no-op, so instrumentation is always
// optional (spec.md carries no metrics requirement of its own; this is
// ambient observability the teacher's codebase applies at every storage
// layer it touches).
type Recorder struct {
	// Inserts counts every successful Writer.Insert call.
	Inserts prometheus.Counter

	// BucketChainLength observes, after each insert, the length of the
	// bucket chain the new entry landed in. A widening distribution here
	// signals the prefix extractor or bucket count is poorly tuned for the
	// workload's key distribution.
	BucketChainLength prometheus.Histogram

	// chainLen tracks each bucket's current length so BucketChainLength can
	// be fed a cheap O(1) update per insert instead of re-walking the list.
	chainLen []int
}

// NewRecorder returns a Recorder instrumenting an index with bucketCount
// buckets.
func NewRecorder(bucketCount uint32) *Recorder {
	return &Recorder{
		Inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlinklist_inserts_total",
			Help: "Total number of entries inserted into the index.",
		}),
		BucketChainLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hashlinklist_bucket_chain_length",
			Help:    "Length of a bucket's sorted linked list after an insert lands in it.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
		chainLen: make([]int, bucketCount),
	}
}

// RecordInsert records that an entry was inserted into bucket slot.
func (r *Recorder) RecordInsert(slot uint32) {
	if r == nil {
		return
	}
	r.chainLen[slot]++
	if r.Inserts != nil {
		r.Inserts.Inc()
	}
	if r.BucketChainLength != nil {
		r.BucketChainLength.Observe(float64(r.chainLen[slot]))
	}
}

// ChainLength returns the current length of the given bucket's chain, as
// tracked by this recorder. Used by cmd/hashlinklist to render bucket
// occupancy reports without re-walking the index.
func (r *Recorder) ChainLength(slot uint32) int {
	if r == nil {
		return 0
	}
	return r.chainLen[slot]
}
