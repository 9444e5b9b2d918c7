// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/lsmkv/hashlinklist/hashlinklist"
	"github.com/lsmkv/hashlinklist/internal/arena"
	"github.com/lsmkv/hashlinklist/internal/base"
	"github.com/lsmkv/hashlinklist/internal/stress"
	"github.com/lsmkv/hashlinklist/prefix"
	"github.com/spf13/cobra"
)

var stressConfig struct {
	numKeys     int
	readers     int
	iterations  int
	bucketCount uint32
}

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "run the single-writer/multi-reader concurrency scenario and report Insert latency",
	RunE:  runStress,
}

func init() {
	stressCmd.Flags().IntVar(&stressConfig.numKeys, "keys", 50000, "number of keys the writer inserts")
	stressCmd.Flags().IntVar(&stressConfig.readers, "readers", 8, "number of concurrent reader goroutines")
	stressCmd.Flags().IntVar(&stressConfig.iterations, "iterations", 2000, "Contains calls per reader goroutine")
	stressCmd.Flags().Uint32Var(&stressConfig.bucketCount, "buckets", 1024, "number of hash buckets")
}

// timedIndex wraps a Writer/Reader pair, recording each Insert's latency
// into an HdrHistogram the way the teacher's manifest tool records
// file-lifetime latencies.
type timedIndex struct {
	w    *hashlinklist.Writer
	r    *hashlinklist.Reader
	hist *hdrhistogram.Histogram
}

func (t *timedIndex) Insert(entry []byte) error {
	start := time.Now()
	err := t.w.Insert(entry)
	_ = t.hist.RecordValue(time.Since(start).Microseconds())
	return err
}

func (t *timedIndex) Contains(entry []byte) bool { return t.r.Contains(entry) }

func runStress(cmd *cobra.Command, args []string) error {
	a := arena.New(256 << 20)
	f := hashlinklist.NewFactory(hashlinklist.Config{
		Extractor:   prefix.NewFixedPrefix(4),
		BucketCount: stressConfig.bucketCount,
	})
	w, r, err := f.New(base.DefaultComparer, a)
	if err != nil {
		return wrapf(err, "constructing index with %d buckets", stressConfig.bucketCount)
	}

	rng := rand.New(rand.NewSource(1))
	keys := make([][]byte, stressConfig.numKeys)
	buf := make([]byte, 16)
	for i := range keys {
		rng.Read(buf)
		k := base.MakeInternalKey(append([]byte(nil), buf...), base.SeqNum(i+1), base.InternalKeyKindSet)
		entry := make([]byte, k.Size())
		k.Encode(entry)
		keys[i] = entry
	}

	ti := &timedIndex{w: w, r: r, hist: hdrhistogram.New(0, int64(time.Second.Microseconds()), 3)}
	if err := stress.Run(context.Background(), ti, stress.Config{
		Keys:           keys,
		Readers:        stressConfig.readers,
		ReadIterations: stressConfig.iterations,
	}); err != nil {
		return wrapf(err, "running stress scenario with %d readers", stressConfig.readers)
	}

	fmt.Printf("insert latency (us): p50=%d p99=%d max=%d\n",
		ti.hist.ValueAtQuantile(50), ti.hist.ValueAtQuantile(99), ti.hist.Max())
	return nil
}
