// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/lsmkv/hashlinklist/hashlinklist"
	"github.com/lsmkv/hashlinklist/internal/arena"
	"github.com/lsmkv/hashlinklist/internal/base"
	"github.com/lsmkv/hashlinklist/internal/metrics"
	"github.com/lsmkv/hashlinklist/prefix"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var loadConfig struct {
	numKeys     int
	keyLen      int
	bucketCount uint32
	arenaSize   uint32
	prefixLen   int
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "load random keys into a hashlinklist index and report bucket occupancy",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().IntVar(&loadConfig.numKeys, "keys", 100000, "number of random keys to insert")
	loadCmd.Flags().IntVar(&loadConfig.keyLen, "key-len", 16, "length in bytes of each random key")
	loadCmd.Flags().Uint32Var(&loadConfig.bucketCount, "buckets", 1024, "number of hash buckets")
	loadCmd.Flags().Uint32Var(&loadConfig.arenaSize, "arena-size", 64<<20, "arena capacity in bytes")
	loadCmd.Flags().IntVar(&loadConfig.prefixLen, "prefix-len", 4, "fixed prefix length used to choose a bucket")
}

func runLoad(cmd *cobra.Command, args []string) error {
	a := arena.New(loadConfig.arenaSize)
	rec := metrics.NewRecorder(loadConfig.bucketCount)
	f := hashlinklist.NewFactory(hashlinklist.Config{
		Extractor:   prefix.NewFixedPrefix(loadConfig.prefixLen),
		BucketCount: loadConfig.bucketCount,
		Metrics:     rec,
	})
	w, _, err := f.New(base.DefaultComparer, a)
	if err != nil {
		return wrapf(err, "constructing index with %d buckets", loadConfig.bucketCount)
	}

	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, loadConfig.keyLen)
	for i := 0; i < loadConfig.numKeys; i++ {
		rng.Read(buf)
		k := base.MakeInternalKey(append([]byte(nil), buf...), base.SeqNum(i+1), base.InternalKeyKindSet)
		entry := make([]byte, k.Size())
		k.Encode(entry)
		if err := w.Insert(entry); err != nil {
			return wrapf(err, "inserting key %d of %d", i, loadConfig.numKeys)
		}
	}

	chainLens := make([]float64, loadConfig.bucketCount)
	for i := uint32(0); i < loadConfig.bucketCount; i++ {
		chainLens[i] = float64(rec.ChainLength(i))
	}
	fmt.Println(asciigraph.Plot(chainLens, asciigraph.Height(12), asciigraph.Caption("bucket chain length")))

	var buckets bytes.Buffer
	tbl := tablewriter.NewWriter(&buckets)
	tbl.SetHeader([]string{"metric", "value"})
	tbl.Append([]string{"keys inserted", fmt.Sprintf("%d", loadConfig.numKeys)})
	tbl.Append([]string{"bucket count", fmt.Sprintf("%d", loadConfig.bucketCount)})
	tbl.Append([]string{"max chain length", fmt.Sprintf("%d", maxOf(chainLens))})
	tbl.Render()
	fmt.Fprint(os.Stdout, buckets.String())
	return nil
}

func maxOf(vs []float64) int {
	m := 0
	for _, v := range vs {
		if int(v) > m {
			m = int(v)
		}
	}
	return m
}
