// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package stress drives the concurrency scenario spec.md §8 requires: one
// writer goroutine inserting while many reader goroutines call Contains
// in a tight loop, run under the race detector to validate the lock-free
// single-writer/multi-reader contract. Grounded on replay/replay.go's use
// of golang.org/x/sync/errgroup to supervise a fixed set of concurrent
// goroutines and propagate the first error any of them returns.
package stress

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Index is the minimal surface stress needs from a hashlinklist index: a
// single-writer Insert and a concurrency-safe Contains, decoupled from
// the concrete Writer/Reader types so tests can stub them.
type Index interface {
	Insert(entry []byte) error
	Contains(entry []byte) bool
}

// Config parameterizes a Run.
type Config struct {
	// Keys is inserted, in order, by the single writer goroutine.
	Keys [][]byte

	// Readers is the number of concurrent reader goroutines to run.
	Readers int

	// ReadIterations is how many Contains calls each reader goroutine
	// issues before returning.
	ReadIterations int
}

// Run inserts Config.Keys from a single goroutine while Config.Readers
// goroutines each call Contains ReadIterations times against arbitrary
// keys drawn from the same set, returning the first error encountered
// (from the writer, since readers never error — Contains always returns
// a bool). Run is meant to be exercised under `go test -race`, where a
// broken acquire-load/release-store pairing surfaces as a race, not a
// wrong answer.
func Run(ctx context.Context, idx Index, cfg Config) error {
	if len(cfg.Keys) == 0 {
		return fmt.Errorf("stress: no keys to insert")
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, k := range cfg.Keys {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := idx.Insert(k); err != nil {
				return err
			}
		}
		return nil
	})

	for i := 0; i < cfg.Readers; i++ {
		g.Go(func() error {
			for j := 0; j < cfg.ReadIterations; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				// Contains on any key, inserted or not, must never panic
				// or corrupt the structure; whether it's found depends on
				// a benign race with the writer's progress.
				_ = idx.Contains(cfg.Keys[j%len(cfg.Keys)])
			}
			return nil
		})
	}

	return g.Wait()
}
