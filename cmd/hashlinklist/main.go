// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Command hashlinklist exercises and reports on the hashlinklist index:
// loading it with random keys, running the concurrent writer/readers
// stress scenario, and plotting bucket occupancy. Structured the way the
// teacher's cmd/pebble tool composes its cobra subcommands.
package main

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hashlinklist [command] (flags)",
	Short: "hashlinklist load/stress/report tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		loadCmd,
		stressCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		// %+v on a cockroachdb/errors error includes the stack trace
		// attached at the point each command wrapped its low-level error,
		// unlike the bare messages the internal packages return.
		log.Fatalf("%+v", err)
	}
}

// wrapf attaches CLI-level context to an error from a lower layer, using
// the same github.com/cockroachdb/errors the teacher's higher layers use
// for diagnosable wrapped errors (its internal/base and hashlinklist
// packages stay on stdlib errors, since they have no operator-facing
// diagnostic surface of their own).
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
