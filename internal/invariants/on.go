// Copyright 2020 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build invariants || race
// +build invariants race

package invariants

// Enabled is true if we were built with the "invariants" or "race" build
// tags. The hashlinklist index gates its single-writer duplicate-insert and
// sortedness assertions (spec.md §7) behind this flag, the same way the
// teacher gates its own debug-only checks.
const Enabled = true
