// Copyright 2020 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !invariants && !race

package invariants

// Enabled is false in production builds. The index's debug-only assertions
// (spec.md §7) compile out entirely rather than branching at runtime.
const Enabled = false
