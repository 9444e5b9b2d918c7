// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines the fundamental types shared by the prefix extractor,
// the bucketed hash/linked-list index, and their tests: the memtable-encoded
// InternalKey and its trailer, the user-key Comparer contract, and a Logger
// interface for the ambient logging the index's collaborators expect.
package base
