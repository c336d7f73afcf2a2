// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

package slz

import "sync"

// matchTablePool lets streams share the (8 * 2^hashBits)-byte hash table
// scratch memory instead of each allocating and zeroing their own, the same
// pattern the teacher uses to pool its sliding-window dictionaries.
var matchTablePool = sync.Pool{
	New: func() any {
		return &matchTable{}
	},
}

// acquireMatchTable gets a zeroed matchTable from the pool.
func acquireMatchTable() *matchTable {
	t := matchTablePool.Get().(*matchTable)
	t.reset()
	return t
}

// releaseMatchTable returns t to the pool. Safe to call with nil.
func releaseMatchTable(t *matchTable) {
	if t == nil {
		return
	}
	matchTablePool.Put(t)
}
