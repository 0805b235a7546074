// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import "github.com/go-air/eqc/tt"

// DefaultMemBudget is the default ceiling, in bytes, on the projected
// memory footprint of one simulation round: per-node table storage of
// 2^(splitVar-3) bytes plus 32 bytes overhead, times the gate count.
const DefaultMemBudget = 1 << 29

// SplitVars computes how many of the n primary inputs are simulated
// exhaustively per round for a network of v gates, so that the round
// footprint stays within budget.
//
// Up to 6 inputs fit in a single machine word per node, so they are
// always all split.  Beyond that the count grows while the projected
// footprint holds, and is capped at n and at the table width limit
// tt.MaxVars.
func SplitVars(n, v uint32, budget uint64) uint32 {
	if n <= 6 {
		return n
	}
	hi := n
	if hi > tt.MaxVars {
		hi = tt.MaxVars
	}
	m := uint32(7)
	for m <= hi && (32+uint64(1)<<(m-3))*uint64(v) <= budget {
		m++
	}
	return m - 1
}

// Rounds computes the number of simulation rounds for n inputs of
// which splitVar are swept exhaustively per round: one round per
// combination of the remaining inputs.
func Rounds(n, splitVar uint32) uint64 {
	return 1 << (n - splitVar)
}
