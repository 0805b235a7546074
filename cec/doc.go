// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cec decides equivalence of combinational Boolean networks
// by exhaustive partitioned simulation.
//
// A miter of the two networks is simulated over every input
// assignment, a memory-bounded batch of "split" variables at a time:
// each round fixes the non-split inputs to one combination and sweeps
// the split inputs bit-parallel as truth tables.  The networks are
// equivalent iff every output table of every round is identically
// false.  With at most MaxPIs inputs the enumeration is exhaustive,
// so the verdict is exact; above that bound the checker reports no
// answer.
package cec
